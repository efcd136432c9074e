package values

import (
	"encoding/hex"
	"strings"

	"docsisconf.dev/codec"
	"docsisconf.dev/codec/ber"
)

// formatString decodes raw as UTF-8 text, trimming a single trailing NUL if
// present. A producer that zero-pads a filename TLV still round-trips
// through Format, but Parse never re-appends the NUL — matching how this
// kind is documented as "plain text, no NUL appended" on the way back out.
func formatString(raw []byte) (docsis.FormattedValue, error) {
	s := string(raw)
	s = strings.TrimSuffix(s, "\x00")
	return docsis.FormattedValue{Kind: docsis.FormattedText, Text: s}, nil
}

func parseString(fv docsis.FormattedValue) ([]byte, error) {
	return []byte(textOf(fv)), nil
}

func formatOID(raw []byte) (docsis.FormattedValue, error) {
	oid, err := ber.DecodeOID(raw)
	if err != nil {
		return docsis.FormattedValue{}, &docsis.InvalidFormatError{Kind: docsis.KindOID, Hint: "malformed OID content octets"}
	}
	return docsis.FormattedValue{Kind: docsis.FormattedText, Text: oid.String()}, nil
}

func parseOID(fv docsis.FormattedValue) ([]byte, error) {
	text := textOf(fv)
	oid, err := ber.ParseOID(text)
	if err != nil {
		return nil, &docsis.InvalidFormatError{Kind: docsis.KindOID, Input: text, Hint: "expected dotted form, e.g. 1.3.6.1.4.1"}
	}
	raw, err := ber.EncodeOID(oid)
	if err != nil {
		return nil, &docsis.InvalidFormatError{Kind: docsis.KindOID, Input: text, Hint: err.Error()}
	}
	return raw, nil
}

// formatHex renders raw as space-separated uppercase hex pairs, the
// canonical text form for :binary, :hex_string and :asn1_der payloads that
// have no more specific human representation.
func formatHex(raw []byte) (docsis.FormattedValue, error) {
	if len(raw) == 0 {
		return docsis.FormattedValue{Kind: docsis.FormattedText, Text: ""}, nil
	}
	var b strings.Builder
	b.Grow(len(raw)*3 - 1)
	for i, c := range raw {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strings.ToUpper(hex.EncodeToString([]byte{c})))
	}
	return docsis.FormattedValue{Kind: docsis.FormattedText, Text: b.String()}, nil
}

func parseHex(fv docsis.FormattedValue) ([]byte, error) {
	text := textOf(fv)
	clean := strings.Map(func(r rune) rune {
		if r == ' ' || r == ':' || r == '-' {
			return -1
		}
		return r
	}, text)
	raw, err := hex.DecodeString(clean)
	if err != nil {
		return nil, &docsis.InvalidFormatError{Kind: docsis.KindHexString, Input: text, Hint: "expected hex pairs, optionally space- or colon-separated"}
	}
	return raw, nil
}
