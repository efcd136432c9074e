package ber

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"docsisconf.dev/codec/internal/vlq"
)

// OID is a parsed ASN.1 OBJECT IDENTIFIER: a sequence of non-negative
// integer arcs, e.g. {1 3 6 1 4 1 4491} for the CableLabs enterprise OID.
type OID []uint64

// String returns the dotted-decimal representation of o, e.g. "1.3.6.1.4.1.4491".
func (o OID) String() string {
	parts := make([]string, len(o))
	for i, arc := range o {
		parts[i] = strconv.FormatUint(arc, 10)
	}
	return strings.Join(parts, ".")
}

// ParseOID parses a dotted-decimal OID string such as "1.3.6.1.4.1.4491".
func ParseOID(s string) (OID, error) {
	if s == "" {
		return nil, errors.New("ber: empty OID")
	}
	parts := strings.Split(s, ".")
	o := make(OID, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, errors.New("ber: invalid OID arc " + strconv.Quote(p))
		}
		o[i] = n
	}
	return o, nil
}

// EncodeOID returns the BER content octets for o. The first two arcs X, Y
// are combined into a single leading value 40*X+Y per Rec. ITU-T X.690
// §8.19; that value and each later arc are encoded as a base-128
// variable-length quantity (the same encoding
// [docsisconf.dev/codec/internal/vlq] implements for MIDI-style VLQs).
func EncodeOID(o OID) ([]byte, error) {
	if len(o) < 2 {
		return nil, errors.New("ber: OID must have at least two arcs")
	}
	if o[0] > 2 || (o[0] < 2 && o[1] >= 40) {
		return nil, errors.New("ber: invalid OID leading arcs")
	}
	var buf bytes.Buffer
	if _, err := vlq.Write(&buf, o[0]*40+o[1]); err != nil {
		return nil, err
	}
	for _, arc := range o[2:] {
		if _, err := vlq.Write(&buf, arc); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// DecodeOID parses BER content octets b into an [OID].
func DecodeOID(b []byte) (OID, error) {
	if len(b) == 0 {
		return nil, errors.New("ber: empty OID encoding")
	}
	r := bytes.NewReader(b)
	first, err := vlq.Read[uint64](r)
	if err != nil {
		return nil, err
	}
	var o OID
	if first < 40 {
		o = OID{0, first}
	} else if first < 80 {
		o = OID{1, first - 40}
	} else {
		o = OID{2, first - 80}
	}
	for r.Len() > 0 {
		arc, err := vlq.Read[uint64](r)
		if err != nil {
			return nil, err
		}
		o = append(o, arc)
	}
	return o, nil
}
