package values

import (
	"strings"

	"docsisconf.dev/codec"
)

func formatBoolean(raw []byte) (docsis.FormattedValue, error) {
	if len(raw) != 1 {
		return docsis.FormattedValue{}, &docsis.LengthMismatchError{Kind: docsis.KindBoolean, Got: len(raw), Want: 1}
	}
	if raw[0] != 0 && raw[0] != 1 {
		return docsis.FormattedValue{}, &docsis.ValueOutOfRangeError{
			Kind: docsis.KindBoolean, Value: raw[0], Bound: "must be 0 or 1",
		}
	}
	return docsis.FormattedValue{Kind: docsis.FormattedUint, Uint: uint64(raw[0])}, nil
}

// parseBoolean accepts the canonical "0"/"1" form plus the common
// human-typed spellings a config author might write by hand.
func parseBoolean(fv docsis.FormattedValue) ([]byte, error) {
	switch fv.Kind {
	case docsis.FormattedUint:
		if fv.Uint > 1 {
			return nil, &docsis.ValueOutOfRangeError{Kind: docsis.KindBoolean, Value: fv.Uint, Bound: "must be 0 or 1"}
		}
		return []byte{byte(fv.Uint)}, nil
	case docsis.FormattedInt:
		if fv.Int != 0 && fv.Int != 1 {
			return nil, &docsis.ValueOutOfRangeError{Kind: docsis.KindBoolean, Value: fv.Int, Bound: "must be 0 or 1"}
		}
		return []byte{byte(fv.Int)}, nil
	case docsis.FormattedText:
		switch strings.ToLower(strings.TrimSpace(fv.Text)) {
		case "0", "false", "off", "disabled", "no":
			return []byte{0}, nil
		case "1", "true", "on", "enabled", "yes":
			return []byte{1}, nil
		default:
			return nil, &docsis.InvalidFormatError{Kind: docsis.KindBoolean, Input: fv.Text, Hint: "expected 0/1 or true/false"}
		}
	default:
		return nil, &docsis.InvalidFormatError{Kind: docsis.KindBoolean, Hint: "missing boolean value"}
	}
}
