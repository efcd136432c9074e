// Package values implements the value formatter/parser pairs for the closed
// set of scalar kinds, each with a (format, parse) function that round-trips
// between raw TLV payload bytes and a human-editable string or number.
//
// Every exported Format/Parse pair in this package satisfies a round-trip
// contract: parse(format(v)) == v for every v in the kind's domain, and
// format(parse(s)) is a canonical form equivalent to s for every s that
// Parse accepts.
package values

import "docsisconf.dev/codec"

// Format converts raw payload bytes into their human-editable
// [docsis.FormattedValue] representation for the given kind. Format never
// returns an error for [docsis.KindBinary] or [docsis.KindHexString] — the
// enricher relies on this as its fallback for any other kind's
// formatter failure.
func Format(kind docsis.ValueKind, raw []byte) (docsis.FormattedValue, error) {
	switch kind {
	case docsis.KindUint8, docsis.KindUint16, docsis.KindUint32, docsis.KindUint64:
		return formatUint(kind, raw)
	case docsis.KindInt8, docsis.KindInt16, docsis.KindInt32:
		return formatInt(kind, raw)
	case docsis.KindBoolean:
		return formatBoolean(raw)
	case docsis.KindIPv4:
		return formatIPv4(raw)
	case docsis.KindIPv6:
		return formatIPv6(raw)
	case docsis.KindMACAddress:
		return formatMAC(raw)
	case docsis.KindFrequency:
		return formatFrequency(raw)
	case docsis.KindBandwidth:
		return formatBandwidth(raw)
	case docsis.KindDuration:
		return formatDuration(raw)
	case docsis.KindPowerQuarterDB:
		return formatPowerQuarterDB(raw)
	case docsis.KindPercentage:
		return formatPercentage(raw)
	case docsis.KindString:
		return formatString(raw)
	case docsis.KindOID:
		return formatOID(raw)
	case docsis.KindASN1DER:
		return formatHex(raw)
	case docsis.KindBinary, docsis.KindHexString:
		return formatHex(raw)
	case docsis.KindMarker:
		return docsis.FormattedValue{Kind: docsis.FormattedText, Text: ""}, nil
	case docsis.KindCompound:
		return docsis.FormattedValue{}, &docsis.InvalidFormatError{
			Kind: kind, Hint: "compound values are carried in subtlvs, not a formatted scalar",
		}
	default:
		return docsis.FormattedValue{}, &docsis.InvalidFormatError{Kind: kind, Hint: "unknown value kind"}
	}
}

// Parse converts a human-editable [docsis.FormattedValue] back into raw
// payload bytes for the given kind.
func Parse(kind docsis.ValueKind, fv docsis.FormattedValue) ([]byte, error) {
	switch kind {
	case docsis.KindUint8, docsis.KindUint16, docsis.KindUint32, docsis.KindUint64:
		return parseUint(kind, fv)
	case docsis.KindInt8, docsis.KindInt16, docsis.KindInt32:
		return parseInt(kind, fv)
	case docsis.KindBoolean:
		return parseBoolean(fv)
	case docsis.KindIPv4:
		return parseIPv4(fv)
	case docsis.KindIPv6:
		return parseIPv6(fv)
	case docsis.KindMACAddress:
		return parseMAC(fv)
	case docsis.KindFrequency:
		return parseFrequency(fv)
	case docsis.KindBandwidth:
		return parseBandwidth(fv)
	case docsis.KindDuration:
		return parseDuration(fv)
	case docsis.KindPowerQuarterDB:
		return parsePowerQuarterDB(fv)
	case docsis.KindPercentage:
		return parsePercentage(fv)
	case docsis.KindString:
		return parseString(fv)
	case docsis.KindOID:
		return parseOID(fv)
	case docsis.KindASN1DER:
		return parseHex(fv)
	case docsis.KindBinary, docsis.KindHexString:
		return parseHex(fv)
	case docsis.KindMarker:
		return nil, nil
	case docsis.KindCompound:
		return nil, &docsis.InvalidFormatError{Kind: kind, Hint: "compound values have no parse path"}
	default:
		return nil, &docsis.InvalidFormatError{Kind: kind, Hint: "unknown value kind"}
	}
}

// textOf extracts the string to parse from fv, accepting a formatted
// numeric variant as its decimal text too — JSON documents may carry a
// frequency as either a bare number (base-unit Hz) or a unit-bearing
// string, and both must reach the same parser path.
func textOf(fv docsis.FormattedValue) string {
	switch fv.Kind {
	case docsis.FormattedText:
		return fv.Text
	case docsis.FormattedInt:
		return itoa64(fv.Int)
	case docsis.FormattedUint:
		return utoa64(fv.Uint)
	default:
		return ""
	}
}
