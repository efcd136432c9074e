package values

import (
	"strconv"

	"docsisconf.dev/codec"
)

func widthOf(kind docsis.ValueKind) int {
	switch kind {
	case docsis.KindUint8, docsis.KindInt8:
		return 1
	case docsis.KindUint16, docsis.KindInt16:
		return 2
	case docsis.KindUint32, docsis.KindInt32:
		return 4
	case docsis.KindUint64:
		return 8
	default:
		return 0
	}
}

func formatUint(kind docsis.ValueKind, raw []byte) (docsis.FormattedValue, error) {
	w := widthOf(kind)
	if len(raw) != w {
		return docsis.FormattedValue{}, &docsis.LengthMismatchError{Kind: kind, Got: len(raw), Want: w}
	}
	var v uint64
	for _, b := range raw {
		v = v<<8 | uint64(b)
	}
	return docsis.FormattedValue{Kind: docsis.FormattedUint, Uint: v}, nil
}

func parseUint(kind docsis.ValueKind, fv docsis.FormattedValue) ([]byte, error) {
	w := widthOf(kind)
	var v uint64
	switch fv.Kind {
	case docsis.FormattedUint:
		v = fv.Uint
	case docsis.FormattedInt:
		if fv.Int < 0 {
			return nil, &docsis.ValueOutOfRangeError{Kind: kind, Value: fv.Int, Bound: "must be non-negative"}
		}
		v = uint64(fv.Int)
	case docsis.FormattedText:
		parsed, err := strconv.ParseUint(fv.Text, 10, w*8)
		if err != nil {
			return nil, &docsis.InvalidFormatError{Kind: kind, Input: fv.Text, Hint: "not an unsigned integer"}
		}
		v = parsed
	default:
		return nil, &docsis.InvalidFormatError{Kind: kind, Hint: "missing numeric value"}
	}
	if w < 8 {
		max := uint64(1)<<(uint(w)*8) - 1
		if v > max {
			return nil, &docsis.ValueOutOfRangeError{
				Kind: kind, Value: v, Bound: "max " + utoa64(max),
			}
		}
	}
	raw := make([]byte, w)
	for i := w - 1; i >= 0; i-- {
		raw[i] = byte(v)
		v >>= 8
	}
	return raw, nil
}

func formatInt(kind docsis.ValueKind, raw []byte) (docsis.FormattedValue, error) {
	w := widthOf(kind)
	if len(raw) != w {
		return docsis.FormattedValue{}, &docsis.LengthMismatchError{Kind: kind, Got: len(raw), Want: w}
	}
	v := int64(int8(raw[0]))
	for _, b := range raw[1:] {
		v = v<<8 | int64(b)
	}
	return docsis.FormattedValue{Kind: docsis.FormattedInt, Int: v}, nil
}

func parseInt(kind docsis.ValueKind, fv docsis.FormattedValue) ([]byte, error) {
	w := widthOf(kind)
	var v int64
	switch fv.Kind {
	case docsis.FormattedInt:
		v = fv.Int
	case docsis.FormattedUint:
		v = int64(fv.Uint)
	case docsis.FormattedText:
		parsed, err := strconv.ParseInt(fv.Text, 10, w*8)
		if err != nil {
			return nil, &docsis.InvalidFormatError{Kind: kind, Input: fv.Text, Hint: "not a signed integer"}
		}
		v = parsed
	default:
		return nil, &docsis.InvalidFormatError{Kind: kind, Hint: "missing numeric value"}
	}
	lo, hi := -(int64(1) << (uint(w)*8 - 1)), int64(1)<<(uint(w)*8-1)-1
	if v < lo || v > hi {
		return nil, &docsis.ValueOutOfRangeError{
			Kind: kind, Value: v, Bound: "range [" + itoa64(lo) + ", " + itoa64(hi) + "]",
		}
	}
	raw := make([]byte, w)
	uv := uint64(v)
	for i := w - 1; i >= 0; i-- {
		raw[i] = byte(uv)
		uv >>= 8
	}
	return raw, nil
}

func itoa64(v int64) string  { return strconv.FormatInt(v, 10) }
func utoa64(v uint64) string { return strconv.FormatUint(v, 10) }
