package tlv

// GenerateOptions configures [Generate].
type GenerateOptions struct {
	// PreserveLengthForm re-emits each TLV using its recorded Form instead
	// of always choosing the shortest adequate form.
	PreserveLengthForm bool

	// AppendTerminator appends a top-level 0xFF after the last TLV.
	AppendTerminator bool
}

// Generate re-encodes a [Stream] to bytes. By default it emits the shortest
// length form that can hold each value's length; pass
// [GenerateOptions.PreserveLengthForm] to re-use the form each TLV was
// parsed with instead of re-deriving the shortest form.
//
// TLV type 0 is rejected with an error if asked to emit a value longer than
// one byte.
func Generate(s Stream, opts GenerateOptions) ([]byte, error) {
	var out []byte
	for _, t := range s.TLVs {
		if t.Type == 0 && len(t.Value) > 1 {
			return nil, &SyntaxError{Err: errZeroLengthType0, ByteOffset: int64(len(out))}
		}
		out = append(out, byte(t.Type))
		form := shortestFormFor(len(t.Value))
		if opts.PreserveLengthForm {
			form = t.Form
		}
		out = appendLength(out, len(t.Value), form)
		out = append(out, t.Value...)
	}
	if opts.AppendTerminator || s.Terminated {
		out = append(out, 0xFF)
		out = append(out, s.Trailing...)
	}
	return out, nil
}

// appendLength appends the DOCSIS encoding of n in the given form to dst.
func appendLength(dst []byte, n int, form LengthForm) []byte {
	switch form {
	case LengthForm1Byte:
		return append(dst, 0x81, byte(n))
	case LengthForm2Byte:
		return append(dst, 0x82, byte(n>>8), byte(n))
	case LengthForm4Byte:
		return append(dst, 0x84, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	default:
		return append(dst, byte(n))
	}
}

// EncodedLength returns the number of bytes [Generate] would produce for a
// single TLV with the given payload length and form, without allocating.
func EncodedLength(valueLen int, form LengthForm, preserve bool) int {
	f := shortestFormFor(valueLen)
	if preserve {
		f = form
	}
	switch f {
	case LengthForm1Byte:
		return 1 + 2 + valueLen
	case LengthForm2Byte:
		return 1 + 3 + valueLen
	case LengthForm4Byte:
		return 1 + 5 + valueLen
	default:
		return 1 + 1 + valueLen
	}
}
