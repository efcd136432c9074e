package tlv

import (
	"io"
)

// Stream.Trailing holds any bytes following a top-level 0xFF terminator.
// DOCSIS configs are conventionally padded with zero bytes after the
// terminator; preserving them verbatim keeps the raw round-trip invariant
// exact even for padded inputs.

// Parse decodes a flat sequence of top-level DOCSIS TLVs from b. Parse does
// not recurse into any TLV's payload — see the package comment.
//
// Length encoding:
//
//   - A length byte < 128 is the length itself (LengthFormShort).
//   - Any other length byte >= 128 (0x80, 0x85-0xFF) is ALSO the length
//     itself (LengthFormShort) — not a long-form indicator. 0xFE therefore
//     means a 254-byte payload, never "long form ahead".
//   - 0x81 nn / 0x82 nn nn / 0x84 nn nn nn nn introduce a 1/2/4-byte
//     big-endian length (LengthForm1Byte/2Byte/4Byte). 0x83 is not a
//     defined form and is rejected.
//   - 0xFF in the type position at the top level terminates the stream.
//     Inside a value's payload, 0xFF is just a literal byte — Parse never
//     looks inside a payload, so this rule only ever applies to the type
//     byte Parse itself reads.
//
// On a malformed TLV, the TLVs successfully decoded so far are discarded and
// a *[SyntaxError] is returned instead, carrying the byte offset of the
// failing record.
func Parse(b []byte) (Stream, error) {
	var out Stream
	off := 0
	for off < len(b) {
		typ := b[off]
		if typ == 0xFF {
			out.Terminated = true
			out.Trailing = b[off+1:]
			return out, nil
		}

		start := off
		off++
		length, form, err := decodeLength(b, &off)
		if err != nil {
			return Stream{}, &SyntaxError{Err: err, ByteOffset: int64(start)}
		}
		if int(typ) == 0 && length > 1 {
			return Stream{}, &SyntaxError{Err: errZeroLengthType0, ByteOffset: int64(start)}
		}
		if length < 0 || off+length > len(b) {
			return Stream{}, &SyntaxError{Err: noEOF(io.ErrUnexpectedEOF), ByteOffset: int64(start)}
		}
		value := make([]byte, length)
		copy(value, b[off:off+length])
		off += length

		out.TLVs = append(out.TLVs, RawTLV{
			Type:   int(typ),
			Length: length,
			Value:  value,
			Form:   form,
		})
	}
	return out, nil
}

// decodeLength reads a DOCSIS length field starting at b[*off], advances
// *off past it, and returns the decoded length and the form it was encoded
// with.
func decodeLength(b []byte, off *int) (int, LengthForm, error) {
	if *off >= len(b) {
		return 0, 0, noEOF(io.ErrUnexpectedEOF)
	}
	first := b[*off]
	*off++

	switch first {
	case 0x81:
		if *off+1 > len(b) {
			return 0, 0, noEOF(io.ErrUnexpectedEOF)
		}
		n := int(b[*off])
		*off++
		return n, LengthForm1Byte, nil
	case 0x82:
		if *off+2 > len(b) {
			return 0, 0, noEOF(io.ErrUnexpectedEOF)
		}
		n := int(b[*off])<<8 | int(b[*off+1])
		*off += 2
		return n, LengthForm2Byte, nil
	case 0x84:
		if *off+4 > len(b) {
			return 0, 0, noEOF(io.ErrUnexpectedEOF)
		}
		n := int(b[*off])<<24 | int(b[*off+1])<<16 | int(b[*off+2])<<8 | int(b[*off+3])
		*off += 4
		return n, LengthForm4Byte, nil
	case 0x83:
		// Not a defined DOCSIS long form (only 1/2/4-byte long forms exist).
		return 0, 0, errUnknownLengthForm
	default:
		// Anything else, including values >= 128 such as 0xFE and 0xFF, is
		// a single-byte length — the critical anti-ambiguity rule.
		return int(first), LengthFormShort, nil
	}
}
