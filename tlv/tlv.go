// Package tlv implements the outer DOCSIS type-length-value framing: a flat
// sequence of (type, length, value) records with multi-byte length forms and
// an optional end-of-data terminator.
//
// This package deals only with the syntactic outer frame. It never looks
// inside a value's payload to decide whether it is itself a TLV sequence —
// that decision (compound resolution) belongs to the enricher in
// [docsisconf.dev/codec/enrich]. See the package comment there for why the
// split exists.
package tlv

import "strconv"

// LengthForm records which of the four length encodings a [RawTLV] was
// parsed with (or should be generated with, under
// [docsisconf.dev/codec.Options.PreserveLengthForm]).
type LengthForm uint8

const (
	// LengthFormShort is a single length byte < 128, or a single length byte
	// >= 128 that is NOT one of 0x81-0x84 (0xFE included) — the dominant
	// historical ambiguity in this format.
	LengthFormShort LengthForm = iota
	LengthForm1Byte  // 0x81 nn
	LengthForm2Byte  // 0x82 nn nn
	LengthForm4Byte  // 0x84 nn nn nn nn
)

// shortestFormFor returns the length form that encodes n using the fewest
// bytes, per the generator's default policy ("Generate contract"). Lengths
// 0x81-0x84 can never use the single-byte short form: a decoder reads those
// byte values as a long-form indicator unconditionally (the same ambiguity
// [decodeLength] resolves on the read side), so the only safe encoding for
// those four lengths is the 1-byte long form. Lengths 254 and 255 are also
// emitted in the 1-byte long form, although [decodeLength] would accept
// them as a single short byte.
func shortestFormFor(n int) LengthForm {
	switch {
	case n >= 0x81 && n <= 0x84:
		return LengthForm1Byte
	case n < 254:
		return LengthFormShort
	case n <= 0xFF:
		return LengthForm1Byte
	case n <= 0xFFFF:
		return LengthForm2Byte
	default:
		return LengthForm4Byte
	}
}

// RawTLV is a single type-length-value record: the uninterpreted unit the
// parser and generator exchange. Invariant: Length == len(Value) always
// holds for a RawTLV that was constructed by [Parse] or is about to be
// passed to [Generate]; Length exists as a distinct field only to remember
// which [LengthForm] produced it.
type RawTLV struct {
	Type   int // 0-255
	Length int // byte_count(Value); kept in sync with len(Value)
	Value  []byte

	// Form is the length-encoding form this record was parsed with. It is
	// consulted by [Generate] only when Options.PreserveLengthForm is set;
	// otherwise the generator always picks the shortest adequate form.
	Form LengthForm
}

// String returns a short diagnostic representation of t, e.g. "TLV{type=1
// length=4}".
func (t RawTLV) String() string {
	return "TLV{type=" + strconv.Itoa(t.Type) + " length=" + strconv.Itoa(t.Length) + "}"
}

// Stream is the result of a successful [Parse]: an ordered sequence of
// top-level records plus whether the input carried a trailing 0xFF
// end-of-data terminator.
type Stream struct {
	TLVs       []RawTLV
	Terminated bool

	// Trailing holds any bytes following a top-level 0xFF terminator, so
	// that conventionally zero-padded inputs still satisfy the raw
	// round-trip invariant.
	Trailing []byte
}
