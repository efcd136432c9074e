package tlv

import "testing"

// TestRoundTrip asserts generate(parse(b)) == b for well-formed inputs in
// preserve-form mode.
func TestRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{0x03, 0x01, 0x01},
		{0x01, 0x04, 0x23, 0x39, 0xF1, 0xC0},
		{0x2B, 0x81, 0x02, 0xAA, 0xBB},
		append([]byte{0x07, 0xFE}, make([]byte, 254)...),
		{0x03, 0x01, 0x01, 0xFF, 0x00, 0x00},
		{0x12, 0x00}, // zero-length TLV
	}
	for _, in := range inputs {
		s, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(% x) error = %v", in, err)
		}
		out, err := Generate(s, GenerateOptions{PreserveLengthForm: true})
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}
		if string(out) != string(in) {
			t.Errorf("round trip % x -> % x, want % x", in, out, in)
		}
	}
}

// TestGenerateShortestForm asserts the default policy picks the shortest
// adequate length form regardless of how the TLV was originally encoded
// ("Generate contract").
func TestGenerateShortestForm(t *testing.T) {
	s := Stream{TLVs: []RawTLV{
		{Type: 43, Length: 2, Value: []byte{0xAA, 0xBB}, Form: LengthForm4Byte},
	}}
	out, err := Generate(s, GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	want := []byte{0x2B, 0x02, 0xAA, 0xBB}
	if string(out) != string(want) {
		t.Errorf("Generate() = % x, want % x", out, want)
	}
}

// TestGenerateRejectsOversizedType0 asserts TLV type 0 cannot carry more
// than one byte of payload.
func TestGenerateRejectsOversizedType0(t *testing.T) {
	s := Stream{TLVs: []RawTLV{{Type: 0, Length: 2, Value: []byte{0x01, 0x02}}}}
	if _, err := Generate(s, GenerateOptions{}); err == nil {
		t.Fatal("Generate() error = nil, want error for oversized type 0")
	}
}

// TestGenerateAvoidsAmbiguousShortLengths asserts that payload lengths
// 0x81-0x84 are never emitted as a single raw length byte: a decoder reads
// those byte values as a long-form indicator regardless of intent, so
// Generate must widen to the 1-byte long form and the result must parse
// back to the same length.
func TestGenerateAvoidsAmbiguousShortLengths(t *testing.T) {
	for _, n := range []int{0x81, 0x82, 0x83, 0x84} {
		s := Stream{TLVs: []RawTLV{{Type: 9, Length: n, Value: make([]byte, n)}}}
		out, err := Generate(s, GenerateOptions{})
		if err != nil {
			t.Fatalf("Generate(length=%d) error = %v", n, err)
		}
		back, err := Parse(out)
		if err != nil {
			t.Fatalf("Parse(Generate(length=%d)) error = %v", n, err)
		}
		if len(back.TLVs) != 1 || back.TLVs[0].Length != n {
			t.Fatalf("length=%d round trip got %+v", n, back.TLVs)
		}
	}
}
