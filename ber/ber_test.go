package ber

import "testing"

// TestS5PacketCableSequence exercises a PacketCable file
// header followed by an ASN.1 SEQUENCE wrapping an OID and an INTEGER.
func TestS5PacketCableSequence(t *testing.T) {
	oid, err := ParseOID("1.3.6.1.4.1.4491")
	if err != nil {
		t.Fatalf("ParseOID error = %v", err)
	}
	oidBytes, err := EncodeOID(oid)
	if err != nil {
		t.Fatalf("EncodeOID error = %v", err)
	}

	seq := Sequence(
		Node{Tag: TagOID, Bytes: oidBytes},
		Node{Tag: TagInteger, Bytes: EncodeInteger(42)},
	)

	encoded := EncodeFile(seq)
	if !IsPacketCableFile(encoded) {
		t.Fatal("EncodeFile output does not start with 0xFE")
	}

	decoded, err := DecodeFile(encoded)
	if err != nil {
		t.Fatalf("DecodeFile error = %v", err)
	}
	if !decoded.Constructed || len(decoded.Children) != 2 {
		t.Fatalf("decoded = %+v, want constructed SEQUENCE with 2 children", decoded)
	}

	gotOID, err := DecodeOID(decoded.Children[0].Bytes)
	if err != nil {
		t.Fatalf("DecodeOID error = %v", err)
	}
	if gotOID.String() != "1.3.6.1.4.1.4491" {
		t.Errorf("gotOID = %s, want 1.3.6.1.4.1.4491", gotOID.String())
	}

	gotInt, err := DecodeInteger(decoded.Children[1].Bytes)
	if err != nil {
		t.Fatalf("DecodeInteger error = %v", err)
	}
	if gotInt != 42 {
		t.Errorf("gotInt = %d, want 42", gotInt)
	}

	// Generator reconstructs byte-equal bytes.
	reencoded := EncodeFile(decoded)
	if string(reencoded) != string(encoded) {
		t.Errorf("re-encoding is not byte-equal")
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 127, 128, -128, -129, 255, 256, -256, 1 << 20, -(1 << 20)} {
		enc := EncodeInteger(n)
		got, err := DecodeInteger(enc)
		if err != nil {
			t.Fatalf("DecodeInteger(%x) error = %v", enc, err)
		}
		if got != n {
			t.Errorf("round trip %d -> % x -> %d", n, enc, got)
		}
	}
}

func TestOIDRoundTrip(t *testing.T) {
	for _, s := range []string{"1.3.6.1.4.1.4491", "0.0", "2.999.3", "1.2.840.113549"} {
		oid, err := ParseOID(s)
		if err != nil {
			t.Fatalf("ParseOID(%q) error = %v", s, err)
		}
		enc, err := EncodeOID(oid)
		if err != nil {
			t.Fatalf("EncodeOID(%q) error = %v", s, err)
		}
		dec, err := DecodeOID(enc)
		if err != nil {
			t.Fatalf("DecodeOID error = %v", err)
		}
		if dec.String() != s {
			t.Errorf("round trip %q -> % x -> %q", s, enc, dec.String())
		}
	}
}

func TestRoundTripHelper(t *testing.T) {
	n := Set(OctetString([]byte("hello")))
	got, err := RoundTrip(n)
	if err != nil {
		t.Fatalf("RoundTrip error = %v", err)
	}
	if !got.Constructed || len(got.Children) != 1 || string(got.Children[0].Bytes) != "hello" {
		t.Errorf("RoundTrip() = %+v", got)
	}
}
