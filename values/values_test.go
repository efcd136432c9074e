package values

import (
	"testing"

	"docsisconf.dev/codec"
)

func roundTrip(t *testing.T, kind docsis.ValueKind, raw []byte) {
	t.Helper()
	fv, err := Format(kind, raw)
	if err != nil {
		t.Fatalf("Format(%v, % x) error: %v", kind, raw, err)
	}
	got, err := Parse(kind, fv)
	if err != nil {
		t.Fatalf("Parse(%v, %+v) error: %v", kind, fv, err)
	}
	if string(got) != string(raw) {
		t.Errorf("round trip mismatch: % x formatted to %+v, parsed back to % x", raw, fv, got)
	}
}

func TestRoundTripNumeric(t *testing.T) {
	roundTrip(t, docsis.KindUint8, []byte{7})
	roundTrip(t, docsis.KindUint16, []byte{0x01, 0x02})
	roundTrip(t, docsis.KindUint32, []byte{0x01, 0x02, 0x03, 0x04})
	roundTrip(t, docsis.KindUint64, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	roundTrip(t, docsis.KindInt8, []byte{0xFF})
	roundTrip(t, docsis.KindInt16, []byte{0xFF, 0xFE})
	roundTrip(t, docsis.KindInt32, []byte{0xFF, 0xFF, 0xFF, 0xFB})
}

func TestRoundTripBoolean(t *testing.T) {
	roundTrip(t, docsis.KindBoolean, []byte{0})
	roundTrip(t, docsis.KindBoolean, []byte{1})
}

func TestParseBooleanAcceptsHumanSpellings(t *testing.T) {
	for _, text := range []string{"true", "ON", "enabled", "Yes"} {
		raw, err := Parse(docsis.KindBoolean, docsis.FormattedValue{Kind: docsis.FormattedText, Text: text})
		if err != nil {
			t.Fatalf("Parse(boolean, %q) error: %v", text, err)
		}
		if raw[0] != 1 {
			t.Errorf("Parse(boolean, %q) = %v, want 1", text, raw)
		}
	}
}

func TestRoundTripNet(t *testing.T) {
	roundTrip(t, docsis.KindIPv4, []byte{10, 0, 0, 1})
	roundTrip(t, docsis.KindIPv6, []byte{
		0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
	})
	roundTrip(t, docsis.KindMACAddress, []byte{0x00, 0x1A, 0x2B, 0x3C, 0x4D, 0x5E})
}

// TestFrequencyFormat verifies the 591 MHz downstream-frequency example:
// raw 591000000 Hz formats to the exact canonical "591 MHz" text.
func TestFrequencyFormat(t *testing.T) {
	raw := []byte{0x23, 0x39, 0xF1, 0xC0} // 591000000
	fv, err := Format(docsis.KindFrequency, raw)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if fv.Text != "591 MHz" {
		t.Errorf("Format = %q, want %q", fv.Text, "591 MHz")
	}
	roundTrip(t, docsis.KindFrequency, raw)
}

func TestParseFrequencyAcceptsBareHz(t *testing.T) {
	raw, err := Parse(docsis.KindFrequency, docsis.FormattedValue{Kind: docsis.FormattedUint, Uint: 591000000})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := []byte{0x23, 0x39, 0xF1, 0xC0}
	if string(raw) != string(want) {
		t.Errorf("Parse = % x, want % x", raw, want)
	}
}

func TestRoundTripBandwidthDurationPowerPercentage(t *testing.T) {
	roundTrip(t, docsis.KindBandwidth, []byte{0x00, 0x0F, 0x42, 0x40}) // 1,000,000 bps
	roundTrip(t, docsis.KindDuration, []byte{0x00, 0x00, 0x00, 0x3C})  // 60s
	roundTrip(t, docsis.KindPowerQuarterDB, []byte{0x00, 0x18})        // 6.00 dBmV
	roundTrip(t, docsis.KindPercentage, []byte{50})
}

// TestPowerQuarterDBNegativeFraction covers a value whose whole-dB part
// truncates to 0 so the sign must come from the fractional part, not from
// the (zero) whole part.
func TestPowerQuarterDBNegativeFraction(t *testing.T) {
	raw := []byte{0xFF, 0xFD} // -3 quarter-dB units = -0.75 dBmV
	fv, err := Format(docsis.KindPowerQuarterDB, raw)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if fv.Text != "-0.75 dBmV" {
		t.Errorf("Format = %q, want %q", fv.Text, "-0.75 dBmV")
	}
	roundTrip(t, docsis.KindPowerQuarterDB, raw)
}

func TestRoundTripStringAndHex(t *testing.T) {
	fv, err := Format(docsis.KindString, []byte("firmware.bin"))
	if err != nil || fv.Text != "firmware.bin" {
		t.Fatalf("Format(string) = %+v, %v", fv, err)
	}
	roundTrip(t, docsis.KindHexString, []byte{0xDE, 0xAD, 0xBE, 0xEF})
	roundTrip(t, docsis.KindBinary, []byte{0x01, 0x02, 0x03})
}

func TestStringDropsTrailingNUL(t *testing.T) {
	fv, err := Format(docsis.KindString, []byte("name\x00"))
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if fv.Text != "name" {
		t.Errorf("Format = %q, want %q", fv.Text, "name")
	}
	raw, err := Parse(docsis.KindString, fv)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if string(raw) != "name" {
		t.Errorf("Parse = %q, want %q (no NUL re-appended)", raw, "name")
	}
}

func TestRoundTripOID(t *testing.T) {
	// 1.3.6.1.4.1.4491 (CableLabs enterprise OID)
	raw := []byte{0x2B, 0x06, 0x01, 0x04, 0x01, 0xA3, 0x0B}
	fv, err := Format(docsis.KindOID, raw)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if fv.Text != "1.3.6.1.4.1.4491" {
		t.Errorf("Format = %q, want 1.3.6.1.4.1.4491", fv.Text)
	}
	roundTrip(t, docsis.KindOID, raw)
}

func TestCompoundHasNoFormatter(t *testing.T) {
	if _, err := Format(docsis.KindCompound, nil); err == nil {
		t.Fatal("Format(compound) should error")
	}
	if _, err := Parse(docsis.KindCompound, docsis.FormattedValue{}); err == nil {
		t.Fatal("Parse(compound) should error")
	}
}

func TestUintRejectsOutOfRange(t *testing.T) {
	_, err := Parse(docsis.KindUint8, docsis.FormattedValue{Kind: docsis.FormattedUint, Uint: 300})
	if err == nil {
		t.Fatal("Parse(uint8, 300) should error")
	}
}
