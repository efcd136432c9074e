package values

import (
	"fmt"
	"strconv"
	"strings"

	"docsisconf.dev/codec"
)

// unitScale is one step of a unit ladder used to pick the most readable
// representation of a base-unit integer: the largest scale that divides the
// value exactly, so formatting never loses precision and round-trips
// through Parse back to the identical raw bytes.
type unitScale struct {
	suffix string
	factor uint64
}

func formatScaled(v uint64, ladder []unitScale) string {
	for _, u := range ladder {
		if u.factor == 1 || (v != 0 && v%u.factor == 0) {
			return strconv.FormatUint(v/u.factor, 10) + " " + u.suffix
		}
	}
	last := ladder[len(ladder)-1]
	return strconv.FormatUint(v/last.factor, 10) + " " + last.suffix
}

func parseScaled(kind docsis.ValueKind, fv docsis.FormattedValue, ladder []unitScale) (uint64, error) {
	if fv.Kind == docsis.FormattedUint {
		return fv.Uint, nil
	}
	if fv.Kind == docsis.FormattedInt && fv.Int >= 0 {
		return uint64(fv.Int), nil
	}
	text := strings.TrimSpace(textOf(fv))
	for _, u := range ladder {
		suffix := u.suffix
		if !strings.HasSuffix(strings.ToLower(text), strings.ToLower(suffix)) {
			continue
		}
		numPart := strings.TrimSpace(text[:len(text)-len(suffix)])
		n, err := strconv.ParseUint(numPart, 10, 64)
		if err != nil {
			return 0, &docsis.InvalidFormatError{Kind: kind, Input: text, Hint: "expected a number followed by a unit"}
		}
		return n * u.factor, nil
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, &docsis.InvalidFormatError{Kind: kind, Input: text, Hint: "expected a number, optionally with a unit suffix"}
	}
	return n, nil
}

var frequencyLadder = []unitScale{
	{"GHz", 1_000_000_000},
	{"MHz", 1_000_000},
	{"kHz", 1_000},
	{"Hz", 1},
}

func formatFrequency(raw []byte) (docsis.FormattedValue, error) {
	if len(raw) != 4 {
		return docsis.FormattedValue{}, &docsis.LengthMismatchError{Kind: docsis.KindFrequency, Got: len(raw), Want: 4}
	}
	v := uint64(raw[0])<<24 | uint64(raw[1])<<16 | uint64(raw[2])<<8 | uint64(raw[3])
	return docsis.FormattedValue{Kind: docsis.FormattedText, Text: formatScaled(v, frequencyLadder)}, nil
}

func parseFrequency(fv docsis.FormattedValue) ([]byte, error) {
	v, err := parseScaled(docsis.KindFrequency, fv, frequencyLadder)
	if err != nil {
		return nil, err
	}
	if v > 0xFFFFFFFF {
		return nil, &docsis.ValueOutOfRangeError{Kind: docsis.KindFrequency, Value: v, Bound: "max 4294967295 Hz"}
	}
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}, nil
}

var bandwidthLadder = []unitScale{
	{"Gbps", 1_000_000_000},
	{"Mbps", 1_000_000},
	{"kbps", 1_000},
	{"bps", 1},
}

func formatBandwidth(raw []byte) (docsis.FormattedValue, error) {
	if len(raw) != 4 {
		return docsis.FormattedValue{}, &docsis.LengthMismatchError{Kind: docsis.KindBandwidth, Got: len(raw), Want: 4}
	}
	v := uint64(raw[0])<<24 | uint64(raw[1])<<16 | uint64(raw[2])<<8 | uint64(raw[3])
	return docsis.FormattedValue{Kind: docsis.FormattedText, Text: formatScaled(v, bandwidthLadder)}, nil
}

func parseBandwidth(fv docsis.FormattedValue) ([]byte, error) {
	v, err := parseScaled(docsis.KindBandwidth, fv, bandwidthLadder)
	if err != nil {
		return nil, err
	}
	if v > 0xFFFFFFFF {
		return nil, &docsis.ValueOutOfRangeError{Kind: docsis.KindBandwidth, Value: v, Bound: "max 4294967295 bps"}
	}
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}, nil
}

var durationLadder = []unitScale{
	{"d", 86400},
	{"h", 3600},
	{"min", 60},
	{"s", 1},
}

func formatDuration(raw []byte) (docsis.FormattedValue, error) {
	if len(raw) != 4 {
		return docsis.FormattedValue{}, &docsis.LengthMismatchError{Kind: docsis.KindDuration, Got: len(raw), Want: 4}
	}
	v := uint64(raw[0])<<24 | uint64(raw[1])<<16 | uint64(raw[2])<<8 | uint64(raw[3])
	return docsis.FormattedValue{Kind: docsis.FormattedText, Text: formatScaled(v, durationLadder)}, nil
}

func parseDuration(fv docsis.FormattedValue) ([]byte, error) {
	v, err := parseScaled(docsis.KindDuration, fv, durationLadder)
	if err != nil {
		return nil, err
	}
	if v > 0xFFFFFFFF {
		return nil, &docsis.ValueOutOfRangeError{Kind: docsis.KindDuration, Value: v, Bound: "max 4294967295 s"}
	}
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}, nil
}

// formatPowerQuarterDB converts a signed 16-bit count of quarter-dB units
// into a decimal dBmV string, e.g. raw 0x0018 (24) -> "6.00 dBmV".
func formatPowerQuarterDB(raw []byte) (docsis.FormattedValue, error) {
	if len(raw) != 2 {
		return docsis.FormattedValue{}, &docsis.LengthMismatchError{Kind: docsis.KindPowerQuarterDB, Got: len(raw), Want: 2}
	}
	q := int16(uint16(raw[0])<<8 | uint16(raw[1]))
	// Sign must be tracked separately from whole: for |q| < 4 (e.g. q=-3,
	// -0.75 dBmV) the whole-dB part truncates to 0 and would silently drop
	// the sign if printed directly from q/4.
	neg := q < 0
	abs := int32(q)
	if neg {
		abs = -abs
	}
	whole, frac := abs/4, abs%4
	sign := ""
	if neg {
		sign = "-"
	}
	return docsis.FormattedValue{
		Kind: docsis.FormattedText,
		Text: fmt.Sprintf("%s%d.%02d dBmV", sign, whole, frac*25),
	}, nil
}

func parsePowerQuarterDB(fv docsis.FormattedValue) ([]byte, error) {
	text := strings.TrimSpace(textOf(fv))
	text = strings.TrimSuffix(strings.TrimSpace(text), "dBmV")
	text = strings.TrimSpace(text)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, &docsis.InvalidFormatError{Kind: docsis.KindPowerQuarterDB, Input: textOf(fv), Hint: "expected a decimal dBmV value"}
	}
	q := int64(f*4 + sign(f)*0.5)
	if q < -32768 || q > 32767 {
		return nil, &docsis.ValueOutOfRangeError{Kind: docsis.KindPowerQuarterDB, Value: q, Bound: "range [-8192, 8191.75] dBmV"}
	}
	v := uint16(int16(q))
	return []byte{byte(v >> 8), byte(v)}, nil
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

func formatPercentage(raw []byte) (docsis.FormattedValue, error) {
	if len(raw) != 1 {
		return docsis.FormattedValue{}, &docsis.LengthMismatchError{Kind: docsis.KindPercentage, Got: len(raw), Want: 1}
	}
	if raw[0] > 100 {
		return docsis.FormattedValue{}, &docsis.ValueOutOfRangeError{Kind: docsis.KindPercentage, Value: raw[0], Bound: "max 100"}
	}
	return docsis.FormattedValue{Kind: docsis.FormattedText, Text: strconv.Itoa(int(raw[0])) + " %"}, nil
}

func parsePercentage(fv docsis.FormattedValue) ([]byte, error) {
	text := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(textOf(fv)), "%"))
	n, err := strconv.ParseUint(text, 10, 8)
	if err != nil || n > 100 {
		return nil, &docsis.InvalidFormatError{Kind: docsis.KindPercentage, Input: textOf(fv), Hint: "expected 0-100"}
	}
	return []byte{byte(n)}, nil
}
