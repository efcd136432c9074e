package tlv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParse exercises the length-form decisions table-driven.
func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    Stream
		wantErr bool
	}{
		{
			name:  "S1 single byte boolean",
			input: []byte{0x03, 0x01, 0x01},
			want: Stream{TLVs: []RawTLV{
				{Type: 3, Length: 1, Value: []byte{0x01}, Form: LengthFormShort},
			}},
		},
		{
			name:  "S2 downstream frequency",
			input: []byte{0x01, 0x04, 0x23, 0x39, 0xF1, 0xC0},
			want: Stream{TLVs: []RawTLV{
				{Type: 1, Length: 4, Value: []byte{0x23, 0x39, 0xF1, 0xC0}, Form: LengthFormShort},
			}},
		},
		{
			name:  "long form 0x81",
			input: []byte{0x2B, 0x81, 0x02, 0xAA, 0xBB},
			want: Stream{TLVs: []RawTLV{
				{Type: 43, Length: 2, Value: []byte{0xAA, 0xBB}, Form: LengthForm1Byte},
			}},
		},
		{
			name: "long form 0x82",
			input: func() []byte {
				b := []byte{0x05, 0x82, 0x01, 0x00}
				return append(b, make([]byte, 256)...)
			}(),
			want: Stream{TLVs: []RawTLV{
				{Type: 5, Length: 256, Value: make([]byte, 256), Form: LengthForm2Byte},
			}},
		},
		{
			name:  "0xFE is a 254-byte short length, not a long-form indicator",
			input: append([]byte{0x07, 0xFE}, make([]byte, 254)...),
			want: Stream{TLVs: []RawTLV{
				{Type: 7, Length: 254, Value: make([]byte, 254), Form: LengthFormShort},
			}},
		},
		{
			name:  "top-level terminator",
			input: []byte{0x03, 0x01, 0x01, 0xFF, 0x00, 0x00},
			want: Stream{
				TLVs:       []RawTLV{{Type: 3, Length: 1, Value: []byte{0x01}, Form: LengthFormShort}},
				Terminated: true,
				Trailing:   []byte{0x00, 0x00},
			},
		},
		{
			name:    "length exceeds remaining",
			input:   []byte{0x01, 0x04, 0x01, 0x02},
			wantErr: true,
		},
		{
			name:    "type 0 with length > 1",
			input:   []byte{0x00, 0x02, 0x01, 0x02},
			wantErr: true,
		},
		{
			name:    "unknown length form 0x83",
			input:   []byte{0x01, 0x83, 0x01, 0x02, 0x03},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				var synErr *SyntaxError
				require.ErrorAsf(t, err, &synErr, "Parse() error type = %T, want *SyntaxError", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
