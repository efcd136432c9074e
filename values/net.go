package values

import (
	"net"

	"docsisconf.dev/codec"
)

func formatIPv4(raw []byte) (docsis.FormattedValue, error) {
	if len(raw) != 4 {
		return docsis.FormattedValue{}, &docsis.LengthMismatchError{Kind: docsis.KindIPv4, Got: len(raw), Want: 4}
	}
	ip := net.IPv4(raw[0], raw[1], raw[2], raw[3])
	return docsis.FormattedValue{Kind: docsis.FormattedText, Text: ip.String()}, nil
}

func parseIPv4(fv docsis.FormattedValue) ([]byte, error) {
	text := textOf(fv)
	ip := net.ParseIP(text)
	v4 := ip.To4()
	if v4 == nil {
		return nil, &docsis.InvalidFormatError{Kind: docsis.KindIPv4, Input: text, Hint: "not a dotted-quad IPv4 address"}
	}
	return []byte(v4), nil
}

func formatIPv6(raw []byte) (docsis.FormattedValue, error) {
	if len(raw) != 16 {
		return docsis.FormattedValue{}, &docsis.LengthMismatchError{Kind: docsis.KindIPv6, Got: len(raw), Want: 16}
	}
	ip := net.IP(raw)
	return docsis.FormattedValue{Kind: docsis.FormattedText, Text: ip.String()}, nil
}

func parseIPv6(fv docsis.FormattedValue) ([]byte, error) {
	text := textOf(fv)
	ip := net.ParseIP(text)
	v6 := ip.To16()
	if v6 == nil || ip.To4() != nil {
		return nil, &docsis.InvalidFormatError{Kind: docsis.KindIPv6, Input: text, Hint: "not an IPv6 address"}
	}
	return []byte(v6), nil
}

func formatMAC(raw []byte) (docsis.FormattedValue, error) {
	if len(raw) != 6 {
		return docsis.FormattedValue{}, &docsis.LengthMismatchError{Kind: docsis.KindMACAddress, Got: len(raw), Want: 6}
	}
	hw := net.HardwareAddr(raw)
	return docsis.FormattedValue{Kind: docsis.FormattedText, Text: hw.String()}, nil
}

func parseMAC(fv docsis.FormattedValue) ([]byte, error) {
	text := textOf(fv)
	hw, err := net.ParseMAC(text)
	if err != nil || len(hw) != 6 {
		return nil, &docsis.InvalidFormatError{Kind: docsis.KindMACAddress, Input: text, Hint: "expected aa:bb:cc:dd:ee:ff"}
	}
	return []byte(hw), nil
}
