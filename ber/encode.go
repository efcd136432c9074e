package ber

// Encode appends the BER encoding of n to dst and returns the result.
func Encode(dst []byte, n Node) []byte {
	if n.Constructed {
		var body []byte
		for _, c := range n.Children {
			body = Encode(body, c)
		}
		dst = encodeHeader(dst, Header{Tag: n.Tag, Constructed: true, Length: len(body)})
		return append(dst, body...)
	}
	dst = encodeHeader(dst, Header{Tag: n.Tag, Length: len(n.Bytes)})
	return append(dst, n.Bytes...)
}

// RoundTrip re-encodes n and decodes the result, returning the decoded node.
// It exists so callers (and this package's own tests) can self-validate
// generated PacketCable data the way a well-behaved encoder should:
// "round-trips generated
// data through its own parser for self-validation."
func RoundTrip(n Node) (Node, error) {
	b := Encode(nil, n)
	got, _, err := Decode(b)
	return got, err
}
