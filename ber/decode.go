package ber

import (
	"errors"
	"io"
	"strconv"
)

// Decode parses a single top-level BER data value from b. If b has trailing
// bytes after the value, they are returned as rest. Decode recurses into
// constructed values eagerly, unlike [docsisconf.dev/codec/tlv.Parse], since
// ASN.1 nesting is determined by the tag's constructed bit rather than a
// judgment call.
func Decode(b []byte) (node Node, rest []byte, err error) {
	off := 0
	node, err = decodeNode(b, &off, -1)
	if err != nil {
		return Node{}, nil, err
	}
	return node, b[off:], nil
}

// decodeNode decodes one data value starting at *off. maxOff, if >= 0,
// bounds how far into b this value (and anything nested within it) may
// read — used to enforce that a constructed value's children exactly cover
// its declared length.
func decodeNode(b []byte, off *int, maxOff int) (Node, error) {
	start := *off
	h, err := decodeHeader(b, off)
	if err != nil {
		return Node{}, err
	}

	if h.Length == LengthIndefinite {
		if !h.Constructed {
			return Node{}, errors.New("ber: indefinite length on primitive element")
		}
		return decodeIndefinite(b, off, h)
	}

	end := *off + h.Length
	if end < *off || end > len(b) || (maxOff >= 0 && end > maxOff) {
		return Node{}, noEOF(io.ErrUnexpectedEOF)
	}

	if !h.Constructed {
		node := Node{Tag: h.Tag, Bytes: b[*off:end]}
		*off = end
		return node, nil
	}

	node := Node{Tag: h.Tag, Constructed: true}
	for *off < end {
		child, err := decodeNode(b, off, end)
		if err != nil {
			return Node{}, err
		}
		node.Children = append(node.Children, child)
	}
	if *off != end {
		return Node{}, errors.New("ber: constructed value length mismatch at offset " + strconv.Itoa(start))
	}
	return node, nil
}

// decodeIndefinite decodes a constructed, indefinite-length value, which
// ends at the first nested zero header (tag 0, length 0).
func decodeIndefinite(b []byte, off *int, h Header) (Node, error) {
	node := Node{Tag: h.Tag, Constructed: true}
	for {
		if *off >= len(b) {
			return Node{}, noEOF(io.ErrUnexpectedEOF)
		}
		save := *off
		childHeader, err := decodeHeader(b, off)
		if err != nil {
			return Node{}, err
		}
		if childHeader.Tag.Number == 0 && childHeader.Tag.Class == ClassUniversal && childHeader.Length == 0 {
			return node, nil
		}
		*off = save
		child, err := decodeNode(b, off, -1)
		if err != nil {
			return Node{}, err
		}
		node.Children = append(node.Children, child)
	}
}

