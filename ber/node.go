package ber

// Node is a decoded BER data value. Primitive values carry their raw content
// octets in Bytes; constructed values (SEQUENCE, SET, and any other tag
// using the constructed encoding) carry their nested data values in
// Children instead, mirroring the XOR invariant the DOCSIS enriched tree
// also upholds even though this tree is independently
// defined.
type Node struct {
	Tag         Tag
	Constructed bool
	Bytes       []byte // meaningful iff !Constructed
	Children    []Node // meaningful iff Constructed
}

// Sequence builds a constructed SEQUENCE node from children.
func Sequence(children ...Node) Node {
	return Node{Tag: TagSequence, Constructed: true, Children: children}
}

// Set builds a constructed SET node from children.
func Set(children ...Node) Node {
	return Node{Tag: TagSet, Constructed: true, Children: children}
}

// OctetString builds a primitive OCTET STRING node.
func OctetString(b []byte) Node {
	return Node{Tag: TagOctetString, Bytes: b}
}
