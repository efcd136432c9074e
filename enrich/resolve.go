package enrich

import (
	"docsisconf.dev/codec"
	"docsisconf.dev/codec/tlv"
	"docsisconf.dev/codec/values"
)

// Resolve is the inverse of [Enrich]: it rebuilds a [tlv.Stream] from an
// enriched tree, recursing into SubTLVs first and otherwise parsing each
// node's Formatted value back into payload bytes with the value codec.
func Resolve(nodes []*Node, opts docsis.Options) (tlv.Stream, error) {
	var out tlv.Stream
	for _, n := range nodes {
		raw, err := resolveNode(n, opts)
		if err != nil {
			return tlv.Stream{}, err
		}
		out.TLVs = append(out.TLVs, raw)
	}
	return out, nil
}

func resolveNode(n *Node, opts docsis.Options) (tlv.RawTLV, error) {
	var value []byte
	if n.Compound() {
		childStream, err := Resolve(n.SubTLVs, opts)
		if err != nil {
			return tlv.RawTLV{}, err
		}
		value, err = tlv.Generate(childStream, tlv.GenerateOptions{PreserveLengthForm: opts.PreserveLengthForm})
		if err != nil {
			return tlv.RawTLV{}, err
		}
	} else {
		parsed, err := values.Parse(n.Kind, n.Formatted)
		if err != nil {
			return tlv.RawTLV{}, err
		}
		value = parsed
	}
	return tlv.RawTLV{
		Type:   n.Type,
		Length: len(value),
		Value:  value,
		Form:   n.Form,
	}, nil
}
