// Package config bridges enriched TLV trees ([docsisconf.dev/codec/enrich])
// to and from human-editable JSON and YAML text. Both formats share the
// same document shape, so the marshaling structs and the text-to-raw value
// resolution logic live here once and are reused by both codecs.
package config

import (
	"math"

	"docsisconf.dev/codec"
	"docsisconf.dev/codec/enrich"
	"docsisconf.dev/codec/specs"
	"docsisconf.dev/codec/values"
)

// Document is the top-level human-config document: a target DOCSIS version
// and the list of top-level TLVs.
type Document struct {
	DocsisVersion string `json:"docsis_version,omitempty" yaml:"docsis_version,omitempty"`
	TLVs          []TLV  `json:"tlvs" yaml:"tlvs"`
}

// TLV is one entry of a [Document], mirroring one [enrich.Node]. Exactly one
// of FormattedValue or SubTLVs is meaningful; Length, Name, Description and
// ValueType are advisory on input and re-derived where absent.
type TLV struct {
	Type            int    `json:"type" yaml:"type"`
	Length          int    `json:"length,omitempty" yaml:"length,omitempty"`
	Name            string `json:"name,omitempty" yaml:"name,omitempty"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	ValueType       string `json:"value_type,omitempty" yaml:"value_type,omitempty"`
	FormattedValue  any    `json:"formatted_value,omitempty" yaml:"formatted_value,omitempty"`
	SubTLVs         []TLV  `json:"subtlvs,omitempty" yaml:"subtlvs,omitempty"`
}

// FromNodes converts an enriched tree into a [Document], emitting every
// field (type, length, name, description, value_type, and either
// formatted_value or subtlvs) for discoverability.
func FromNodes(nodes []*enrich.Node, version docsis.Version) Document {
	doc := Document{DocsisVersion: version.String()}
	doc.TLVs = nodesToTLVs(nodes)
	return doc
}

func nodesToTLVs(nodes []*enrich.Node) []TLV {
	out := make([]TLV, 0, len(nodes))
	for _, n := range nodes {
		t := TLV{
			Type:        n.Type,
			Length:      n.Length,
			Name:        n.Name,
			Description: n.Description,
			ValueType:   n.Kind.String(),
		}
		if n.Compound() {
			t.SubTLVs = nodesToTLVs(n.SubTLVs)
		} else {
			t.FormattedValue = formattedValueToAny(n.Formatted)
		}
		out = append(out, t)
	}
	return out
}

func formattedValueToAny(fv docsis.FormattedValue) any {
	switch fv.Kind {
	case docsis.FormattedInt:
		return fv.Int
	case docsis.FormattedUint:
		return fv.Uint
	case docsis.FormattedText:
		return fv.Text
	default:
		return nil
	}
}

// ToNodes converts a [Document] back into an enriched tree, resolving each
// node's value kind with the priority chain: explicit value_type in the
// document, then a sub-table lookup under its parent path, then the
// top-level table, then a binary fallback. A missing docsis_version
// defaults to 3.1; a missing length is ignored and re-derived from the
// parsed payload.
//
// base, if given, supplies caller-side options the document itself cannot
// carry — most notably IncludeMTASpecs, which widens the top-level
// fallback lookup to the PacketCable MTA extension table. Only the first
// element of base is used; it exists as a variadic purely so existing
// zero-argument call sites keep compiling.
func ToNodes(doc Document, base ...docsis.Options) ([]*enrich.Node, docsis.Options, error) {
	version := docsis.Version3_1
	if doc.DocsisVersion != "" {
		v, err := docsis.ParseVersion(doc.DocsisVersion)
		if err != nil {
			return nil, docsis.Options{}, err
		}
		version = v
	}
	opts := docsis.Options{DocsisVersion: version}
	if len(base) > 0 {
		opts.IncludeMTASpecs = base[0].IncludeMTASpecs
		opts.Strict = base[0].Strict
		opts.PreserveLengthForm = base[0].PreserveLengthForm
		opts.MaxNestingDepth = base[0].MaxNestingDepth
	}
	nodes, err := tlvsToNodes(doc.TLVs, nil, version, opts)
	if err != nil {
		return nil, docsis.Options{}, err
	}
	return nodes, opts, nil
}

func tlvsToNodes(tlvs []TLV, path docsis.Path, version docsis.Version, opts docsis.Options) ([]*enrich.Node, error) {
	nodes := make([]*enrich.Node, 0, len(tlvs))
	for _, t := range tlvs {
		n := &enrich.Node{
			Type:        t.Type,
			Name:        t.Name,
			Description: t.Description,
			Path:        path,
		}
		if len(t.SubTLVs) > 0 {
			childPath := append(append(docsis.Path{}, path...), t.Type)
			sub, err := tlvsToNodes(t.SubTLVs, childPath, version, opts)
			if err != nil {
				return nil, err
			}
			n.SubTLVs = sub
			n.Kind = docsis.KindCompound
			nodes = append(nodes, n)
			continue
		}
		kind := resolveKind(t.ValueType, path, t.Type, version, opts)
		n.Kind = kind
		fv, err := anyToFormattedValue(kind, t.FormattedValue)
		if err != nil {
			return nil, err
		}
		n.Formatted = fv
		raw, err := values.Parse(kind, fv)
		if err != nil {
			return nil, err
		}
		n.Raw = raw
		n.Length = len(raw)
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// resolveKind implements the text→raw value-type resolution priority: an
// explicit value_type wins, then a sub-table lookup under the parent path,
// then the top-level table, then a binary fallback.
func resolveKind(explicit string, path docsis.Path, typ int, version docsis.Version, opts docsis.Options) docsis.ValueKind {
	if explicit != "" {
		if k := docsis.ParseValueKind(explicit); k != docsis.KindUnknown {
			return k
		}
	}
	if len(path) > 0 {
		if entry, ok := specs.LookupSub([]int(path), typ); ok {
			return entry.Kind
		}
	}
	if opts.IncludeMTASpecs {
		if entry, ok := specs.LookupTopMTA(typ, version); ok {
			return entry.Kind
		}
	}
	if entry, ok := specs.LookupTop(typ, version); ok {
		return entry.Kind
	}
	return docsis.KindBinary
}

func anyToFormattedValue(kind docsis.ValueKind, v any) (docsis.FormattedValue, error) {
	switch x := v.(type) {
	case nil:
		return docsis.FormattedValue{}, nil
	case string:
		return docsis.FormattedValue{Kind: docsis.FormattedText, Text: x}, nil
	case int:
		// YAML decodes a bare negative number as plain int (unlike JSON,
		// which always hands back float64); uint64(x) on a negative int
		// would wrap around, so route negatives to FormattedInt instead.
		if x < 0 {
			return docsis.FormattedValue{Kind: docsis.FormattedInt, Int: int64(x)}, nil
		}
		return docsis.FormattedValue{Kind: docsis.FormattedUint, Uint: uint64(x)}, nil
	case int64:
		return docsis.FormattedValue{Kind: docsis.FormattedInt, Int: x}, nil
	case uint64:
		return docsis.FormattedValue{Kind: docsis.FormattedUint, Uint: x}, nil
	case float64:
		// JSON/YAML decoders hand back float64 for any bare number; values
		// in this domain are always integral, so round rather than truncate
		// surprising fractional input silently.
		x = math.Round(x)
		if x < 0 {
			return docsis.FormattedValue{Kind: docsis.FormattedInt, Int: int64(x)}, nil
		}
		return docsis.FormattedValue{Kind: docsis.FormattedUint, Uint: uint64(x)}, nil
	default:
		return docsis.FormattedValue{}, &docsis.InvalidFormatError{
			Kind: kind, Hint: "formatted_value must be a string or number",
		}
	}
}
