// Package enrich implements the compound-resolution stage: it decides, for
// each raw TLV, whether its payload is itself a sub-TLV sequence or an
// atomic scalar, and attaches the specification-driven name, description and
// typed value along the way.
//
// The split from [docsisconf.dev/codec/tlv] is deliberate. tlv.Parse is a
// pure, context-free framing decoder: it never looks inside a payload.
// Whether byte 0 of TLV 43's payload is the start of a nested TLV sequence
// or the high byte of a 32-bit integer depends on which TLV type 43 means in
// this context — information tlv.Parse does not have and should not need.
// Enrich is given that context (the specification registry) and makes the
// call.
package enrich

import (
	"strconv"

	"docsisconf.dev/codec"
	"docsisconf.dev/codec/specs"
	"docsisconf.dev/codec/tlv"
	"docsisconf.dev/codec/values"
)

// Node is one entry of an enriched TLV tree. Exactly one of SubTLVs or
// Formatted is meaningful for a given node (the XOR invariant): a node
// whose payload decoded as a sub-TLV sequence carries SubTLVs and a zero
// Formatted; every other node carries a Formatted value and a nil SubTLVs.
type Node struct {
	Type        int
	Length      int
	Name        string
	Description string
	Kind        docsis.ValueKind
	Introduced  docsis.Version

	Raw       []byte          // the undecoded payload this node was built from
	Formatted docsis.FormattedValue
	SubTLVs   []*Node

	Path docsis.Path // ancestor path, not including Type
	Form tlv.LengthForm
}

// Compound reports whether n's payload was resolved as a nested sub-TLV
// sequence.
func (n *Node) Compound() bool { return n.SubTLVs != nil }

// Enrich walks a parsed [tlv.Stream] and produces the corresponding
// enriched tree, resolving every node's spec entry, kind, name and
// compound-vs-atomic decision.
func Enrich(s tlv.Stream, opts docsis.Options) ([]*Node, error) {
	version := opts.DocsisVersion
	if version == 0 {
		version = docsis.Version3_1
	}
	nodes := make([]*Node, 0, len(s.TLVs))
	for _, raw := range s.TLVs {
		n, err := enrichNode(raw, nil, version, opts, 0)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func enrichNode(raw tlv.RawTLV, path docsis.Path, version docsis.Version, opts docsis.Options, depth int) (*Node, error) {
	if depth > opts.MaxNestingDepthOrDefault() {
		return nil, &docsis.StructuralError{
			Kind: docsis.KindErrNestingTooDeep, Path: path,
			Message: "compound resolution exceeded the maximum nesting depth",
		}
	}

	entry, known := lookup(path, raw.Type, version, opts)

	n := &Node{
		Type:        raw.Type,
		Length:      raw.Length,
		Raw:         raw.Value,
		Path:        path,
		Form:        raw.Form,
		Name:        entry.Name,
		Description: entry.Description,
		Kind:        entry.Kind,
		Introduced:  entry.Introduced,
	}
	if !known {
		n.Name = "Unknown TLV " + strconv.Itoa(raw.Type)
		n.Kind = docsis.KindBinary
	}

	childPath := append(append(docsis.Path{}, path...), raw.Type)

	if shouldAttemptCompound(entry, known, path, raw.Value) {
		sub, ok, err := tryDecodeCompound(raw.Value, childPath, version, opts, depth)
		if err != nil {
			return nil, err
		}
		if ok {
			n.SubTLVs = sub
			n.Kind = docsis.KindCompound
			return n, nil
		}
		// known && entry.SupportsSubTLVs means the registry asserts this
		// payload IS a sub-TLV sequence, not that it merely looks like one
		// (the :binary heuristic case below). Failing to parse it is
		// therefore a malformed TLV, not an ambiguous guess: in strict mode
		// that is a hard error rather than a silent hex-string fallback.
		if known && entry.SupportsSubTLVs && opts.Strict {
			return nil, &docsis.StructuralError{
				Kind: docsis.KindErrInvalidLength, Path: childPath,
				Message: "payload declared compound by the specification did not parse as a clean sub-TLV sequence",
			}
		}
	}

	fv, err := values.Format(n.Kind, raw.Value)
	if err != nil {
		fv, _ = values.Format(docsis.KindHexString, raw.Value)
		n.Kind = docsis.KindHexString
	}
	n.Formatted = fv
	return n, nil
}

// lookup resolves raw.Type's spec entry: a sub-table lookup if path is
// non-empty, the top-level table otherwise. At the top level, the
// PacketCable MTA extension table is consulted first when the caller opted
// into [docsis.Options.IncludeMTASpecs], since those types have no meaning
// in a plain DOCSIS-only registry.
func lookup(path docsis.Path, typ int, version docsis.Version, opts docsis.Options) (specs.Entry, bool) {
	if len(path) == 0 {
		if opts.IncludeMTASpecs {
			if e, ok := specs.LookupTopMTA(typ, version); ok {
				return e, true
			}
		}
		return specs.LookupTop(typ, version)
	}
	return specs.LookupSub([]int(path), typ)
}

// shouldAttemptCompound implements the three-way compound-resolution test:
// a spec-declared compound always attempts decode, a spec-declared atomic
// kind never does, and an unresolved (:binary) kind attempts decode only
// when the payload's shape looks plausible.
func shouldAttemptCompound(entry specs.Entry, known bool, path docsis.Path, payload []byte) bool {
	if known && entry.SupportsSubTLVs {
		return true
	}
	if known && entry.Kind != docsis.KindBinary {
		return false
	}
	if len(payload) < 3 {
		return false
	}
	firstType := int(payload[0])
	if firstType >= 200 {
		return true
	}
	_, ok := specs.LookupSub([]int(path), firstType)
	return ok
}

// tryDecodeCompound attempts to parse payload as a sub-TLV sequence and
// recursively enrich every child. It reports ok=false (leaving the caller to
// fall back to an atomic hex-string) if the payload does not parse as a
// clean, fully-consumed TLV sequence. A non-nil error is a hard failure
// (currently only NestingTooDeep) that must propagate rather than fall back.
func tryDecodeCompound(payload []byte, childPath docsis.Path, version docsis.Version, opts docsis.Options, depth int) ([]*Node, bool, error) {
	stream, err := tlv.Parse(payload)
	if err != nil || stream.Terminated || len(stream.TLVs) == 0 {
		return nil, false, nil
	}
	children := make([]*Node, 0, len(stream.TLVs))
	for _, childRaw := range stream.TLVs {
		child, err := enrichNode(childRaw, childPath, version, opts, depth+1)
		if err != nil {
			if derr, ok := err.(docsis.Error); ok && derr.ErrorKind() == docsis.KindErrNestingTooDeep {
				return nil, false, err
			}
			return nil, false, nil
		}
		children = append(children, child)
	}
	return children, true, nil
}
