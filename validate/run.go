package validate

import (
	"docsisconf.dev/codec"
	"docsisconf.dev/codec/enrich"
)

// Validate runs all three levels against nodes and returns their combined
// findings. In strict mode (opts.Strict), warnings are promoted to errors.
func Validate(nodes []*enrich.Node, opts docsis.Options) Result {
	var r Result
	r.merge(checkSyntax(nodes, nil))
	r.merge(checkSemantic(nodes, nil))
	r.merge(checkCompliance(nodes, opts))
	if opts.Strict {
		r.promoteWarnings()
	}
	return r
}

// NamedConfig pairs an enriched tree with a caller-supplied label, for use
// with [Batch].
type NamedConfig struct {
	Name  string
	Nodes []*enrich.Node
}

// Batch validates many configs independently and returns one [Result] per
// config, keyed by its Name.
func Batch(configs []NamedConfig, opts docsis.Options) map[string]Result {
	out := make(map[string]Result, len(configs))
	for _, c := range configs {
		out[c.Name] = Validate(c.Nodes, opts)
	}
	return out
}
