package config

import (
	"gopkg.in/yaml.v3"

	"docsisconf.dev/codec"
	"docsisconf.dev/codec/enrich"
)

// EncodeYAML renders nodes as a YAML [Document]. YAML has no separate
// "pretty" form; opts.Pretty is accepted for symmetry with [EncodeJSON] but
// has no effect.
func EncodeYAML(nodes []*enrich.Node, opts docsis.Options) ([]byte, error) {
	version := opts.DocsisVersion
	if version == 0 {
		version = docsis.Version3_1
	}
	doc := FromNodes(nodes, version)
	return yaml.Marshal(doc)
}

// DecodeYAML parses a YAML [Document] and resolves it into an enriched tree
// plus the [docsis.Options] implied by the document and base. base, if
// given, carries caller-side options the document cannot express itself
// (e.g. IncludeMTASpecs); only its first element is used.
func DecodeYAML(b []byte, base ...docsis.Options) ([]*enrich.Node, docsis.Options, error) {
	var doc Document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, docsis.Options{}, &docsis.InvalidFormatError{
			Kind: docsis.KindString, Hint: "malformed YAML: " + err.Error(),
		}
	}
	return ToNodes(doc, base...)
}
