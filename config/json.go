package config

import (
	"encoding/json"

	"docsisconf.dev/codec"
	"docsisconf.dev/codec/enrich"
)

// EncodeJSON renders nodes as a JSON [Document]. opts.Pretty requests
// tab-indented output.
func EncodeJSON(nodes []*enrich.Node, opts docsis.Options) ([]byte, error) {
	version := opts.DocsisVersion
	if version == 0 {
		version = docsis.Version3_1
	}
	doc := FromNodes(nodes, version)
	if opts.Pretty {
		return json.MarshalIndent(doc, "", "\t")
	}
	return json.Marshal(doc)
}

// DecodeJSON parses a JSON [Document] and resolves it into an enriched tree
// plus the [docsis.Options] implied by the document and base. base, if
// given, carries caller-side options the document cannot express itself
// (e.g. IncludeMTASpecs); only its first element is used.
func DecodeJSON(b []byte, base ...docsis.Options) ([]*enrich.Node, docsis.Options, error) {
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, docsis.Options{}, &docsis.InvalidFormatError{
			Kind: docsis.KindString, Hint: "malformed JSON: " + err.Error(),
		}
	}
	return ToNodes(doc, base...)
}
