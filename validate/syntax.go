package validate

import (
	"strconv"

	"docsisconf.dev/codec"
	"docsisconf.dev/codec/enrich"
	"docsisconf.dev/codec/tlv"
)

// checkSyntax verifies the structural well-formedness of nodes: type
// numbers fall in 0-255, the padding marker TLV 0 carries at most one
// payload byte, every node's declared Length matches its payload, and
// sub-TLVs of a compound node fully cover the parent payload (checked where
// the parent still carries its raw payload). Path is the ancestor path of
// nodes (nil at the top level).
func checkSyntax(nodes []*enrich.Node, path docsis.Path) []Finding {
	var findings []Finding
	for _, n := range nodes {
		childPath := append(append(docsis.Path{}, path...), n.Type)

		if n.Type < 0 || n.Type > 255 {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Message:  "TLV type " + strconv.Itoa(n.Type) + " is out of range 0-255",
				Path:     childPath,
			})
		}
		if n.Type == 0 && n.Length > 1 {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Message:  "padding marker TLV 0 must have length <= 1",
				Path:     childPath,
			})
		}
		if !n.Compound() && n.Raw != nil && n.Length != len(n.Raw) {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Message:  "declared length " + strconv.Itoa(n.Length) + " does not match payload size " + strconv.Itoa(len(n.Raw)),
				Path:     childPath,
			})
		}
		if n.Compound() {
			if n.Raw != nil {
				covered := 0
				for _, c := range n.SubTLVs {
					covered += tlv.EncodedLength(c.Length, c.Form, true)
				}
				if covered != len(n.Raw) {
					findings = append(findings, Finding{
						Severity: SeverityError,
						Message:  "sub-TLVs cover " + strconv.Itoa(covered) + " bytes of a " + strconv.Itoa(len(n.Raw)) + "-byte compound payload",
						Path:     childPath,
					})
				}
			}
			findings = append(findings, checkSyntax(n.SubTLVs, childPath)...)
		}
	}
	return findings
}
