package validate

import (
	"strconv"

	"docsisconf.dev/codec"
	"docsisconf.dev/codec/enrich"
)

type requiredTLV struct {
	Type int
	Name string
}

// requiredForVersion lists top-level TLVs mandatory from the given target
// version onward (cumulative: a version's requirements also apply to every
// later version).
var requiredForVersion = map[docsis.Version][]requiredTLV{
	docsis.Version3_0: {
		{3, "Web Access Control"},
		{6, "CM Message Integrity Check"},
		{7, "CMTS Message Integrity Check"},
	},
}

func checkCompliance(nodes []*enrich.Node, opts docsis.Options) []Finding {
	target := opts.DocsisVersion
	if target == 0 {
		target = docsis.Version3_1
	}
	var findings []Finding
	findings = append(findings, checkIntroducedVersions(nodes, nil, target)...)
	findings = append(findings, checkRequiredTLVs(nodes, target)...)
	return findings
}

// checkIntroducedVersions walks the tree and flags any node whose spec entry
// was introduced after target.
func checkIntroducedVersions(nodes []*enrich.Node, path docsis.Path, target docsis.Version) []Finding {
	var findings []Finding
	for _, n := range nodes {
		childPath := append(append(docsis.Path{}, path...), n.Type)
		if n.Introduced > target {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Message: "TLV " + n.Name + " requires DOCSIS " + n.Introduced.String() +
					" or later; target is " + target.String(),
				Path: childPath,
			})
		}
		if n.Compound() {
			findings = append(findings, checkIntroducedVersions(n.SubTLVs, childPath, target)...)
		}
	}
	return findings
}

// checkRequiredTLVs verifies that every TLV mandatory at or below target is
// present among the top-level nodes.
func checkRequiredTLVs(nodes []*enrich.Node, target docsis.Version) []Finding {
	present := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		present[n.Type] = true
	}
	var findings []Finding
	for minVersion, required := range requiredForVersion {
		if target < minVersion {
			continue
		}
		for _, req := range required {
			if !present[req.Type] {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Message:  "required TLV " + req.Name + " (type " + strconv.Itoa(req.Type) + ") is missing for target " + target.String(),
				})
			}
		}
	}
	return findings
}
