package validate

import (
	"strconv"
	"strings"

	"docsisconf.dev/codec"
	"docsisconf.dev/codec/enrich"
)

// DOCSIS downstream/upstream RF plant spans roughly 5 MHz to 1.218 GHz
// across all cable plant generations; a frequency outside this band is not
// a value any deployed DOCSIS channel can carry.
const (
	minPlantFrequencyHz = 5_000_000
	maxPlantFrequencyHz = 1_218_000_000
)

func checkSemantic(nodes []*enrich.Node, path docsis.Path) []Finding {
	var findings []Finding
	seen := map[int]int{} // sibling type -> count, for duplicate-singleton detection
	for _, n := range nodes {
		childPath := append(append(docsis.Path{}, path...), n.Type)
		seen[n.Type]++

		switch n.Kind {
		case docsis.KindFrequency:
			if v, ok := uint32BE(n.Raw); ok && (v < minPlantFrequencyHz || v > maxPlantFrequencyHz) {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Message:  "frequency " + strconv.FormatUint(uint64(v), 10) + " Hz falls outside the DOCSIS RF plant band",
					Path:     childPath,
				})
			}
		case docsis.KindBoolean:
			if len(n.Raw) == 1 && n.Raw[0] > 1 {
				findings = append(findings, Finding{
					Severity: SeverityError,
					Message:  "boolean value must be 0 or 1",
					Path:     childPath,
				})
			}
		}

		if n.Type == 2 && len(path) == 0 && len(n.Raw) == 1 && n.Raw[0] == 0 {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Message:  "Upstream Channel ID 0 is reserved",
				Path:     childPath,
			})
		}

		if n.Compound() {
			findings = append(findings, checkSemantic(n.SubTLVs, childPath)...)
			if strings.Contains(n.Name, "Service Flow") {
				findings = append(findings, checkServiceFlow(n, childPath)...)
			}
		}
	}
	for typ, count := range seen {
		if typ == 43 || typ == 0 {
			continue // Vendor Specific and padding may legitimately repeat
		}
		if count > 1 {
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Message:  "TLV " + strconv.Itoa(typ) + " appears " + strconv.Itoa(count) + " times; only one is expected",
				Path:     append(append(docsis.Path{}, path...)),
			})
		}
	}
	return findings
}

// checkServiceFlow enforces the two Service Flow invariants: a Service Flow
// Reference sub-TLV must be present, and when both rate sub-TLVs are
// present the maximum sustained rate must not be below the minimum
// reserved rate.
func checkServiceFlow(n *enrich.Node, path docsis.Path) []Finding {
	var findings []Finding
	var hasReference bool
	var maxRate, minRate uint32
	var hasMaxRate, hasMinRate bool
	for _, sub := range n.SubTLVs {
		switch sub.Name {
		case "Service Flow Reference":
			hasReference = true
		case "Maximum Sustained Traffic Rate":
			if v, ok := uint32BE(sub.Raw); ok {
				maxRate, hasMaxRate = v, true
			}
		case "Minimum Reserved Traffic Rate":
			if v, ok := uint32BE(sub.Raw); ok {
				minRate, hasMinRate = v, true
			}
		}
	}
	if !hasReference {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Message:  "Service Flow is missing its required Service Flow Reference sub-TLV",
			Path:     path,
		})
	}
	if hasMaxRate && hasMinRate && maxRate < minRate {
		findings = append(findings, Finding{
			Severity: SeverityError,
			Message:  "Maximum Sustained Traffic Rate is below Minimum Reserved Traffic Rate",
			Path:     path,
		})
	}
	return findings
}

func uint32BE(raw []byte) (uint32, bool) {
	if len(raw) != 4 {
		return 0, false
	}
	return uint32(raw[0])<<24 | uint32(raw[1])<<16 | uint32(raw[2])<<8 | uint32(raw[3]), true
}
