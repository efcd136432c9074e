package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"docsisconf.dev/codec"
	"docsisconf.dev/codec/enrich"
	"docsisconf.dev/codec/tlv"
)

func mustEnrich(t *testing.T, b []byte, opts docsis.Options) []*enrich.Node {
	t.Helper()
	s, err := tlv.Parse(b)
	require.NoErrorf(t, err, "tlv.Parse(% x)", b)
	nodes, err := enrich.Enrich(s, opts)
	require.NoErrorf(t, err, "Enrich(% x)", b)
	return nodes
}

func TestSyntaxRejectsOutOfRangeType(t *testing.T) {
	nodes := []*enrich.Node{{Type: 300, Kind: docsis.KindBinary}}
	r := Validate(nodes, docsis.Options{})
	require.False(t, r.OK(), "expected a syntax error for an out-of-range TLV type")
}

func TestSemanticRejectsOutOfBandFrequency(t *testing.T) {
	// Downstream Frequency of 3 Hz: far outside the DOCSIS RF plant band.
	nodes := mustEnrich(t, []byte{0x01, 0x04, 0x00, 0x00, 0x00, 0x03}, docsis.Options{})
	r := Validate(nodes, docsis.Options{})
	require.False(t, r.OK(), "expected a semantic error for an out-of-band frequency")
}

func TestSemanticServiceFlowRateInvariant(t *testing.T) {
	// Upstream Service Flow with max rate (sub-type 9) 500 and min reserved
	// rate (sub-type 10) 1000: violates max >= min.
	in := []byte{
		0x12, 0x10,
		0x01, 0x02, 0x00, 0x01, // Service Flow Reference = 1
		0x09, 0x04, 0x00, 0x00, 0x01, 0xF4, // Maximum Sustained Traffic Rate = 500
		0x0A, 0x04, 0x00, 0x00, 0x03, 0xE8, // Minimum Reserved Traffic Rate = 1000
	}
	nodes := mustEnrich(t, in, docsis.Options{})
	r := Validate(nodes, docsis.Options{})
	require.False(t, r.OK(), "expected a semantic error for max_rate < min_reserved_rate")
}

func TestSemanticDuplicateSingletonIsWarningUnlessStrict(t *testing.T) {
	in := []byte{
		0x03, 0x01, 0x01,
		0x03, 0x01, 0x00,
		0x06, 0x10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // CM MIC
		0x07, 0x10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // CMTS MIC
	}
	nodes := mustEnrich(t, in, docsis.Options{})

	r := Validate(nodes, docsis.Options{})
	require.NotEmpty(t, r.Warnings, "expected a duplicate-singleton warning")
	require.True(t, r.OK(), "duplicate singleton should not be an error in non-strict mode")

	strict := Validate(nodes, docsis.Options{Strict: true})
	require.False(t, strict.OK(), "strict mode should promote the duplicate-singleton warning to an error")
}

// TestComplianceRejectsVersionGatedTLV exercises scenario S6: a DOCSIS 3.1
// config containing TLV 62 validated against target 3.0 must produce a
// compliance error naming the minimum version, at a path pointing at TLV 62.
func TestComplianceRejectsVersionGatedTLV(t *testing.T) {
	in := []byte{
		0x03, 0x01, 0x01, // Web Access Control
		0x06, 0x10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // CM MIC
		0x07, 0x10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // CMTS MIC
		0x3E, 0x00, // TLV 62, Upstream Drop Classifier, empty payload
	}
	nodes := mustEnrich(t, in, docsis.Options{DocsisVersion: docsis.Version3_1})
	r := Validate(nodes, docsis.Options{DocsisVersion: docsis.Version3_0})
	require.False(t, r.OK(), "expected a compliance error for TLV 62 against target 3.0")

	var found bool
	for _, e := range r.Errors {
		if len(e.Path) == 1 && e.Path[0] == 62 {
			found = true
		}
	}
	require.Truef(t, found, "no compliance error pointed at TLV 62 path: %+v", r.Errors)
}

func TestBatchValidatesIndependently(t *testing.T) {
	good := mustEnrich(t, []byte{
		0x03, 0x01, 0x01, // Web Access Control
		0x06, 0x10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // CM MIC
		0x07, 0x10, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // CMTS MIC
	}, docsis.Options{})
	bad := []*enrich.Node{{Type: 300, Kind: docsis.KindBinary}}

	results := Batch([]NamedConfig{
		{Name: "good", Nodes: good},
		{Name: "bad", Nodes: bad},
	}, docsis.Options{})

	require.Truef(t, results["good"].OK(), "good config should validate cleanly: %+v", results["good"])
	require.False(t, results["bad"].OK(), "bad config should fail validation")
}
