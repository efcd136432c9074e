package specs

import (
	"testing"

	"docsisconf.dev/codec"
)

// TestContextDependentTyping verifies that the same numeric sub-type means
// different things under different contexts, and that a type reused at the
// top level is unrelated to its sub-TLV meaning.
func TestContextDependentTyping(t *testing.T) {
	top9, ok := LookupTop(9, docsis.Version3_1)
	if !ok || top9.Kind != docsis.KindString {
		t.Fatalf("top-level TLV 9 = %+v, want KindString", top9)
	}

	sub9, ok := LookupSub([]int{18}, 9)
	if !ok || sub9.Kind != docsis.KindBandwidth {
		t.Fatalf("sub-TLV 9 under [18] = %+v, want KindBandwidth", sub9)
	}

	sub9b, ok := LookupSub([]int{24}, 9)
	if !ok || sub9b.Kind != docsis.KindBandwidth {
		t.Fatalf("sub-TLV 9 under [24] = %+v, want KindBandwidth", sub9b)
	}
}

func TestLookupSubFallsBackWhenContextUnregistered(t *testing.T) {
	_, ok := LookupSub([]int{9999}, 1)
	if ok {
		t.Fatal("LookupSub matched an unregistered context")
	}
}

func TestVendorRangeAlwaysAccepted(t *testing.T) {
	e, ok := LookupTop(210, docsis.Version1_0)
	if !ok {
		t.Fatal("vendor-range TLV 210 not accepted")
	}
	if e.Name != "Vendor Specific" {
		t.Errorf("Name = %q, want Vendor Specific", e.Name)
	}
}

func TestVersionGated(t *testing.T) {
	introduced, gated := VersionGated(62, docsis.Version3_0)
	if !gated || introduced != docsis.Version3_1 {
		t.Errorf("VersionGated(62, 3.0) = (%v, %v), want (3.1, true)", introduced, gated)
	}
	_, gated = VersionGated(62, docsis.Version3_1)
	if gated {
		t.Error("TLV 62 should not be gated at target 3.1")
	}
}

func TestDetectVersion(t *testing.T) {
	got := DetectVersion([]int{1, 2, 62})
	if got != docsis.Version3_1 {
		t.Errorf("DetectVersion = %v, want 3.1", got)
	}
}
