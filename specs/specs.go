// Package specs is the DOCSIS/PacketCable specification registry: an
// immutable mapping from (TLV type, DOCSIS version) to a top-level entry,
// and from (parent context path, sub-TLV type) to a sub-TLV entry.
//
// The registry is built once, at package init, as plain Go maps — there is
// no global mutable state beyond that one-time construction. It is safe for
// concurrent read-only use from any number of goroutines, since nothing
// ever writes to it after init.
package specs

import (
	"strconv"

	"docsisconf.dev/codec"
)

// Entry describes one TLV's meaning: its human name, its value kind, the
// DOCSIS version that introduced it, whether its payload may itself be a
// sub-TLV sequence, and (if so) which sub-TLV table governs its children.
type Entry struct {
	Name            string
	Kind            docsis.ValueKind
	Introduced      docsis.Version
	SupportsSubTLVs bool
	Description     string
	MinLength       int // -1 means unbounded/unchecked
	MaxLength       int // -1 means unbounded/unchecked

	// SubTable names the sub-TLV table (a key into the package-level
	// subTables map) governing this TLV's children when SupportsSubTLVs is
	// true. Empty means "use the generic :binary sub-TLV table for this
	// context".
	SubTable string
}

// Unknown is the placeholder entry for a type with no registration: no name
// and the binary kind. The lookup functions do not return it; they report
// "no entry" through their ok return being false, alongside a zero Entry.
var Unknown = Entry{Name: "", Kind: docsis.KindBinary}

// vendorRange is [200, 255]; these types are always accepted at the top
// level regardless of DOCSIS version.
const (
	vendorRangeStart = 200
	vendorRangeEnd   = 255
)

// LookupTop resolves a top-level TLV type against the registry for the
// given target version. Vendor-range types (200-255) are always accepted.
// Types registered but introduced after version are reported via the ok
// return being true and the caller comparing entry.Introduced against
// version itself (LookupTop does not silently hide version-gated entries —
// see [VersionGated] for that check, used by the validator).
func LookupTop(typ int, version docsis.Version) (Entry, bool) {
	if typ >= vendorRangeStart && typ <= vendorRangeEnd {
		if e, ok := topTable[typ]; ok {
			return e, true
		}
		return Entry{
			Name:            "Vendor Specific",
			Kind:            docsis.KindBinary,
			Introduced:      docsis.Version1_0,
			SupportsSubTLVs: false,
		}, true
	}
	e, ok := topTable[typ]
	return e, ok
}

// VersionGated reports whether typ is registered at the top level but
// requires a DOCSIS version newer than target.
func VersionGated(typ int, target docsis.Version) (introduced docsis.Version, gated bool) {
	e, ok := topTable[typ]
	if !ok {
		return 0, false
	}
	return e.Introduced, e.Introduced > target
}

// LookupSub resolves a sub-TLV type within the given ancestor context path.
// Contexts are matched longest-suffix-wins: the most specific registered
// suffix of path is used. If no context in path has a registered
// sub-table, or the type is not present in the table that matched, ok is
// false and callers fall back to generic :binary semantics.
func LookupSub(path []int, typ int) (Entry, bool) {
	for n := len(path); n >= 0; n-- {
		suffix := path[len(path)-n:]
		tableName, ok := contextTables[pathKey(suffix)]
		if !ok {
			continue
		}
		tbl := subTables[tableName]
		e, ok := tbl[typ]
		return e, ok
	}
	return Entry{}, false
}

// SupportsSubTLVs reports whether e's payload may itself be decoded as a
// sub-TLV sequence.
func SupportsSubTLVs(e Entry) bool { return e.SupportsSubTLVs }

// DetectVersion derives the minimum DOCSIS version that can express every
// top-level type present in types: the maximum of each present type's
// introduced version. An empty input yields
// [docsis.Version1_0].
func DetectVersion(types []int) docsis.Version {
	v := docsis.Version1_0
	for _, t := range types {
		if e, ok := topTable[t]; ok && e.Introduced > v {
			v = e.Introduced
		}
	}
	return v
}

// pathKey joins an ancestor path into a lookup key for contextTables.
func pathKey(path []int) string {
	if len(path) == 0 {
		return ""
	}
	b := make([]byte, 0, len(path)*4)
	for i, t := range path {
		if i > 0 {
			b = append(b, '/')
		}
		b = strconv.AppendInt(b, int64(t), 10)
	}
	return string(b)
}
