// Package docsis implements a codec and transformation library for DOCSIS
// cable-modem configuration files and related PacketCable MTA provisioning
// files. It parses vendor binary configurations (TLV-encoded, with some
// ASN.1 BER content), enriches them with a specification-driven semantic
// model, serializes them to and from human-editable JSON/YAML, validates
// them against DOCSIS compliance rules, and regenerates byte-exact (or
// semantically equivalent) binaries.
//
// The package is organized as a pipeline of pure, side-effect-free stages:
//
//	bytes -> tlv.Parse -> enrich.Enrich -> config.EncodeJSON/EncodeYAML -> text
//	text  -> config.DecodeJSON/DecodeYAML -> enrich.Resolve -> tlv.Generate -> bytes
//
// Subpackage [docsisconf.dev/codec/tlv] implements the outer TLV framing.
// Subpackage [docsisconf.dev/codec/ber] implements the ASN.1 BER subsystem
// used by PacketCable MTA files. Subpackage
// [docsisconf.dev/codec/specs] is the specification registry. Subpackage
// [docsisconf.dev/codec/values] is the scalar value codec. Subpackage
// [docsisconf.dev/codec/enrich] ties the TLV tree to the registry and value
// codec. Subpackage [docsisconf.dev/codec/config] bridges enriched trees to
// JSON/YAML. Subpackage [docsisconf.dev/codec/validate] implements the
// three-tier validation framework.
//
// None of the types in this package hold any mutable shared state. Every
// operation is synchronous, bounded by the size of its input, and safe to
// call concurrently on disjoint inputs from any number of goroutines.
package docsis

import "strconv"

// Version identifies a DOCSIS specification version. Versions form a total
// order: 1.0 < 1.1 < 2.0 < 3.0 < 3.1.
type Version uint8

// Recognized [Version] values, in ascending order.
const (
	Version1_0 Version = iota + 1
	Version1_1
	Version2_0
	Version3_0
	Version3_1
)

// String returns the conventional dotted representation of v, e.g. "3.1".
func (v Version) String() string {
	switch v {
	case Version1_0:
		return "1.0"
	case Version1_1:
		return "1.1"
	case Version2_0:
		return "2.0"
	case Version3_0:
		return "3.0"
	case Version3_1:
		return "3.1"
	default:
		return "unknown(" + strconv.Itoa(int(v)) + ")"
	}
}

// ParseVersion parses a dotted DOCSIS version string such as "3.1". It
// accepts the five recognized versions only; anything else is an error.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "1.0":
		return Version1_0, nil
	case "1.1":
		return Version1_1, nil
	case "2.0":
		return Version2_0, nil
	case "3.0":
		return Version3_0, nil
	case "3.1":
		return Version3_1, nil
	default:
		return 0, &InvalidFormatError{Kind: KindString, Input: s}
	}
}

// ValueKind is the closed set of scalar and structural value kinds a TLV's
// payload can be interpreted as; the values subpackage implements the full
// table of parse/format behavior per kind.
type ValueKind uint8

// Recognized [ValueKind] values.
const (
	KindUnknown ValueKind = iota
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt8
	KindInt16
	KindInt32
	KindBoolean
	KindIPv4
	KindIPv6
	KindMACAddress
	KindFrequency
	KindBandwidth
	KindDuration
	KindPowerQuarterDB
	KindPercentage
	KindString
	KindOID
	KindASN1DER
	KindBinary
	KindHexString
	KindCompound
	KindMarker
)

// String returns the lower_snake_case name used for this kind in the
// human-config bridge's "value_type" field.
func (k ValueKind) String() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindBoolean:
		return "boolean"
	case KindIPv4:
		return "ipv4"
	case KindIPv6:
		return "ipv6"
	case KindMACAddress:
		return "mac_address"
	case KindFrequency:
		return "frequency"
	case KindBandwidth:
		return "bandwidth"
	case KindDuration:
		return "duration"
	case KindPowerQuarterDB:
		return "power_quarter_db"
	case KindPercentage:
		return "percentage"
	case KindString:
		return "string"
	case KindOID:
		return "oid"
	case KindASN1DER:
		return "asn1_der"
	case KindBinary:
		return "binary"
	case KindHexString:
		return "hex_string"
	case KindCompound:
		return "compound"
	case KindMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// ParseValueKind is the inverse of [ValueKind.String]. Unrecognized names
// yield [KindUnknown] rather than an error, since callers (notably the
// human-config bridge) must tolerate documents written by a newer or looser
// producer.
func ParseValueKind(s string) ValueKind {
	for k := KindUint8; k <= KindMarker; k++ {
		if k.String() == s {
			return k
		}
	}
	return KindUnknown
}

// FormattedValue is the tagged union of a TLV's human-editable scalar
// representation. Exactly one field is meaningful at a time, selected by
// Kind. A zero FormattedValue is [FormattedAbsent], used by parent nodes
// whose editable content lives entirely in their sub-TLVs.
type FormattedValue struct {
	Kind FormattedKind
	Int  int64
	Uint uint64
	Text string
}

// FormattedKind discriminates the variant held by a [FormattedValue].
type FormattedKind uint8

const (
	// FormattedAbsent indicates a parent node: its data lives in SubTLVs.
	FormattedAbsent FormattedKind = iota
	FormattedInt
	FormattedUint
	FormattedText
)

// Number reports whether fv holds a numeric (signed or unsigned) variant.
func (fv FormattedValue) Number() bool {
	return fv.Kind == FormattedInt || fv.Kind == FormattedUint
}

// Options is the small set of named parameters accepted by the public
// operations of this module and its subpackages. Options is a plain struct
// rather than a free-form map, so every field below is the Go-typed
// equivalent of one named, recognized parameter.
type Options struct {
	// DocsisVersion is the target compliance version. The zero value means
	// "unspecified"; callers that care must set it explicitly. Defaults to
	// [Version3_1] where a permissive default is called for (e.g. the
	// human-config bridge).
	DocsisVersion Version

	// Strict promotes validation warnings to errors and makes the enricher
	// return an error, instead of falling back to a hex-string value, when
	// a payload the registry declares compound does not parse as a clean
	// sub-TLV sequence.
	Strict bool

	// PreserveLengthForm, when true, re-emits every TLV using the same
	// length-encoding form (single-byte, 0x81, 0x82, 0x84) it was parsed
	// with instead of always choosing the shortest adequate form.
	PreserveLengthForm bool

	// Pretty requests indented JSON output from the human-config bridge.
	// YAML output is the same with or without it.
	Pretty bool

	// MaxNestingDepth bounds recursive compound resolution. Zero means "use
	// the default of 32".
	MaxNestingDepth int

	// IncludeMTASpecs widens specification-registry lookups to also cover
	// PacketCable MTA TLVs in addition to the DOCSIS table.
	IncludeMTASpecs bool
}

// MaxNestingDepthOrDefault returns o.MaxNestingDepth, or the default of 32
// if unset.
func (o Options) MaxNestingDepthOrDefault() int {
	if o.MaxNestingDepth > 0 {
		return o.MaxNestingDepth
	}
	return 32
}
