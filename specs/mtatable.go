package specs

import "docsisconf.dev/codec"

// mtaTable holds top-level TLV entries specific to PacketCable MTA
// provisioning extensions layered on top of a DOCSIS configuration file.
// These types overlap numerically with nothing in topTable; they are
// consulted only when the caller opts in via [docsis.Options.IncludeMTASpecs]
// (see [LookupTopMTA]) since a plain DOCSIS-only reader has no use for them
// and would rather see "Unknown TLV N" than a PacketCable-flavoured guess.
var mtaTable = map[int]Entry{
	122: {
		Name: "MTA DHCP Server", Kind: docsis.KindIPv4,
		Introduced: docsis.Version1_1, MinLength: 4, MaxLength: 4,
		Description: "Address of the DHCP server hosting the MTA's provisioning lease.",
	},
	123: {
		Name: "MTA Kerberos Realm", Kind: docsis.KindString,
		Introduced:  docsis.Version1_1,
		Description: "PacketCable Kerberos realm name used for MTA device provisioning.",
	},
	124: {
		Name: "PacketCable Provisioning Flag", Kind: docsis.KindBoolean,
		Introduced: docsis.Version1_1, MinLength: 1, MaxLength: 1,
	},
	125: {
		Name: "MTA SNMP MIB Object", Kind: docsis.KindASN1DER,
		Introduced:  docsis.Version1_1,
		Description: "BER-encoded SNMP varbind scoped to the MTA's voice endpoints, decoded via the ber subpackage.",
	},
	126: {
		Name: "MTA Provisioning Timer", Kind: docsis.KindDuration,
		Introduced: docsis.Version1_1, MinLength: 4, MaxLength: 4,
	},
}

// LookupTopMTA resolves typ against the PacketCable MTA extension table.
// Callers consult this before (or instead of) [LookupTop] when
// [docsis.Options.IncludeMTASpecs] is set.
func LookupTopMTA(typ int, version docsis.Version) (Entry, bool) {
	e, ok := mtaTable[typ]
	return e, ok
}
