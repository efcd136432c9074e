package specs

import "docsisconf.dev/codec"

// topTable is the top-level TLV spec table. Names and semantics follow the
// well-known DOCSIS configuration-file TLV numbering; entries outside the
// vendor range (200-255) that are absent here are genuinely unknown to this
// registry and enrich as "Unknown TLV N".
var topTable = map[int]Entry{
	1: {
		Name: "Downstream Frequency", Kind: docsis.KindFrequency,
		Introduced: docsis.Version1_0, MinLength: 4, MaxLength: 4,
		Description: "Center frequency of the downstream channel, in Hz.",
	},
	2: {
		Name: "Upstream Channel ID", Kind: docsis.KindUint8,
		Introduced: docsis.Version1_0, MinLength: 1, MaxLength: 1,
	},
	3: {
		Name: "Web Access Control", Kind: docsis.KindBoolean,
		Introduced: docsis.Version1_0, MinLength: 1, MaxLength: 1,
		Description: "Enables or disables the CM's access to the network.",
	},
	4: {
		Name: "Class of Service", Kind: docsis.KindCompound,
		Introduced: docsis.Version1_0, SupportsSubTLVs: true, SubTable: "classOfService",
		Description: "DOCSIS 1.0 legacy class-of-service configuration.",
	},
	5: {
		Name: "Modem Capabilities", Kind: docsis.KindCompound,
		Introduced: docsis.Version1_0, SupportsSubTLVs: true, SubTable: "modemCapabilities",
	},
	6: {
		Name: "CM Message Integrity Check", Kind: docsis.KindHexString,
		Introduced: docsis.Version1_0, MinLength: 16, MaxLength: 16,
		Description: "Opaque MD5 digest; carried verbatim by this core.",
	},
	7: {
		Name: "CMTS Message Integrity Check", Kind: docsis.KindHexString,
		Introduced: docsis.Version1_0, MinLength: 16, MaxLength: 16,
		Description: "Opaque MD5 digest; carried verbatim by this core.",
	},
	8: {
		Name: "Vendor ID", Kind: docsis.KindHexString,
		Introduced: docsis.Version1_0, MinLength: 3, MaxLength: 3,
	},
	9: {
		Name: "Software Upgrade Filename", Kind: docsis.KindString,
		Introduced: docsis.Version1_0,
	},
	10: {
		Name: "SNMP Write-Access Control", Kind: docsis.KindCompound,
		Introduced: docsis.Version1_0, SupportsSubTLVs: true, SubTable: "snmpWriteControl",
	},
	11: {
		Name: "SNMP MIB Object", Kind: docsis.KindASN1DER,
		Introduced: docsis.Version1_0,
		Description: "BER-encoded SNMP varbind; decoded via the ber subpackage.",
	},
	12: {
		Name: "CPE MAC Address", Kind: docsis.KindMACAddress,
		Introduced: docsis.Version1_0, MinLength: 6, MaxLength: 6,
	},
	13: {
		Name: "Maximum Number of CPE", Kind: docsis.KindUint8,
		Introduced: docsis.Version1_0, MinLength: 1, MaxLength: 1,
	},
	14: {
		Name: "Software Upgrade TFTP Server", Kind: docsis.KindIPv4,
		Introduced: docsis.Version1_0, MinLength: 4, MaxLength: 4,
	},
	17: {
		Name: "Baseline Privacy Configuration", Kind: docsis.KindCompound,
		Introduced: docsis.Version1_1, SupportsSubTLVs: true, SubTable: "bpiConfig",
	},
	18: {
		Name: "Upstream Service Flow", Kind: docsis.KindCompound,
		Introduced: docsis.Version1_1, SupportsSubTLVs: true, SubTable: "serviceFlow",
		Description: "Sub-type 9 under this parent is a bandwidth rate in bps, unrelated to top-level type 9.",
	},
	19: {
		Name: "Downstream Service Flow", Kind: docsis.KindCompound,
		Introduced: docsis.Version1_1, SupportsSubTLVs: true, SubTable: "serviceFlow",
	},
	20: {
		Name: "Maximum Number of Classifiers", Kind: docsis.KindUint16,
		Introduced: docsis.Version1_1, MinLength: 2, MaxLength: 2,
	},
	21: {
		Name: "Privacy Enable", Kind: docsis.KindBoolean,
		Introduced: docsis.Version1_1, MinLength: 1, MaxLength: 1,
	},
	22: {
		Name: "Upstream Packet Classification", Kind: docsis.KindCompound,
		Introduced: docsis.Version1_1, SupportsSubTLVs: true, SubTable: "packetClassification",
	},
	23: {
		Name: "Downstream Packet Classification", Kind: docsis.KindCompound,
		Introduced: docsis.Version1_1, SupportsSubTLVs: true, SubTable: "packetClassification",
	},
	24: {
		Name: "Upstream Service Flow (MULPI)", Kind: docsis.KindCompound,
		Introduced: docsis.Version1_1, SupportsSubTLVs: true, SubTable: "serviceFlow",
	},
	25: {
		Name: "Downstream Service Flow (MULPI)", Kind: docsis.KindCompound,
		Introduced: docsis.Version1_1, SupportsSubTLVs: true, SubTable: "serviceFlow",
	},
	28: {
		Name: "Vendor Specific Information", Kind: docsis.KindBinary,
		Introduced: docsis.Version1_0,
	},
	29: {
		Name: "SNMPv3 Kickstart Value", Kind: docsis.KindCompound,
		Introduced: docsis.Version2_0, SupportsSubTLVs: true, SubTable: "snmpv3Kickstart",
	},
	30: {
		Name: "SNMPv3 Notification Receiver", Kind: docsis.KindCompound,
		Introduced: docsis.Version2_0, SupportsSubTLVs: true, SubTable: "snmpv3Notification",
	},
	31: {
		Name: "Downstream Channel List", Kind: docsis.KindCompound,
		Introduced: docsis.Version3_0, SupportsSubTLVs: true, SubTable: "channelList",
	},
	33: {
		Name: "Subscriber Management Control", Kind: docsis.KindUint8,
		Introduced: docsis.Version2_0, MinLength: 1, MaxLength: 1,
	},
	34: {
		Name: "Subscriber Management CPE IPv4 Table", Kind: docsis.KindCompound,
		Introduced: docsis.Version2_0, SupportsSubTLVs: true,
	},
	35: {
		Name: "Subscriber Management Filter Groups", Kind: docsis.KindCompound,
		Introduced: docsis.Version2_0, SupportsSubTLVs: true,
	},
	37: {
		Name: "MAC Address Learning Control", Kind: docsis.KindUint8,
		Introduced: docsis.Version2_0, MinLength: 1, MaxLength: 1,
	},
	38: {
		Name: "Vendor Specific MTA Information", Kind: docsis.KindBinary,
		Introduced: docsis.Version1_1,
	},
	39: {
		Name: "CM Certificate", Kind: docsis.KindASN1DER,
		Introduced: docsis.Version2_0,
		Description: "DER-encoded X.509 certificate, decoded via the ber subpackage.",
	},
	40: {
		Name: "Manufacturer CVC", Kind: docsis.KindASN1DER,
		Introduced: docsis.Version2_0,
	},
	41: {
		Name: "SNMPv3 Provisioning", Kind: docsis.KindCompound,
		Introduced: docsis.Version2_0, SupportsSubTLVs: true,
	},
	43: {
		Name: "Vendor Specific", Kind: docsis.KindCompound,
		Introduced: docsis.Version1_1, SupportsSubTLVs: true,
		Description: "Generic compound container; children use spec-driven context lookups just like named containers.",
	},
	60: {
		Name: "DOCSIS Version Number", Kind: docsis.KindUint8,
		Introduced: docsis.Version3_0, MinLength: 1, MaxLength: 1,
	},
	62: {
		Name: "Upstream Drop Classifier", Kind: docsis.KindCompound,
		Introduced: docsis.Version3_1, SupportsSubTLVs: true,
	},
	63: {
		Name: "Downstream Drop Classifier", Kind: docsis.KindCompound,
		Introduced: docsis.Version3_1, SupportsSubTLVs: true,
	},
	64: {
		Name: "Energy Management Feature", Kind: docsis.KindCompound,
		Introduced: docsis.Version3_1, SupportsSubTLVs: true,
	},
	65: {
		Name: "Downstream Out-of-Band", Kind: docsis.KindCompound,
		Introduced: docsis.Version3_0, SupportsSubTLVs: true,
	},
	255: {
		Name: "End-of-Data Marker", Kind: docsis.KindMarker,
		Introduced: docsis.Version1_0, MinLength: 0, MaxLength: 0,
		Description: "Not addressable as a regular TLV; handled structurally by the tlv package.",
	},
}
