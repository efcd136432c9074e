package specs

import "docsisconf.dev/codec"

// contextTables maps an ancestor-path suffix (joined via pathKey) to the
// name of the sub-TLV table governing children in that context. Multiple
// top-level parents may share a table (e.g. every Service Flow variant
// shares "serviceFlow") since their sub-TLV semantics are identical in this
// registry; a context that needs its own distinct semantics gets its own
// table and its own entry here, which is how "same numeric type, different
// meaning per parent" is expressed structurally.
var contextTables = map[string]string{
	pathKeyOf(4):  "classOfService",
	pathKeyOf(5):  "modemCapabilities",
	pathKeyOf(10): "snmpWriteControl",
	pathKeyOf(17): "bpiConfig",
	pathKeyOf(18): "serviceFlow",
	pathKeyOf(19): "serviceFlow",
	pathKeyOf(22): "packetClassification",
	pathKeyOf(23): "packetClassification",
	pathKeyOf(24): "serviceFlow",
	pathKeyOf(25): "serviceFlow",
	pathKeyOf(29): "snmpv3Kickstart",
	pathKeyOf(30): "snmpv3Notification",
	pathKeyOf(31): "channelList",
}

func pathKeyOf(types ...int) string { return pathKey(types) }

// subTables holds the actual sub-TLV entry tables, named by the strings
// used in contextTables and in Entry.SubTable.
var subTables = map[string]map[int]Entry{
	"classOfService": {
		1: {Name: "Class ID", Kind: docsis.KindUint8, MinLength: 1, MaxLength: 1},
		2: {Name: "Maximum Downstream Rate", Kind: docsis.KindBandwidth, MinLength: 4, MaxLength: 4},
		3: {Name: "Maximum Upstream Rate", Kind: docsis.KindBandwidth, MinLength: 4, MaxLength: 4},
		4: {Name: "Upstream Channel Priority", Kind: docsis.KindUint8, MinLength: 1, MaxLength: 1},
		6: {Name: "Maximum Upstream Burst", Kind: docsis.KindUint16, MinLength: 2, MaxLength: 2},
	},
	"modemCapabilities": {
		1: {Name: "Concatenation Support", Kind: docsis.KindBoolean, MinLength: 1, MaxLength: 1},
		2: {Name: "DOCSIS Version Support", Kind: docsis.KindUint8, MinLength: 1, MaxLength: 1},
		3: {Name: "Fragmentation Support", Kind: docsis.KindBoolean, MinLength: 1, MaxLength: 1},
		5: {Name: "Number of Transmit Channels", Kind: docsis.KindUint8, MinLength: 1, MaxLength: 1},
	},
	"snmpWriteControl": {
		1: {Name: "Community Name", Kind: docsis.KindString, MinLength: -1, MaxLength: -1},
		2: {Name: "IP Address", Kind: docsis.KindIPv4, MinLength: 4, MaxLength: 4},
		3: {Name: "IP Mask", Kind: docsis.KindIPv4, MinLength: 4, MaxLength: 4},
		4: {Name: "Access Control", Kind: docsis.KindUint8, MinLength: 1, MaxLength: 1},
	},
	"bpiConfig": {
		1: {Name: "Authorize Wait Timeout", Kind: docsis.KindDuration, MinLength: 4, MaxLength: 4},
		2: {Name: "Reauthorize Wait Timeout", Kind: docsis.KindDuration, MinLength: 4, MaxLength: 4},
		5: {Name: "Operational Wait Timeout", Kind: docsis.KindDuration, MinLength: 4, MaxLength: 4},
		9: {Name: "SA Map Wait Timeout", Kind: docsis.KindDuration, MinLength: 4, MaxLength: 4},
	},
	// serviceFlow governs every DOCSIS 1.1+ Service Flow compound TLV (18,
	// 19, 24, 25). Its sub-type 9 is a bandwidth rate (a 4-byte bits-per-
	// second value), in deliberate contrast to the top-level table's
	// unrelated use of type 9 for "Software Upgrade Filename".
	"serviceFlow": {
		1:  {Name: "Service Flow Reference", Kind: docsis.KindUint16, MinLength: 2, MaxLength: 2},
		2:  {Name: "Service Flow ID", Kind: docsis.KindUint32, MinLength: 4, MaxLength: 4},
		6:  {Name: "QoS Parameter Set Type", Kind: docsis.KindUint8, MinLength: 1, MaxLength: 1},
		8:  {Name: "Maximum Concatenated Burst", Kind: docsis.KindUint16, MinLength: 2, MaxLength: 2},
		9:  {Name: "Maximum Sustained Traffic Rate", Kind: docsis.KindBandwidth, MinLength: 4, MaxLength: 4},
		10: {Name: "Minimum Reserved Traffic Rate", Kind: docsis.KindBandwidth, MinLength: 4, MaxLength: 4},
		11: {Name: "Maximum Burst Size", Kind: docsis.KindUint32, MinLength: 4, MaxLength: 4},
		12: {Name: "Traffic Priority", Kind: docsis.KindUint8, MinLength: 1, MaxLength: 1},
		43: {
			Name: "Vendor Specific", Kind: docsis.KindCompound,
			SupportsSubTLVs: true, SubTable: "",
		},
	},
	"packetClassification": {
		1: {Name: "Classifier Reference", Kind: docsis.KindUint8, MinLength: 1, MaxLength: 1},
		2: {Name: "Classifier ID", Kind: docsis.KindUint16, MinLength: 2, MaxLength: 2},
		3: {Name: "Service Flow Reference", Kind: docsis.KindUint16, MinLength: 2, MaxLength: 2},
		9: {Name: "IP Destination Address", Kind: docsis.KindIPv4, MinLength: 4, MaxLength: 8},
	},
	"snmpv3Kickstart": {
		1: {Name: "Security Name", Kind: docsis.KindString, MinLength: -1, MaxLength: -1},
		2: {Name: "Manager Public Number", Kind: docsis.KindHexString, MinLength: -1, MaxLength: -1},
	},
	"snmpv3Notification": {
		1: {Name: "SNMPv3 Notification Receiver IP", Kind: docsis.KindIPv6, MinLength: 16, MaxLength: 16},
		2: {Name: "SNMPv3 Notification Receiver Port", Kind: docsis.KindUint16, MinLength: 2, MaxLength: 2},
		3: {Name: "SNMPv3 Notification Receiver Type", Kind: docsis.KindUint8, MinLength: 1, MaxLength: 1},
	},
	"channelList": {
		1: {Name: "Channel Frequency", Kind: docsis.KindFrequency, MinLength: 4, MaxLength: 4},
		2: {Name: "Channel ID", Kind: docsis.KindUint8, MinLength: 1, MaxLength: 1},
	},
}
