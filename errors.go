package docsis

import (
	"strconv"
	"strings"
)

// ErrorKind is the closed set of error kinds a public operation of this
// module can report. Values carrying location information implement
// this via the concrete error types below rather than ErrorKind itself;
// ErrorKind exists so callers can switch on the kind of an error returned
// through the generic [Error] interface without a type assertion chain.
type ErrorKind uint8

const (
	KindErrUnspecified ErrorKind = iota
	KindErrInsufficientData
	KindErrInvalidLength
	KindErrUnknownLengthForm
	KindErrNestingTooDeep
	KindErrInvalidTerminator
	KindErrValueOutOfRange
	KindErrInvalidFormat
	KindErrLengthMismatch
	KindErrUnknownValueKind
	KindErrUnknownTlv
	KindErrVersionMismatch
	KindErrDuplicateSingleton
	KindErrMissingRequired
	KindErrSubflowInconsistent
	KindErrInvalidCmMic
	KindErrInvalidCmtsMic
	KindErrFileNotFound
	KindErrUnsupportedFormat
)

func (k ErrorKind) String() string {
	switch k {
	case KindErrInsufficientData:
		return "InsufficientData"
	case KindErrInvalidLength:
		return "InvalidLength"
	case KindErrUnknownLengthForm:
		return "UnknownLengthForm"
	case KindErrNestingTooDeep:
		return "NestingTooDeep"
	case KindErrInvalidTerminator:
		return "InvalidTerminator"
	case KindErrValueOutOfRange:
		return "ValueOutOfRange"
	case KindErrInvalidFormat:
		return "InvalidFormat"
	case KindErrLengthMismatch:
		return "LengthMismatch"
	case KindErrUnknownValueKind:
		return "UnknownValueKind"
	case KindErrUnknownTlv:
		return "UnknownTlv"
	case KindErrVersionMismatch:
		return "VersionMismatch"
	case KindErrDuplicateSingleton:
		return "DuplicateSingleton"
	case KindErrMissingRequired:
		return "MissingRequired"
	case KindErrSubflowInconsistent:
		return "SubflowInconsistent"
	case KindErrInvalidCmMic:
		return "InvalidCmMic"
	case KindErrInvalidCmtsMic:
		return "InvalidCmtsMic"
	case KindErrFileNotFound:
		return "FileNotFound"
	case KindErrUnsupportedFormat:
		return "UnsupportedFormat"
	default:
		return "Unspecified"
	}
}

// Path identifies the ancestor chain of TLV types leading to the location of
// an error, e.g. a malformed sub-TLV under Service Flow (24) -> Vendor Specific (43)
// would carry Path{24, 43}. An empty Path refers to the top level.
type Path []int

func (p Path) String() string {
	if len(p) == 0 {
		return "<root>"
	}
	var b strings.Builder
	for i, t := range p {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(strconv.Itoa(t))
	}
	return b.String()
}

// Error is implemented by every error type this module returns from a
// public operation. It carries the information a user needs to see: a
// kind, a location, and (where applicable) a remediation hint.
type Error interface {
	error
	ErrorKind() ErrorKind
	TLVPath() Path
}

// ValueOutOfRangeError reports that a formatted or raw value fell outside
// the domain allowed for its [ValueKind].
type ValueOutOfRangeError struct {
	Kind  ValueKind
	Value any
	Bound string
	Path  Path
}

func (e *ValueOutOfRangeError) ErrorKind() ErrorKind { return KindErrValueOutOfRange }
func (e *ValueOutOfRangeError) TLVPath() Path { return e.Path }
func (e *ValueOutOfRangeError) Error() string {
	s := "docsis: value out of range for " + e.Kind.String()
	if e.Bound != "" {
		s += " (" + e.Bound + ")"
	}
	if len(e.Path) > 0 {
		s += " at " + e.Path.String()
	}
	return s
}

// InvalidFormatError reports that a formatted-value string could not be
// parsed for its declared [ValueKind].
type InvalidFormatError struct {
	Kind  ValueKind
	Input string
	Path  Path
	Hint  string
}

func (e *InvalidFormatError) ErrorKind() ErrorKind { return KindErrInvalidFormat }
func (e *InvalidFormatError) TLVPath() Path { return e.Path }
func (e *InvalidFormatError) Error() string {
	s := "docsis: invalid " + e.Kind.String() + " value " + strconv.Quote(e.Input)
	if len(e.Path) > 0 {
		s += " at " + e.Path.String()
	}
	if e.Hint != "" {
		s += " (" + e.Hint + ")"
	}
	return s
}

// LengthMismatchError reports that a value's byte length did not match the
// length required or bounded by its specification entry.
type LengthMismatchError struct {
	Kind      ValueKind
	Got, Want int
	Path      Path
}

func (e *LengthMismatchError) ErrorKind() ErrorKind { return KindErrLengthMismatch }
func (e *LengthMismatchError) TLVPath() Path { return e.Path }
func (e *LengthMismatchError) Error() string {
	s := "docsis: length mismatch for " + e.Kind.String() + ": got " +
		strconv.Itoa(e.Got) + ", want " + strconv.Itoa(e.Want)
	if len(e.Path) > 0 {
		s += " at " + e.Path.String()
	}
	return s
}

// VersionMismatchError reports a TLV introduced after the target DOCSIS
// version.
type VersionMismatchError struct {
	Type       int
	Introduced Version
	Target     Version
	Path       Path
}

func (e *VersionMismatchError) ErrorKind() ErrorKind { return KindErrVersionMismatch }
func (e *VersionMismatchError) TLVPath() Path { return e.Path }
func (e *VersionMismatchError) Error() string {
	return "docsis: TLV " + strconv.Itoa(e.Type) + " at " + e.Path.String() +
		" requires DOCSIS " + e.Introduced.String() + ", target is " + e.Target.String() +
		" (raise target_version to at least " + e.Introduced.String() + ")"
}

// StructuralError covers the structural error kinds: DuplicateSingleton,
// MissingRequired, SubflowInconsistent. The enricher also reports
// NestingTooDeep and (in strict mode) InvalidLength through it.
type StructuralError struct {
	Kind    ErrorKind
	Message string
	Path    Path
}

func (e *StructuralError) ErrorKind() ErrorKind { return e.Kind }
func (e *StructuralError) TLVPath() Path { return e.Path }
func (e *StructuralError) Error() string {
	s := "docsis: " + e.Message
	if len(e.Path) > 0 {
		s += " at " + e.Path.String()
	}
	return s
}
