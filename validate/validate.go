// Package validate implements the three cumulative validation levels —
// syntax, semantic, and compliance — applied to an already-enriched TLV
// tree ([docsisconf.dev/codec/enrich]). Each level builds on the guarantees
// of the one below it; running the compliance level implies the syntax and
// semantic checks also ran.
package validate

import "docsisconf.dev/codec"

// Severity classifies a [Finding].
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}

// Finding is one validation result: a message and the TLV path it concerns.
// An empty Path refers to the config as a whole.
type Finding struct {
	Severity Severity
	Message  string
	Path     docsis.Path
}

// Result collects every [Finding] produced by [Validate], bucketed by
// severity.
type Result struct {
	Errors   []Finding
	Warnings []Finding
	Info     []Finding
}

// OK reports whether the config is free of errors.
func (r Result) OK() bool { return len(r.Errors) == 0 }

func (r *Result) add(f Finding) {
	switch f.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, f)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, f)
	default:
		r.Info = append(r.Info, f)
	}
}

func (r *Result) merge(findings []Finding) {
	for _, f := range findings {
		r.add(f)
	}
}

// promoteWarnings moves every warning into the error list, per strict mode.
func (r *Result) promoteWarnings() {
	for _, f := range r.Warnings {
		f.Severity = SeverityError
		r.Errors = append(r.Errors, f)
	}
	r.Warnings = nil
}
