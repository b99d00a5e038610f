package tabnav

import "time"

// DiagnosticKind classifies recorded diagnostics.
type DiagnosticKind int

const (
	// DiagMisconfiguredFeature marks a styling/feature mismatch that
	// was turned into a no-op, e.g. a header accessory attached while
	// the header region is disabled. Never fatal: a widget must not
	// crash a host application over a styling mistake.
	DiagMisconfiguredFeature DiagnosticKind = iota
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagMisconfiguredFeature:
		return "misconfigured feature"
	default:
		return "unknown"
	}
}

// Diagnostic is one recorded non-fatal problem.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	At      time.Time
}

type diagnosticLog struct {
	entries []Diagnostic
}

func (d *diagnosticLog) record(kind DiagnosticKind, msg string) {
	d.entries = append(d.entries, Diagnostic{Kind: kind, Message: msg, At: time.Now()})
}
