package arrange

// WarningKind tags a diagnostic emitted when a definition is dropped.
type WarningKind string

const (
	WarnInvalidStyle WarningKind = "invalid-style"
	WarnInvalidGroup WarningKind = "invalid-group"
)

// Warning describes a dropped or degraded definition. For styles rejected
// only by the capability check, Missing names the capabilities whose
// activation would have made the style valid.
type Warning struct {
	Kind    WarningKind      `json:"kind"`
	Style   *StyleDefinition `json:"style,omitempty"`
	Group   *GroupDefinition `json:"group,omitempty"`
	Missing []string         `json:"missing,omitempty"`
}

// Reporter receives warnings as the pipeline drops definitions. Reporting is
// advisory: it never alters the resolved result.
type Reporter interface {
	Report(Warning)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Warning)

func (f ReporterFunc) Report(w Warning) { f(w) }

// Recorder collects warnings in order. Useful in tests and for callers that
// render diagnostics after resolution.
type Recorder struct {
	Warnings []Warning
}

func (r *Recorder) Report(w Warning) {
	r.Warnings = append(r.Warnings, w)
}

// discard swallows warnings when the caller passes a nil Reporter.
type discard struct{}

func (discard) Report(Warning) {}
