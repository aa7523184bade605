package report

import "fmt"

// StructuralError reports a document-level shape violation: a missing or
// garbled banner, an unresolved cross-form reference, or a duplicate
// identifier claimed by two forms.
type StructuralError struct {
	Line    int    // physical line number, 0 if not tied to one line
	Message string
}

func (e *StructuralError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("structural error at line %d: %s", e.Line, e.Message)
	}
	return "structural error: " + e.Message
}

// FieldError reports a single fixed-column slot that failed to decode.
type FieldError struct {
	Line     int
	Key      string
	ColStart int
	ColEnd   int
	Message  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q (cols %d-%d) at line %d: %s",
		e.Key, e.ColStart+1, e.ColEnd, e.Line, e.Message)
}

// DiagnosticLookupError reports a diagnostic code with no entry in the
// removal table. Without the entry the resolver cannot know how many
// lines the message occupies, so decoding cannot continue.
type DiagnosticLookupError struct {
	Line  int
	Stage string // "input" or "simulation"
	Code  int
}

func (e *DiagnosticLookupError) Error() string {
	return fmt.Sprintf("unknown %s-stage diagnostic type %d at line %d",
		e.Stage, e.Code, e.Line)
}

// UnitConversionError reports a units label that was expected on a line
// but absent, typically while swapping display labels after conversion.
type UnitConversionError struct {
	Line  int
	Label string
}

func (e *UnitConversionError) Error() string {
	return fmt.Sprintf("expected units label %q not found on line %d", e.Label, e.Line)
}

// RefitError reports a converted value that cannot be rendered in the
// available column width, even in scientific notation. This is
// user-reachable: an enormous simulated quantity in an undersized
// legacy field.
type RefitError struct {
	Line     int
	Key      string
	Value    float64
	Width    int
	FromUnit string
	ToUnit   string
}

func (e *RefitError) Error() string {
	msg := fmt.Sprintf("value %g does not fit in %d characters", e.Value, e.Width)
	if e.Key != "" {
		msg = fmt.Sprintf("field %q: %s", e.Key, msg)
	}
	if e.FromUnit != "" {
		msg += fmt.Sprintf(" (converting %s to %s)", e.FromUnit, e.ToUnit)
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	return msg
}
