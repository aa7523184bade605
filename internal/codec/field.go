package codec

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ECB2020/Hobyah-sub001/internal/report"
)

// Field describes one fixed-width slot in a section layout. Layouts are
// flat ordered lists of Fields; SkipBefore counts the content lines to
// consume before this field's line (0 means same line as the previous
// field). Start and End are 0-based byte columns, End exclusive.
//
// Kind names a conversion rule, or "int" for an integer post-check, or
// "null" for a value that is read and re-rendered without conversion.
type Field struct {
	SkipBefore int
	Key        string
	Start      int
	End        int
	Kind       string
	Decimals   int
	Gap        int
	NearZero   string
	Desc       string
}

// Width returns the column width of the slot.
func (f Field) Width() int { return f.End - f.Start }

// Extract slices the field out of a line and parses the numeric
// literal. tolBefore/tolAfter suppress the adjacency warning on that
// side, for composite slots like "segment-dash-subsegment" where a
// dash or digit legitimately touches the range.
//
// A slice made of '*' runs is the legacy overflow marker (the writing
// program's field was too narrow for the true value); it decodes to
// zero with a warning rather than failing.
func Extract(text string, lineNo int, f Field, tolBefore, tolAfter bool, log *zap.Logger) (float64, error) {
	if len(text) < f.End {
		return 0, &report.FieldError{Line: lineNo, Key: f.Key,
			ColStart: f.Start, ColEnd: f.End,
			Message: "line is " + strconv.Itoa(len(text)) + " characters, too short"}
	}
	slice := text[f.Start:f.End]
	trimmed := strings.TrimSpace(slice)

	if trimmed == "" {
		return 0, &report.FieldError{Line: lineNo, Key: f.Key,
			ColStart: f.Start, ColEnd: f.End, Message: "field is blank"}
	}

	if isOverflowMarker(trimmed) {
		log.Warn("overflow marker in field, substituting zero",
			zap.String("key", f.Key), zap.Int("line", lineNo))
		return 0, nil
	}

	// A digit or sign hard against the slot usually means the column
	// range in the layout table is off by one. Parse anyway.
	if !tolBefore && f.Start > 0 && isNumericChar(text[f.Start-1]) {
		log.Warn("numeric character immediately before field",
			zap.String("key", f.Key), zap.Int("line", lineNo),
			zap.Int("col", f.Start))
	}
	if !tolAfter && f.End < len(text) && isNumericChar(text[f.End]) {
		log.Warn("numeric character immediately after field",
			zap.String("key", f.Key), zap.Int("line", lineNo),
			zap.Int("col", f.End+1))
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &report.FieldError{Line: lineNo, Key: f.Key,
			ColStart: f.Start, ColEnd: f.End,
			Message: "cannot parse " + strconv.Quote(trimmed) + " as a number"}
	}

	if f.Kind == "int" && v != math.Trunc(v) {
		return 0, &report.FieldError{Line: lineNo, Key: f.Key,
			ColStart: f.Start, ColEnd: f.End,
			Message: "expected an integer, got " + trimmed}
	}
	return v, nil
}

func isOverflowMarker(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '*' {
			return false
		}
	}
	return len(s) > 0
}

func isNumericChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.'
}

// Splice overwrites columns [start, end) of text with repl, which must
// be exactly end-start characters. The line is padded with spaces first
// if it is shorter than end.
func Splice(text string, start, end int, repl string) string {
	if len(text) < end {
		text += strings.Repeat(" ", end-len(text))
	}
	return text[:start] + repl + text[end:]
}

// SwapLabel replaces the first occurrence of a units label on a line
// with its converted counterpart, keeping the overall line width. A
// shorter replacement is padded with spaces; a longer one may only grow
// into following spaces. The label being absent where the layout says
// it should appear is a conversion error.
func SwapLabel(text string, lineNo int, from, to string) (string, error) {
	idx := strings.Index(text, from)
	if idx < 0 {
		return "", &report.UnitConversionError{Line: lineNo, Label: from}
	}
	if len(to) <= len(from) {
		return text[:idx] + to + strings.Repeat(" ", len(from)-len(to)) + text[idx+len(from):], nil
	}
	extra := len(to) - len(from)
	tail := text[idx+len(from):]
	if len(tail) < extra || strings.TrimSpace(tail[:extra]) != "" {
		return "", &report.UnitConversionError{Line: lineNo, Label: from}
	}
	return text[:idx] + to + tail[extra:], nil
}
