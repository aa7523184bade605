package codec

import (
	"strconv"
	"strings"

	"github.com/ECB2020/Hobyah-sub001/internal/report"
)

// Shoehorn renders v into exactly width characters. It tries the
// requested decimal count first, backs off one decimal place at a time
// down to a bare integer, and finally falls back to scientific notation
// with a width budget of width-2 and a mantissa precision of that
// budget minus 5. The returned int is the decimal count actually used
// (-1 for scientific notation) so callers can log the back-off.
//
// Rendering a value that already fits at the requested decimals is
// idempotent: the output re-parses and re-renders to the same bytes.
//
// left selects left-justification (regenerated input files); reports
// are right-justified.
func Shoehorn(v float64, width, decimals int, left bool) (string, int, error) {
	for d := decimals; d >= 0; d-- {
		s := strconv.FormatFloat(v, 'f', d, 64)
		if len(s) <= width {
			return justify(s, width, left), d, nil
		}
	}

	// Scientific fallback. Precision below zero means the slot cannot
	// hold any rendering of the value.
	prec := (width - 2) - 5
	if prec >= 0 {
		s := strconv.FormatFloat(v, 'e', prec, 64)
		if len(s) <= width {
			return justify(s, width, left), -1, nil
		}
	}
	return "", 0, &report.RefitError{Value: v, Width: width}
}

func justify(s string, width int, left bool) string {
	pad := strings.Repeat(" ", width-len(s))
	if left {
		return s + pad
	}
	return pad + s
}
