package sections

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ECB2020/Hobyah-sub001/internal/codec"
	"github.com/ECB2020/Hobyah-sub001/internal/document"
	"github.com/ECB2020/Hobyah-sub001/internal/report"
)

// tableMeta reports where a table landed in the file, for identifier
// registration and for readers that test text outside the numeric
// slots (route coasting flags).
type tableMeta struct {
	FirstLine int
	LastLine  int
	LastText  string // last line after field re-rendering, already emitted
}

// readTable decodes one flat field layout. Fields with SkipBefore > 0
// advance that many lines first; successive fields with SkipBefore 0
// share a line. Each decoded value is converted and re-rendered into
// its own columns, so the edited lines that reach the output carry the
// converted report.
//
// Exhaustion before the first line is ErrExhausted (form absent in a
// truncated document); exhaustion mid-table is structural.
func (c *Cursor) readTable(form string, layout []codec.Field) (document.Record, tableMeta, error) {
	rec := document.Record{}
	var meta tableMeta
	var edited string
	var have bool
	prevGapZero := false

	for _, f := range layout {
		for s := 0; s < f.SkipBefore; s++ {
			if have {
				c.emit(edited)
			}
			line, err := c.next()
			if err != nil {
				if !have && errors.Is(err, ErrExhausted) {
					return nil, meta, ErrExhausted
				}
				return nil, meta, &report.StructuralError{Line: meta.LastLine,
					Message: fmt.Sprintf("report truncated inside form %s", form)}
			}
			edited = line.Text
			have = true
			if meta.FirstLine == 0 {
				meta.FirstLine = line.Number
			}
			meta.LastLine = line.Number
			prevGapZero = false
		}

		v, err := codec.Extract(edited, meta.LastLine, f, prevGapZero, f.Gap == 0, c.log)
		if err != nil {
			return nil, meta, err
		}
		prevGapZero = f.Gap == 0

		converted, rule, err := codec.Convert(v, f.Kind, c.toSI, f.NearZero)
		if err != nil {
			return nil, meta, err
		}
		rec[f.Key] = converted

		if f.Kind == "int" || f.Kind == "null" || f.Kind == "" {
			continue
		}

		text, used, err := codec.Shoehorn(converted, f.Width(), f.Decimals, false)
		if err != nil {
			var refit *report.RefitError
			if errors.As(err, &refit) {
				refit.Line = meta.LastLine
				refit.Key = f.Key
				refit.FromUnit, refit.ToUnit = swapDirection(rule, c.toSI)
			}
			return nil, meta, err
		}
		if used < f.Decimals {
			c.log.Warn("decimal places reduced to fit column",
				zap.String("key", f.Key), zap.Int("line", meta.LastLine),
				zap.Int("requested", f.Decimals), zap.Int("used", used))
		}
		edited = codec.Splice(edited, f.Start, f.End, text)
	}

	if have {
		c.emit(edited)
		meta.LastText = edited
	}
	return rec, meta, nil
}

// swapDirection orients a rule's display labels for the active
// conversion direction.
func swapDirection(r codec.Rule, toSI bool) (from, to string) {
	if toSI {
		return r.USLabel, r.SILabel
	}
	return r.SILabel, r.USLabel
}
