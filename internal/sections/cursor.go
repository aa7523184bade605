// Package sections walks the fixed, conditionally-branching sequence of
// forms in an SES output file. Each form has a dedicated reader that
// consumes valid lines through the shared cursor and produces one
// section record; which forms and sub-blocks are read at all is decided
// purely from settings established by earlier forms.
package sections

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ECB2020/Hobyah-sub001/internal/report"
)

// ErrExhausted signals that the content stream ended at a form or item
// boundary. Partial documents are common (crashed runs) and still
// valuable, so the driver treats this as a clean stop, not a failure.
var ErrExhausted = errors.New("content stream exhausted")

// Cursor is the single piece of mutable state in the decode: an index
// into the diagnostic-tagged line stream, owned by the driver and
// threaded through every reader. Lines already tagged invalid
// (diagnostic messages) are transparent to readers; the cursor copies
// them straight to the converted output as it passes them.
type Cursor struct {
	lines []report.LineRecord
	pos   int
	last  int
	out   []string
	toSI  bool
	log   *zap.Logger
}

func newCursor(lines []report.LineRecord, toSI bool, log *zap.Logger) *Cursor {
	return &Cursor{lines: lines, toSI: toSI, log: log}
}

// next returns the next valid line, emitting any interleaved diagnostic
// lines to the output verbatim on the way. The caller is responsible
// for emitting the (possibly edited) valid line itself.
func (c *Cursor) next() (report.LineRecord, error) {
	for c.pos < len(c.lines) {
		rec := c.lines[c.pos]
		if !rec.Valid {
			c.out = append(c.out, rec.Text)
			c.pos++
			continue
		}
		c.last = c.pos
		c.pos++
		return rec, nil
	}
	return report.LineRecord{}, ErrExhausted
}

// peek returns the next valid line without consuming it and without
// emitting anything. This is the sanctioned one-line lookahead; a
// reader that peeks either commits by calling next or leaves the
// stream untouched.
func (c *Cursor) peek() (report.LineRecord, bool) {
	for i := c.pos; i < len(c.lines); i++ {
		if c.lines[i].Valid {
			return c.lines[i], true
		}
	}
	return report.LineRecord{}, false
}

// rollback re-points the cursor at the last valid line returned by
// next, so a sentinel loop can un-read the first line that belongs to
// the next construct. Diagnostic lines passed on the way have already
// been emitted exactly once and are not re-emitted.
func (c *Cursor) rollback() {
	c.pos = c.last
}

// emit appends one line of converted output.
func (c *Cursor) emit(text string) {
	c.out = append(c.out, text)
}
