package sections

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/ECB2020/Hobyah-sub001/internal/codec"
	"github.com/ECB2020/Hobyah-sub001/internal/document"
)

// hasMarkAt reports whether text carries mark starting at column col.
func hasMarkAt(text, mark string, col int) bool {
	return len(text) >= col+len(mark) && text[col:col+len(mark)] == mark
}

// readComments consumes the form 1A comment block: lines carrying "C "
// at the comment column, terminated by the first line without it. The
// terminator is un-read for the next form. Comment text goes to
// provenance; the lines pass through unconverted.
func readComments(c *Cursor, doc *document.Document) error {
	for {
		rec, err := c.next()
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				return ErrExhausted
			}
			return err
		}
		if !hasMarkAt(rec.Text, commentMark, commentCol) {
			c.rollback()
			return nil
		}
		doc.Provenance.Comments = append(doc.Provenance.Comments,
			strings.TrimSpace(rec.Text[commentCol+len(commentMark):]))
		c.emit(rec.Text)
	}
}

// readOptions decodes the form 1B/1C counts and option switches that
// gate every later form.
func readOptions(c *Cursor, doc *document.Document) error {
	rec, _, err := c.readTable("options", optionsLayout)
	if err != nil {
		return err
	}
	for k, v := range rec {
		doc.Settings[k] = v
	}
	doc.Add(document.SectionRecord{Form: "options", Fields: rec})
	c.log.Debug("decoded run options",
		zap.Int("segments", doc.Setting("numSegments")),
		zap.Int("ventShafts", doc.Setting("numVentShafts")),
		zap.Int("nodes", doc.Setting("numNodes")),
		zap.Int("fans", doc.Setting("numFans")),
		zap.Int("routes", doc.Setting("numRoutes")),
		zap.Int("trainTypes", doc.Setting("numTrainTypes")))
	return nil
}

// readAmbient decodes form 1F. The caption line above the data carries
// the units text; its labels are swapped for the converted report, and
// a missing label is fatal because the layout says it must be there.
func readAmbient(c *Cursor, doc *document.Document) error {
	caption, err := c.next()
	if err != nil {
		if errors.Is(err, ErrExhausted) {
			return ErrExhausted
		}
		return err
	}
	text := caption.Text
	for _, kind := range []string{"temp", "press"} {
		rule, _ := codec.LookupRule(kind)
		from, to := swapDirection(rule, c.toSI)
		text, err = codec.SwapLabel(text, caption.Number, from, to)
		if err != nil {
			return err
		}
	}
	c.emit(text)

	rec, _, err := c.readTable("ambient", ambientLayout)
	if err != nil {
		return err
	}
	for k, v := range rec {
		doc.Settings[k] = v
	}
	doc.Add(document.SectionRecord{Form: "ambient", Fields: rec})
	return nil
}
