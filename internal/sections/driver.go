package sections

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ECB2020/Hobyah-sub001/internal/diagnostics"
	"github.com/ECB2020/Hobyah-sub001/internal/document"
	"github.com/ECB2020/Hobyah-sub001/internal/report"
)

// Options controls the decode-wide conversion direction.
type Options struct {
	// ToSI converts US customary values to SI. False runs the
	// conversion the other way, for reports already in SI.
	ToSI bool
}

// reader is the uniform contract every form reader follows: consume
// valid lines from the cursor forward, produce a complete section
// record or a fatal error. Partially-filled records are forbidden.
type reader func(*Cursor, *document.Document) error

// sequence is the fixed form order. present gates conditionally-present
// forms on settings accumulated by earlier ones; it never looks ahead
// in the stream.
var sequence = []struct {
	id      string
	read    reader
	present func(*document.Document) bool
}{
	{id: "comments", read: readComments},
	{id: "options", read: readOptions},
	{id: "ambient", read: readAmbient},
	{id: "segments", read: readSegments},
	{id: "ventshafts", read: readVentShafts},
	{id: "nodes", read: readNodes},
	{id: "fans", read: readFans},
	{id: "routes", read: readRoutes},
	{id: "traintypes", read: readTrainTypes},
	{id: "summary", read: readSummary,
		present: func(d *document.Document) bool { return d.Setting("supOpt") > 0 }},
}

// Decode walks the form sequence over the resolved line stream and
// assembles the document. The returned lines are the converted report,
// including diagnostic lines copied through verbatim; they are returned
// even on a fatal error so a failed decode can still be inspected.
func Decode(recs []report.LineRecord, banner report.Banner, outcome diagnostics.Outcome,
	opts Options, log *zap.Logger) (*document.Document, []string, error) {

	doc := document.New(banner)
	doc.Outcome = outcome
	cur := newCursor(recs, opts.ToSI, log)

	for _, s := range sequence {
		if s.present != nil && !s.present(doc) {
			log.Debug("form not present in this run", zap.String("form", s.id))
			continue
		}
		if err := s.read(cur, doc); err != nil {
			if errors.Is(err, ErrExhausted) {
				log.Warn("report ends before form", zap.String("form", s.id))
				break
			}
			return nil, cur.out, err
		}
		log.Debug("form decoded", zap.String("form", s.id))
	}

	// Anything after the last form (runtime prose, trailing diagnostics)
	// passes through unchanged.
	for {
		rec, err := cur.next()
		if err != nil {
			break
		}
		cur.emit(rec.Text)
	}

	return doc, cur.out, nil
}

// forTruncation builds the log fields for a repeated form cut short by
// the end of a partial document.
func forTruncation(form string, got, want int) []zap.Field {
	return []zap.Field{
		zap.String("form", form),
		zap.Int("decoded", got),
		zap.Int("declared", want),
	}
}
