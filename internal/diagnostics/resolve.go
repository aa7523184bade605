package diagnostics

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ECB2020/Hobyah-sub001/internal/report"
)

// Entry is one line lifted out of the content stream into the
// diagnostic log. Line numbers stay physical, so the log reads in
// original document order.
type Entry struct {
	Line  int
	Text  string
	Stage string // "input", "simulation" or "critical"
	Code  int
	Fatal bool
}

// Outcome is the append-only narrative of what the upstream run did,
// derived purely from scanning the content.
type Outcome struct {
	Entries     []string
	InputErrors int
	RunErrors   int
}

func (o *Outcome) note(s string) {
	o.Entries = append(o.Entries, s)
}

var (
	inputMarker = regexp.MustCompile(`\*ERROR\* TYPE\s+(\d+)`)
	simMarker   = regexp.MustCompile(`\*SIMULATION ERROR\* TYPE\s+(\d+)`)
)

const criticalMarker = "MATRIX IS ILL-CONDITIONED"

// Run-state phrases, tested against every valid line. The set is
// closed; unrecognized prose is ignored.
var runStates = []struct {
	phrase string
	entry  string
}{
	{"INPUT VERIFICATION COMPLETE", "input accepted"},
	{"SUPPRESSED BY INPUT ERRORS", "execution suppressed by input errors"},
	{"SIMULATION TERMINATED EARLY", "terminated early due to errors"},
	{"END OF SIMULATION OUTPUT", "simulation ended on schedule"},
}

// Resolve scans the classified content stream once, reclassifying the
// lines that belong to interleaved diagnostic messages. Diagnostics are
// data, not parse failures: the stream keeps every line (invalid ones
// tagged) and decoding continues around them. Only a diagnostic code
// missing from the removal tables aborts, because the resolver then
// cannot know how many lines to take out.
func Resolve(recs []report.LineRecord, log *zap.Logger) ([]report.LineRecord, []Entry, Outcome, error) {
	out := make([]report.LineRecord, 0, len(recs))
	var entries []Entry
	var outcome Outcome
	var ranOrStopped bool
	var criticalSeen bool

	for i := 0; i < len(recs); i++ {
		rec := recs[i]

		stage, code, spec, ok, err := matchMarker(rec)
		if err != nil {
			return nil, nil, Outcome{}, err
		}
		if !ok {
			for _, rs := range runStates {
				if strings.Contains(rec.Text, rs.phrase) {
					outcome.note(rs.entry)
					if rs.phrase != "INPUT VERIFICATION COMPLETE" {
						ranOrStopped = true
					}
				}
			}
			out = append(out, rec)
			continue
		}

		switch stage {
		case "input":
			outcome.InputErrors++
		case "simulation":
			outcome.RunErrors++
		case "critical":
			if !criticalSeen {
				criticalSeen = true
				outcome.note("ill-conditioned heat sink matrix reported")
			}
		}

		// Retroactive reclassification: the message's leading line was
		// already emitted as valid. At most one per diagnostic.
		if spec.LinesBefore > 0 && len(out) > 0 && out[len(out)-1].Valid {
			prev := &out[len(out)-1]
			prev.Valid = false
			entries = append(entries, Entry{Line: prev.Number, Text: prev.Text,
				Stage: stage, Code: code, Fatal: spec.Fatal})
			log.Info("diagnostic line", zap.Int("line", prev.Number),
				zap.String("stage", stage), zap.Int("type", code),
				zap.String("text", strings.TrimSpace(prev.Text)))
		}

		// The marker line and the rest of the message.
		for n := 0; n < spec.LinesAfter && i < len(recs); n++ {
			r := recs[i]
			r.Valid = false
			entries = append(entries, Entry{Line: r.Number, Text: r.Text,
				Stage: stage, Code: code, Fatal: spec.Fatal})
			log.Info("diagnostic line", zap.Int("line", r.Number),
				zap.String("stage", stage), zap.Int("type", code),
				zap.String("text", strings.TrimSpace(r.Text)))
			out = append(out, r)
			i++
		}
		i-- // the outer loop advances once more
	}

	if !ranOrStopped {
		outcome.note("likely crashed before producing runtime output")
	}

	for _, e := range outcome.Entries {
		log.Info("run outcome", zap.String("state", e))
	}

	return out, entries, outcome, nil
}

// matchMarker tests a line against the three marker patterns and looks
// up the removal spec for numbered ones.
func matchMarker(rec report.LineRecord) (stage string, code int, spec Spec, ok bool, err error) {
	if strings.Contains(rec.Text, criticalMarker) {
		return "critical", 0, criticalSpec, true, nil
	}
	if m := simMarker.FindStringSubmatch(rec.Text); m != nil {
		code, _ = strconv.Atoi(m[1])
		spec, found := simSpecs[code]
		if !found {
			return "", 0, Spec{}, false, &report.DiagnosticLookupError{
				Line: rec.Number, Stage: "simulation", Code: code}
		}
		return "simulation", code, spec, true, nil
	}
	if m := inputMarker.FindStringSubmatch(rec.Text); m != nil {
		code, _ = strconv.Atoi(m[1])
		spec, found := inputSpecs[code]
		if !found {
			return "", 0, Spec{}, false, &report.DiagnosticLookupError{
				Line: rec.Number, Stage: "input", Code: code}
		}
		return "input", code, spec, true, nil
	}
	return "", 0, Spec{}, false, nil
}
