package diagnostics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ECB2020/Hobyah-sub001/internal/report"
)

func contentLines(texts ...string) []report.LineRecord {
	recs := make([]report.LineRecord, len(texts))
	for i, t := range texts {
		recs[i] = report.LineRecord{Number: i + 1, Text: t, Valid: true}
	}
	return recs
}

func validTexts(recs []report.LineRecord) []string {
	var out []string
	for _, r := range recs {
		if r.Valid {
			out = append(out, r.Text)
		}
	}
	return out
}

func TestResolveNoDiagnostics(t *testing.T) {
	recs := contentLines("ONE", "TWO", "END OF SIMULATION OUTPUT")
	out, entries, outcome, err := Resolve(recs, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Empty(t, entries)
	assert.Equal(t, []string{"simulation ended on schedule"}, outcome.Entries)
	assert.Zero(t, outcome.InputErrors)
}

func TestResolveRetroactiveRemoval(t *testing.T) {
	// Input type 12 spans one line before the marker and six from the
	// marker on: exactly seven lines leave the valid stream.
	texts := []string{
		"KEEP A",
		"KEEP B",
		"context printed before the marker",
		"*ERROR* TYPE 12      SOMETHING IMPOSSIBLE",
		"detail 1", "detail 2", "detail 3", "detail 4", "detail 5",
		"KEEP C",
		"INPUT VERIFICATION COMPLETE",
	}
	out, entries, outcome, err := Resolve(contentLines(texts...), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"KEEP A", "KEEP B", "KEEP C", "INPUT VERIFICATION COMPLETE"},
		validTexts(out))
	require.Len(t, entries, 7)

	// The diagnostic log keeps original, contiguous line numbers.
	for i, e := range entries {
		assert.Equal(t, 3+i, e.Line)
		assert.Equal(t, "input", e.Stage)
		assert.Equal(t, 12, e.Code)
		assert.True(t, e.Fatal)
	}
	assert.Equal(t, 1, outcome.InputErrors)
	assert.Contains(t, outcome.Entries, "input accepted")

	// Every line is still present in the stream for audit.
	assert.Len(t, out, len(texts))
}

func TestResolveSimulationStage(t *testing.T) {
	texts := []string{
		"KEEP",
		"*SIMULATION ERROR* TYPE 4    TRAIN LEFT THE ROUTE",
		"detail",
		"END OF SIMULATION OUTPUT",
	}
	out, entries, outcome, err := Resolve(contentLines(texts...), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"KEEP", "END OF SIMULATION OUTPUT"}, validTexts(out))
	require.Len(t, entries, 2)
	assert.Equal(t, "simulation", entries[0].Stage)
	assert.False(t, entries[0].Fatal)
	assert.Equal(t, 1, outcome.RunErrors)
}

func TestResolveUnknownCode(t *testing.T) {
	texts := []string{"KEEP", "*ERROR* TYPE 999     NEVER DEFINED"}
	_, _, _, err := Resolve(contentLines(texts...), zap.NewNop())

	var le *report.DiagnosticLookupError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 999, le.Code)
	assert.Equal(t, "input", le.Stage)
	assert.Equal(t, 2, le.Line)
}

func TestResolveCriticalCondition(t *testing.T) {
	// The unnumbered critical message removes its fixed span and is
	// announced in the outcome only once.
	var texts []string
	texts = append(texts, "KEEP A", "lead-in",
		"THE HEAT SINK MATRIX IS ILL-CONDITIONED",
		"detail 1", "detail 2", "detail 3")
	texts = append(texts, "KEEP B", "lead-in",
		"THE HEAT SINK MATRIX IS ILL-CONDITIONED",
		"detail 1", "detail 2", "detail 3")
	texts = append(texts, "END OF SIMULATION OUTPUT")

	out, entries, outcome, err := Resolve(contentLines(texts...), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"KEEP A", "KEEP B", "END OF SIMULATION OUTPUT"}, validTexts(out))
	assert.Len(t, entries, 10) // (1 before + 4 after) twice

	count := 0
	for _, e := range outcome.Entries {
		if e == "ill-conditioned heat sink matrix reported" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestResolveLikelyCrashed(t *testing.T) {
	_, _, outcome, err := Resolve(contentLines("SOME CONTENT", "MORE CONTENT"), zap.NewNop())
	require.NoError(t, err)
	assert.Contains(t, outcome.Entries, "likely crashed before producing runtime output")
}

func TestResolveTruncatedMessage(t *testing.T) {
	// A diagnostic cut off by the end of the file takes what is there.
	texts := []string{"KEEP", fmt.Sprintf("*ERROR* TYPE %d   TRUNCATED", 10)}
	out, entries, _, err := Resolve(contentLines(texts...), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"KEEP"}, validTexts(out))
	assert.Len(t, entries, 1)
}
