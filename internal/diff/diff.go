// Package diff compares a converted report against its source, line by
// line, for conversion QA. Numeric fields are expected to change;
// everything else (captions, prose, diagnostic lines) should pass
// through byte-identical, so the hunk listing makes conversion bugs
// easy to spot.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineType classifies one line of the comparison.
type LineType int

const (
	LineContext LineType = iota
	LineAdded
	LineRemoved
)

// Line is a single line in a hunk.
type Line struct {
	Number  int // 1-based in the side it came from
	Content string
	Type    LineType
}

// Hunk is a group of nearby changes with surrounding context.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// Result summarizes one source/converted comparison.
type Result struct {
	Hunks        []Hunk
	LinesChanged int
}

// contextLines of unchanged text kept around each hunk.
const contextLines = 3

// Compare diffs source against converted at line granularity.
func Compare(source, converted string) *Result {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	a, b, lineArray := dmp.DiffLinesToChars(source, converted)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	ops := toOperations(diffs)
	res := &Result{Hunks: group(ops)}
	for _, op := range ops {
		if op.typ != LineContext {
			res.LinesChanged++
		}
	}
	return res
}

// Format renders the result as a unified diff body.
func (r *Result) Format() string {
	var b strings.Builder
	for _, h := range r.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, l := range h.Lines {
			switch l.Type {
			case LineAdded:
				b.WriteString("+")
			case LineRemoved:
				b.WriteString("-")
			default:
				b.WriteString(" ")
			}
			b.WriteString(l.Content)
			b.WriteString("\n")
		}
	}
	return b.String()
}

type operation struct {
	typ     LineType
	oldLine int
	newLine int
	content string
}

func toOperations(diffs []diffmatchpatch.Diff) []operation {
	var ops []operation
	oldLine, newLine := 0, 0

	for _, d := range diffs {
		lines := strings.Split(d.Text, "\n")
		if n := len(lines); n > 0 && lines[n-1] == "" {
			lines = lines[:n-1]
		}
		for _, line := range lines {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				ops = append(ops, operation{LineContext, oldLine, newLine, line})
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				ops = append(ops, operation{LineRemoved, oldLine, -1, line})
				oldLine++
			case diffmatchpatch.DiffInsert:
				ops = append(ops, operation{LineAdded, -1, newLine, line})
				newLine++
			}
		}
	}
	return ops
}

// group collects operations into hunks with bounded context, the same
// shape a unified diff tool prints.
func group(ops []operation) []Hunk {
	var hunks []Hunk
	var cur *Hunk
	lastChange := -1

	flush := func() {
		if cur != nil && len(cur.Lines) > 0 {
			counts(cur)
			hunks = append(hunks, *cur)
			cur = nil
		}
	}

	for i, op := range ops {
		if op.typ != LineContext {
			if cur == nil {
				cur = &Hunk{}
				start := i - contextLines
				if start < 0 {
					start = 0
				}
				cur.OldStart = ops[start].oldLine + 1
				cur.NewStart = ops[start].newLine + 1
				for j := start; j < i; j++ {
					cur.Lines = append(cur.Lines, Line{
						Number: ops[j].oldLine + 1, Content: ops[j].content, Type: LineContext})
				}
			}
			lastChange = i
		}
		if cur == nil {
			continue
		}

		num := op.oldLine + 1
		if op.typ == LineAdded {
			num = op.newLine + 1
		}
		cur.Lines = append(cur.Lines, Line{Number: num, Content: op.content, Type: op.typ})

		if op.typ == LineContext && i-lastChange >= contextLines {
			flush()
		}
	}
	flush()
	return hunks
}

func counts(h *Hunk) {
	for _, l := range h.Lines {
		if l.Type != LineAdded {
			h.OldCount++
		}
		if l.Type != LineRemoved {
			h.NewCount++
		}
	}
}
