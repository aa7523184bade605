// Package convert runs the full decode pipeline over one report held in
// memory: classify, resolve diagnostics, walk the forms. It is the
// engine facade the CLI and the batch runner call; it does no I/O.
package convert

import (
	"go.uber.org/zap"

	"github.com/ECB2020/Hobyah-sub001/internal/diagnostics"
	"github.com/ECB2020/Hobyah-sub001/internal/document"
	"github.com/ECB2020/Hobyah-sub001/internal/report"
	"github.com/ECB2020/Hobyah-sub001/internal/sections"
)

// Result is everything one decode produces. On a fatal error Document
// is nil but Lines keeps whatever converted output was emitted before
// the failure, for diagnosis.
type Result struct {
	Document    *document.Document
	Lines       []string
	Diagnostics []diagnostics.Entry
}

// Run decodes one report. The first fatal error aborts this document;
// nothing is retried. The decode is pure given the input lines and the
// static tables, so callers may run many documents in parallel.
func Run(raw []string, opts sections.Options, log *zap.Logger) (*Result, error) {
	recs, banner, err := report.Classify(raw, log)
	if err != nil {
		return &Result{}, err
	}

	recs, entries, outcome, err := diagnostics.Resolve(recs, log)
	if err != nil {
		return &Result{}, err
	}

	doc, lines, err := sections.Decode(recs, banner, outcome, opts, log)
	if err != nil {
		return &Result{Lines: lines, Diagnostics: entries}, err
	}
	return &Result{Document: doc, Lines: lines, Diagnostics: entries}, nil
}
