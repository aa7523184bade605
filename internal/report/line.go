// Package report models the raw SES output file: physical lines, page
// furniture, and the banner that identifies a run. The classifier here
// is the first stage of the decode pipeline; everything downstream
// works on the LineRecord stream it produces.
package report

import "strings"

// LineRecord is one content line of the report. Number is the 1-based
// physical line number in the original file and never changes; Valid is
// cleared by the diagnostic resolver when the line belongs to an
// interleaved diagnostic message rather than to the data stream.
type LineRecord struct {
	Number int
	Text   string
	Valid  bool
}

// Banner holds the provenance lines from the first page: the header
// (program version and page marker) and the footer (source file name
// and simulation timestamp).
type Banner struct {
	Header string
	Footer string
}

// Fixed column positions of the page furniture markers. SES prints
// these at the same offsets on every page; a marker found elsewhere
// means the file was truncated or edited.
const (
	headerVersionCol = 8
	headerPageCol    = 98
	footerFileCol    = 1
	footerTimeCol    = 73

	headerVersionMark = "SES VER 4.10"
	headerPageMark    = "PAGE:"
	footerFileMark    = "FILE:"
	footerTimeMark    = "SIMULATION TIME:"
)

// markerAt reports whether mark occurs in text with its first character
// at 0-based column col.
func markerAt(text, mark string, col int) bool {
	if len(text) < col+len(mark) {
		return false
	}
	return text[col:col+len(mark)] == mark
}

// IsHeader reports whether text is a page header line.
func IsHeader(text string) bool {
	return markerAt(text, headerVersionMark, headerVersionCol) &&
		markerAt(text, headerPageMark, headerPageCol)
}

// IsFooter reports whether text is a page footer line.
func IsFooter(text string) bool {
	return markerAt(text, footerFileMark, footerFileCol) &&
		markerAt(text, footerTimeMark, footerTimeCol)
}

// headerLike reports whether text carries the version marker anywhere,
// returning the detected offset. Used to distinguish "no header at all"
// from "header at the wrong columns".
func headerLike(text string) (int, bool) {
	idx := strings.Index(text, headerVersionMark)
	return idx, idx >= 0
}
