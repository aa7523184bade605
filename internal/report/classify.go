package report

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Classify walks the raw physical lines of one report and returns the
// content stream with page furniture removed, plus the banner from the
// first page. Line numbers in the returned records are the original
// 1-based physical numbers; nothing is renumbered.
//
// Every returned record starts out Valid; the diagnostic resolver
// downgrades the ones that belong to interleaved messages.
func Classify(raw []string, log *zap.Logger) ([]LineRecord, Banner, error) {
	var (
		banner      Banner
		recs        []LineRecord
		headerSeen  bool
		footerSeen  bool
		headerCount int
		footerCount int
	)

	for i, text := range raw {
		num := i + 1

		if IsHeader(text) {
			headerCount++
			if !headerSeen {
				headerSeen = true
				banner.Header = strings.TrimSpace(text)
				page, err := headerPage(text)
				if err != nil {
					return nil, Banner{}, &StructuralError{Line: num,
						Message: "page number unreadable in first header: " + err.Error()}
				}
				if page != 1 {
					return nil, Banner{}, &StructuralError{Line: num,
						Message: "first header is for page " + strconv.Itoa(page) +
							"; the first-page banner was lost upstream"}
				}
			}
			continue
		}

		// A line carrying the version marker but failing the full header
		// test is a mangled header, almost always from truncation or
		// hand edits.
		if off, ok := headerLike(text); ok {
			if off == headerVersionCol {
				return nil, Banner{}, &StructuralError{Line: num,
					Message: "header line is missing its page marker"}
			}
			return nil, Banner{}, &StructuralError{Line: num,
				Message: "header marker found at column " + strconv.Itoa(off) +
					", expected column " + strconv.Itoa(headerVersionCol)}
		}

		if IsFooter(text) {
			footerCount++
			if headerSeen && !footerSeen {
				footerSeen = true
				banner.Footer = strings.TrimSpace(text)
			}
			continue
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		recs = append(recs, LineRecord{Number: num, Text: text, Valid: true})
	}

	if !headerSeen {
		return nil, Banner{}, &StructuralError{
			Message: "no page header found; not a recognizable SES output file"}
	}
	if !footerSeen {
		return nil, Banner{}, &StructuralError{
			Message: "no page footer found after the first header"}
	}

	log.Debug("classified report lines",
		zap.Int("physical", len(raw)),
		zap.Int("content", len(recs)),
		zap.Int("headers", headerCount),
		zap.Int("footers", footerCount))

	return recs, banner, nil
}

// headerPage extracts the page number printed after the PAGE: marker.
func headerPage(text string) (int, error) {
	rest := text[headerPageCol+len(headerPageMark):]
	return strconv.Atoi(strings.TrimSpace(rest))
}
