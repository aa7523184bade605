// Package document holds the structured result of decoding one SES
// output file: the banner provenance, the settings accumulated while
// walking the forms, and one record per form. The engine hands this
// value to the snapshot and regeneration collaborators; it carries no
// reference back to the line stream.
package document

import (
	"fmt"
	"sort"

	"github.com/ECB2020/Hobyah-sub001/internal/diagnostics"
	"github.com/ECB2020/Hobyah-sub001/internal/report"
)

// Record is a named-field map of decoded scalars. Converted values are
// stored post-conversion.
type Record map[string]float64

// Item is one repeated sub-record within a form: a segment, a fan, a
// route and so on. Number is the identifier SES assigned it; Off marks
// a fan the input file switched off (no numeric fields present).
type Item struct {
	Number int      `json:"number" yaml:"number"`
	Fields Record   `json:"fields,omitempty" yaml:"fields,omitempty"`
	Rows   []Record `json:"rows,omitempty" yaml:"rows,omitempty"`
	Off    bool     `json:"off,omitempty" yaml:"off,omitempty"`
}

// SectionRecord is the output of one form reader.
type SectionRecord struct {
	Form   string `json:"form" yaml:"form"`
	Fields Record `json:"fields,omitempty" yaml:"fields,omitempty"`
	Items  []Item `json:"items,omitempty" yaml:"items,omitempty"`
}

// Provenance identifies the run that produced the report.
type Provenance struct {
	Header   string   `json:"header" yaml:"header"`
	Footer   string   `json:"footer" yaml:"footer"`
	Comments []string `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// Document is the assembled decode result.
type Document struct {
	Provenance Provenance               `json:"provenance" yaml:"provenance"`
	Settings   Record                   `json:"settings" yaml:"settings"`
	Sections   map[string]SectionRecord `json:"sections" yaml:"sections"`
	Outcome    diagnostics.Outcome      `json:"outcome" yaml:"outcome"`

	registry map[string]map[int]string
}

// New returns an empty document ready for the section driver.
func New(banner report.Banner) *Document {
	return &Document{
		Provenance: Provenance{Header: banner.Header, Footer: banner.Footer},
		Settings:   Record{},
		Sections:   map[string]SectionRecord{},
		registry:   map[string]map[int]string{},
	}
}

// Setting returns an accumulated settings value as an integer, which is
// how later forms consume the counts and option codes established by
// earlier ones. Missing keys read as zero.
func (d *Document) Setting(key string) int {
	return int(d.Settings[key])
}

// Add stores a completed section record.
func (d *Document) Add(rec SectionRecord) {
	d.Sections[rec.Form] = rec
}

// Register claims an identifier number in a namespace for the given
// form. Two claims on the same number are fatal: downstream consumers
// key on these numbers, so a duplicate would silently drop data. The
// error names both owners.
func (d *Document) Register(namespace string, number int, form string, line int) error {
	ns := d.registry[namespace]
	if ns == nil {
		ns = map[int]string{}
		d.registry[namespace] = ns
	}
	if prev, dup := ns[number]; dup {
		return &report.StructuralError{Line: line, Message: fmt.Sprintf(
			"%s %d declared twice: first in form %s, again in form %s",
			namespace, number, prev, form)}
	}
	ns[number] = form
	return nil
}

// Resolve checks that a number referenced by a later form was
// introduced earlier in the same namespace.
func (d *Document) Resolve(namespace string, number int, form string, line int) error {
	if _, ok := d.registry[namespace][number]; !ok {
		return &report.StructuralError{Line: line, Message: fmt.Sprintf(
			"form %s refers to unknown %s %d", form, namespace, number)}
	}
	return nil
}

// Identifiers returns the sorted numbers registered in a namespace.
func (d *Document) Identifiers(namespace string) []int {
	ns := d.registry[namespace]
	nums := make([]int, 0, len(ns))
	for n := range ns {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}
