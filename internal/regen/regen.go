// Package regen emits an equivalent input-style file from a decoded
// document. This is a best-effort secondary feature: it is a pure
// function of the document value and never touches the line stream the
// document came from. Values are written left-justified in fixed-width
// card slots, in whichever unit system the decode produced.
package regen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ECB2020/Hobyah-sub001/internal/codec"
	"github.com/ECB2020/Hobyah-sub001/internal/document"
)

const slotWidth = 12

// card accumulates one fixed-width output line.
type card struct {
	b strings.Builder
}

func (c *card) num(v float64, decimals int) error {
	text, _, err := codec.Shoehorn(v, slotWidth, decimals, true)
	if err != nil {
		return err
	}
	c.b.WriteString(text)
	return nil
}

func (c *card) int(v int) {
	c.b.WriteString(fmt.Sprintf("%-*d", slotWidth, v))
}

func (c *card) String() string {
	return strings.TrimRight(c.b.String(), " ")
}

// Regenerate renders the document as input-style cards: the comment
// block, the count card, the ambient card, then one card group per
// item of each form, in form order.
func Regenerate(doc *document.Document) ([]string, error) {
	var out []string

	for _, comment := range doc.Provenance.Comments {
		out = append(out, "C  "+comment)
	}

	var counts card
	for _, key := range []string{"numSegments", "numVentShafts", "numNodes",
		"numFans", "numRoutes", "numTrainTypes", "supOpt", "humidOpt",
		"thermoOpt", "fireOpt"} {
		counts.int(int(doc.Settings[key]))
	}
	out = append(out, counts.String())

	var ambient card
	for _, f := range []struct {
		key      string
		decimals int
	}{
		{"ambientDryBulb", 2}, {"ambientWetBulb", 2},
		{"ambientPressure", 2}, {"designDensity", 4},
	} {
		if err := ambient.num(doc.Settings[f.key], f.decimals); err != nil {
			return nil, err
		}
	}
	out = append(out, ambient.String())

	for _, form := range []string{"segments", "ventshafts", "nodes", "fans",
		"routes", "traintypes"} {
		sec, ok := doc.Sections[form]
		if !ok {
			continue
		}
		lines, err := itemCards(sec)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}

	return out, nil
}

// fieldDecimals is the card precision per field key; unlisted keys are
// integers-in-disguise and printed with one decimal.
var fieldDecimals = map[string]int{
	"length": 2, "area": 2, "perimeter": 2, "wallTemp": 2, "wetted": 2,
	"sensible": 1, "latent": 1, "grateArea": 2, "designFlow": 3,
	"totalPressure": 3, "ratedFlow": 3, "originOffset": 1, "distance": 1,
	"frontalArea": 2, "mass": 1, "maxAccel": 2, "maxDecel": 2,
}

func itemCards(sec document.SectionRecord) ([]string, error) {
	var out []string
	for _, item := range sec.Items {
		var c card
		c.int(item.Number)
		if item.Off {
			c.b.WriteString("OFF")
			out = append(out, c.String())
			continue
		}
		for _, key := range sortedKeys(item.Fields) {
			if err := writeField(&c, key, item.Fields[key]); err != nil {
				return nil, err
			}
		}
		out = append(out, c.String())

		for _, row := range item.Rows {
			var rc card
			rc.b.WriteString(strings.Repeat(" ", slotWidth))
			for _, key := range sortedKeys(row) {
				if key == "coast" {
					continue
				}
				if err := writeField(&rc, key, row[key]); err != nil {
					return nil, err
				}
			}
			if row["coast"] != 0 {
				rc.b.WriteString("COAST")
			}
			out = append(out, rc.String())
		}
	}
	return out, nil
}

func writeField(c *card, key string, v float64) error {
	d, ok := fieldDecimals[key]
	if !ok {
		c.int(int(v))
		return nil
	}
	return c.num(v, d)
}

func sortedKeys(r document.Record) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render joins regenerated cards into file text.
func Render(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
