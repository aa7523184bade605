package regen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ECB2020/Hobyah-sub001/internal/document"
	"github.com/ECB2020/Hobyah-sub001/internal/report"
)

func testDocument() *document.Document {
	doc := document.New(report.Banner{})
	doc.Provenance.Comments = []string{"REGEN TEST"}
	for k, v := range map[string]float64{
		"numSegments": 1, "numVentShafts": 0, "numNodes": 1,
		"numFans": 1, "numRoutes": 1, "numTrainTypes": 0,
		"supOpt": 1, "humidOpt": 0, "thermoOpt": 0, "fireOpt": 0,
		"ambientDryBulb": 24.0, "ambientWetBulb": 18.0,
		"ambientPressure": 37.33, "designDensity": 1.2014,
	} {
		doc.Settings[k] = v
	}
	doc.Add(document.SectionRecord{Form: "segments", Items: []document.Item{{
		Number: 101,
		Fields: document.Record{"length": 304.8, "area": 6.97},
		Rows:   []document.Record{{"wallTemp": 24.0, "wetted": 0.1}},
	}}})
	doc.Add(document.SectionRecord{Form: "fans", Items: []document.Item{{
		Number: 302, Off: true,
	}}})
	doc.Add(document.SectionRecord{Form: "routes", Items: []document.Item{{
		Number: 401,
		Fields: document.Record{"originOffset": 0},
		Rows: []document.Record{
			{"segRef": 101, "distance": 304.8},
			{"segRef": 101, "distance": 152.4, "coast": 1},
		},
	}}})
	return doc
}

func TestRegenerate(t *testing.T) {
	lines, err := Regenerate(testDocument())
	require.NoError(t, err)

	assert.Equal(t, "C  REGEN TEST", lines[0])

	// Count card, in the fixed form order.
	assert.Equal(t, []string{"1", "0", "1", "1", "1", "0", "1", "0", "0", "0"},
		strings.Fields(lines[1]))

	// Ambient card in declaration order, not alphabetical.
	assert.Equal(t, []string{"24.00", "18.00", "37.33", "1.2014"},
		strings.Fields(lines[2]))

	t.Run("segment cards", func(t *testing.T) {
		// Item fields print alphabetically within the card.
		assert.Equal(t, []string{"101", "6.97", "304.80"}, strings.Fields(lines[3]))
		row := lines[4]
		assert.True(t, strings.HasPrefix(row, strings.Repeat(" ", slotWidth)))
		assert.Equal(t, []string{"24.00", "0.10"}, strings.Fields(row))
	})

	t.Run("switched-off fan", func(t *testing.T) {
		assert.Equal(t, []string{"302", "OFF"}, strings.Fields(lines[5]))
	})

	t.Run("route cards", func(t *testing.T) {
		assert.Equal(t, []string{"401", "0.0"}, strings.Fields(lines[6]))
		assert.Equal(t, []string{"304.8", "101"}, strings.Fields(lines[7]))
		// The coast flag renders as a trailing tag, not a number.
		assert.Equal(t, []string{"152.4", "101", "COAST"}, strings.Fields(lines[8]))
		assert.Len(t, lines, 9)
	})
}

func TestRegenerateSkipsAbsentForms(t *testing.T) {
	doc := document.New(report.Banner{})
	lines, err := Regenerate(doc)
	require.NoError(t, err)
	// Just the count and ambient cards.
	require.Len(t, lines, 2)
}

func TestRender(t *testing.T) {
	assert.Equal(t, "a\nb\n", Render([]string{"a", "b"}))
	assert.Equal(t, "", Render(nil))
}
