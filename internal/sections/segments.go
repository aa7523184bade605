package sections

import (
	"errors"

	"github.com/ECB2020/Hobyah-sub001/internal/document"
)

// readSegments decodes form 3: numSegments repetitions of a geometry
// line, a counted list of subsegment rows, and, when the fire option is
// on, a steady-state heat sub-block. Segment numbers are registered in
// the "segment" namespace; later forms resolve against it.
func readSegments(c *Cursor, doc *document.Document) error {
	count := doc.Setting("numSegments")
	items := make([]document.Item, 0, count)

	for i := 0; i < count; i++ {
		geo, meta, err := c.readTable("segments", segmentLayout)
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				c.log.Warn("report ends before all segments", forTruncation("segments", i, count)...)
				break
			}
			return err
		}
		num := int(geo["segment"])
		if err := doc.Register("segment", num, "3 (segments)", meta.FirstLine); err != nil {
			return err
		}
		delete(geo, "segment")

		item := document.Item{Number: num, Fields: geo}
		for r := 0; r < int(geo["subsegments"]); r++ {
			row, _, err := c.readTable("segments", subsegmentLayout)
			if err != nil {
				return err
			}
			item.Rows = append(item.Rows, row)
		}

		if doc.Setting("fireOpt") > 0 {
			heat, _, err := c.readTable("segments", segmentHeatLayout)
			if err != nil {
				return err
			}
			for k, v := range heat {
				item.Fields[k] = v
			}
		}
		items = append(items, item)
	}

	doc.Add(document.SectionRecord{Form: "segments", Items: items})
	return nil
}

// readVentShafts decodes form 5. Shaft numbers live in the segment
// namespace, so a shaft reusing a form 3 number is a fatal duplicate
// that names both forms.
func readVentShafts(c *Cursor, doc *document.Document) error {
	count := doc.Setting("numVentShafts")
	items := make([]document.Item, 0, count)

	for i := 0; i < count; i++ {
		rec, meta, err := c.readTable("ventshafts", ventShaftLayout)
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				c.log.Warn("report ends before all vent shafts", forTruncation("ventshafts", i, count)...)
				break
			}
			return err
		}
		num := int(rec["shaft"])
		if err := doc.Register("segment", num, "5 (vent shafts)", meta.FirstLine); err != nil {
			return err
		}
		delete(rec, "shaft")
		items = append(items, document.Item{Number: num, Fields: rec})
	}

	doc.Add(document.SectionRecord{Form: "ventshafts", Items: items})
	return nil
}

// readNodes decodes form 6. Every nonzero connected-segment slot must
// resolve against the segment namespace.
func readNodes(c *Cursor, doc *document.Document) error {
	count := doc.Setting("numNodes")
	items := make([]document.Item, 0, count)

	for i := 0; i < count; i++ {
		rec, meta, err := c.readTable("nodes", nodeLayout)
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				c.log.Warn("report ends before all nodes", forTruncation("nodes", i, count)...)
				break
			}
			return err
		}
		num := int(rec["node"])
		if err := doc.Register("node", num, "6 (nodes)", meta.FirstLine); err != nil {
			return err
		}
		for _, key := range []string{"seg1", "seg2", "seg3"} {
			if ref := int(rec[key]); ref != 0 {
				if err := doc.Resolve("segment", ref, "6 (nodes)", meta.FirstLine); err != nil {
					return err
				}
			}
		}
		delete(rec, "node")
		items = append(items, document.Item{Number: num, Fields: rec})
	}

	doc.Add(document.SectionRecord{Form: "nodes", Items: items})
	return nil
}
