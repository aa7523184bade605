package sections

import (
	"errors"
	"strings"

	"github.com/ECB2020/Hobyah-sub001/internal/codec"
	"github.com/ECB2020/Hobyah-sub001/internal/document"
)

// readFans decodes form 7. A fan the input file switched off prints a
// text line instead of the characteristic numbers, so the reader peeks
// one line ahead: the off text commits to a bare record, anything else
// leaves the stream untouched and reads the numeric layout.
func readFans(c *Cursor, doc *document.Document) error {
	count := doc.Setting("numFans")
	items := make([]document.Item, 0, count)

	for i := 0; i < count; i++ {
		if rec, ok := c.peek(); ok && strings.Contains(rec.Text, fanOffMark) {
			line, err := c.next()
			if err != nil {
				return err
			}
			v, err := codec.Extract(line.Text, line.Number, fanLayout[0], false, false, c.log)
			if err != nil {
				return err
			}
			num := int(v)
			if err := doc.Register("fan", num, "7 (fans)", line.Number); err != nil {
				return err
			}
			c.emit(line.Text)
			items = append(items, document.Item{Number: num, Off: true})
			continue
		}

		rec, meta, err := c.readTable("fans", fanLayout)
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				c.log.Warn("report ends before all fans", forTruncation("fans", i, count)...)
				break
			}
			return err
		}
		num := int(rec["fan"])
		if err := doc.Register("fan", num, "7 (fans)", meta.FirstLine); err != nil {
			return err
		}
		delete(rec, "fan")
		items = append(items, document.Item{Number: num, Fields: rec})
	}

	doc.Add(document.SectionRecord{Form: "fans", Items: items})
	return nil
}

// readRoutes decodes form 8: a header line per route followed by
// sentinel-terminated waypoint rows. Rows carry THRU at a fixed column;
// the first line without it belongs to the next construct. A COAST tag
// in the last field position marks a coasting waypoint.
func readRoutes(c *Cursor, doc *document.Document) error {
	count := doc.Setting("numRoutes")
	items := make([]document.Item, 0, count)

	for i := 0; i < count; i++ {
		head, meta, err := c.readTable("routes", routeLayout)
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				c.log.Warn("report ends before all routes", forTruncation("routes", i, count)...)
				break
			}
			return err
		}
		num := int(head["route"])
		if err := doc.Register("route", num, "8 (routes)", meta.FirstLine); err != nil {
			return err
		}
		delete(head, "route")
		item := document.Item{Number: num, Fields: head}

		for {
			rec, ok := c.peek()
			if !ok || !hasMarkAt(rec.Text, thruMark, thruCol) {
				break
			}
			row, rowMeta, err := c.readTable("routes", waypointLayout)
			if err != nil {
				return err
			}
			ref := int(row["segRef"])
			if err := doc.Resolve("segment", ref, "8 (routes)", rowMeta.FirstLine); err != nil {
				return err
			}
			if hasMarkAt(rowMeta.LastText, coastMark, coastCol) {
				row["coast"] = 1
			}
			item.Rows = append(item.Rows, row)
		}
		items = append(items, item)
	}

	doc.Add(document.SectionRecord{Form: "routes", Items: items})
	return nil
}

// readTrainTypes decodes form 9, three fixed lines per type.
func readTrainTypes(c *Cursor, doc *document.Document) error {
	count := doc.Setting("numTrainTypes")
	items := make([]document.Item, 0, count)

	for i := 0; i < count; i++ {
		rec, meta, err := c.readTable("traintypes", trainTypeLayout)
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				c.log.Warn("report ends before all train types", forTruncation("traintypes", i, count)...)
				break
			}
			return err
		}
		num := int(rec["train"])
		if err := doc.Register("train", num, "9 (train types)", meta.FirstLine); err != nil {
			return err
		}
		delete(rec, "train")
		items = append(items, document.Item{Number: num, Fields: rec})
	}

	doc.Add(document.SectionRecord{Form: "traintypes", Items: items})
	return nil
}

// readSummary decodes the supplementary output rows, present only when
// the supplementary print option is on. Rows are sentinel-terminated by
// the AT TIME tag.
func readSummary(c *Cursor, doc *document.Document) error {
	var rows []document.Record
	for {
		rec, ok := c.peek()
		if !ok || !hasMarkAt(rec.Text, summaryMark, summaryCol) {
			break
		}
		row, _, err := c.readTable("summary", summaryLayout)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	sec := document.SectionRecord{Form: "summary"}
	if len(rows) > 0 {
		sec.Items = []document.Item{{Rows: rows}}
	}
	doc.Add(sec)
	return nil
}
