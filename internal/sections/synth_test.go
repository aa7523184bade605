package sections

import (
	"fmt"
	"strings"

	"github.com/ECB2020/Hobyah-sub001/internal/report"
)

// cell places text with its first character at a 0-based column.
type cell struct {
	col  int
	text string
}

// row builds one fixed-column line from cells ordered left to right.
func row(cells ...cell) string {
	var b strings.Builder
	for _, c := range cells {
		if b.Len() < c.col {
			b.WriteString(strings.Repeat(" ", c.col-b.Len()))
		}
		b.WriteString(c.text)
	}
	return b.String()
}

// num right-justifies a rendered number so it ends inside the layout
// slot the way SES prints it.
func num(width int, format string, v any) string {
	return fmt.Sprintf("%*s", width, fmt.Sprintf(format, v))
}

// synth assembles a classified content stream for the standard test
// network: two segments, one vent shaft, one node, two fans (one
// switched off), one route, one train type, and a summary block.
type synth struct {
	lines []string
}

func (s *synth) add(cells ...cell) {
	s.lines = append(s.lines, row(cells...))
}

func (s *synth) addText(text string) {
	s.lines = append(s.lines, text)
}

func (s *synth) comments(texts ...string) {
	for _, t := range texts {
		s.add(cell{8, "C  " + t})
	}
}

func (s *synth) options(segs, shafts, nodes, fans, routes, trains, sup, humid, thermo, fire int) {
	s.add(cell{8, num(6, "%d", segs)}, cell{28, num(6, "%d", shafts)}, cell{48, num(6, "%d", nodes)})
	s.add(cell{8, num(6, "%d", fans)}, cell{28, num(6, "%d", routes)}, cell{48, num(6, "%d", trains)})
	s.add(cell{8, num(6, "%d", sup)}, cell{28, num(6, "%d", humid)})
	s.add(cell{8, num(6, "%d", thermo)}, cell{28, num(6, "%d", fire)})
}

func (s *synth) ambient(dry, wet, press, dens float64) {
	s.addText("        AMBIENT CONDITIONS  (DEG F / IN. W.G.)")
	s.add(cell{8, num(10, "%.2f", dry)}, cell{30, num(10, "%.2f", wet)})
	s.add(cell{8, num(10, "%.2f", press)}, cell{30, num(10, "%.4f", dens)})
}

func (s *synth) segment(number int, length, area, perim float64, walls ...float64) {
	s.add(cell{8, num(7, "%d", number)}, cell{20, num(10, "%.2f", length)},
		cell{34, num(10, "%.2f", area)}, cell{48, num(10, "%.2f", perim)},
		cell{62, num(6, "%d", len(walls))})
	for _, w := range walls {
		s.add(cell{12, num(10, "%.2f", w)}, cell{26, num(10, "%.2f", 0.10)})
	}
}

func (s *synth) segmentHeat(sensible, latent float64) {
	s.add(cell{8, num(12, "%.1f", sensible)}, cell{24, num(12, "%.1f", latent)})
}

func (s *synth) ventShaft(number int, grate, flow float64) {
	s.add(cell{8, num(7, "%d", number)}, cell{20, num(10, "%.2f", grate)})
	s.add(cell{20, num(12, "%.3f", flow)})
}

func (s *synth) node(number, seg1, seg2, seg3 int) {
	s.add(cell{8, num(6, "%d", number)}, cell{24, num(6, "%d", seg1)},
		cell{44, num(6, "%d", seg2)}, cell{64, num(6, "%d", seg3)})
}

func (s *synth) fan(number int, press, flow float64) {
	s.add(cell{8, num(6, "%d", number)}, cell{20, num(10, "%.3f", press)},
		cell{34, num(12, "%.3f", flow)})
}

func (s *synth) fanOff(number int) {
	s.add(cell{8, num(6, "%d", number)}, cell{20, fanOffMark})
}

func (s *synth) route(number int, origin float64) {
	s.add(cell{8, num(6, "%d", number)}, cell{30, num(10, "%.1f", origin)})
}

func (s *synth) waypoint(segRef int, dist float64, coast bool) {
	cells := []cell{{8, thruMark}, {16, num(6, "%d", segRef)}, {30, num(10, "%.1f", dist)}}
	if coast {
		cells = append(cells, cell{coastCol, coastMark})
	}
	s.add(cells...)
}

func (s *synth) trainType(number int, length, area, mass, accel, decel float64) {
	s.add(cell{8, num(6, "%d", number)}, cell{20, num(10, "%.1f", length)},
		cell{34, num(10, "%.2f", area)})
	s.add(cell{20, num(12, "%.1f", mass)})
	s.add(cell{20, num(10, "%.2f", accel)}, cell{34, num(10, "%.2f", decel)})
}

func (s *synth) summaryRow(time, vel, dryBulb float64) {
	s.add(cell{summaryCol, summaryMark}, cell{10, num(10, "%.1f", time)},
		cell{30, num(10, "%.2f", vel)}, cell{50, num(10, "%.2f", dryBulb)})
}

// records tags every line valid, numbered from 1.
func (s *synth) records() []report.LineRecord {
	recs := make([]report.LineRecord, len(s.lines))
	for i, t := range s.lines {
		recs[i] = report.LineRecord{Number: i + 1, Text: t, Valid: true}
	}
	return recs
}

// standard builds the full test network.
func standard() *synth {
	s := &synth{}
	s.comments("TEST NETWORK", "TWO SEGMENTS ONE SHAFT")
	s.options(2, 1, 1, 2, 1, 1, 1, 0, 0, 0)
	s.ambient(75.20, 64.40, 0.15, 0.0750)
	s.segment(101, 1000.00, 75.00, 34.00, 75.20, 75.20)
	s.segment(102, 500.00, 80.00, 36.00, 75.20)
	s.ventShaft(201, 25.00, 120000.000)
	s.node(1, 101, 102, 0)
	s.fan(301, 3.000, 100000.000)
	s.fanOff(302)
	s.route(401, 0.0)
	s.waypoint(101, 1000.0, false)
	s.waypoint(102, 500.0, true)
	s.trainType(501, 600.0, 85.00, 800000.0, 3.00, 3.50)
	s.summaryRow(100.0, 800.00, 75.20)
	s.summaryRow(200.0, 820.00, 0.00)
	s.addText("        END OF SIMULATION OUTPUT")
	return s
}
