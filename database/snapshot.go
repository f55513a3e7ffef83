// This file contains the human-readable snapshot rendering used by
// debugging output and tests. Sections appear in a fixed order and every
// list inside a section is sorted, so the rendering is stable for a given
// set of equivalence classes.

package database

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikenye/geomdb/fact"
)

// String renders the database snapshot: one section per fact kind in the
// order coll, para, perp, eqangle, cong, eqratio, simtri, contri, circle,
// with point names sorted alphabetically inside every line and segment
// list. Sections with nothing to show are omitted.
func (d *Database) String() string {
	var b strings.Builder
	b.WriteString("\nDatabase\n")

	var collLines []string
	for _, lk := range d.lineOrder {
		points := d.lines[lk]
		if points.Size() < 3 {
			continue
		}
		collLines = append(collLines, fmt.Sprintf("  coll(%s)\n", joinPoints(points.Sorted())))
	}
	if len(collLines) > 0 {
		b.WriteString("\n> Coll Facts\n")
		for _, line := range collLines {
			b.WriteString(line)
		}
	}

	if len(d.paraFacts) > 0 {
		b.WriteString("\n> Para Facts\n")
		for _, class := range d.paraFacts {
			b.WriteString("  para(")
			for _, lk := range sortedLineKeys(class) {
				fmt.Fprintf(&b, " [%s]", joinPoints(d.lines[lk].Sorted()))
			}
			b.WriteString(" )\n")
		}
	}

	if len(d.perpFacts) > 0 {
		b.WriteString("\n> Perp Facts\n")
		for _, pair := range d.perpFacts {
			fmt.Fprintf(&b, "  perp( [%s] [%s] )\n",
				joinPoints(d.linePointsOrKey(pair[0])),
				joinPoints(d.linePointsOrKey(pair[1])))
		}
	}

	if len(d.eqangleFacts) > 0 {
		b.WriteString("\n> Eqangle Facts\n")
		for _, class := range d.eqangleFacts {
			var rendered []string
			for a := range class {
				rendered = append(rendered, fmt.Sprintf("Angle([%s],[%s])",
					joinPoints(d.linePointsOrKey(a.LK1())),
					joinPoints(d.linePointsOrKey(a.LK2()))))
			}
			sort.Strings(rendered)
			fmt.Fprintf(&b, "  eqangle( %s )\n", strings.Join(rendered, ", "))
		}
	}

	var congLines []string
	for _, ck := range d.congOrder {
		class := d.congs[ck]
		if class.Size() < 2 {
			continue
		}
		var names []string
		for _, s := range class.Sorted() {
			names = append(names, s.String())
		}
		congLines = append(congLines, fmt.Sprintf("  cong(%s)\n", strings.Join(names, ", ")))
	}
	if len(congLines) > 0 {
		b.WriteString("\n> Cong Facts\n")
		for _, line := range congLines {
			b.WriteString(line)
		}
	}

	if len(d.eqratioFacts) > 0 {
		b.WriteString("\n> Eqratio Facts\n")
		for _, class := range d.eqratioFacts {
			var rendered []string
			for r := range class {
				rendered = append(rendered, fmt.Sprintf("Ratio([%s],[%s])",
					d.congSegmentsOrKey(r.C1()), d.congSegmentsOrKey(r.C2())))
			}
			sort.Strings(rendered)
			fmt.Fprintf(&b, "  eqratio( %s )\n", strings.Join(rendered, ", "))
		}
	}

	writeTriangleSection(&b, "Simtri", "simtri", d.simtriFacts)
	writeTriangleSection(&b, "Contri", "contri", d.contriFacts)

	if len(d.circles) > 0 {
		b.WriteString("\n> Circle Facts\n")
		for _, c := range d.circles {
			fmt.Fprintf(&b, "  %s\n", fact.NewCircle(c.centre, c.points.Sorted()...))
		}
	}

	b.WriteString("\n" + strings.Repeat("#", 40) + "\n")
	return b.String()
}

func writeTriangleSection(b *strings.Builder, title, kind string, classes []triangleClass) {
	if len(classes) == 0 {
		return
	}
	fmt.Fprintf(b, "\n> %s Facts\n", title)
	for _, class := range classes {
		var names []string
		for t := range class {
			names = append(names, t.String())
		}
		sort.Strings(names)
		fmt.Fprintf(b, "  %s( %s )\n", kind, strings.Join(names, ", "))
	}
}

func joinPoints(points []fact.Point) string {
	names := make([]string, len(points))
	for i, p := range points {
		names[i] = string(p)
	}
	return strings.Join(names, ",")
}

// linePointsOrKey renders a line by its sorted points, falling back to the
// bare key if the class is gone. The fallback never fires while referential
// integrity holds; it keeps the renderer total.
func (d *Database) linePointsOrKey(lk fact.LineKey) []fact.Point {
	if line, ok := d.lines[lk]; ok {
		return line.Sorted()
	}
	return []fact.Point{fact.Point(lk)}
}

func (d *Database) congSegmentsOrKey(ck fact.CongKey) string {
	class, ok := d.congs[ck]
	if !ok {
		return string(ck)
	}
	var names []string
	for _, s := range class.Sorted() {
		names = append(names, s.String())
	}
	return strings.Join(names, ",")
}

func sortedLineKeys(class lineKeySet) []fact.LineKey {
	keys := make([]fact.LineKey, 0, len(class))
	for lk := range class {
		keys = append(keys, lk)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
