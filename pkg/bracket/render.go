package bracket

import (
	"io"
	"strings"
)

// RowKind distinguishes label rows from the dash rows between levels.
type RowKind int

const (
	RowContent   RowKind = iota // labels of one level
	RowSeparator                // dashes joining two levels
)

// String returns "content" or "separator".
func (k RowKind) String() string {
	if k == RowSeparator {
		return "separator"
	}
	return "content"
}

// Row is one printed line of a diagram.
type Row struct {
	Kind   RowKind
	Level  int    // level index; for separators, the level below the line
	Middle bool   // gutter holds "name:" instead of blank padding
	Gutter string // "name:" or len(name)+1 spaces
	Body   string // row text after the gutter

	// Placement of content rows.
	Labels   []string
	Gap      int // spaces between adjacent labels (k >= 2)
	Rem      int // extra spaces after the first label (k >= 2)
	PadLeft  int // spaces before a single label
	PadRight int // spaces after a single label
}

// String returns the full printed line.
func (r Row) String() string { return r.Gutter + r.Body }

// Diagram is a rendered bracket diagram.
type Diagram struct {
	Name   string
	Layout Layout
	Rows   []Row
}

// Render lays out levels under name and returns the rows in print order.
// It never fails for a valid [LevelMap] and does not modify levels.
func Render(name string, levels LevelMap, opts ...Option) *Diagram {
	l := ComputeLayout(levels, opts...)
	d := &Diagram{
		Name:   name,
		Layout: l,
		Rows:   make([]Row, 0, l.RowCount()),
	}

	named := name + ":"
	blank := strings.Repeat(" ", TextWidth(name)+1)
	gutter := func(row int) (string, bool) {
		if row == l.Middle {
			return named, true
		}
		return blank, false
	}

	line := strings.Repeat("-", l.LineWidth())
	for i := 0; i < l.Levels(); i++ {
		if i > 0 {
			g, mid := gutter(2*i - 1)
			d.Rows = append(d.Rows, Row{
				Kind:   RowSeparator,
				Level:  i,
				Middle: mid,
				Gutter: g,
				Body:   line,
			})
		}
		g, mid := gutter(2 * i)
		row := placeLabels(l, i, levels.Labels(i))
		row.Middle, row.Gutter = mid, g
		d.Rows = append(d.Rows, row)
	}
	return d
}

// Lines renders levels and returns the printed lines.
func Lines(name string, levels LevelMap, opts ...Option) []string {
	return Render(name, levels, opts...).Lines()
}

// placeLabels builds the body of content row i.
func placeLabels(l Layout, i int, labels []string) Row {
	row := Row{Kind: RowContent, Level: i, Labels: labels}
	spaces := l.Slack(i)

	var b strings.Builder
	switch k := len(labels); k {
	case 0:
		return row
	case 1:
		row.PadLeft = spaces / 2
		row.PadRight = spaces - row.PadLeft
		b.WriteString(pad(margin + row.PadLeft))
		b.WriteString(labels[0])
		b.WriteString(pad(row.PadRight + margin))
	default:
		row.Gap = spaces / (k - 1)
		row.Rem = spaces % (k - 1)
		b.WriteString(pad(margin))
		for j, s := range labels {
			b.WriteString(s)
			switch {
			case j == 0:
				b.WriteString(pad(row.Gap + row.Rem))
			case j < k-1:
				b.WriteString(pad(row.Gap))
			}
		}
		b.WriteString(pad(margin))
	}
	row.Body = b.String()
	return row
}

func pad(n int) string { return strings.Repeat(" ", n) }

// Lines returns the printed lines in order, without line breaks.
func (d *Diagram) Lines() []string {
	out := make([]string, len(d.Rows))
	for i, r := range d.Rows {
		out[i] = r.String()
	}
	return out
}

// String returns the diagram with every line terminated by a newline.
func (d *Diagram) String() string {
	var b strings.Builder
	for _, r := range d.Rows {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the diagram to w, one line per row.
func (d *Diagram) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// MiddleRow returns the row carrying the root name.
func (d *Diagram) MiddleRow() (Row, bool) {
	for _, r := range d.Rows {
		if r.Middle {
			return r, true
		}
	}
	return Row{}, false
}
