package bracket

// DefaultGapFactor is the minimum number of spaces between two labels on
// the same row.
const DefaultGapFactor = 1

// margin is the single space kept on each side of every row body.
const margin = 1

// Option configures layout and rendering.
type Option func(*config)

type config struct {
	gap int
}

func newConfig(opts ...Option) config {
	c := config{gap: DefaultGapFactor}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithGapFactor sets the minimum label separation. Values below 1 are
// raised to 1 so labels never touch.
func WithGapFactor(n int) Option {
	return func(c *config) { c.gap = max(n, 1) }
}

// Layout is the measurement pass of a diagram. It is computed once per
// render and only read afterwards.
type Layout struct {
	GapFactor   int   // minimum spaces between adjacent labels
	Widths      []int // content width per level, labels plus reserved gaps
	LabelWidths []int // summed label widths per level, gaps excluded
	Total       int   // widest content width; every row is padded to it
	Middle      int   // index of the row carrying the root name
}

// ComputeLayout measures every level of levels.
//
// The middle row index is (N + (N-1)) / 2 where N is the number of levels,
// counted over all printed rows (content and separator). For an even N it
// falls on a separator row.
func ComputeLayout(levels LevelMap, opts ...Option) Layout {
	c := newConfig(opts...)
	n := levels.Len()

	l := Layout{
		GapFactor:   c.gap,
		Widths:      make([]int, n),
		LabelWidths: make([]int, n),
	}
	if n == 0 {
		return l
	}

	for i := 0; i < n; i++ {
		labels := levels.Labels(i)
		var sum int
		for _, s := range labels {
			sum += TextWidth(s)
		}
		l.LabelWidths[i] = sum
		l.Widths[i] = sum + c.gap*max(len(labels)-1, 0)
		l.Total = max(l.Total, l.Widths[i])
	}
	l.Middle = (n + (n - 1)) / 2
	return l
}

// Levels returns the number of measured levels.
func (l Layout) Levels() int { return len(l.Widths) }

// RowCount returns the number of printed rows: one per level plus one
// separator between each pair of adjacent levels.
func (l Layout) RowCount() int {
	if len(l.Widths) == 0 {
		return 0
	}
	return 2*len(l.Widths) - 1
}

// LineWidth returns the width of a separator row, which is also the body
// width of every non-empty content row.
func (l Layout) LineWidth() int { return l.Total + 2*margin }

// Slack returns the spaces level i must absorb to reach the shared width.
func (l Layout) Slack(i int) int { return l.Total - l.LabelWidths[i] }
