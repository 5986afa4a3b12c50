package bracket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(LevelMap{0: {"root"}, 1: {"a", "bb"}})

	assert.Equal(t, DefaultGapFactor, l.GapFactor)
	assert.Equal(t, []int{4, 4}, l.Widths)
	assert.Equal(t, []int{4, 3}, l.LabelWidths)
	assert.Equal(t, 4, l.Total)
	assert.Equal(t, 6, l.LineWidth())
	assert.Equal(t, 1, l.Middle)
	assert.Equal(t, 3, l.RowCount())
	assert.Equal(t, 2, l.Levels())
	assert.Equal(t, 1, l.Slack(1))
}

func TestComputeLayoutGapFactor(t *testing.T) {
	levels := LevelMap{0: {"a", "b", "c"}, 1: {"wide-label"}}

	tests := []struct {
		name      string
		opts      []Option
		wantGap   int
		wantWidth []int
		wantTotal int
	}{
		{"default", nil, 1, []int{5, 10}, 10},
		{"four", []Option{WithGapFactor(4)}, 4, []int{11, 10}, 11},
		{"zero clamps to one", []Option{WithGapFactor(0)}, 1, []int{5, 10}, 10},
		{"negative clamps to one", []Option{WithGapFactor(-3)}, 1, []int{5, 10}, 10},
		{"last option wins", []Option{WithGapFactor(9), WithGapFactor(2)}, 2, []int{7, 10}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ComputeLayout(levels, tt.opts...)
			assert.Equal(t, tt.wantGap, l.GapFactor)
			assert.Equal(t, tt.wantWidth, l.Widths)
			assert.Equal(t, tt.wantTotal, l.Total)
		})
	}
}

func TestComputeLayoutEmptyLevel(t *testing.T) {
	l := ComputeLayout(LevelMap{0: {}, 1: {"x"}, 2: nil})

	assert.Equal(t, []int{0, 1, 0}, l.Widths)
	assert.Equal(t, 1, l.Total)
	assert.Equal(t, 2, l.Middle)
}

func TestComputeLayoutAllEmpty(t *testing.T) {
	l := ComputeLayout(LevelMap{0: {}, 1: {}})

	assert.Zero(t, l.Total)
	assert.Equal(t, 2, l.LineWidth())

	d := Render("J", LevelMap{0: {}, 1: {}})
	assert.Equal(t, []string{"  ", "J:--", "  "}, d.Lines())
}

func TestComputeLayoutNoLevels(t *testing.T) {
	l := ComputeLayout(nil)

	assert.Zero(t, l.Levels())
	assert.Zero(t, l.RowCount())
	assert.Zero(t, l.Middle)
}

func TestLevelMapHelpers(t *testing.T) {
	m := FromSlices([][]string{{"root"}, {}, {"a", "b"}})

	require.Equal(t, 3, m.Len())
	assert.Equal(t, 3, m.LabelCount())
	assert.Equal(t, []string{"a", "b"}, m.Labels(2))
	assert.Empty(t, m.Labels(1))
	assert.Nil(t, m.Labels(7))
}

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 0, TextWidth(""))
	assert.Equal(t, 4, TextWidth("root"))
	assert.Equal(t, 4, TextWidth("über"))
	assert.Equal(t, 2, TextWidth("日本"))
}
