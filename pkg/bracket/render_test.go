package bracket

import (
	"bytes"
	"slices"
	"testing"
)

func TestRenderLines(t *testing.T) {
	tests := []struct {
		name   string
		root   string
		levels LevelMap
		opts   []Option
		want   []string
	}{
		{
			name:   "single level carries the name",
			root:   "J",
			levels: LevelMap{0: {"solo"}},
			want:   []string{"J: solo "},
		},
		{
			name:   "two levels put the name on the separator",
			root:   "J",
			levels: LevelMap{0: {"root"}, 1: {"a", "bb"}},
			want: []string{
				"   root ",
				"J:------",
				"   a bb ",
			},
		},
		{
			name: "three levels put the name on the middle content row",
			root: "Judge",
			levels: LevelMap{
				0: {"Alice"},
				1: {"Bob", "Carol"},
				2: {"D", "E", "F"},
			},
			want: []string{
				"         Alice   ",
				"      -----------",
				"Judge: Bob Carol ",
				"      -----------",
				"       D   E   F ",
			},
		},
		{
			name:   "remainder follows the first label",
			root:   "X",
			levels: LevelMap{0: {"abcdefgh"}, 1: {"a", "b", "c"}},
			want: []string{
				"   abcdefgh ",
				"X:----------",
				"   a   b  c ",
			},
		},
		{
			name:   "odd slack puts the extra space right of a single label",
			root:   "N",
			levels: LevelMap{0: {"ab"}, 1: {"abcde"}},
			want: []string{
				"    ab   ",
				"N:-------",
				"   abcde ",
			},
		},
		{
			name:   "empty level renders the gutter alone",
			root:   "J",
			levels: LevelMap{0: {"root"}, 1: {}, 2: {"x", "y"}},
			want: []string{
				"   root ",
				"  ------",
				"J:",
				"  ------",
				"   x  y ",
			},
		},
		{
			name:   "widths count runes, not bytes",
			root:   "Ω",
			levels: LevelMap{0: {"über"}, 1: {"日本", "é"}},
			want: []string{
				"   über ",
				"Ω:------",
				"   日本 é ",
			},
		},
		{
			name:   "larger gap factor widens the diagram",
			root:   "J",
			levels: LevelMap{0: {"root"}, 1: {"a", "bb"}},
			opts:   []Option{WithGapFactor(4)},
			want: []string{
				"    root   ",
				"J:---------",
				"   a    bb ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.root, tt.levels, tt.opts...)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Lines() mismatch\ngot:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestRenderRowKinds(t *testing.T) {
	d := Render("J", LevelMap{0: {"a"}, 1: {"b"}, 2: {"c"}, 3: {"d"}})

	if len(d.Rows) != 7 {
		t.Fatalf("len(Rows) = %d, want 7", len(d.Rows))
	}
	for i, r := range d.Rows {
		wantKind := RowContent
		if i%2 == 1 {
			wantKind = RowSeparator
		}
		if r.Kind != wantKind {
			t.Errorf("Rows[%d].Kind = %v, want %v", i, r.Kind, wantKind)
		}
		if r.Level != (i+1)/2 {
			t.Errorf("Rows[%d].Level = %d, want %d", i, r.Level, (i+1)/2)
		}
	}

	mid, ok := d.MiddleRow()
	if !ok {
		t.Fatal("MiddleRow() found no row")
	}
	if mid.Kind != RowSeparator || mid.Level != 2 {
		t.Errorf("MiddleRow() = %+v, want separator above level 2", mid)
	}
}

func TestMiddleRowIndex(t *testing.T) {
	// (N + (N-1)) / 2 over all rows: content rows sit at even indices.
	tests := []struct {
		levels    int
		wantIndex int
		wantKind  RowKind
	}{
		{1, 0, RowContent},
		{2, 1, RowSeparator},
		{3, 2, RowContent},
		{4, 3, RowSeparator},
		{5, 4, RowContent},
	}

	for _, tt := range tests {
		m := make(LevelMap, tt.levels)
		for i := 0; i < tt.levels; i++ {
			m[i] = []string{"x"}
		}
		d := Render("name", m)
		if d.Layout.Middle != tt.wantIndex {
			t.Errorf("N=%d: Middle = %d, want %d", tt.levels, d.Layout.Middle, tt.wantIndex)
		}
		if got := d.Rows[tt.wantIndex]; !got.Middle || got.Kind != tt.wantKind {
			t.Errorf("N=%d: row %d = %+v, want middle %v", tt.levels, tt.wantIndex, got, tt.wantKind)
		}
	}
}

func TestRenderDoesNotModifyInput(t *testing.T) {
	levels := LevelMap{0: {"root"}, 1: {"a", "bb"}}
	Render("J", levels, WithGapFactor(3))

	if !slices.Equal(levels[0], []string{"root"}) || !slices.Equal(levels[1], []string{"a", "bb"}) {
		t.Errorf("Render modified its input: %v", levels)
	}
	if len(levels) != 2 {
		t.Errorf("Render added levels: %v", levels)
	}
}

func TestDiagramWriteTo(t *testing.T) {
	d := Render("J", LevelMap{0: {"root"}, 1: {"a", "bb"}})

	var buf bytes.Buffer
	n, err := d.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}

	want := "   root \nJ:------\n   a bb \n"
	if buf.String() != want {
		t.Errorf("WriteTo() wrote %q, want %q", buf.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo() = %d bytes, want %d", n, len(want))
	}
	if d.String() != want {
		t.Errorf("String() = %q, want %q", d.String(), want)
	}
}

func TestRenderEmptyMap(t *testing.T) {
	d := Render("J", LevelMap{})
	if len(d.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(d.Rows))
	}
	if _, ok := d.MiddleRow(); ok {
		t.Error("MiddleRow() should report no row for an empty diagram")
	}
}

func TestRowKindString(t *testing.T) {
	if RowContent.String() != "content" {
		t.Errorf("RowContent.String() = %q", RowContent.String())
	}
	if RowSeparator.String() != "separator" {
		t.Errorf("RowSeparator.String() = %q", RowSeparator.String())
	}
}
