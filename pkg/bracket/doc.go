// Package bracket lays out and renders labeled bracket diagrams.
//
// # Overview
//
// A bracket diagram attaches a named root to one or more ordered levels.
// Each level is a row of sibling labels; adjacent levels are joined by a
// separator row of dashes. Every row is padded to one shared width so the
// separators and label rows line up vertically:
//
//	   root
//	J:------
//	   a bb
//
// The root name and a colon are printed in the gutter of the middle row; all
// other rows carry blank padding of the same width.
//
// # Layout
//
// Rendering is done in two passes. [ComputeLayout] measures every level once
// and records the content widths, the shared width and the middle row index
// in an immutable [Layout]. [Render] then builds the rows from that layout
// without any accumulating state:
//
//	d := bracket.Render("J", bracket.LevelMap{
//	    0: {"root"},
//	    1: {"a", "bb"},
//	})
//	d.WriteTo(os.Stdout)
//
// Widths are counted in runes, so accented labels align the same way ASCII
// labels do. Display-cell width (wide CJK glyphs, emoji) is not considered.
//
// # Gap Factor
//
// The gap factor is the minimum number of spaces reserved between two
// labels of the same row when measuring a level. It defaults to
// [DefaultGapFactor] and can be raised with [WithGapFactor]. The renderer
// spreads the row's slack over the same gaps, so the inserted spacing is
// never smaller than the reserved one.
//
// # Row Placement
//
//   - An empty level renders as a gutter with no body.
//   - A single label is centered; an odd remainder goes to its right side.
//   - Two or more labels share the slack as equal gaps; the division
//     remainder is appended after the first label.
//
// # Concurrency
//
// All functions are pure: they read the [LevelMap] without modifying it and
// return fresh values, so they are safe to call from multiple goroutines.
package bracket
