package bracket

import "unicode/utf8"

// LevelMap maps a level index to the ordered labels of that level.
//
// A valid map has keys exactly 0..N-1 for some N >= 1. A level may hold
// no labels, in which case it renders as a blank row. The engine assumes
// a valid map; see package levels for construction and validation.
type LevelMap map[int][]string

// Len returns the number of levels.
func (m LevelMap) Len() int { return len(m) }

// Labels returns the labels of level i, or nil if the level is empty or absent.
func (m LevelMap) Labels(i int) []string { return m[i] }

// LabelCount returns the total number of labels across all levels.
func (m LevelMap) LabelCount() int {
	var n int
	for _, labels := range m {
		n += len(labels)
	}
	return n
}

// FromSlices builds a LevelMap where levels[i] becomes level i.
// The result always satisfies the contiguity invariant.
func FromSlices(levels [][]string) LevelMap {
	m := make(LevelMap, len(levels))
	for i, labels := range levels {
		m[i] = labels
	}
	return m
}

// TextWidth returns the width of s in characters (runes), not bytes.
func TextWidth(s string) int {
	return utf8.RuneCountInString(s)
}
