// Package levels builds and validates the level map consumed by the
// bracket layout engine.
//
// # Token Grammar
//
// A level specification is a flat token list:
//
//	-l0 final -l1 semi-a semi-b -l2 q1 q2 q3 q4
//
// A token starting with "-l" is a level marker; the integer that follows is
// the level index. Every token after a marker, up to the next marker, is a
// label of that level.
//
// # Validation
//
// [Build] guarantees the [bracket.LevelMap] invariant: level indices form
// the contiguous range 0..N-1, each index given once. By default every
// level must hold at least one label; [WithAllowEmpty] relaxes that so a
// bare marker produces an empty level.
//
// All failures are *errors.Error values whose codes satisfy
// errors.IsArgError, so callers can answer them with a usage message.
package levels
