package levels

import (
	"strconv"
	"strings"

	"github.com/matzehuels/judgefmt/pkg/bracket"
	"github.com/matzehuels/judgefmt/pkg/errors"
)

// Marker prefixes every level token.
const Marker = "-l"

// Option configures [Build].
type Option func(*builder)

// WithAllowEmpty lets a level hold no labels.
func WithAllowEmpty(allow bool) Option {
	return func(b *builder) { b.allowEmpty = allow }
}

type builder struct {
	allowEmpty bool
}

func newBuilder(opts ...Option) builder {
	b := builder{}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// IsMarker reports whether tok starts a new level.
func IsMarker(tok string) bool {
	return strings.HasPrefix(tok, Marker)
}

// Build parses tokens into a validated level map.
func Build(tokens []string, opts ...Option) (bracket.LevelMap, error) {
	b := newBuilder(opts...)

	if len(tokens) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySpec, "no levels given")
	}

	levels := make(bracket.LevelMap)
	for pos := 0; pos < len(tokens); {
		tok := tokens[pos]
		if !IsMarker(tok) {
			return nil, errors.New(errors.ErrCodeInvalidLevelMarker,
				"expected a level marker like %s0, got %q", Marker, tok)
		}
		index, err := parseIndex(tok)
		if err != nil {
			return nil, err
		}
		if _, dup := levels[index]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateLevel, "level %d given more than once", index)
		}

		pos++
		start := pos
		for pos < len(tokens) && !IsMarker(tokens[pos]) {
			pos++
		}
		labels := tokens[start:pos]
		if len(labels) == 0 && !b.allowEmpty {
			return nil, errors.New(errors.ErrCodeEmptyLevel, "level %d has no labels", index)
		}
		for _, s := range labels {
			if err := errors.ValidateLabel(s); err != nil {
				return nil, err
			}
		}
		own := make([]string, len(labels))
		copy(own, labels)
		levels[index] = own
	}

	if err := Validate(levels, opts...); err != nil {
		return nil, err
	}
	return levels, nil
}

// parseIndex extracts the level index from a marker token.
func parseIndex(tok string) (int, error) {
	raw := strings.TrimPrefix(tok, Marker)
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidLevelIndex, err, "level %q is not an integer", raw)
	}
	if index < 0 {
		return 0, errors.New(errors.ErrCodeInvalidLevelIndex, "level %d is negative", index)
	}
	return index, nil
}

// Validate checks that levels is non-empty and its indices are exactly
// 0..N-1. Levels without labels are rejected unless [WithAllowEmpty] is set.
func Validate(levels bracket.LevelMap, opts ...Option) error {
	b := newBuilder(opts...)
	if len(levels) == 0 {
		return errors.New(errors.ErrCodeEmptySpec, "no levels given")
	}
	for i := 0; i < len(levels); i++ {
		labels, ok := levels[i]
		if !ok {
			return errors.New(errors.ErrCodeMissingLevel, "level %d is missing", i)
		}
		if len(labels) == 0 && !b.allowEmpty {
			return errors.New(errors.ErrCodeEmptyLevel, "level %d has no labels", i)
		}
	}
	return nil
}
