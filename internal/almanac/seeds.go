package almanac

import (
	"fmt"
	"math"

	"range-remapper/internal/interval"
)

//go:generate go tool stringer -type=Mode -linecomment -output=mode_string.go

// Mode selects how the seed numbers of a document become initial ranges.
// ModeScalar treats every seed as a single value; ModeInterval reads the
// seeds as (start, length) pairs.
type Mode int

const (
	_ Mode = iota // zero value is invalid, forces callers to pick a mode

	ModeScalar   // scalar
	ModeInterval // interval
)

// ParseMode accepts the String form of a mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeScalar, ModeInterval} {
		if m.String() == s {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown mode %q (want %v or %v)", s, ModeScalar, ModeInterval)
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// Type implements pflag.Value.
func (*Mode) Type() string {
	return "mode"
}

// Ranges converts seeds according to m.
func (m Mode) Ranges(seeds []uint64) ([]interval.Range, error) {
	switch m {
	case ModeScalar:
		return ScalarRanges(seeds)
	case ModeInterval:
		return PairRanges(seeds)
	default:
		return nil, fmt.Errorf("invalid mode %v", m)
	}
}

// ScalarRanges returns [v, v+1) for every seed v.
func ScalarRanges(seeds []uint64) ([]interval.Range, error) {
	out := make([]interval.Range, 0, len(seeds))

	for _, v := range seeds {
		if v == math.MaxUint64 {
			return nil, fmt.Errorf("seed %d: %w", v, ErrSeedOverflow)
		}

		out = append(out, interval.Single(v))
	}

	return out, nil
}

// PairRanges reads seeds as consecutive (start, length) pairs.
func PairRanges(seeds []uint64) ([]interval.Range, error) {
	if len(seeds)%2 != 0 {
		return nil, fmt.Errorf("%d seeds: %w", len(seeds), ErrOddPairs)
	}

	out := make([]interval.Range, 0, len(seeds)/2)

	for i := 0; i < len(seeds); i += 2 {
		start, length := seeds[i], seeds[i+1]
		if length > math.MaxUint64-start {
			return nil, fmt.Errorf("seed pair (%d %d): %w", start, length, ErrSeedOverflow)
		}

		out = append(out, interval.New(start, start+length))
	}

	return out, nil
}
