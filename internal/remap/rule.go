package remap

import (
	"fmt"
	"math"

	"range-remapper/internal/interval"
)

// Rule moves every value of Source by the same offset into Destination.
type Rule struct {
	Source      interval.Range
	Destination interval.Range
}

// NewRule validates src and dst and returns the rule mapping one onto the other.
func NewRule(src, dst interval.Range) (Rule, error) {
	if !src.WellFormed() {
		return Rule{}, fmt.Errorf("source %v: %w", src, ErrInvalidRange)
	}
	if !dst.WellFormed() {
		return Rule{}, fmt.Errorf("destination %v: %w", dst, ErrInvalidRange)
	}
	if src.Len() != dst.Len() {
		return Rule{}, fmt.Errorf("source %v has %d values, destination %v has %d: %w",
			src, src.Len(), dst, dst.Len(), ErrLengthMismatch)
	}

	return Rule{Source: src, Destination: dst}, nil
}

// RuleFromTriple builds a rule from the almanac "destination source length"
// form.
func RuleFromTriple(dstStart, srcStart, length uint64) (Rule, error) {
	if length > math.MaxUint64-srcStart || length > math.MaxUint64-dstStart {
		return Rule{}, fmt.Errorf("triple (%d %d %d): %w", dstStart, srcStart, length, ErrOverflow)
	}

	return NewRule(
		interval.New(srcStart, srcStart+length),
		interval.New(dstStart, dstStart+length),
	)
}

// MustRule is like RuleFromTriple but panics on error. Intended for tests and
// fixed tables.
func MustRule(dstStart, srcStart, length uint64) Rule {
	r, err := RuleFromTriple(dstStart, srcStart, length)
	if err != nil {
		panic(err)
	}

	return r
}

// delta is the offset as a two's complement uint64, so that adding it to a
// source value yields the destination value even when the offset is negative.
func (r Rule) delta() uint64 {
	return r.Destination.Start - r.Source.Start
}

// Offset returns Destination.Start - Source.Start.
func (r Rule) Offset() int64 {
	return int64(r.delta())
}

// Apply translates v, reporting false if v is outside the source range.
func (r Rule) Apply(v uint64) (uint64, bool) {
	if !r.Source.Contains(v) {
		return v, false
	}

	return v + r.delta(), true
}

// String renders the rule in triple form.
func (r Rule) String() string {
	return fmt.Sprintf("%d %d %d", r.Destination.Start, r.Source.Start, r.Source.Len())
}
