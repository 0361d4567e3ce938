// Package remap implements the translation table that connects two stages
// of an almanac.
//
// A Table is an ordered list of Rules. Every rule covers a source range and
// shifts the values inside it by a fixed offset. Values no rule covers keep
// their identity.
//
// # Range translation
//
// TranslateRanges never classifies a whole input range as matched or
// unmatched. Each input range is intersected with each rule's source range in
// table order:
//
//   - the intersection is shifted and emitted;
//   - the uncovered leftovers (zero, one or two pieces) are carried on to the
//     next rule;
//   - whatever is still uncovered after the last rule is emitted unchanged.
//
// The total length of the output always equals the total length of the
// input. If two rules overlap, the earlier one wins for the shared values,
// exactly as it does for Translate.
package remap

import (
	"fmt"
	"slices"

	"range-remapper/internal/interval"
)

// Table holds the rules of one stage transition. A Table is immutable once
// created and safe for concurrent reads.
type Table struct {
	rules []Rule
}

// NewTable validates every rule and returns a table that applies them in the
// given order.
func NewTable(rules ...Rule) (*Table, error) {
	for i, r := range rules {
		if _, err := NewRule(r.Source, r.Destination); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}

	return &Table{rules: slices.Clone(rules)}, nil
}

// NewTableFromTriples builds a table from "destination source length" triples.
func NewTableFromTriples(triples ...[3]uint64) (*Table, error) {
	rules := make([]Rule, 0, len(triples))

	for i, t := range triples {
		r, err := RuleFromTriple(t[0], t[1], t[2])
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}

		rules = append(rules, r)
	}

	return &Table{rules: rules}, nil
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of the rules in table order.
func (t *Table) Rules() []Rule {
	return slices.Clone(t.rules)
}

// Translate returns v shifted by the first rule whose source contains it, or
// v itself if there is none.
func (t *Table) Translate(v uint64) uint64 {
	for _, r := range t.rules {
		if out, ok := r.Apply(v); ok {
			return out
		}
	}

	return v
}

// TranslateRanges maps every input range through the table and returns a new
// slice. Empty input ranges are dropped; no empty range is ever emitted. The
// input slice is not modified.
func (t *Table) TranslateRanges(in []interval.Range) []interval.Range {
	out := make([]interval.Range, 0, len(in))

	for _, r := range in {
		if r.IsEmpty() {
			continue
		}

		out = t.translateRange(out, r)
	}

	return out
}

// translateRange appends the image of r to out.
func (t *Table) translateRange(out []interval.Range, r interval.Range) []interval.Range {
	pending := []interval.Range{r}

	for _, rule := range t.rules {
		if len(pending) == 0 {
			break
		}

		// Zero-length rules cover nothing.
		if rule.Source.IsEmpty() {
			continue
		}

		next := make([]interval.Range, 0, len(pending)+1)

		for _, p := range pending {
			if !p.Overlaps(rule.Source) {
				next = append(next, p)
				continue
			}

			if rule.Source.IsSupersetOf(p) {
				out = append(out, p.Shift(rule.delta()))
				continue
			}

			covered := p.Intersect(rule.Source)
			out = append(out, covered.Shift(rule.delta()))
			next = append(next, p.Subtract(rule.Source)...)
		}

		pending = next
	}

	return append(out, pending...)
}

// Overlaps returns the index pairs (i < j) of rules whose source ranges
// share values. A well-formed table returns none.
func (t *Table) Overlaps() [][2]int {
	var pairs [][2]int

	for i := range t.rules {
		for j := i + 1; j < len(t.rules); j++ {
			if t.rules[i].Source.Overlaps(t.rules[j].Source) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs
}
