package document

import (
	"fmt"
	"math"

	"range-remapper/internal/diagnostic"
)

// Diagnostic codes reported by Validate.
const (
	CodeNoSeeds           = "no_seeds"
	CodeOddSeedPairs      = "odd_seed_pairs"
	CodeEmptyStage        = "empty_stage"
	CodeDuplicateStage    = "duplicate_stage"
	CodeEmptyMap          = "empty_map"
	CodeZeroLengthRule    = "zero_length_rule"
	CodeRuleOverflow      = "rule_overflow"
	CodeOverlappingRules  = "overlapping_rules"
	CodeUnknownStage      = "unknown_stage"
	CodeUnreachableTarget = "unreachable_target"
	CodeCycle             = "cycle"
	CodeUnusedMap         = "unused_map"
)

// Validate checks f structurally. It does not build tables, so every problem
// in the document is reported rather than only the first.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("document_is_nil", "document is nil", "", 0)
		return res
	}

	validateSeeds(res, f)

	next := map[string]int{}

	for i := range f.Maps {
		m := &f.Maps[i]
		name := m.Name()

		if m.From == "" || m.To == "" {
			res.AddError(CodeEmptyStage, fmt.Sprintf("map %d has an empty stage name", i), name, m.Line)
			continue
		}

		if prev, ok := next[m.From]; ok {
			res.AddError(CodeDuplicateStage,
				fmt.Sprintf("stage %q already maps to %q", m.From, f.Maps[prev].To), name, m.Line)

			continue
		}

		next[m.From] = i

		validateRules(res, m)
	}

	validateChain(res, f, next)

	return res
}

func validateSeeds(res *diagnostic.Diagnostics, f *File) {
	if len(f.Seeds) == 0 {
		res.AddError(CodeNoSeeds, "document has no seeds", "", 0)
		return
	}

	if len(f.Seeds)%2 != 0 {
		res.AddWarning(CodeOddSeedPairs,
			fmt.Sprintf("%d seeds cannot be read as (start, length) pairs; interval mode will fail", len(f.Seeds)),
			"", 0)
	}
}

func validateRules(res *diagnostic.Diagnostics, m *StageMap) {
	name := m.Name()

	if len(m.Rules) == 0 {
		res.AddWarning(CodeEmptyMap, "map has no rules; every value passes through unchanged", name, m.Line)
		return
	}

	overflow := false

	for i, r := range m.Rules {
		switch {
		case r.Length > math.MaxUint64-r.Source || r.Length > math.MaxUint64-r.Destination:
			overflow = true
			res.AddError(CodeRuleOverflow, fmt.Sprintf("rule %d (%d %d %d) overflows uint64",
				i, r.Destination, r.Source, r.Length), name, r.Line)
		case r.Length == 0:
			res.AddWarning(CodeZeroLengthRule, fmt.Sprintf("rule %d has length 0 and never applies", i), name, r.Line)
		}
	}

	// Overlaps are only reported for maps whose table builds.
	if overflow {
		return
	}

	tbl, err := m.Table()
	if err != nil {
		res.AddError(CodeRuleOverflow, err.Error(), name, m.Line)
		return
	}

	for _, pair := range tbl.Overlaps() {
		i, j := pair[0], pair[1]
		res.AddWarning(CodeOverlappingRules,
			fmt.Sprintf("source ranges of rules %d and %d overlap; rule %d wins", i, j, i),
			name, m.Rules[j].Line)
	}
}

func validateChain(res *diagnostic.Diagnostics, f *File, next map[string]int) {
	if _, ok := next[f.Start]; !ok && f.Start != f.Target {
		res.AddError(CodeUnknownStage, fmt.Sprintf("start stage %q has no outgoing map", f.Start), f.Start, 0)
		return
	}

	used := map[int]bool{}
	seen := map[string]bool{f.Start: true}

	for cur := f.Start; cur != f.Target; {
		i, ok := next[cur]
		if !ok {
			res.AddError(CodeUnreachableTarget,
				fmt.Sprintf("chain from %q stops at %q before reaching %q", f.Start, cur, f.Target), cur, 0)

			return
		}

		used[i] = true
		cur = f.Maps[i].To

		if seen[cur] {
			res.AddError(CodeCycle, fmt.Sprintf("chain from %q loops back to %q", f.Start, cur), cur, f.Maps[i].Line)
			return
		}

		seen[cur] = true
	}

	for i, m := range f.Maps {
		if idx, ok := next[m.From]; ok && idx == i && !used[i] {
			res.AddInfo(CodeUnusedMap,
				fmt.Sprintf("map is not on the chain from %q to %q", f.Start, f.Target), m.Name(), m.Line)
		}
	}
}
