package interval

import (
	"cmp"
	"slices"
)

// Sorted returns a copy of rs ordered by Start, then End.
func Sorted(rs []Range) []Range {
	out := slices.Clone(rs)
	slices.SortFunc(out, func(a, b Range) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})
	return out
}

// Merge returns a sorted copy of rs with empty ranges dropped and overlapping
// or adjacent ranges coalesced. The covered value set is unchanged.
func Merge(rs []Range) []Range {
	var out []Range
	for _, r := range Sorted(rs) {
		if r.IsEmpty() {
			continue
		}
		if n := len(out); n > 0 && r.Start <= out[n-1].End {
			if r.End > out[n-1].End {
				out[n-1].End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// Min returns the smallest Start among the non-empty ranges of rs. The second
// result is false if there is none.
func Min(rs []Range) (uint64, bool) {
	var (
		lowest uint64
		found  bool
	)
	for _, r := range rs {
		if r.IsEmpty() {
			continue
		}
		if !found || r.Start < lowest {
			lowest = r.Start
			found = true
		}
	}
	return lowest, found
}
