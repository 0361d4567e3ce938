// Package interval provides half-open ranges over uint64 values and the
// set operations the remapper is built from.
package interval

import "fmt"

// Range is the half-open interval [Start, End).
type Range struct {
	// Start is the inclusive start of the range.
	Start uint64

	// End is the exclusive end of the range.
	End uint64
}

// New returns [start, end).
func New(start, end uint64) Range {
	return Range{Start: start, End: end}
}

// Single returns the length-1 range holding only v. v must be below MaxUint64.
func Single(v uint64) Range {
	return Range{Start: v, End: v + 1}
}

// WellFormed returns true if r.Start <= r.End. All other methods on a Range
// require that the Range is well-formed.
func (r Range) WellFormed() bool {
	return r.Start <= r.End
}

// Len returns the number of values in r.
func (r Range) Len() uint64 {
	return r.End - r.Start
}

// IsEmpty returns true if r holds no values.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if r contains x.
func (r Range) Contains(x uint64) bool {
	return r.Start <= x && x < r.End
}

// Overlaps returns true if r and r2 share at least one value. An empty range
// overlaps nothing, even when it sits inside the other range.
func (r Range) Overlaps(r2 Range) bool {
	return !r.IsEmpty() && !r2.IsEmpty() && r.Start < r2.End && r2.Start < r.End
}

// IsSupersetOf returns true if r2 is contained within r.
func (r Range) IsSupersetOf(r2 Range) bool {
	return r.Start <= r2.Start && r.End >= r2.End
}

// Intersect returns the values shared by r and r2. If they do not overlap
// the result is empty with unspecified bounds.
func (r Range) Intersect(r2 Range) Range {
	if r.Start < r2.Start {
		r.Start = r2.Start
	}
	if r.End > r2.End {
		r.End = r2.End
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}

// Subtract removes r2 from r and returns the non-empty pieces left over, in
// ascending order. There are at most two: one below r2 and one above it.
func (r Range) Subtract(r2 Range) []Range {
	if !r.Overlaps(r2) {
		if r.IsEmpty() {
			return nil
		}
		return []Range{r}
	}

	var out []Range
	if r.Start < r2.Start {
		out = append(out, Range{Start: r.Start, End: r2.Start})
	}
	if r2.End < r.End {
		out = append(out, Range{Start: r2.End, End: r.End})
	}
	return out
}

// Shift moves r by a signed offset expressed as a two's complement delta.
// Callers guarantee the shifted bounds stay representable.
func (r Range) Shift(delta uint64) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// String renders r as "[start, end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// TotalLen sums the lengths of rs.
func TotalLen(rs []Range) uint64 {
	var n uint64
	for _, r := range rs {
		n += r.Len()
	}
	return n
}
