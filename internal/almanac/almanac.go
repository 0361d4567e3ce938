// Package almanac holds the stage graph of an almanac and walks ranges
// through it.
//
// An Almanac is built once with a Builder and never changes afterwards. The
// stage graph is stored as an arena of edges (one per source stage) plus a
// name index, both fixed at Build time:
//
//	seed --table--> soil --table--> ... --table--> location
//
// Resolve starts at a stage and keeps applying the outgoing table until it
// reaches the target stage or a stage without an outgoing edge. A chain with
// n edges can take at most n transitions without revisiting a stage, so any
// walk that needs more is reported as ErrCycle instead of looping.
package almanac

import (
	"fmt"
	"log/slog"
	"slices"

	"range-remapper/internal/interval"
	"range-remapper/internal/logger"
	"range-remapper/internal/remap"
)

// Edge is a single stage transition.
type Edge struct {
	From  string
	To    string
	Table *remap.Table
}

// Almanac is the immutable stage graph together with the initial ranges.
type Almanac struct {
	initial []interval.Range
	edges   []Edge
	index   map[string]int
	log     *slog.Logger
}

// Builder assembles an Almanac. The first error is sticky and reported by Build.
// The zero value is ready to use.
type Builder struct {
	initial []interval.Range
	edges   []Edge
	index   map[string]int
	log     *slog.Logger
	err     error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// SetInitial replaces the initial ranges.
func (b *Builder) SetInitial(ranges ...interval.Range) *Builder {
	b.initial = slices.Clone(ranges)
	return b
}

// WithLogger sets the logger used by the built Almanac. Without one the
// package-level logger.L is used.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	b.log = l
	return b
}

// AddEdge adds the transition from -> to through table.
func (b *Builder) AddEdge(from, to string, table *remap.Table) *Builder {
	if b.err != nil {
		return b
	}

	switch {
	case from == "" || to == "":
		b.err = fmt.Errorf("edge %q -> %q: %w", from, to, ErrEmptyStage)
	case table == nil:
		b.err = fmt.Errorf("edge %q -> %q: %w", from, to, ErrNilTable)
	default:
		if b.index == nil {
			b.index = make(map[string]int)
		}

		if prev, ok := b.index[from]; ok {
			b.err = fmt.Errorf("edge %q -> %q, already mapped to %q: %w",
				from, to, b.edges[prev].To, ErrDuplicateStage)
			return b
		}

		b.index[from] = len(b.edges)
		b.edges = append(b.edges, Edge{From: from, To: to, Table: table})
	}

	return b
}

// Build returns the Almanac or the first error recorded by AddEdge.
func (b *Builder) Build() (*Almanac, error) {
	if b.err != nil {
		return nil, b.err
	}

	index := make(map[string]int, len(b.index))
	for k, v := range b.index {
		index[k] = v
	}

	return &Almanac{
		initial: slices.Clone(b.initial),
		edges:   slices.Clone(b.edges),
		index:   index,
		log:     b.log,
	}, nil
}

func (a *Almanac) slogger() *slog.Logger {
	if a.log != nil {
		return a.log
	}

	return logger.L
}

// Initial returns a copy of the initial ranges.
func (a *Almanac) Initial() []interval.Range {
	return slices.Clone(a.initial)
}

// Edges returns the transitions in insertion order.
func (a *Almanac) Edges() []Edge {
	return slices.Clone(a.edges)
}

// Next returns the edge leaving stage, if any.
func (a *Almanac) Next(stage string) (Edge, bool) {
	i, ok := a.index[stage]
	if !ok {
		return Edge{}, false
	}

	return a.edges[i], true
}

// HasStage reports whether name is the source or destination of any edge.
func (a *Almanac) HasStage(name string) bool {
	if _, ok := a.index[name]; ok {
		return true
	}

	for _, e := range a.edges {
		if e.To == name {
			return true
		}
	}

	return false
}

// Stages lists the stage names reached from start in chain order, start
// included. The walk stops at a dead end or before the first repeated stage.
func (a *Almanac) Stages(start string) []string {
	seen := map[string]struct{}{start: {}}
	names := []string{start}

	for cur := start; ; {
		e, ok := a.Next(cur)
		if !ok {
			return names
		}

		if _, dup := seen[e.To]; dup {
			return names
		}

		seen[e.To] = struct{}{}
		names = append(names, e.To)
		cur = e.To
	}
}

// Step is the range set present at one stage of a walk.
type Step struct {
	Stage  string
	Ranges []interval.Range
}

// Resolve walks initial from start towards target and returns the ranges at
// the stage where the walk stopped.
func (a *Almanac) Resolve(start, target string, initial []interval.Range) ([]interval.Range, error) {
	var last []interval.Range

	err := a.walk(start, target, initial, func(s Step) {
		last = s.Ranges
	})
	if err != nil {
		return nil, err
	}

	return last, nil
}

// ResolveInitial is Resolve applied to the almanac's own initial ranges.
func (a *Almanac) ResolveInitial(start, target string) ([]interval.Range, error) {
	return a.Resolve(start, target, a.initial)
}

// Trace is like ResolveInitial but returns every stage visited, the start
// stage first.
func (a *Almanac) Trace(start, target string) ([]Step, error) {
	var steps []Step

	err := a.walk(start, target, a.initial, func(s Step) {
		steps = append(steps, s)
	})
	if err != nil {
		return nil, err
	}

	return steps, nil
}

// Lowest resolves the initial ranges and returns the smallest value at the
// stage where the walk stopped.
func (a *Almanac) Lowest(start, target string) (uint64, error) {
	ranges, err := a.ResolveInitial(start, target)
	if err != nil {
		return 0, err
	}

	return MinimumValue(ranges)
}

func (a *Almanac) walk(start, target string, initial []interval.Range, visit func(Step)) error {
	log := a.slogger()
	cur := start
	ranges := slices.Clone(initial)
	limit := len(a.edges)

	for steps := 0; ; steps++ {
		visit(Step{Stage: cur, Ranges: ranges})

		if cur == target {
			log.Debug("reached target stage", "stage", cur, "steps", steps, "ranges", len(ranges))
			return nil
		}

		e, ok := a.Next(cur)
		if !ok {
			log.Debug("stage has no outgoing map", "stage", cur, "target", target, "steps", steps)
			return nil
		}

		if steps >= limit {
			return fmt.Errorf("walk from %q revisited %q after %d steps: %w", start, cur, steps, ErrCycle)
		}

		ranges = e.Table.TranslateRanges(ranges)
		log.Debug("stage advanced", "from", e.From, "to", e.To, "rules", e.Table.Len(), "ranges", len(ranges))
		cur = e.To
	}
}

// MinimumValue returns the smallest Start in ranges. An empty set, or one made
// only of empty ranges, yields ErrEmptyResult.
func MinimumValue(ranges []interval.Range) (uint64, error) {
	lowest, ok := interval.Min(ranges)
	if !ok {
		return 0, ErrEmptyResult
	}

	return lowest, nil
}
