package document

import (
	"fmt"
	"log/slog"

	"range-remapper/internal/almanac"
	"range-remapper/internal/remap"
)

// BuildOptions configures Almanac construction.
type BuildOptions struct {
	// Mode decides how seeds become initial ranges.
	Mode almanac.Mode
	// Logger is handed to the built almanac; nil uses the package logger.
	Logger *slog.Logger
}

// DefaultBuildOptions returns scalar mode with the package logger.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Mode: almanac.ModeScalar}
}

// Table builds the mapping table of m.
func (m StageMap) Table() (*remap.Table, error) {
	rules := make([]remap.Rule, 0, len(m.Rules))

	for i, spec := range m.Rules {
		r, err := remap.RuleFromTriple(spec.Destination, spec.Source, spec.Length)
		if err != nil {
			return nil, fmt.Errorf("%s rule %d%s: %w", m.Name(), i, atLine(spec.Line), err)
		}

		rules = append(rules, r)
	}

	return remap.NewTable(rules...)
}

// Almanac builds the immutable almanac described by f.
func (f *File) Almanac(opts BuildOptions) (*almanac.Almanac, error) {
	initial, err := opts.Mode.Ranges(f.Seeds)
	if err != nil {
		return nil, fmt.Errorf("seeds: %w", err)
	}

	b := almanac.NewBuilder().SetInitial(initial...)
	if opts.Logger != nil {
		b.WithLogger(opts.Logger)
	}

	for _, m := range f.Maps {
		tbl, err := m.Table()
		if err != nil {
			return nil, err
		}

		b.AddEdge(m.From, m.To, tbl)
	}

	a, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("stage graph: %w", err)
	}

	return a, nil
}

func atLine(line int) string {
	if line <= 0 {
		return ""
	}

	return fmt.Sprintf(" (line %d)", line)
}
