package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"range-remapper/internal/almanac"
)

func triples(f *File) map[string][][3]uint64 {
	out := map[string][][3]uint64{}
	for _, m := range f.Maps {
		for _, r := range m.Rules {
			out[m.Name()] = append(out[m.Name()], r.Triple())
		}
	}

	return out
}

func TestParseText(t *testing.T) {
	t.Parallel()

	f, err := LoadFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, DefaultStart, f.Start)
	assert.Equal(t, DefaultTarget, f.Target)
	assert.Equal(t, []uint64{79, 14, 55, 13}, f.Seeds)
	require.Len(t, f.Maps, 7)

	first := f.Maps[0]
	assert.Equal(t, "seed", first.From)
	assert.Equal(t, "soil", first.To)
	assert.Equal(t, 3, first.Line)
	assert.Equal(t, []RuleSpec{
		{Destination: 50, Source: 98, Length: 2, Line: 4},
		{Destination: 52, Source: 50, Length: 48, Line: 5},
	}, first.Rules)

	last := f.Maps[6]
	assert.Equal(t, "humidity-to-location", last.Name())
	assert.Equal(t, [][3]uint64{{60, 56, 37}, {56, 93, 4}}, triples(f)[last.Name()])
}

func TestParseTextTolerance(t *testing.T) {
	t.Parallel()

	// CRLF endings, extra spaces and no blank line between blocks.
	in := "seeds:  1   2\r\n\r\na-to-b map:\r\n 5 1 1 \r\nb-to-c map:\r\n\r\n\r\nc-to-d map:\r\n9 9 9\r\n"

	f, err := ParseText([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, f.Seeds)
	require.Len(t, f.Maps, 3)
	assert.Len(t, f.Maps[0].Rules, 1)
	assert.Empty(t, f.Maps[1].Rules)
	assert.Equal(t, [3]uint64{9, 9, 9}, f.Maps[2].Rules[0].Triple())
}

func TestParseTextErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		line int
	}{
		{name: "empty", in: "", line: 0},
		{name: "no seeds prefix", in: "seed-to-soil map:\n1 2 3\n", line: 1},
		{name: "no seed numbers", in: "seeds:\n", line: 1},
		{name: "bad seed", in: "seeds: 1 x\n", line: 1},
		{name: "negative seed", in: "seeds: -1\n", line: 1},
		{name: "rule before header", in: "seeds: 1\n\n1 2 3\n", line: 3},
		{name: "bad header", in: "seeds: 1\n\nseed-soil map:\n", line: 3},
		{name: "header with digits", in: "seeds: 1\n\nseed1-to-soil map:\n", line: 3},
		{name: "two numbers", in: "seeds: 1\n\na-to-b map:\n1 2\n", line: 4},
		{name: "too big", in: "seeds: 1\n\na-to-b map:\n1 2 18446744073709551616\n", line: 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseText([]byte(tt.in))
			require.ErrorIs(t, err, ErrSyntax)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.line, perr.Line, perr.Error())
		})
	}
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	text, err := LoadFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)

	f, err := LoadFile(filepath.Join("testdata", "sample.yaml"))
	require.NoError(t, err)

	assert.Equal(t, text.Seeds, f.Seeds)
	assert.Equal(t, triples(text), triples(f), spew.Sdump(f))
	assert.Equal(t, 6, f.Maps[0].Line)
	assert.Equal(t, 9, f.Maps[0].Rules[0].Line)
	assert.Equal(t, 10, f.Maps[0].Rules[1].Line)
}

func TestParseYAMLDefaultsAndErrors(t *testing.T) {
	t.Parallel()

	f, err := ParseYAML([]byte("seeds: [1]\nmaps: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "seed", f.Start)
	assert.Equal(t, "location", f.Target)

	f, err = ParseYAML([]byte("seeds: [1]\nstart: a\ntarget: b\nmaps: []\n"))
	require.NoError(t, err)
	assert.Equal(t, "a", f.Start)
	assert.Equal(t, "b", f.Target)

	bad := []string{
		"seeds: [1]\nmaps:\n  - from: a\n    to: b\n    rules:\n      - [1, 2]\n",
		"seeds: [1]\nmaps:\n  - from: a\n    to: b\n    rules:\n      - 7\n",
		"seeds: [1]\nmaps:\n  - from: a\n    to: b\n    rules:\n      - [1, 2, -3]\n",
		"seeds: [x]\n",
		"maps: {",
	}

	for _, in := range bad {
		_, err := ParseYAML([]byte(in))
		require.Error(t, err, in)
	}

	_, err = Parse([]byte("seeds: 1"), Format("ini"))
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	orig, err := LoadFile(filepath.Join("testdata", "sample.txt"))
	require.NoError(t, err)

	data, err := MarshalYAML(orig)
	require.NoError(t, err)
	assert.Contains(t, string(data), "seeds: [79, 14, 55, 13]")
	assert.Contains(t, string(data), "- [50, 98, 2]")

	back, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, orig.Seeds, back.Seeds)
	assert.Equal(t, triples(orig), triples(back))

	again, err := ParseText(RenderText(orig))
	require.NoError(t, err)
	assert.Equal(t, orig, again)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	orig, err := LoadFile(filepath.Join("testdata", "sample.yaml"))
	require.NoError(t, err)

	dir := t.TempDir()

	for _, name := range []string{"out.yml", "out.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(orig, path))

		back, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, triples(orig), triples(back), name)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "seed-to-soil map:\n50 98 2\n")

	require.Error(t, WriteFile(orig, filepath.Join(dir, "missing", "x.yaml")))

	_, err = LoadFile(filepath.Join(dir, "nope.txt"))
	require.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormatYAML, DetectFormat("a.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("dir/A.YML"))
	assert.Equal(t, FormatText, DetectFormat("input.txt"))
	assert.Equal(t, FormatText, DetectFormat("input"))
}

func TestBuildAlmanac(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file string
		mode almanac.Mode
		want uint64
	}{
		{file: "sample.txt", mode: almanac.ModeScalar, want: 35},
		{file: "sample.txt", mode: almanac.ModeInterval, want: 46},
		{file: "sample.yaml", mode: almanac.ModeScalar, want: 35},
		{file: "sample.yaml", mode: almanac.ModeInterval, want: 46},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.file+"/"+tt.mode.String(), func(t *testing.T) {
			t.Parallel()

			f, err := LoadFile(filepath.Join("testdata", tt.file))
			require.NoError(t, err)

			a, err := f.Almanac(BuildOptions{Mode: tt.mode})
			require.NoError(t, err)

			got, err := a.Lowest(f.Start, f.Target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildAlmanacErrors(t *testing.T) {
	t.Parallel()

	f := &File{
		Seeds: []uint64{1, 2, 3},
		Maps:  []StageMap{{From: "a", To: "b"}},
	}

	_, err := f.Almanac(BuildOptions{Mode: almanac.ModeInterval})
	require.ErrorIs(t, err, almanac.ErrOddPairs)

	_, err = f.Almanac(DefaultBuildOptions())
	require.NoError(t, err)

	f.Maps = append(f.Maps, StageMap{From: "a", To: "c"})
	_, err = f.Almanac(DefaultBuildOptions())
	require.ErrorIs(t, err, almanac.ErrDuplicateStage)

	f.Maps = []StageMap{{From: "a", To: "b", Rules: []RuleSpec{{Destination: 1, Source: 1<<64 - 1, Length: 2, Line: 7}}}}
	_, err = f.Almanac(DefaultBuildOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a-to-b rule 0 (line 7)")
}
