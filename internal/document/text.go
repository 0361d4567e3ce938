package document

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
	stageSep     = "-to-"
)

// ParseText parses the text form of an almanac.
func ParseText(data []byte) (*File, error) {
	f := &File{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		lineNo    int
		haveSeeds bool
		current   *StageMap
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "":
			continue

		case !haveSeeds:
			seeds, err := parseSeeds(lineNo, line)
			if err != nil {
				return nil, err
			}

			f.Seeds = seeds
			haveSeeds = true

		case strings.HasSuffix(line, headerSuffix):
			from, to, err := parseHeader(lineNo, line)
			if err != nil {
				return nil, err
			}

			f.Maps = append(f.Maps, StageMap{From: from, To: to, Line: lineNo})
			current = &f.Maps[len(f.Maps)-1]

		case current == nil:
			return nil, syntaxErr(lineNo, "rule %q appears before any map header", line)

		default:
			rule, err := parseRule(lineNo, line)
			if err != nil {
				return nil, err
			}

			current.Rules = append(current.Rules, rule)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read almanac text: %w", err)
	}

	if !haveSeeds {
		return nil, syntaxErr(lineNo, "missing %q line", seedsPrefix)
	}

	applyDefaults(f)

	return f, nil
}

func parseSeeds(lineNo int, line string) ([]uint64, error) {
	rest, ok := strings.CutPrefix(line, seedsPrefix)
	if !ok {
		return nil, syntaxErr(lineNo, "expected %q, got %q", seedsPrefix, line)
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return nil, syntaxErr(lineNo, "no seed numbers")
	}

	seeds := make([]uint64, 0, len(fields))

	for _, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, syntaxErr(lineNo, "bad seed %q: %v", field, err)
		}

		seeds = append(seeds, v)
	}

	return seeds, nil
}

func parseHeader(lineNo int, line string) (string, string, error) {
	name := strings.TrimSuffix(line, headerSuffix)

	from, to, ok := strings.Cut(name, stageSep)
	if !ok || !isStageName(from) || !isStageName(to) {
		return "", "", syntaxErr(lineNo, "bad map header %q, want \"<from>-to-<to> map:\"", line)
	}

	return from, to, nil
}

func parseRule(lineNo int, line string) (RuleSpec, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return RuleSpec{}, syntaxErr(lineNo, "rule needs 3 numbers (destination source length), got %q", line)
	}

	var nums [3]uint64

	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return RuleSpec{}, syntaxErr(lineNo, "bad number %q: %v", field, err)
		}

		nums[i] = v
	}

	return RuleSpec{Destination: nums[0], Source: nums[1], Length: nums[2], Line: lineNo}, nil
}

// isStageName accepts non-empty ASCII letter runs, as stage names appear in
// map headers.
func isStageName(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}

// RenderText renders f in the text form. Start and Target are not part of the
// text form and are dropped.
func RenderText(f *File) []byte {
	var b strings.Builder

	b.WriteString(seedsPrefix)

	for _, s := range f.Seeds {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatUint(s, 10))
	}

	b.WriteByte('\n')

	for _, m := range f.Maps {
		b.WriteString("\n" + m.Name() + headerSuffix + "\n")

		for _, r := range m.Rules {
			fmt.Fprintf(&b, "%d %d %d\n", r.Destination, r.Source, r.Length)
		}
	}

	return []byte(b.String())
}
