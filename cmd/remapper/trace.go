package main

import (
	"strings"

	"github.com/spf13/cobra"

	"range-remapper/internal/interval"
)

var traceFlags walkFlags

func init() {
	cmd := newTraceCmd()
	traceFlags.register(cmd)
	rootCmd.AddCommand(cmd)
}

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <almanac>",
		Short: "Print the ranges present at every stage",
		Long: `The trace command walks the seeds like solve does and prints the range
set at each stage. Adjacent and overlapping ranges are merged for display.

Example:
  remapper trace input.txt --mode interval`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, args)
		},
	}
	return cmd
}

type traceStep struct {
	Stage  string      `json:"stage"`
	Values uint64      `json:"values"`
	Ranges [][2]uint64 `json:"ranges"`
}

func runTrace(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	doc, a, err := traceFlags.load(args[0])
	if err != nil {
		return err
	}

	printVerbose(out, "Chain: %s\n", strings.Join(a.Stages(doc.Start), " -> "))

	steps, err := a.Trace(doc.Start, doc.Target)
	if err != nil {
		return err
	}

	report := make([]traceStep, 0, len(steps))

	for _, s := range steps {
		merged := interval.Merge(s.Ranges)
		ts := traceStep{Stage: s.Stage, Values: interval.TotalLen(s.Ranges)}

		for _, r := range merged {
			ts.Ranges = append(ts.Ranges, [2]uint64{r.Start, r.End})
		}

		report = append(report, ts)
	}

	if jsonOut {
		return printJSON(out, report)
	}

	for _, ts := range report {
		parts := make([]string, 0, len(ts.Ranges))
		for _, r := range ts.Ranges {
			parts = append(parts, interval.New(r[0], r[1]).String())
		}

		printInfo(out, "%-12s %s\n", ts.Stage, strings.Join(parts, " "))
	}

	return nil
}
