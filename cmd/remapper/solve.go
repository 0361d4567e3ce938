package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	solveFlags walkFlags
	solveHuman bool
)

func init() {
	cmd := newSolveCmd()
	solveFlags.register(cmd)
	cmd.Flags().BoolVar(&solveHuman, "human", false, "Group digits of the result (1,234,567)")
	rootCmd.AddCommand(cmd)
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <almanac>",
		Short: "Print the lowest value reached at the target stage",
		Long: `The solve command walks the seeds of an almanac from the start stage to
the target stage and prints the lowest value that arrives there.

In scalar mode every seed is a single value. In interval mode the seeds are
read as (start, length) pairs.

Example:
  remapper solve input.txt
  remapper solve input.txt --mode interval
  remapper solve almanac.yaml --target humidity --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args)
		},
	}
	return cmd
}

type solveResult struct {
	File   string `json:"file"`
	Mode   string `json:"mode"`
	Start  string `json:"start"`
	Target string `json:"target"`
	Lowest uint64 `json:"lowest"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	path := args[0]

	doc, a, err := solveFlags.load(path)
	if err != nil {
		return err
	}

	printVerbose(out, "Walking %v from %s to %s\n", solveFlags.mode, doc.Start, doc.Target)
	printVerbose(out, "Chain: %s\n", strings.Join(a.Stages(doc.Start), " -> "))

	lowest, err := a.Lowest(doc.Start, doc.Target)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(out, solveResult{
			File:   path,
			Mode:   solveFlags.mode.String(),
			Start:  doc.Start,
			Target: doc.Target,
			Lowest: lowest,
		})
	}

	text := strconv.FormatUint(lowest, 10)
	if solveHuman {
		text = message.NewPrinter(language.English).Sprintf("%d", lowest)
	}

	printInfo(out, "%s\n", text)

	return nil
}
