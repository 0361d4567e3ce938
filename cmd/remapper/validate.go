package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"range-remapper/internal/document"
)

var validateStart, validateTarget string

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateStart, "start", "", "Start stage (default: document start, else seed)")
	cmd.Flags().StringVar(&validateTarget, "target", "", "Target stage (default: document target, else location)")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <almanac>",
		Short: "Check an almanac document for structural problems",
		Long: `The validate command checks that the stage maps form a chain from the
start stage to the target stage and reports duplicate stages, loops,
overlapping or empty rules and seed lists that cannot form pairs.

Errors make the command exit with a non-zero status; warnings do not.

Example:
  remapper validate input.txt
  remapper validate almanac.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args)
		},
	}
	return cmd
}

var errInvalidDocument = errors.New("document has errors")

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	doc, err := document.LoadFile(args[0])
	if err != nil {
		return err
	}

	if validateStart != "" {
		doc.Start = validateStart
	}

	if validateTarget != "" {
		doc.Target = validateTarget
	}

	res := document.Validate(doc)

	if jsonOut {
		if err := printJSON(out, res); err != nil {
			return err
		}
	} else {
		for _, d := range res.All() {
			printInfo(out, "%s: %s\n", d.Severity, d)
		}

		if res.IsValid() {
			printInfo(out, "%s: ok (%d maps, %d seeds)\n", args[0], len(doc.Maps), len(doc.Seeds))
		}
	}

	if res.HasErrors() {
		return fmt.Errorf("%s: %w: %w", args[0], errInvalidDocument, res.Error())
	}

	return nil
}
