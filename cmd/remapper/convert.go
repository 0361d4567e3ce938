package main

import (
	"github.com/spf13/cobra"

	"range-remapper/internal/document"
)

var convertOut string

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVarP(&convertOut, "out", "o", "", "Output file; .yaml/.yml writes YAML, anything else text")
	_ = cmd.MarkFlagRequired("out")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <almanac> --out <file>",
		Short: "Rewrite an almanac document in another format",
		Long: `The convert command reads a text or YAML almanac and writes it out in
the format chosen by the output file extension.

Example:
  remapper convert input.txt --out almanac.yaml
  remapper convert almanac.yaml -o input.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args)
		},
	}
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	doc, err := document.LoadFile(args[0])
	if err != nil {
		return err
	}

	if err := document.WriteFile(doc, convertOut); err != nil {
		return err
	}

	printVerbose(cmd.OutOrStdout(), "Wrote %s (%s)\n", convertOut, document.DetectFormat(convertOut))

	return nil
}
