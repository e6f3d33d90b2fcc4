// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/md2pptx/internal/lint"
)

var checkCmd = &cobra.Command{
	Use:   "check <input.md>",
	Short: "Report where a deck will be split into slides",
	Long: `Check lists every "---" the converter splits on, with its line and
column. Splits that a Markdown reader would not see as a slide break (inside
a line of text, under a heading, in a code block or an HTML comment) are
reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("strict", false, "exit non-zero when any warning is reported")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	report := lint.Check(data)
	w := cmd.OutOrStdout()
	for _, f := range report.Findings {
		label := "ok"
		if f.Warning() {
			label = "warning"
		}
		fmt.Fprintf(w, "%s:%d:%d: %-7s %-6s %s\n", path, f.Line, f.Column, label, f.Kind, f.Text)
	}
	fmt.Fprintf(w, "\n%d segments, %d slides, %d warnings\n", report.Segments, report.Slides, report.Warnings())
	logger.Debugw("checked separators", "input", path, "findings", len(report.Findings))

	if strict && report.Warnings() > 0 {
		return fmt.Errorf("%d separator warning(s) in %s", report.Warnings(), path)
	}
	return nil
}
