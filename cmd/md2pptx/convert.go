// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/md2pptx/internal/convert"
	"github.com/pdiddy/md2pptx/pkg/types"
)

const convertUsage = "Usage: md2pptx convert <input.md> <output.pptx>"

var convertCmd = &cobra.Command{
	Use:   "convert <input.md> <output.pptx>",
	Short: "Convert a Markdown slide deck to a .pptx presentation",
	Long: `Convert reads a Markdown file, splits it into slides on every "---", and
writes one slide per non-empty segment to the output file using the Title and
Content layout. An existing output file is replaced.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Int("layout", types.DefaultLayoutIndex, "slide layout index: 0 title, 1 title and content, 2 section header, 3 two content, 4 title only, 5 blank")
	convertCmd.Flags().Bool("front-matter", false, "strip a leading YAML front matter block and use it as document properties")
	_ = viper.BindPFlag("conversion.layout_index", convertCmd.Flags().Lookup("layout"))
	_ = viper.BindPFlag("conversion.front_matter", convertCmd.Flags().Lookup("front-matter"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(cmd.OutOrStdout(), convertUsage)
		return errUsage
	}

	c := convert.New(conversionConfig(), logger, cmd.OutOrStdout())
	return c.Convert(args[0], args[1])
}
