// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/md2pptx/internal/deck"
	"github.com/pdiddy/md2pptx/internal/pptx"
	"github.com/pdiddy/md2pptx/pkg/types"
)

var outlineCmd = &cobra.Command{
	Use:   "outline <input.md|input.pptx>",
	Short: "Print the slides a deck parses into",
	Long: `Outline prints slide titles and body lines without writing a
presentation. Markdown input is parsed the same way convert parses it; a
.pptx input is read back from its slide placeholders.`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

func init() {
	outlineCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	d, err := loadDeck(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case "text", "":
		writeOutline(w, d)
	case "yaml":
		data, err := yaml.Marshal(d)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
	return nil
}

// loadDeck parses Markdown input or reads back a presentation.
func loadDeck(path string) (types.Deck, error) {
	if strings.EqualFold(filepath.Ext(path), ".pptx") {
		return pptx.ReadFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.Deck{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return deck.Parse(string(data), deck.Options{FrontMatter: conversionConfig().FrontMatter})
}

func writeOutline(w io.Writer, d types.Deck) {
	if d.Metadata.Title != "" {
		fmt.Fprintf(w, "Deck: %s\n\n", d.Metadata.Title)
	}
	for i, s := range d.Slides {
		title := "(untitled)"
		if s.HasTitle {
			title = s.Title
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, title)
		for _, line := range s.Body {
			fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", int(line.Indent)+1), line.Text)
		}
	}
	fmt.Fprintf(w, "\n%d slides\n", len(d.Slides))
}
