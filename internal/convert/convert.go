// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a Markdown slide document into a .pptx presentation.
// The document is read whole, split into slides by the deck package, placed
// onto one fixed template layout, and written once at the end.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/md2pptx/internal/deck"
	"github.com/pdiddy/md2pptx/internal/pptx"
	"github.com/pdiddy/md2pptx/pkg/types"
)

// bodyPlaceholderIdx is the placeholder index that receives body lines.
const bodyPlaceholderIdx = 1

// Converter converts Markdown slide documents to presentations.
type Converter struct {
	cfg types.ConversionConfig
	log *zap.SugaredLogger
	w   io.Writer
}

// New creates a converter. Status lines go to w; a nil logger or writer
// discards output.
func New(cfg types.ConversionConfig, log *zap.SugaredLogger, w io.Writer) *Converter {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if w == nil {
		w = io.Discard
	}
	return &Converter{cfg: cfg, log: log, w: w}
}

// Convert reads the Markdown document at inputPath and writes a presentation
// with one slide per non-empty segment to outputPath, replacing any existing
// file. Nothing is written when reading or rendering fails.
func (c *Converter) Convert(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	d, err := deck.Parse(string(data), deck.Options{FrontMatter: c.cfg.FrontMatter})
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inputPath, err)
	}
	if d.Metadata.Title == "" {
		base := filepath.Base(inputPath)
		d.Metadata.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	c.log.Debugw("parsed deck", "input", inputPath, "segments", d.Segments, "slides", len(d.Slides))

	pres, err := c.Render(d)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", inputPath, err)
	}

	if err := pres.Save(outputPath); err != nil {
		return err
	}

	fmt.Fprintf(c.w, "converted: %s -> %s (%d slides)\n", inputPath, outputPath, len(d.Slides))
	return nil
}

// Render builds an in-memory presentation from a parsed deck using the
// configured layout for every slide.
func (c *Converter) Render(d types.Deck) (*pptx.Presentation, error) {
	pres := pptx.New()
	pres.SetMetadata(d.Metadata)

	for i, s := range d.Slides {
		if err := addSlide(pres, c.cfg.LayoutIndex, s); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		c.log.Debugw("added slide", "slide", i+1, "title", s.Title, "body_lines", len(s.Body))
	}

	if skipped := d.Segments - len(d.Slides); skipped > 0 {
		c.log.Debugw("skipped blank segments", "count", skipped)
	}
	return pres, nil
}

func addSlide(pres *pptx.Presentation, layout int, s types.Slide) error {
	slide, err := pres.AddSlide(layout)
	if err != nil {
		return err
	}

	if s.HasTitle {
		title, err := slide.Title()
		if err != nil {
			return err
		}
		title.TextFrame().SetText(s.Title)
	}

	if len(s.Body) == 0 {
		return nil
	}
	body, err := slide.Placeholder(bodyPlaceholderIdx)
	if err != nil {
		return err
	}

	tf := body.TextFrame()
	tf.SetText(s.Body[0].Text)
	tf.Paragraphs()[0].Level = int(s.Body[0].Indent)
	for _, line := range s.Body[1:] {
		p := tf.AddParagraph()
		p.Text = line.Text
		p.Level = int(line.Indent)
	}
	return nil
}
