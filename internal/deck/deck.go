// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deck splits a Markdown slide document into segments and classifies
// each segment's lines into a slide title and body lines.
//
// Splitting is a plain substring split on "---": the separator is not
// anchored to a line, so a "---" inside prose also starts a new segment.
// The lint package reports such occurrences.
package deck

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/pdiddy/md2pptx/pkg/types"
)

const (
	// Separator delimits slide segments.
	Separator = "---"

	headingMarker = "#"
	commentOpen   = "<!--"
)

// bodyMarkers lists characters removed from body lines wherever they occur.
var bodyMarkers = strings.NewReplacer("*", "", "-", "")

// Options controls document-level parsing.
type Options struct {
	// FrontMatter strips a leading front matter block and decodes it into
	// the deck metadata before splitting.
	FrontMatter bool
}

// Split returns the raw segments of content in source order.
func Split(content string) []string {
	return strings.Split(content, Separator)
}

// ParseSegment classifies the lines of one segment. It returns false when
// the segment holds no non-blank line and must not produce a slide.
func ParseSegment(segment string) (types.Slide, bool) {
	var slide types.Slide
	found := false

	for _, raw := range strings.Split(strings.TrimSpace(segment), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		found = true

		switch {
		case strings.HasPrefix(line, headingMarker) && !slide.HasTitle:
			slide.Title = strings.TrimSpace(strings.ReplaceAll(line, headingMarker, ""))
			slide.HasTitle = true
		case strings.HasPrefix(line, commentOpen):
			// Comments carry directives for other renderers; drop them.
		default:
			slide.Body = append(slide.Body, types.BodyLine{
				Text:   strings.TrimSpace(bodyMarkers.Replace(line)),
				Indent: indentOf(raw),
			})
		}
	}

	return slide, found
}

// Parse splits content into segments and returns one slide per non-empty
// segment.
func Parse(content string, opts Options) (types.Deck, error) {
	var d types.Deck

	if opts.FrontMatter {
		meta, rest, err := stripFrontMatter(content)
		if err != nil {
			return types.Deck{}, err
		}
		d.Metadata = meta
		content = rest
	}

	segments := Split(content)
	d.Segments = len(segments)
	for _, seg := range segments {
		if slide, ok := ParseSegment(seg); ok {
			d.Slides = append(d.Slides, slide)
		}
	}
	return d, nil
}

// indentOf reports the outline level implied by the untrimmed line.
func indentOf(raw string) types.Indent {
	if strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t") {
		return types.IndentNested
	}
	return types.IndentNone
}

// stripFrontMatter decodes a leading front matter block. Content without one
// is returned unchanged.
func stripFrontMatter(content string) (types.DeckMetadata, string, error) {
	var meta types.DeckMetadata
	rest, err := frontmatter.Parse(bytes.NewReader([]byte(content)), &meta)
	if err != nil {
		return types.DeckMetadata{}, "", fmt.Errorf("parsing front matter: %w", err)
	}
	return meta, string(rest), nil
}
