// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the md2pptx conversion
// pipeline: the parsed deck, its slides and body lines, deck metadata, and
// conversion settings.
package types

// Indent is the outline level of a body line. Only two levels exist.
type Indent int

const (
	IndentNone   Indent = 0
	IndentNested Indent = 1
)

// BodyLine is one paragraph of slide body text.
type BodyLine struct {
	// Text is the line with emphasis and list marker characters removed.
	Text string `json:"text" yaml:"text"`

	// Indent is 1 when the source line started with a space or tab.
	Indent Indent `json:"indent" yaml:"indent"`
}

// Slide is one output unit parsed from a non-empty segment.
type Slide struct {
	// Title is the text of the first heading line in the segment. It is
	// only meaningful when HasTitle is true.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// HasTitle reports whether the segment contained a heading line.
	HasTitle bool `json:"has_title" yaml:"has_title"`

	// Body holds the remaining lines in source order.
	Body []BodyLine `json:"body" yaml:"body"`
}

// DeckMetadata holds document properties written to docProps/core.xml.
type DeckMetadata struct {
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Author   string   `json:"author,omitempty" yaml:"author,omitempty"`
	Subject  string   `json:"subject,omitempty" yaml:"subject,omitempty"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Deck is the parsed form of a Markdown slide document.
type Deck struct {
	// Metadata is populated from front matter when that option is enabled.
	Metadata DeckMetadata `json:"metadata" yaml:"metadata"`

	// Slides are in source order, one per non-empty segment.
	Slides []Slide `json:"slides" yaml:"slides"`

	// Segments is the number of segments the source split into, including
	// the blank ones that produced no slide.
	Segments int `json:"segments" yaml:"segments"`
}
