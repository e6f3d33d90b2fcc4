// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"fmt"
	"strings"
)

// Paragraph is one paragraph of a text frame. Level is the outline level
// written as the paragraph's lvl attribute.
type Paragraph struct {
	Text  string
	Level int
}

// TextFrame holds the paragraphs of a shape. A new frame has one empty
// paragraph, matching an untouched placeholder.
type TextFrame struct {
	paragraphs []*Paragraph
}

func newTextFrame() *TextFrame {
	return &TextFrame{paragraphs: []*Paragraph{{}}}
}

// SetText replaces the frame's content. Each line of s becomes a paragraph
// at level 0.
func (tf *TextFrame) SetText(s string) {
	lines := strings.Split(s, "\n")
	tf.paragraphs = make([]*Paragraph, len(lines))
	for i, line := range lines {
		tf.paragraphs[i] = &Paragraph{Text: line}
	}
}

// AddParagraph appends an empty paragraph and returns it.
func (tf *TextFrame) AddParagraph() *Paragraph {
	p := &Paragraph{}
	tf.paragraphs = append(tf.paragraphs, p)
	return p
}

// Paragraphs returns the frame's paragraphs in order.
func (tf *TextFrame) Paragraphs() []*Paragraph {
	return tf.paragraphs
}

// Text returns the paragraphs joined by newlines.
func (tf *TextFrame) Text() string {
	parts := make([]string, len(tf.paragraphs))
	for i, p := range tf.paragraphs {
		parts[i] = p.Text
	}
	return strings.Join(parts, "\n")
}

// Shape is a placeholder shape on a slide.
type Shape struct {
	id   int
	name string
	ph   Placeholder
	text *TextFrame
}

// Name returns the shape name, e.g. "Title 1".
func (s *Shape) Name() string { return s.name }

// Placeholder returns the layout placeholder the shape was cloned from.
func (s *Shape) Placeholder() Placeholder { return s.ph }

// TextFrame returns the shape's text.
func (s *Shape) TextFrame() *TextFrame { return s.text }

// Slide is one slide of a presentation.
type Slide struct {
	layoutIndex int
	layout      Layout
	shapes      []*Shape
}

// newSlide clones the layout's placeholders, skipping the footer band.
func newSlide(layoutIndex int, layout Layout) *Slide {
	s := &Slide{layoutIndex: layoutIndex, layout: layout}
	nextID := 2 // id 1 is the shape tree group
	for _, ph := range layout.Placeholders {
		if ph.Type.isFooter() {
			continue
		}
		s.shapes = append(s.shapes, &Shape{
			id:   nextID,
			name: fmt.Sprintf("%s %d", ph.Name, nextID-1),
			ph:   ph,
			text: newTextFrame(),
		})
		nextID++
	}
	return s
}

// Layout returns the layout the slide was created from.
func (s *Slide) Layout() Layout { return s.layout }

// Shapes returns the slide's placeholder shapes.
func (s *Slide) Shapes() []*Shape { return s.shapes }

// Title returns the slide's title placeholder.
func (s *Slide) Title() (*Shape, error) {
	for _, sh := range s.shapes {
		if sh.ph.Type.isTitle() {
			return sh, nil
		}
	}
	return nil, fmt.Errorf("layout %q has no title: %w", s.layout.Name, ErrPlaceholderNotFound)
}

// Placeholder returns the shape whose placeholder index is idx. The title
// placeholder has index 0.
func (s *Slide) Placeholder(idx int) (*Shape, error) {
	for _, sh := range s.shapes {
		if sh.ph.Idx == idx {
			return sh, nil
		}
	}
	return nil, fmt.Errorf("layout %q has no placeholder idx %d: %w", s.layout.Name, idx, ErrPlaceholderNotFound)
}
