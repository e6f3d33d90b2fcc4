// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pptx builds PresentationML (.pptx) documents in memory from a
// built-in blank template and writes them as Open Packaging Convention zip
// packages. It supports placeholder text only: titles and outline-levelled
// body paragraphs.
package pptx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pdiddy/md2pptx/pkg/types"
)

var (
	// ErrLayoutNotFound is returned when a layout index is outside the template.
	ErrLayoutNotFound = errors.New("slide layout not found")

	// ErrPlaceholderNotFound is returned when a slide's layout lacks the
	// requested placeholder.
	ErrPlaceholderNotFound = errors.New("placeholder not found")
)

// application is written as the creating application in document properties.
const application = "md2pptx"

// Presentation is an in-memory presentation document.
type Presentation struct {
	layouts  []Layout
	slides   []*Slide
	meta     types.DeckMetadata
	created  time.Time
	modified time.Time
}

// New returns an empty presentation using the built-in template.
func New() *Presentation {
	now := time.Now().UTC()
	return &Presentation{
		layouts:  defaultLayouts(),
		created:  now,
		modified: now,
	}
}

// Layouts returns the template's slide layouts.
func (p *Presentation) Layouts() []Layout {
	return p.layouts
}

// Slides returns the slides in presentation order.
func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// AddSlide appends a slide built from the layout at index.
func (p *Presentation) AddSlide(index int) (*Slide, error) {
	if index < 0 || index >= len(p.layouts) {
		return nil, fmt.Errorf("layout index %d (template has %d): %w", index, len(p.layouts), ErrLayoutNotFound)
	}
	s := newSlide(index, p.layouts[index])
	p.slides = append(p.slides, s)
	return s, nil
}

// SetMetadata sets the document properties.
func (p *Presentation) SetMetadata(m types.DeckMetadata) {
	p.meta = m
}

// Metadata returns the document properties.
func (p *Presentation) Metadata() types.DeckMetadata {
	return p.meta
}

// SetTimes sets the created and modified timestamps recorded in the package.
func (p *Presentation) SetTimes(created, modified time.Time) {
	p.created = created.UTC()
	p.modified = modified.UTC()
}

// part is one file of the package.
type part struct {
	name    string
	content string
}

// parts renders every package part in the order they are written.
// [Content_Types].xml goes first so streaming readers find it early.
func (p *Presentation) parts() []part {
	parts := []part{
		{"[Content_Types].xml", contentTypesXML(len(p.layouts), len(p.slides))},
		{"_rels/.rels", packageRelsXML},
		{"docProps/core.xml", coreXML(p.meta, p.created, p.modified)},
		{"docProps/app.xml", appXML(len(p.slides))},
		{"ppt/presentation.xml", presentationXML(len(p.slides))},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(len(p.slides))},
		{"ppt/presProps.xml", presPropsXML},
		{"ppt/viewProps.xml", viewPropsXML},
		{"ppt/tableStyles.xml", tableStylesXML},
		{"ppt/theme/theme1.xml", themeXML},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML(len(p.layouts))},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML(len(p.layouts))},
	}
	for i, l := range p.layouts {
		n := i + 1
		parts = append(parts,
			part{fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", n), slideLayoutXML(l)},
			part{fmt.Sprintf("ppt/slideLayouts/_rels/slideLayout%d.xml.rels", n), slideLayoutRelsXML},
		)
	}
	for i, s := range p.slides {
		n := i + 1
		parts = append(parts,
			part{fmt.Sprintf("ppt/slides/slide%d.xml", n), slideXML(s)},
			part{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRelsXML(s.layoutIndex + 1)},
		)
	}
	return parts
}

// WriteTo writes the presentation as a zip package to w.
func (p *Presentation) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	for _, pt := range p.parts() {
		f, err := zw.Create(pt.name)
		if err != nil {
			return cw.n, fmt.Errorf("creating part %s: %w", pt.name, err)
		}
		if _, err := io.WriteString(f, pt.content); err != nil {
			return cw.n, fmt.Errorf("writing part %s: %w", pt.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("finishing package: %w", err)
	}
	return cw.n, nil
}

// Save writes the presentation to path, replacing any existing file.
func (p *Presentation) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if _, err := p.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
