// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/pdiddy/md2pptx/pkg/types"
)

// Read recovers slide titles and body paragraphs from a .pptx package.
// The body is taken from the first non-title placeholder of each slide.
func Read(r io.ReaderAt, size int64) (types.Deck, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return types.Deck{}, fmt.Errorf("opening package: %w", err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	var pres struct {
		Slides []struct {
			RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
		} `xml:"sldIdLst>sldId"`
	}
	if err := decodePart(files, "ppt/presentation.xml", &pres); err != nil {
		return types.Deck{}, err
	}

	var rels struct {
		Rels []struct {
			ID     string `xml:"Id,attr"`
			Target string `xml:"Target,attr"`
		} `xml:"Relationship"`
	}
	if err := decodePart(files, "ppt/_rels/presentation.xml.rels", &rels); err != nil {
		return types.Deck{}, err
	}
	targets := make(map[string]string, len(rels.Rels))
	for _, rel := range rels.Rels {
		targets[rel.ID] = rel.Target
	}

	d := types.Deck{Segments: len(pres.Slides)}
	if _, ok := files["docProps/core.xml"]; ok {
		var core struct {
			Title    string `xml:"title"`
			Subject  string `xml:"subject"`
			Creator  string `xml:"creator"`
			Keywords string `xml:"keywords"`
		}
		if err := decodePart(files, "docProps/core.xml", &core); err != nil {
			return types.Deck{}, err
		}
		d.Metadata = types.DeckMetadata{Title: core.Title, Subject: core.Subject, Author: core.Creator}
		if core.Keywords != "" {
			d.Metadata.Keywords = strings.Split(core.Keywords, ", ")
		}
	}

	for _, sld := range pres.Slides {
		target, ok := targets[sld.RelID]
		if !ok {
			return types.Deck{}, fmt.Errorf("slide relationship %s not found", sld.RelID)
		}
		var x xmlSlide
		if err := decodePart(files, path.Join("ppt", target), &x); err != nil {
			return types.Deck{}, err
		}
		d.Slides = append(d.Slides, x.slide())
	}
	return d, nil
}

// ReadFile opens the .pptx package at name and reads it.
func ReadFile(name string) (types.Deck, error) {
	f, err := os.Open(name)
	if err != nil {
		return types.Deck{}, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return types.Deck{}, fmt.Errorf("stat %s: %w", name, err)
	}
	return Read(f, info.Size())
}

func decodePart(files map[string]*zip.File, name string, v any) error {
	f, ok := files[name]
	if !ok {
		return fmt.Errorf("package part %s missing", name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	if err := xml.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

type xmlSlide struct {
	Shapes []struct {
		Ph *struct {
			Type string `xml:"type,attr"`
			Idx  int    `xml:"idx,attr"`
		} `xml:"nvSpPr>nvPr>ph"`
		Paras []struct {
			PPr *struct {
				Lvl int `xml:"lvl,attr"`
			} `xml:"pPr"`
			Runs []string `xml:"r>t"`
		} `xml:"txBody>p"`
	} `xml:"cSld>spTree>sp"`
}

func (x xmlSlide) slide() types.Slide {
	var s types.Slide
	bodyFound := false
	for _, sh := range x.Shapes {
		if sh.Ph == nil {
			continue
		}
		if PlaceholderType(sh.Ph.Type).isTitle() {
			var parts []string
			for _, p := range sh.Paras {
				parts = append(parts, strings.Join(p.Runs, ""))
			}
			if title := strings.Join(parts, "\n"); title != "" {
				s.Title = title
				s.HasTitle = true
			}
			continue
		}
		if bodyFound {
			continue
		}
		bodyFound = true
		for _, p := range sh.Paras {
			line := types.BodyLine{Text: strings.Join(p.Runs, "")}
			if p.PPr != nil && p.PPr.Lvl > 0 {
				line.Indent = types.IndentNested
			}
			s.Body = append(s.Body, line)
		}
		// An untouched placeholder holds one empty paragraph.
		if len(s.Body) == 1 && s.Body[0].Text == "" {
			s.Body = nil
		}
	}
	return s
}
