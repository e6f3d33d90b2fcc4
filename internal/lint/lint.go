// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lint reports where a slide document will be split. Splitting is a
// plain substring match on "---", so it also fires inside prose, code blocks,
// HTML comments, and under setext headings. Check parses the document as
// Markdown with goldmark and labels every split point by what a Markdown
// reader would see there.
package lint

import (
	"bytes"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/md2pptx/internal/deck"
)

// Kind classifies a split point.
type Kind string

const (
	// KindRule is a line made only of dashes: the intended separator.
	KindRule Kind = "rule"
	// KindInline is a separator inside a line of text.
	KindInline Kind = "inline"
	// KindSetext is a dash line Markdown reads as a heading underline.
	KindSetext Kind = "setext"
	// KindCode is a separator inside a code block.
	KindCode Kind = "code"
	// KindHTML is a separator inside an HTML block such as a comment.
	KindHTML Kind = "html"
)

// Finding is one split point.
type Finding struct {
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
	Kind   Kind   `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
}

// Warning reports whether the split point is probably unintended.
func (f Finding) Warning() bool {
	return f.Kind != KindRule
}

// Report is the result of Check.
type Report struct {
	Findings []Finding `json:"findings" yaml:"findings"`
	Segments int       `json:"segments" yaml:"segments"`
	Slides   int       `json:"slides" yaml:"slides"`
}

// Warnings returns the number of findings that are warnings.
func (r Report) Warnings() int {
	n := 0
	for _, f := range r.Findings {
		if f.Warning() {
			n++
		}
	}
	return n
}

// Check locates every split point in src and classifies it.
func Check(src []byte) Report {
	idx := newLineIndex(src)
	blocks := scanBlocks(src, idx)

	var r Report
	sep := []byte(deck.Separator)
	for off := 0; ; {
		i := bytes.Index(src[off:], sep)
		if i < 0 {
			break
		}
		pos := off + i
		off = pos + len(sep)

		line := idx.lineOf(pos)
		raw := idx.text(src, line)
		r.Findings = append(r.Findings, Finding{
			Line:   line,
			Column: pos - idx.start(line) + 1,
			Kind:   classify(line, raw, blocks),
			Text:   strings.TrimSpace(raw),
		})
	}

	d, _ := deck.Parse(string(src), deck.Options{})
	r.Segments = d.Segments
	r.Slides = len(d.Slides)
	return r
}

func classify(line int, raw string, b blockLines) Kind {
	switch {
	case b.code[line]:
		return KindCode
	case b.html[line]:
		return KindHTML
	case !isDashLine(raw):
		return KindInline
	case b.setext[line]:
		return KindSetext
	default:
		return KindRule
	}
}

// isDashLine reports whether the line holds nothing but dashes.
func isDashLine(raw string) bool {
	s := strings.TrimSpace(raw)
	return s != "" && strings.Trim(s, "-") == ""
}

// blockLines records which 1-based lines fall inside blocks of interest.
type blockLines struct {
	code   map[int]bool
	html   map[int]bool
	setext map[int]bool
}

func scanBlocks(src []byte, idx lineIndex) blockLines {
	b := blockLines{code: map[int]bool{}, html: map[int]bool{}, setext: map[int]bool{}}
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	markLines := func(into map[int]bool, segs *text.Segments) {
		for i := 0; i < segs.Len(); i++ {
			into[idx.lineOf(segs.At(i).Start)] = true
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			markLines(b.code, node.Lines())
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock:
			markLines(b.html, node.Lines())
			if node.HasClosure() {
				b.html[idx.lineOf(node.ClosureLine.Start)] = true
			}
			return ast.WalkSkipChildren, nil
		case *ast.Heading:
			lines := node.Lines()
			if lines.Len() == 0 {
				break
			}
			first := idx.lineOf(lines.At(0).Start)
			if isATXLine(idx.text(src, first)) {
				break
			}
			last := idx.lineOf(lines.At(lines.Len() - 1).Start)
			b.setext[last+1] = true
		}
		return ast.WalkContinue, nil
	})
	return b
}

// isATXLine reports whether a line opens an ATX heading: up to three spaces,
// one to six '#', then whitespace or end of line.
func isATXLine(raw string) bool {
	s := strings.TrimLeft(raw, " ")
	if len(raw)-len(s) > 3 {
		return false
	}
	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return false
	}
	return n == len(s) || s[n] == ' ' || s[n] == '\t' || s[n] == '\r'
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex struct {
	starts []int
	size   int
}

func newLineIndex(src []byte) lineIndex {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{starts: starts, size: len(src)}
}

func (l lineIndex) lineOf(off int) int {
	return sort.Search(len(l.starts), func(i int) bool { return l.starts[i] > off })
}

func (l lineIndex) start(line int) int {
	return l.starts[line-1]
}

// text returns the line without its trailing newline.
func (l lineIndex) text(src []byte, line int) string {
	if line < 1 || line > len(l.starts) {
		return ""
	}
	end := l.size
	if line < len(l.starts) {
		end = l.starts[line] - 1
	}
	return string(src[l.starts[line-1]:end])
}
