// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/md2pptx/pkg/types"
)

func TestParse_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []types.Slide
	}{
		{
			name:  "single segment with title and body",
			input: "# Hello\nWorld",
			want: []types.Slide{
				{Title: "Hello", HasTitle: true, Body: []types.BodyLine{{Text: "World"}}},
			},
		},
		{
			name:  "two segments",
			input: "# A\n- x\n---\n# B\n- y",
			want: []types.Slide{
				{Title: "A", HasTitle: true, Body: []types.BodyLine{{Text: "x"}}},
				{Title: "B", HasTitle: true, Body: []types.BodyLine{{Text: "y"}}},
			},
		},
		{
			name:  "only separators",
			input: "---\n---",
			want:  nil,
		},
		{
			name:  "body without title keeps indentation",
			input: "Body only\n  nested line",
			want: []types.Slide{
				{Body: []types.BodyLine{
					{Text: "Body only", Indent: types.IndentNone},
					{Text: "nested line", Indent: types.IndentNested},
				}},
			},
		},
		{
			name:  "entirely blank input",
			input: "  \n\n\t\n",
			want:  nil,
		},
		{
			name:  "title only yields empty body",
			input: "## Just a title\n\n",
			want: []types.Slide{
				{Title: "Just a title", HasTitle: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.input, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Slides)
		})
	}
}

func TestParseSegment_Classification(t *testing.T) {
	tests := []struct {
		name      string
		segment   string
		wantTitle string
		hasTitle  bool
		wantBody  []types.BodyLine
	}{
		{
			name:      "heading markers removed from title",
			segment:   "### Deep #heading",
			wantTitle: "Deep heading",
			hasTitle:  true,
		},
		{
			name:      "second heading falls through to body with marker kept",
			segment:   "# First\n## Second\ntext",
			wantTitle: "First",
			hasTitle:  true,
			wantBody: []types.BodyLine{
				{Text: "## Second"},
				{Text: "text"},
			},
		},
		{
			name:     "comment lines dropped",
			segment:  "<!-- _class: lead -->\nvisible",
			wantBody: []types.BodyLine{{Text: "visible"}},
		},
		{
			name:     "emphasis and list markers stripped everywhere",
			segment:  "* **bold** and well-known",
			wantBody: []types.BodyLine{{Text: "bold and wellknown"}},
		},
		{
			name:      "tab indented line nests",
			segment:   "# T\n- top\n\t- child",
			wantTitle: "T",
			hasTitle:  true,
			wantBody: []types.BodyLine{
				{Text: "top", Indent: types.IndentNone},
				{Text: "child", Indent: types.IndentNested},
			},
		},
		{
			name:      "first body line after title can nest",
			segment:   "# T\n  - child",
			wantTitle: "T",
			hasTitle:  true,
			wantBody:  []types.BodyLine{{Text: "child", Indent: types.IndentNested}},
		},
		{
			name:     "leading whitespace of segment is not indentation",
			segment:  "\n   first\n second",
			wantBody: []types.BodyLine{{Text: "first"}, {Text: "second", Indent: types.IndentNested}},
		},
		{
			name:     "crlf line endings",
			segment:  "a\r\n  b\r\n",
			wantBody: []types.BodyLine{{Text: "a"}, {Text: "b", Indent: types.IndentNested}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slide, ok := ParseSegment(tt.segment)
			require.True(t, ok)
			assert.Equal(t, tt.wantTitle, slide.Title)
			assert.Equal(t, tt.hasTitle, slide.HasTitle)
			assert.Equal(t, tt.wantBody, slide.Body)
		})
	}
}

func TestParseSegment_Blank(t *testing.T) {
	for _, seg := range []string{"", " ", "\n\n", " \t \n "} {
		_, ok := ParseSegment(seg)
		assert.False(t, ok, "segment %q should be blank", seg)
	}
}

func TestParseSegment_CommentOnlyStillProducesSlide(t *testing.T) {
	slide, ok := ParseSegment("<!-- notes -->")
	require.True(t, ok)
	assert.False(t, slide.HasTitle)
	assert.Empty(t, slide.Body)
}

func TestSplit_IsNotLineAnchored(t *testing.T) {
	segs := Split("# A\nan em---dash\n---\n# B")
	require.Len(t, segs, 3)
	assert.Equal(t, "# A\nan em", segs[0])
	assert.Equal(t, "dash\n", segs[1])
	assert.Equal(t, "\n# B", segs[2])
}

func TestParse_SlideCountMatchesNonEmptySegments(t *testing.T) {
	inputs := []string{
		"",
		"text",
		"---",
		"a---b---c",
		"# A\n---\n\n---\n# C\n---",
		"----",
		"-----\nx",
	}
	for _, in := range inputs {
		d, err := Parse(in, Options{})
		require.NoError(t, err)

		want := 0
		for _, seg := range Split(in) {
			if _, ok := ParseSegment(seg); ok {
				want++
			}
		}
		assert.Len(t, d.Slides, want, "input %q", in)
		assert.Equal(t, len(Split(in)), d.Segments, "input %q", in)
	}
}

func TestParse_CommentsNeverReachOutput(t *testing.T) {
	d, err := Parse("# T\n<!-- hidden -->\nshown\n---\n<!-- x -->\n# U", Options{})
	require.NoError(t, err)
	for _, s := range d.Slides {
		assert.NotContains(t, s.Title, "<!--")
		for _, b := range s.Body {
			assert.NotContains(t, b.Text, "<!--")
		}
	}
}

func TestParse_FrontMatter(t *testing.T) {
	input := "---\ntitle: Quarterly Review\nauthor: Ada\nkeywords: [q3, review]\nmarp: true\n---\n# Agenda\n- numbers\n---\n# Close"

	t.Run("disabled treats front matter as slides", func(t *testing.T) {
		d, err := Parse(input, Options{})
		require.NoError(t, err)
		require.Len(t, d.Slides, 3)
		assert.False(t, d.Slides[0].HasTitle)
		assert.Empty(t, d.Metadata.Title)
	})

	t.Run("enabled strips and decodes", func(t *testing.T) {
		d, err := Parse(input, Options{FrontMatter: true})
		require.NoError(t, err)
		assert.Equal(t, "Quarterly Review", d.Metadata.Title)
		assert.Equal(t, "Ada", d.Metadata.Author)
		assert.Equal(t, []string{"q3", "review"}, d.Metadata.Keywords)
		require.Len(t, d.Slides, 2)
		assert.Equal(t, "Agenda", d.Slides[0].Title)
		assert.Equal(t, "Close", d.Slides[1].Title)
	})

	t.Run("enabled without front matter leaves content alone", func(t *testing.T) {
		d, err := Parse("# Only\nbody", Options{FrontMatter: true})
		require.NoError(t, err)
		require.Len(t, d.Slides, 1)
		assert.Equal(t, "Only", d.Slides[0].Title)
	})
}
