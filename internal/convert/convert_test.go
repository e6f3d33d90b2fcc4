// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/md2pptx/internal/pptx"
	"github.com/pdiddy/md2pptx/pkg/types"
)

// setupInput writes a Markdown file into a temp dir and returns its path and
// the path the presentation should be written to.
func setupInput(t *testing.T, content string) (inputPath, outputPath string) {
	t.Helper()
	dir := t.TempDir()
	inputPath = filepath.Join(dir, "deck.md")
	require.NoError(t, os.WriteFile(inputPath, []byte(content), 0o644))
	return inputPath, filepath.Join(dir, "deck.pptx")
}

func newTestConverter(t *testing.T, cfg types.ConversionConfig) (*Converter, *bytes.Buffer) {
	t.Helper()
	var log bytes.Buffer
	return New(cfg, zaptest.NewLogger(t).Sugar(), &log), &log
}

func TestConvert_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []types.Slide
	}{
		{
			name:  "title and body without separator",
			input: "# Hello\nWorld",
			want: []types.Slide{
				{Title: "Hello", HasTitle: true, Body: []types.BodyLine{{Text: "World"}}},
			},
		},
		{
			name:  "two slides",
			input: "# A\n- x\n---\n# B\n- y",
			want: []types.Slide{
				{Title: "A", HasTitle: true, Body: []types.BodyLine{{Text: "x"}}},
				{Title: "B", HasTitle: true, Body: []types.BodyLine{{Text: "y"}}},
			},
		},
		{
			name:  "separators only",
			input: "---\n---",
			want:  nil,
		},
		{
			name:  "untitled slide with nested line",
			input: "Body only\n  nested line",
			want: []types.Slide{
				{Body: []types.BodyLine{
					{Text: "Body only"},
					{Text: "nested line", Indent: types.IndentNested},
				}},
			},
		},
		{
			name:  "comments and extra headings",
			input: "<!-- _class: lead -->\n# Main\n## Sub\n* point\n  * deeper",
			want: []types.Slide{
				{Title: "Main", HasTitle: true, Body: []types.BodyLine{
					{Text: "## Sub"},
					{Text: "point"},
					{Text: "deeper", Indent: types.IndentNested},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := setupInput(t, tt.input)
			c, _ := newTestConverter(t, types.DefaultConversionConfig())

			require.NoError(t, c.Convert(in, out))

			d, err := pptx.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Slides)
		})
	}
}

func TestConvert_StatusLine(t *testing.T) {
	in, out := setupInput(t, "# One\n---\n# Two")
	c, log := newTestConverter(t, types.DefaultConversionConfig())

	require.NoError(t, c.Convert(in, out))
	assert.Contains(t, log.String(), "converted:")
	assert.Contains(t, log.String(), "(2 slides)")
}

func TestConvert_OverwritesOutput(t *testing.T) {
	in, out := setupInput(t, "# Fresh")
	require.NoError(t, os.WriteFile(out, []byte("old content"), 0o644))
	c, _ := newTestConverter(t, types.DefaultConversionConfig())

	require.NoError(t, c.Convert(in, out))

	d, err := pptx.ReadFile(out)
	require.NoError(t, err)
	require.Len(t, d.Slides, 1)
	assert.Equal(t, "Fresh", d.Slides[0].Title)
}

func TestConvert_MetadataTitle(t *testing.T) {
	t.Run("defaults to input file name", func(t *testing.T) {
		in, out := setupInput(t, "# x")
		c, _ := newTestConverter(t, types.DefaultConversionConfig())
		require.NoError(t, c.Convert(in, out))

		d, err := pptx.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "deck", d.Metadata.Title)
		assert.Equal(t, "md2pptx", d.Metadata.Author)
	})

	t.Run("front matter when enabled", func(t *testing.T) {
		in, out := setupInput(t, "---\ntitle: Roadmap\nauthor: Grace\n---\n# Now\n---\n# Next")
		cfg := types.DefaultConversionConfig()
		cfg.FrontMatter = true
		c, _ := newTestConverter(t, cfg)
		require.NoError(t, c.Convert(in, out))

		d, err := pptx.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "Roadmap", d.Metadata.Title)
		assert.Equal(t, "Grace", d.Metadata.Author)
		require.Len(t, d.Slides, 2)
		assert.Equal(t, "Now", d.Slides[0].Title)
	})
}

func TestConvert_Errors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		dir := t.TempDir()
		out := filepath.Join(dir, "deck.pptx")
		c, _ := newTestConverter(t, types.DefaultConversionConfig())

		err := c.Convert(filepath.Join(dir, "nope.md"), out)
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		assert.NoFileExists(t, out)
	})

	t.Run("unwritable output", func(t *testing.T) {
		in, _ := setupInput(t, "# T")
		out := filepath.Join(t.TempDir(), "no", "such", "dir", "deck.pptx")
		c, _ := newTestConverter(t, types.DefaultConversionConfig())

		err := c.Convert(in, out)
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("layout without body placeholder", func(t *testing.T) {
		in, out := setupInput(t, "# T\nbody line")
		c, _ := newTestConverter(t, types.ConversionConfig{LayoutIndex: 4})

		err := c.Convert(in, out)
		require.Error(t, err)
		assert.True(t, errors.Is(err, pptx.ErrPlaceholderNotFound))
		assert.NoFileExists(t, out)
	})

	t.Run("layout without body placeholder is fine for title-only slides", func(t *testing.T) {
		in, out := setupInput(t, "# T")
		c, _ := newTestConverter(t, types.ConversionConfig{LayoutIndex: 4})
		require.NoError(t, c.Convert(in, out))
	})

	t.Run("layout index out of range", func(t *testing.T) {
		in, out := setupInput(t, "# T")
		c, _ := newTestConverter(t, types.ConversionConfig{LayoutIndex: 99})

		err := c.Convert(in, out)
		require.Error(t, err)
		assert.True(t, errors.Is(err, pptx.ErrLayoutNotFound))
	})

	t.Run("empty deck never touches the layout", func(t *testing.T) {
		in, out := setupInput(t, "\n---\n")
		c, _ := newTestConverter(t, types.ConversionConfig{LayoutIndex: 99})
		require.NoError(t, c.Convert(in, out))
		assert.FileExists(t, out)
	})
}

func TestRender_UsesConfiguredLayout(t *testing.T) {
	c := New(types.ConversionConfig{LayoutIndex: 2}, nil, nil)
	pres, err := c.Render(types.Deck{
		Segments: 1,
		Slides:   []types.Slide{{Title: "Part II", HasTitle: true, Body: []types.BodyLine{{Text: "intro"}}}},
	})
	require.NoError(t, err)

	slides := pres.Slides()
	require.Len(t, slides, 1)
	assert.Equal(t, "Section Header", slides[0].Layout().Name)

	body, err := slides[0].Placeholder(1)
	require.NoError(t, err)
	assert.Equal(t, "intro", body.TextFrame().Text())
}
