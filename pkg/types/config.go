// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultLayoutIndex selects the second built-in layout, Title and Content,
// which carries a title placeholder and a body placeholder.
const DefaultLayoutIndex = 1

// ConversionConfig holds settings for the convert stage.
type ConversionConfig struct {
	// LayoutIndex is the slide layout used for every slide (default 1).
	LayoutIndex int `json:"layout_index" yaml:"layout_index"`

	// FrontMatter enables stripping and decoding a leading YAML front
	// matter block before the document is split into slides.
	FrontMatter bool `json:"front_matter" yaml:"front_matter"`
}

// DefaultConversionConfig returns the settings used when no config file,
// environment variable, or flag overrides them.
func DefaultConversionConfig() ConversionConfig {
	return ConversionConfig{
		LayoutIndex: DefaultLayoutIndex,
	}
}
