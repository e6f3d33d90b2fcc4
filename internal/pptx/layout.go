// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

// Slide dimensions in EMU for the default 4:3 template.
const (
	slideWidth  = 9144000
	slideHeight = 6858000
)

// PlaceholderType is the OOXML placeholder type attribute. The empty value
// is the generic content placeholder, written without a type attribute.
type PlaceholderType string

const (
	PlaceholderObject      PlaceholderType = ""
	PlaceholderTitle       PlaceholderType = "title"
	PlaceholderCenterTitle PlaceholderType = "ctrTitle"
	PlaceholderSubTitle    PlaceholderType = "subTitle"
	PlaceholderBody        PlaceholderType = "body"
	PlaceholderDate        PlaceholderType = "dt"
	PlaceholderFooter      PlaceholderType = "ftr"
	PlaceholderSlideNumber PlaceholderType = "sldNum"
)

// isTitle reports whether the placeholder holds a slide title.
func (t PlaceholderType) isTitle() bool {
	return t == PlaceholderTitle || t == PlaceholderCenterTitle
}

// isFooter reports whether the placeholder belongs to the footer band. These
// are not copied onto new slides.
func (t PlaceholderType) isFooter() bool {
	return t == PlaceholderDate || t == PlaceholderFooter || t == PlaceholderSlideNumber
}

// rect is a shape position and size in EMU.
type rect struct {
	X, Y, CX, CY int64
}

// Placeholder describes one placeholder a layout exposes.
type Placeholder struct {
	Type PlaceholderType
	// Idx is the placeholder index; title placeholders use 0.
	Idx int
	// Name is the base shape name, suffixed with the shape id on slides.
	Name   string
	prompt string
	frame  rect
}

// Layout is a slide layout of the built-in template.
type Layout struct {
	Name string
	// kind is the ST_SlideLayoutType value.
	kind         string
	Placeholders []Placeholder
}

// placeholder returns the layout placeholder matching fn.
func (l Layout) placeholder(fn func(Placeholder) bool) (Placeholder, bool) {
	for _, ph := range l.Placeholders {
		if fn(ph) {
			return ph, true
		}
	}
	return Placeholder{}, false
}

var (
	titleFrame  = rect{457200, 274638, 8229600, 1143000}
	bodyFrame   = rect{457200, 1600200, 8229600, 4525963}
	dateFrame   = rect{457200, 6356350, 2133600, 365125}
	footerFrame = rect{3124200, 6356350, 2895600, 365125}
	numberFrame = rect{6553200, 6356350, 2133600, 365125}
)

const (
	titlePrompt = "Click to edit Master title style"
	bodyPrompt  = "Click to edit Master text styles"
)

func footerPlaceholders() []Placeholder {
	return []Placeholder{
		{Type: PlaceholderDate, Idx: 10, Name: "Date Placeholder", frame: dateFrame},
		{Type: PlaceholderFooter, Idx: 11, Name: "Footer Placeholder", frame: footerFrame},
		{Type: PlaceholderSlideNumber, Idx: 12, Name: "Slide Number Placeholder", frame: numberFrame},
	}
}

// masterPlaceholders are the placeholders on the slide master.
func masterPlaceholders() []Placeholder {
	return append([]Placeholder{
		{Type: PlaceholderTitle, Name: "Title Placeholder", prompt: titlePrompt, frame: titleFrame},
		{Type: PlaceholderBody, Idx: 1, Name: "Text Placeholder", prompt: bodyPrompt, frame: bodyFrame},
	}, footerPlaceholders()...)
}

// defaultLayouts returns the layouts of the built-in template in the order
// PowerPoint's blank template lists them. Index 1 is Title and Content.
func defaultLayouts() []Layout {
	withFooter := func(phs ...Placeholder) []Placeholder {
		return append(phs, footerPlaceholders()...)
	}
	title := Placeholder{Type: PlaceholderTitle, Name: "Title", prompt: titlePrompt, frame: titleFrame}

	return []Layout{
		{
			Name: "Title Slide",
			kind: "title",
			Placeholders: withFooter(
				Placeholder{Type: PlaceholderCenterTitle, Name: "Title", prompt: titlePrompt,
					frame: rect{685800, 2130425, 7772400, 1470025}},
				Placeholder{Type: PlaceholderSubTitle, Idx: 1, Name: "Subtitle",
					prompt: "Click to edit Master subtitle style", frame: rect{1371600, 3886200, 6400800, 1752600}},
			),
		},
		{
			Name: "Title and Content",
			kind: "obj",
			Placeholders: withFooter(
				title,
				Placeholder{Type: PlaceholderObject, Idx: 1, Name: "Content Placeholder", prompt: bodyPrompt, frame: bodyFrame},
			),
		},
		{
			Name: "Section Header",
			kind: "secHead",
			Placeholders: withFooter(
				Placeholder{Type: PlaceholderTitle, Name: "Title", prompt: titlePrompt,
					frame: rect{722313, 4406900, 7772400, 1362075}},
				Placeholder{Type: PlaceholderBody, Idx: 1, Name: "Text Placeholder", prompt: bodyPrompt,
					frame: rect{722313, 2906713, 7772400, 1500187}},
			),
		},
		{
			Name: "Two Content",
			kind: "twoObj",
			Placeholders: withFooter(
				title,
				Placeholder{Type: PlaceholderObject, Idx: 1, Name: "Content Placeholder", prompt: bodyPrompt,
					frame: rect{457200, 1600200, 4038600, 4525963}},
				Placeholder{Type: PlaceholderObject, Idx: 2, Name: "Content Placeholder", prompt: bodyPrompt,
					frame: rect{4648200, 1600200, 4038600, 4525963}},
			),
		},
		{
			Name:         "Title Only",
			kind:         "titleOnly",
			Placeholders: withFooter(title),
		},
		{
			Name:         "Blank",
			kind:         "blank",
			Placeholders: footerPlaceholders(),
		},
	}
}
