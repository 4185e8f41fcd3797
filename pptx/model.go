// Package pptx lays vocabulary records out as slides and writes them as a
// PowerPoint deck.
package pptx

import (
	"fmt"

	"github.com/unidoc/unioffice/measurement"
)

// Intermediate representation for a deck. Layout fills it in, the renderer
// turns it into presentationML. Geometry is in measurement units (points).

// Align is the horizontal alignment of a region's paragraph.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

func (a Align) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "left"
}

// AutoFit is the container sizing policy of a region.
type AutoFit int

const (
	// ShrinkTextOnOverflow keeps the box size and shrinks the text to fit it.
	ShrinkTextOnOverflow AutoFit = iota
	// ResizeShapeToFitText grows the box to hold its text.
	ResizeShapeToFitText
)

func (f AutoFit) String() string {
	if f == ResizeShapeToFitText {
		return "shape-to-fit-text"
	}
	return "text-to-fit-shape"
}

// Rect is a region's position and size on the slide.
type Rect struct {
	Left, Top, Width, Height measurement.Distance
}

// Inches builds a Rect from inch values.
func Inches(left, top, width, height float64) Rect {
	return Rect{
		Left:   measurement.Distance(left) * measurement.Inch,
		Top:    measurement.Distance(top) * measurement.Inch,
		Width:  measurement.Distance(width) * measurement.Inch,
		Height: measurement.Distance(height) * measurement.Inch,
	}
}

func (r Rect) String() string {
	in := float64(measurement.Inch)
	return fmt.Sprintf("(%.2fin, %.2fin, %.2fin, %.2fin)", float64(r.Left)/in, float64(r.Top)/in, float64(r.Width)/in, float64(r.Height)/in)
}

// RegionKind identifies which record field a region shows.
type RegionKind string

const (
	RegionWord       RegionKind = "word"
	RegionPhonetic   RegionKind = "phonetic"
	RegionDefinition RegionKind = "definition"
	RegionMorphology RegionKind = "morphology"
	RegionExample    RegionKind = "example"
)

// Region is one text box. Text may hold "\n" line breaks; they render as line
// breaks inside a single paragraph.
type Region struct {
	Kind     RegionKind
	Rect     Rect
	FontSize measurement.Distance
	Align    Align
	WordWrap bool
	AutoFit  AutoFit
	Text     string
}

func (r Region) String() string {
	return fmt.Sprintf("Kind: %s, Rect: %s, FontSize: %.0fpt, Align: %s, WordWrap: %t, AutoFit: %s, Text: %q",
		r.Kind, r.Rect, float64(r.FontSize), r.Align, r.WordWrap, r.AutoFit, r.Text)
}

// Slide is the IR for a single slide; regions are in z-order, back to front.
type Slide struct {
	Regions []Region
}

// Region returns the region of the given kind.
func (s Slide) Region(kind RegionKind) (Region, bool) {
	for _, r := range s.Regions {
		if r.Kind == kind {
			return r, true
		}
	}
	return Region{}, false
}

func (s Slide) String() string {
	return fmt.Sprintf("Regions: %d", len(s.Regions))
}

// Deck is the top-level IR: slides in record order on a fixed canvas.
type Deck struct {
	Width, Height measurement.Distance
	Slides        []Slide
}

// Len reports the number of slides.
func (d *Deck) Len() int {
	return len(d.Slides)
}

func (d *Deck) String() string {
	in := float64(measurement.Inch)
	return fmt.Sprintf("Size: %.0fx%.0fin, Slides: %d", float64(d.Width)/in, float64(d.Height)/in, len(d.Slides))
}
