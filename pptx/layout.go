package pptx

import (
	"github.com/unidoc/unioffice/measurement"

	"github.com/aerissecure/worddeck/vocab"
)

// Canvas size of every deck.
const (
	SlideWidth  measurement.Distance = 16 * measurement.Inch
	SlideHeight measurement.Distance = 9 * measurement.Inch
)

// Font sizes.
const (
	WordFontSize     measurement.Distance = 72 * measurement.Point
	PhoneticFontSize measurement.Distance = 32 * measurement.Point
	ContentFontSize  measurement.Distance = 32 * measurement.Point
)

// Labels prefixed to the wrapped content regions.
const (
	LabelDefinition         = "单词释义："
	LabelMorphology         = "词根词缀："
	LabelExample            = "例句："
	LabelExampleTranslation = "例句释义："
)

var (
	wordRect       = Inches(4, 1, 8, 2)
	phoneticRect   = Inches(7, 2.4, 2, 1)
	definitionRect = Inches(2, 3, 8, 1.5)
	morphologyRect = Inches(2, 4, 12, 2)
	exampleRect    = Inches(2, 5.4, 12, 3)
)

// Layout maps records to slides.
type Layout struct {
	// WrapThreshold is passed to Wrap for the labelled regions.
	WrapThreshold int
}

// DefaultLayout wraps at DefaultWrapThreshold.
func DefaultLayout() Layout {
	return Layout{WrapThreshold: DefaultWrapThreshold}
}

// Slide lays out one record. The definition region is present only when the
// record's definition is non-empty, and is stacked last.
func (l Layout) Slide(rec vocab.Record) Slide {
	s := Slide{Regions: make([]Region, 0, 5)}

	s.Regions = append(s.Regions,
		Region{
			Kind:     RegionWord,
			Rect:     wordRect,
			FontSize: WordFontSize,
			Align:    AlignCenter,
			AutoFit:  ShrinkTextOnOverflow,
			Text:     rec.Word(),
		},
		Region{
			Kind:     RegionPhonetic,
			Rect:     phoneticRect,
			FontSize: PhoneticFontSize,
			Align:    AlignCenter,
			AutoFit:  ShrinkTextOnOverflow,
			Text:     rec.Phonetic(),
		},
		Region{
			Kind:     RegionMorphology,
			Rect:     morphologyRect,
			FontSize: ContentFontSize,
			Align:    AlignLeft,
			WordWrap: true,
			AutoFit:  ShrinkTextOnOverflow,
			Text:     LabelMorphology + l.wrap(rec.Morphology()),
		},
		Region{
			Kind:     RegionExample,
			Rect:     exampleRect,
			FontSize: ContentFontSize,
			Align:    AlignLeft,
			WordWrap: true,
			AutoFit:  ShrinkTextOnOverflow,
			Text: LabelExample + l.wrap(rec.Example()) + "\n" +
				LabelExampleTranslation + l.wrap(rec.ExampleTranslation()),
		},
	)

	if def := rec.Definition(); def != "" {
		s.Regions = append(s.Regions, Region{
			Kind:     RegionDefinition,
			Rect:     definitionRect,
			FontSize: ContentFontSize,
			Align:    AlignLeft,
			AutoFit:  ResizeShapeToFitText,
			Text:     LabelDefinition + l.wrap(def),
		})
	}
	return s
}

func (l Layout) wrap(text string) string {
	return Wrap(text, l.WrapThreshold)
}
