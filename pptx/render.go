package pptx

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/presentation"
	"github.com/unidoc/unioffice/schema/soo/dml"
	"github.com/unidoc/unioffice/schema/soo/pml"

	"github.com/aerissecure/worddeck/vocab"
)

// Render converts the IR into a unioffice presentation.
func Render(d *Deck) *presentation.Presentation {
	ppt := presentation.New()

	if ppt.X().SldSz == nil {
		ppt.X().SldSz = pml.NewCT_SlideSize()
	}
	ppt.X().SldSz.CxAttr = toEMU(d.Width)
	ppt.X().SldSz.CyAttr = toEMU(d.Height)

	for _, s := range d.Slides {
		slide := ppt.AddSlide()
		for _, r := range s.Regions {
			addRegion(slide, r)
		}
	}
	return ppt
}

func addRegion(slide presentation.Slide, r Region) {
	tb := slide.AddTextBox()
	tb.Properties().SetPosition(r.Rect.Left, r.Rect.Top)
	tb.Properties().SetSize(r.Rect.Width, r.Rect.Height)

	sp := lastShape(slide)
	if sp.TxBody.BodyPr == nil {
		sp.TxBody.BodyPr = dml.NewCT_TextBodyProperties()
	}
	bodyPr := sp.TxBody.BodyPr
	if r.WordWrap {
		bodyPr.WrapAttr = dml.ST_TextWrappingTypeSquare
	} else {
		bodyPr.WrapAttr = dml.ST_TextWrappingTypeNone
	}
	bodyPr.NoAutofit = nil
	bodyPr.NormAutofit = nil
	bodyPr.SpAutoFit = nil
	switch r.AutoFit {
	case ResizeShapeToFitText:
		bodyPr.SpAutoFit = dml.NewCT_TextShapeAutofit()
	default:
		bodyPr.NormAutofit = dml.NewCT_TextNormalAutofit()
	}

	para := tb.AddParagraph()
	if r.Align == AlignCenter {
		para.Properties().SetAlign(dml.ST_TextAlignTypeCtr)
	} else {
		para.Properties().SetAlign(dml.ST_TextAlignTypeL)
	}

	// Lines share one paragraph, separated by soft breaks.
	for i, line := range strings.Split(r.Text, "\n") {
		if i > 0 {
			para.AddBreak()
		}
		run := para.AddRun()
		run.SetText(line)
		run.Properties().SetSize(r.FontSize)
	}
}

// lastShape returns the shape AddTextBox just appended. TextBox does not
// expose its body properties, so they are reached through the slide tree.
func lastShape(slide presentation.Slide) *pml.CT_Shape {
	choices := slide.X().CSld.SpTree.Choice
	return choices[len(choices)-1].Sp[0]
}

func toEMU(d measurement.Distance) int32 {
	return int32(math.Round(float64(d / measurement.EMU)))
}

// ErrEmptyDeck is returned when writing a deck without slides.
var ErrEmptyDeck = errors.New("deck has no slides")

// Write renders d and writes the .pptx package to w.
func Write(d *Deck, w io.Writer) error {
	// unlicensed unioffice builds stamp a notice on the first slide on save
	if d.Len() == 0 {
		return ErrEmptyDeck
	}
	return Render(d).Save(w)
}

// Save renders d to path. The deck is written to a temporary file in the
// destination directory and renamed into place, so a failed save never leaves
// a truncated file at path. Failures are reported as *vocab.SaveError.
func Save(d *Deck, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".worddeck-*.pptx")
	if err != nil {
		return &vocab.SaveError{Path: path, Err: err}
	}
	// no-op once the rename succeeded
	defer os.Remove(tmp.Name())

	if err := Write(d, tmp); err != nil {
		tmp.Close()
		return &vocab.SaveError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &vocab.SaveError{Path: path, Err: err}
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return &vocab.SaveError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &vocab.SaveError{Path: path, Err: err}
	}
	return nil
}
