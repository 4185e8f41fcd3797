// Package worddeck turns vocabulary spreadsheets into PowerPoint decks with one
// slide per word.
package worddeck

import (
	"errors"
	"log/slog"

	"github.com/aerissecure/worddeck/pptx"
	"github.com/aerissecure/worddeck/xlsx"
)

// ErrNoRecords is returned when the sheet has a valid header but no data rows.
var ErrNoRecords = errors.New("sheet has no data rows")

// Options configures Generate. The zero value reads the active sheet and uses
// the default layout.
type Options struct {
	Sheet         string // empty means the workbook's active sheet
	WrapThreshold int    // <= 0 means pptx.DefaultWrapThreshold
	ProgressEvery int    // <= 0 means pptx.DefaultProgressEvery

	// OnLoaded is called once the records are read, before any slide is built.
	OnLoaded func(total int)
	Progress pptx.ProgressFunc

	Logger *slog.Logger // nil means slog.Default()
}

// Generate reads the vocabulary sheet at input, lays out one slide per record
// and saves the deck to output. It returns the number of slides written.
//
// Reader errors (*vocab.FileOpenError, *vocab.MissingColumnsError) are returned
// before any slide is built, and output is left untouched, as it is for a sheet
// without data rows (ErrNoRecords). Save failures are *vocab.SaveError.
func Generate(input, output string, opts Options) (int, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("input", input), slog.String("sheet", opts.Sheet))

	records, err := xlsx.LoadRecords(input, opts.Sheet)
	if err != nil {
		log.Error("load records", slog.Any("err", err))
		return 0, err
	}
	log.Info("records loaded", slog.Int("count", len(records)))
	if len(records) == 0 {
		return 0, ErrNoRecords
	}
	if opts.OnLoaded != nil {
		opts.OnLoaded(len(records))
	}

	layout := pptx.DefaultLayout()
	if opts.WrapThreshold > 0 {
		layout.WrapThreshold = opts.WrapThreshold
	}
	b := &pptx.Builder{
		Layout:        layout,
		Progress:      opts.Progress,
		ProgressEvery: opts.ProgressEvery,
		Logger:        log,
	}
	deck := b.Build(records)

	if err := pptx.Save(deck, output); err != nil {
		log.Error("save deck", slog.String("output", output), slog.Any("err", err))
		return 0, err
	}
	log.Info("deck saved", slog.String("output", output), slog.Int("slides", deck.Len()))
	return deck.Len(), nil
}
