package pptx

import (
	"log/slog"

	"github.com/aerissecure/worddeck/vocab"
)

// DefaultProgressEvery is how many slides pass between progress reports.
const DefaultProgressEvery = 10

// ProgressFunc receives the number of slides built so far and the total.
type ProgressFunc func(done, total int)

// Builder turns records into a Deck.
type Builder struct {
	Layout        Layout
	Progress      ProgressFunc // optional
	ProgressEvery int          // <= 0 means DefaultProgressEvery
	Logger        *slog.Logger // nil means slog.Default()
}

// NewBuilder returns a Builder using the default layout and no progress reporting.
func NewBuilder() *Builder {
	return &Builder{Layout: DefaultLayout()}
}

// Build creates an empty 16x9 deck and appends one slide per record, in order.
// Progress, when set, is reported every ProgressEvery slides and after the last one.
func (b *Builder) Build(records []vocab.Record) *Deck {
	log := b.Logger
	if log == nil {
		log = slog.Default()
	}
	every := b.ProgressEvery
	if every <= 0 {
		every = DefaultProgressEvery
	}

	deck := &Deck{
		Width:  SlideWidth,
		Height: SlideHeight,
		Slides: make([]Slide, 0, len(records)),
	}
	total := len(records)
	for i, rec := range records {
		deck.Slides = append(deck.Slides, b.Layout.Slide(rec))
		done := i + 1
		if b.Progress != nil && (done%every == 0 || done == total) {
			b.Progress(done, total)
		}
	}
	log.Debug("deck built", slog.Int("slides", deck.Len()))
	return deck
}
