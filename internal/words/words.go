// internal/words/words.go
//
// Word catalog for the round engine.
//
// Responsibilities:
//   - Load the catalog from a file (HANGMAN_WORDS_FILE) or the embedded default.
//   - Pick a uniformly random word through an injected Source.
//   - Look up the optional hint for a word.
//
// Catalog format (one entry per line):
//   WORD|hint text
// Blank lines and lines starting with '#' are ignored. Words are uppercased;
// entries that are not purely A–Z are dropped.
//
// A Bank is immutable after construction and never empty.

package words

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/hangman/assets"
)

// ErrEmptyCatalog is returned when no valid word survives loading.
var ErrEmptyCatalog = errors.New("words: catalog is empty")

// Word is a catalog entry. Text is uppercase A–Z.
type Word struct {
	Text string `json:"text"`
	Hint string `json:"hint,omitempty"`
}

// Bank is an immutable, non-empty list of candidate words.
type Bank struct {
	words []Word
	hints map[string]string
	src   Source
}

// Option configures a Bank.
type Option func(*Bank)

// WithSource replaces the default random source.
func WithSource(src Source) Option {
	return func(b *Bank) { b.src = src }
}

// New builds a Bank from entries. Invalid words and duplicates are dropped.
func New(entries []assets.Entry, opts ...Option) (*Bank, error) {
	valid := lo.Filter(entries, func(e assets.Entry, _ int) bool {
		return e.Word != "" && isAlpha(e.Word)
	})
	valid = lo.UniqBy(valid, func(e assets.Entry) string { return e.Word })
	if len(valid) == 0 {
		return nil, ErrEmptyCatalog
	}

	b := &Bank{
		words: make([]Word, 0, len(valid)),
		hints: make(map[string]string, len(valid)),
		src:   CryptoSource{},
	}
	for _, e := range valid {
		b.words = append(b.words, Word{Text: e.Word, Hint: e.Hint})
		if e.Hint != "" {
			b.hints[e.Word] = e.Hint
		}
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Load builds a Bank from path, or from the embedded catalog when path is empty.
func Load(path string, opts ...Option) (*Bank, error) {
	var (
		entries []assets.Entry
		err     error
	)
	if path != "" {
		f, ferr := os.Open(path)
		if ferr != nil {
			return nil, fmt.Errorf("open words file: %w", ferr)
		}
		defer f.Close()
		entries, err = assets.ParseCatalog(f)
	} else {
		entries, err = assets.Catalog()
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	b, err := New(entries, opts...)
	if err != nil {
		return nil, err
	}
	if dropped := len(entries) - len(b.words); dropped > 0 {
		log.Warn().Int("dropped", dropped).Str("path", path).Msg("skipped invalid catalog entries")
	}
	return b, nil
}

// PickRandom returns a uniformly random word.
func (b *Bank) PickRandom() Word {
	return b.words[b.src.IntN(len(b.words))]
}

// HintFor returns the hint for text, if the catalog has one.
func (b *Bank) HintFor(text string) (string, bool) {
	h, ok := b.hints[text]
	return h, ok
}

// Words returns a copy of the catalog.
func (b *Bank) Words() []Word {
	return append([]Word(nil), b.words...)
}

// Len reports the catalog size.
func (b *Bank) Len() int { return len(b.words) }

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
