package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/hangman/assets"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	is := is.New(t)
	b, err := Load("")
	is.NoErr(err)
	is.Equal(b.Len(), 8)

	hint, ok := b.HintFor("CAPTAIN")
	is.True(ok)
	is.Equal(hint, "A leader, often of a ship or team.")

	_, ok = b.HintFor("NOPE")
	is.True(!ok)
}

func TestLoadFileFiltersInvalid(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	body := strings.Join([]string{
		"# comment",
		"",
		"rocket|Goes up.",
		"two words|bad",
		"R2D2",
		"ROCKET|dup",
		"planet",
	}, "\n")
	is.NoErr(os.WriteFile(path, []byte(body), 0o644))

	b, err := Load(path)
	is.NoErr(err)
	is.Equal(b.Words(), []Word{{Text: "ROCKET", Hint: "Goes up."}, {Text: "PLANET"}})

	_, ok := b.HintFor("PLANET")
	is.True(!ok)
}

func TestNewEmptyCatalog(t *testing.T) {
	is := is.New(t)
	_, err := New([]assets.Entry{{Word: "123"}})
	is.Equal(err, ErrEmptyCatalog)
}

func TestPickRandomUsesSource(t *testing.T) {
	is := is.New(t)
	entries := []assets.Entry{{Word: "ALPHA"}, {Word: "BRAVO"}, {Word: "CHARLIE"}}

	b, err := New(entries, WithSource(Fixed(2)))
	is.NoErr(err)
	for i := 0; i < 5; i++ {
		is.Equal(b.PickRandom().Text, "CHARLIE")
	}

	// Two banks with the same seed pick the same sequence.
	b1, _ := New(entries, WithSource(NewSeeded(42)))
	b2, _ := New(entries, WithSource(NewSeeded(42)))
	for i := 0; i < 20; i++ {
		is.Equal(b1.PickRandom(), b2.PickRandom())
	}
}

func TestPickRandomCoversCatalog(t *testing.T) {
	is := is.New(t)
	b, err := Load("", WithSource(NewSeeded(7)))
	is.NoErr(err)
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[b.PickRandom().Text] = true
	}
	is.Equal(len(seen), b.Len())
}

func TestFixedWraps(t *testing.T) {
	is := is.New(t)
	is.Equal(Fixed(5).IntN(3), 2)
	is.Equal(Fixed(-1).IntN(3), 2)
}
