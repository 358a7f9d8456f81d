package assets

import (
	"bufio"
	"embed"
	"io"
	"io/fs"
	"strings"
)

//go:embed words.txt sql/*.sql
var FS embed.FS

// Entry is one raw catalog line split into word and hint.
type Entry struct {
	Word string
	Hint string
}

// ParseCatalog reads `WORD|hint` lines. Blank lines and `#` comments are
// skipped; the hint part is optional.
func ParseCatalog(r io.Reader) ([]Entry, error) {
	var out []Entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		word, hint, _ := strings.Cut(s, "|")
		out = append(out, Entry{
			Word: strings.ToUpper(strings.TrimSpace(word)),
			Hint: strings.TrimSpace(hint),
		})
	}
	return out, sc.Err()
}

// Catalog returns the embedded default word catalog.
func Catalog() ([]Entry, error) {
	f, err := FS.Open("words.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCatalog(f)
}

// Migrations exposes the embedded sql directory.
func Migrations() fs.FS {
	sub, _ := fs.Sub(FS, "sql")
	return sub
}
