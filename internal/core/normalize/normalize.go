// Package normalize provides deterministic text folding used to compare
// file names and labels coming from calendar sources
// Pipeline order
// 1 control character and invalid UTF-8 removal
// 2 Unicode NFC composition (decomposed file names from some filesystems)
// 3 Case folding
// 4 Remove format chars such as ZWJ and BOM
// 5 Collapse whitespace to single spaces and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folder is concurrency safe when used with the pool below
type Folder struct{}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Cf)),
		)
	},
}

// New constructs a Folder
func New() *Folder { return &Folder{} }

// Fold returns the folded form of s following the pipeline described above
func (f *Folder) Fold(s string) string {
	if s == "" {
		return ""
	}

	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	fs, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// keep going with a plain lower case fallback
		fs = strings.ToLower(norm.NFC.String(s))
	}

	return collapseSpaces(fs)
}

// Contains reports whether the folded haystack contains the folded needle
func (f *Folder) Contains(haystack, needle string) bool {
	return strings.Contains(f.Fold(haystack), f.Fold(needle))
}

// Fold folds s with a shared Folder
func Fold(s string) string { return shared.Fold(s) }

var shared = New()

// collapseSpaces converts whitespace runs to a single ASCII space and trims the edges
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
