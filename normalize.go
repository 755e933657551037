package storefind

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize prepares an utterance for interpretation. It folds Unicode
// compatibility forms, drops control characters other than whitespace,
// lowercases, collapses runs of whitespace and trims. Punctuation is kept,
// so a normalized product name still matches the catalog as a substring.
func Normalize(utterance string) string {
	t := transform.Chain(norm.NFKC, runes.Remove(runes.Predicate(func(r rune) bool {
		return unicode.IsControl(r) && !unicode.IsSpace(r)
	})))
	s, _, err := transform.String(t, utterance)
	if err != nil {
		s = utterance
	}
	return collapseSpaces(strings.ToLower(s))
}

// Sentence punctuation that speech-to-text engines attach to words.
const (
	clauseMarks   = ",;:"
	sentenceMarks = ".!?"
)

// TrimTranscript removes the punctuation a transcriber adds to a normalized
// utterance: clause marks ending any word and sentence marks ending the
// last word. Punctuation inside words, such as "dr. seuss" or "4.5\"", is
// kept.
func TrimTranscript(text string) string {
	words := strings.Fields(text)
	for n, w := range words {
		w = strings.TrimRight(w, clauseMarks)
		if n == len(words)-1 {
			w = strings.TrimRight(w, clauseMarks+sentenceMarks)
		}
		words[n] = w
	}
	return collapseSpaces(strings.Join(words, " "))
}

// collapseSpaces replaces every run of whitespace with a single space and
// trims the ends.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
