package storefind

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// InterpretMode selects how much of an utterance the interpreter analyzes.
type InterpretMode string

// InterpretMode constants.
const (
	// ModeFull classifies category and sort intent and extracts a residual
	// query. Used for completed speech transcripts.
	ModeFull InterpretMode = "full"

	// ModeLight treats the whole utterance as a substring query and keeps
	// the current category and sort. Used for live typed search.
	ModeLight InterpretMode = "light"
)

// ParseInterpretMode returns the mode named by s.
// An empty string is ModeFull.
func ParseInterpretMode(s string) (InterpretMode, error) {
	switch InterpretMode(s) {
	case "", ModeFull:
		return ModeFull, nil
	case ModeLight:
		return ModeLight, nil
	}
	return "", Errorf(EINVALID, "unknown interpret mode %q", s)
}

// QueryInterpreter turns utterances and explicit selections into FilterStates.
type QueryInterpreter interface {
	// Interpret builds a FilterState from an utterance. The current
	// selection is kept for any dimension the utterance does not name.
	Interpret(utterance string, mode InterpretMode, current Selection) FilterState

	// Select builds a FilterState for an explicit category, as produced by
	// a category tile or banner click. The query is empty and an empty
	// sortBy means SortDefault.
	// Returns EINVALID for an unknown category or sort mode.
	Select(category string, sortBy SortMode) (FilterState, error)
}

// FilterPublisher hands FilterStates from producers to consumers.
type FilterPublisher interface {
	Publish(state FilterState)
}

// Compile-time interface verification.
var _ QueryInterpreter = (*Interpreter)(nil)

// Interpreter implements QueryInterpreter over a compiled Vocabulary.
// It is read-only after construction and safe for concurrent use.
type Interpreter struct {
	// Now stamps produced states. Defaults to time.Now.
	Now func() time.Time

	categories []categoryRule
	sorts      []sortRule
	ids        map[string]string // lowercase id -> id

	allWords  *regexp.Regexp
	names     *regexp.Regexp
	sortWords *regexp.Regexp
	fillers   []string
}

type categoryRule struct {
	id    string
	match *regexp.Regexp
}

type sortRule struct {
	mode  SortMode
	match *regexp.Regexp
}

// NewInterpreter validates the vocabulary and compiles its keyword sets.
// Returns EINVALID when a category id is missing, duplicated or reserved,
// when a keyword is declared for two categories or two sort modes, when a
// keyword does not start and end with a letter or digit, or when a filler
// phrase is blank.
func NewInterpreter(v *Vocabulary) (*Interpreter, error) {
	if v == nil {
		return nil, Errorf(EINVALID, "vocabulary required")
	}

	i := &Interpreter{
		Now:      time.Now,
		ids:      make(map[string]string, len(v.Categories)),
		allWords: regexp.MustCompile(wordsPattern(allWords, false)),
	}

	owners := make(map[string]string) // keyword -> category id
	var names []string
	for _, c := range v.Categories {
		if strings.TrimSpace(c.ID) == "" {
			return nil, Errorf(EINVALID, "category id required")
		}
		if strings.EqualFold(c.ID, CategoryAll) {
			return nil, Errorf(EINVALID, "category id %q is reserved", c.ID)
		}
		key := strings.ToLower(c.ID)
		if _, ok := i.ids[key]; ok {
			return nil, Errorf(EINVALID, "category %q declared twice", c.ID)
		}
		i.ids[key] = c.ID

		name, err := normalizeKeyword(c.DisplayName())
		if err != nil {
			return nil, err
		}
		names = append(names, name)

		words := []string{name}
		for _, syn := range c.Synonyms {
			kw, err := normalizeKeyword(syn)
			if err != nil {
				return nil, err
			}
			words = append(words, kw)
		}
		words = dedupe(words)
		for _, kw := range words {
			if slices.Contains(allWords, kw) {
				return nil, Errorf(EINVALID, "keyword %q is reserved", kw)
			}
			if owner, ok := owners[kw]; ok {
				return nil, Errorf(EINVALID, "keyword %q declared for both %q and %q", kw, owner, c.ID)
			}
			owners[kw] = c.ID
		}

		i.categories = append(i.categories, categoryRule{
			id:    c.ID,
			match: regexp.MustCompile(wordsPattern(words, true)),
		})
	}
	i.names = regexp.MustCompile(wordsPattern(append(names, allWords...), false))

	sortSets := []struct {
		mode  SortMode
		words []string
	}{
		{SortPriceAsc, v.Sort.PriceAsc},
		{SortPriceDesc, v.Sort.PriceDesc},
		{SortRatingDesc, v.Sort.RatingDesc},
	}
	sortOwners := make(map[string]SortMode)
	stripped := append([]string(nil), sortNoiseWords...)
	for _, set := range sortSets {
		var words []string
		for _, w := range set.words {
			kw, err := normalizeKeyword(w)
			if err != nil {
				return nil, err
			}
			if owner, ok := sortOwners[kw]; ok && owner != set.mode {
				return nil, Errorf(EINVALID, "sort keyword %q declared for both %q and %q", kw, owner, set.mode)
			}
			sortOwners[kw] = set.mode
			words = append(words, kw)
		}
		if len(words) == 0 {
			continue
		}
		i.sorts = append(i.sorts, sortRule{
			mode:  set.mode,
			match: regexp.MustCompile(wordsPattern(dedupe(words), false)),
		})
		stripped = append(stripped, words...)
	}
	i.sortWords = regexp.MustCompile(wordsPattern(dedupe(stripped), false))

	for _, f := range v.Fillers {
		if strings.TrimSpace(f) == "" {
			return nil, Errorf(EINVALID, "filler phrase must not be blank")
		}
		i.fillers = append(i.fillers, strings.ToLower(f))
	}

	return i, nil
}

// Categories returns the declared category ids in declaration order.
func (i *Interpreter) Categories() []string {
	ids := make([]string, 0, len(i.categories))
	for _, c := range i.categories {
		ids = append(ids, c.id)
	}
	return ids
}

// Interpret builds a FilterState from an utterance.
//
// In ModeFull transcript punctuation is trimmed before analysis and an
// empty utterance clears every filter. In ModeLight the normalized
// utterance becomes the query verbatim and the current selection is kept.
// Any other mode is treated as ModeFull.
func (i *Interpreter) Interpret(utterance string, mode InterpretMode, current Selection) FilterState {
	now := i.now()
	text := Normalize(utterance)
	current = i.resolve(current)

	if mode == ModeLight {
		return FilterState{
			Category: current.Category,
			SortBy:   current.SortBy,
			Query:    text,
			IssuedAt: now,
		}
	}

	text = TrimTranscript(text)
	if text == "" {
		return ClearedState(now)
	}

	return FilterState{
		Category: i.ClassifyCategory(text, current.Category),
		SortBy:   i.DetectSort(text, current.SortBy),
		Query:    i.ExtractQuery(text),
		IssuedAt: now,
	}
}

// Select builds a FilterState for an explicit category. The category is
// matched case-insensitively against declared ids and CategoryAll.
func (i *Interpreter) Select(category string, sortBy SortMode) (FilterState, error) {
	id, ok := i.lookup(category)
	if !ok {
		return FilterState{}, Errorf(EINVALID, "unknown category %q", category)
	}
	if sortBy == "" {
		sortBy = SortDefault
	}
	if !sortBy.Valid() {
		return FilterState{}, Errorf(EINVALID, "unknown sort mode %q", sortBy)
	}
	return FilterState{Category: id, SortBy: sortBy, IssuedAt: i.now()}, nil
}

// ClassifyCategory resolves the category named by a normalized utterance.
// The words "all" and "everything" select CategoryAll over any other
// keyword. Otherwise categories are tried in declaration order and the
// first one with a whole-word keyword match wins. Words are delimited by
// any character that is not a Unicode letter, digit or underscore, so
// "cafétable" does not contain "table". Without a match the current
// category is returned.
func (i *Interpreter) ClassifyCategory(text, current string) string {
	if i.allWords.MatchString(text) {
		return CategoryAll
	}
	for _, c := range i.categories {
		if c.match.MatchString(text) {
			return c.id
		}
	}
	if id, ok := i.lookup(current); ok {
		return id
	}
	return CategoryAll
}

// DetectSort resolves the sort mode named by a normalized utterance.
// Price ascending beats price descending, which beats rating. Without a
// match the current mode is returned.
func (i *Interpreter) DetectSort(text string, current SortMode) SortMode {
	for _, s := range i.sorts {
		if s.match.MatchString(text) {
			return s.mode
		}
	}
	if current.Valid() {
		return current
	}
	return SortDefault
}

// ExtractQuery strips category names, sort keywords and filler phrases from
// a normalized utterance and returns what remains. Every category name is
// stripped, not only the classified one. "all" and "everything" are
// stripped too: they select CategoryAll, so "show me everything" leaves
// an empty query, and "everything bagel" leaves "bagel".
// The result is a fixed point: extracting it again returns it unchanged.
func (i *Interpreter) ExtractQuery(text string) string {
	for {
		next := i.extract(text)
		if next == text {
			return next
		}
		text = next
	}
}

// extract runs one pass of the removal steps. Removed text is replaced by
// a space so that neighbouring words are never joined.
func (i *Interpreter) extract(text string) string {
	s := text
	s = i.names.ReplaceAllString(s, wordsReplacement)
	s = i.sortWords.ReplaceAllString(s, wordsReplacement)

	s = " " + s + " "
	for _, f := range i.fillers {
		s = strings.ReplaceAll(s, f, " ")
	}

	return collapseSpaces(s)
}

// resolve repairs a selection so it only holds known values.
func (i *Interpreter) resolve(sel Selection) Selection {
	id, ok := i.lookup(sel.Category)
	if !ok {
		id = CategoryAll
	}
	sortBy := sel.SortBy
	if !sortBy.Valid() {
		sortBy = SortDefault
	}
	return Selection{Category: id, SortBy: sortBy}
}

func (i *Interpreter) lookup(category string) (string, bool) {
	if strings.EqualFold(category, CategoryAll) {
		return CategoryAll, true
	}
	id, ok := i.ids[strings.ToLower(category)]
	return id, ok
}

func (i *Interpreter) now() time.Time {
	if i.Now == nil {
		return time.Now()
	}
	return i.Now()
}

// normalizeKeyword normalizes a keyword the way utterances are normalized
// and checks that word boundaries apply to both of its ends.
func normalizeKeyword(kw string) (string, error) {
	n := Normalize(kw)
	if n == "" {
		return "", Errorf(EINVALID, "keyword must not be blank")
	}
	first, _ := utf8.DecodeRuneInString(n)
	last, _ := utf8.DecodeLastRuneInString(n)
	if !isWordRune(first) || !isWordRune(last) {
		return "", Errorf(EINVALID, "keyword %q must start and end with a letter or digit", kw)
	}
	return n, nil
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wordsReplacement replaces a wordsPattern match with a space while keeping
// the delimiters it consumed.
const wordsReplacement = "${1} ${2}"

// wordsPattern builds a whole-word alternation over words. Longer words are
// tried first so that multi-word keywords win over their prefixes.
// Delimiters are matched and captured explicitly; RE2's \b only knows
// ASCII word characters.
func wordsPattern(words []string, plural bool) string {
	sorted := append([]string(nil), words...)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	quoted := make([]string, len(sorted))
	for n, w := range sorted {
		quoted[n] = regexp.QuoteMeta(w)
	}
	suffix := ""
	if plural {
		suffix = "s?"
	}
	return `(^|[^\p{L}\p{N}_])(?:` + strings.Join(quoted, "|") + `)` + suffix + `($|[^\p{L}\p{N}_])`
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := words[:0:0]
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
