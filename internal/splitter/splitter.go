package splitter

import (
	"strings"
	"unicode"
)

// Options controls how text is split into sentences.
type Options struct {
	// Abbreviations are tokens ending in a period that never terminate a
	// sentence. Matching is exact and case-sensitive ("Dr.", "e.g.").
	// Nil means DefaultAbbreviations; an empty non-nil slice disables the
	// abbreviation check entirely.
	Abbreviations []string
}

// DefaultAbbreviations is the abbreviation list used when Options.Abbreviations
// is nil. It covers common English titles, citation shorthand, and corporate
// suffixes. An abbreviation followed by a capitalized word that really does
// start a new sentence ("He moved to Washington D.C. Next year ...") is a known
// false negative; no heuristic is applied beyond the exact lookup.
var DefaultAbbreviations = []string{
	"Mr.", "Mrs.", "Ms.", "Dr.", "Prof.", "Sr.", "Jr.", "St.",
	"vs.", "etc.", "e.g.", "i.e.", "cf.", "al.", "ca.", "approx.",
	"Inc.", "Ltd.", "Co.", "Corp.", "No.", "Fig.", "Vol.", "pp.",
}

// Split breaks text into an ordered sequence of trimmed, non-empty sentences.
// A boundary is a run of terminators (. ! ? … and the fullwidth/ideographic
// forms) plus any closing quotes that follow it. An ASCII terminator only
// ends a sentence when followed by whitespace and something that plausibly
// starts a new sentence (not a lowercase letter), and never inside a decimal
// number or after a configured abbreviation. Ideographic terminators end the
// sentence unconditionally. Text with no terminator at all comes back as a
// single sentence; empty or whitespace-only input yields no sentences.
func Split(text string, opts Options) []string {
	abbrevs := opts.Abbreviations
	if abbrevs == nil {
		abbrevs = DefaultAbbreviations
	}
	known := make(map[string]struct{}, len(abbrevs))
	for _, a := range abbrevs {
		known[a] = struct{}{}
	}

	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); {
		if !isTerminator(runes[i]) {
			i++
			continue
		}
		if runes[i] == '.' && (isDecimalPoint(runes, i) || isAbbreviationEnd(runes, i, known)) {
			i++
			continue
		}

		// Consume the whole terminator run, then any closing quotes, so
		// that ?! and ... count as one boundary and quoted speech ends
		// after the quote.
		end := i
		for end+1 < len(runes) && isTerminator(runes[end+1]) {
			end++
		}
		for end+1 < len(runes) && isClosingQuote(runes[end+1]) {
			end++
		}

		if endsSentence(runes, i, end) {
			if s := strings.TrimSpace(string(runes[start : end+1])); s != "" {
				sentences = append(sentences, s)
			}
			start = end + 1
		}
		i = end + 1
	}

	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// endsSentence reports whether the terminator run starting at termStart and
// ending (quotes included) at end is a real boundary.
func endsSentence(runes []rune, termStart, end int) bool {
	if end == len(runes)-1 {
		return true
	}
	// Ideographic terminators bind unconditionally; Japanese text has no
	// inter-sentence whitespace to look for.
	for j := termStart; j <= end && isTerminator(runes[j]); j++ {
		if isIdeographicTerminator(runes[j]) {
			return true
		}
	}
	if !unicode.IsSpace(runes[end+1]) {
		return false
	}
	next := end + 1
	for next < len(runes) && unicode.IsSpace(runes[next]) {
		next++
	}
	if next == len(runes) {
		return true
	}
	return !unicode.IsLower(runes[next])
}

// isDecimalPoint reports whether the period at i sits between two digits.
func isDecimalPoint(runes []rune, i int) bool {
	return i > 0 && i+1 < len(runes) &&
		unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1])
}

// isAbbreviationEnd reports whether the period at i closes a known
// abbreviation token. The token is read backwards over letters and interior
// periods, so multi-part forms like "e.g." match on their final period.
func isAbbreviationEnd(runes []rune, i int, known map[string]struct{}) bool {
	if len(known) == 0 {
		return false
	}
	j := i - 1
	for j >= 0 && (unicode.IsLetter(runes[j]) || runes[j] == '.') {
		j--
	}
	if j == i-1 {
		return false
	}
	_, ok := known[string(runes[j+1:i+1])]
	return ok
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '。', '．', '！', '？':
		return true
	}
	return false
}

func isIdeographicTerminator(r rune) bool {
	switch r {
	case '。', '．', '！', '？':
		return true
	}
	return false
}

func isClosingQuote(r rune) bool {
	switch r {
	case '"', '\'', '”', '’', '」', '』', ')', '»':
		return true
	}
	return false
}
