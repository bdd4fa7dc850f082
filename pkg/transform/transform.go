// Package transform implements case conversion and whitespace
// normalization filters. Every function is a total function over
// arbitrary text: empty input yields empty output, and no operation
// can fail.
package transform

import (
	"strings"
	"unicode"
)

// Lower maps every character to lowercase.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Upper maps every character to uppercase.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Title lowercases the text, then uppercases every letter that starts
// a word (a word character preceded by a non-word character or the
// start of the text). A letter immediately following an apostrophe is
// kept lowercase, so "don't" becomes "Don't" and "o'brien jones"
// becomes "O'brien Jones". That asymmetry is part of the contract.
func Title(s string) string {
	lower := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lower))

	prev := rune(0)
	for _, r := range lower {
		if wordChar(r) && !wordChar(prev) && prev != '\'' {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

// wordChar reports whether r belongs to the word character class
// (letters, digits, underscore).
func wordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Squeeze collapses every run of characters from cutset into the run's
// first character, then trims leading and trailing cutset characters
// from the whole text. An empty cutset means whitespace.
func Squeeze(s, cutset string) string {
	in := cutsetMatcher(cutset)

	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for _, r := range s {
		if in(r) {
			if !inRun {
				b.WriteRune(r)
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return Trim(b.String(), cutset)
}

// Trim removes cutset characters from both ends of the text. Interior
// occurrences are untouched. An empty cutset means whitespace.
func Trim(s, cutset string) string {
	if cutset == "" {
		return strings.TrimSpace(s)
	}
	return strings.Trim(s, cutset)
}

// TrimLeft removes cutset characters from the start of the text only.
// An empty cutset means whitespace.
func TrimLeft(s, cutset string) string {
	if cutset == "" {
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	}
	return strings.TrimLeft(s, cutset)
}

// TrimRight removes cutset characters from the end of the text only.
// An empty cutset means whitespace.
func TrimRight(s, cutset string) string {
	if cutset == "" {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	}
	return strings.TrimRight(s, cutset)
}

// SqueezeLines collapses runs of blank lines into the run's first line
// and drops blank lines at both ends of the text. A line consisting
// solely of whitespace counts as blank. The final-newline presence of
// the input is preserved.
func SqueezeLines(text string) string {
	return mapLines(text, func(lines []string) []string {
		var out []string
		inRun := false
		for _, line := range lines {
			if blankLine(line) {
				if !inRun {
					out = append(out, line)
					inRun = true
				}
				continue
			}
			inRun = false
			out = append(out, line)
		}
		return trimBlankEdges(out)
	})
}

// TrimLines drops blank lines at both ends of the text. Interior blank
// lines are untouched. The final-newline presence of the input is
// preserved.
func TrimLines(text string) string {
	return mapLines(text, trimBlankEdges)
}

// mapLines applies fn to the input split into newline-terminated lines
// and reassembles the result, keeping the original trailing-newline
// state.
func mapLines(text string, fn func([]string) []string) string {
	if text == "" {
		return ""
	}

	hadNewline := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	out := fn(lines)
	if len(out) == 0 {
		return ""
	}

	joined := strings.Join(out, "\n")
	if hadNewline {
		joined += "\n"
	}
	return joined
}

func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && blankLine(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && blankLine(lines[end-1]) {
		end--
	}
	return lines[start:end]
}

func blankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// cutsetMatcher returns a predicate for membership in cutset, where an
// empty cutset means the whitespace class.
func cutsetMatcher(cutset string) func(rune) bool {
	if cutset == "" {
		return unicode.IsSpace
	}
	return func(r rune) bool {
		return strings.ContainsRune(cutset, r)
	}
}
