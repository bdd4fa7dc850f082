// Package listcodec structures delimited text into ordered token
// sequences and back. Delimiters are always literal strings, never
// patterns.
package listcodec

import (
	"sort"
	"strings"

	"github.com/textops/textops/pkg/transform"
)

// Default delimiters for the three codec operations.
const (
	DefaultSplitDelimiter = ","
	DefaultJoinDelimiter  = ", "
	DefaultSortDelimiter  = " "
)

// Split splits text on the literal delimiter and trims each resulting
// token. Order is preserved.
//
// Delimiter classes behave differently, matching shell word-splitting:
// when delim is exactly one whitespace character, runs of it act as a
// single separator and delimiters at the ends are ignored; any other
// delimiter preserves empty tokens, so "a,,b" splits to three tokens.
// An empty delimiter falls back to the default ",".
func Split(text, delim string) []string {
	if delim == "" {
		delim = DefaultSplitDelimiter
	}

	if text == "" {
		return nil
	}

	if blankDelimiter(delim) {
		return splitCollapsing(text, delim)
	}

	parts := strings.Split(text, delim)
	tokens := make([]string, len(parts))
	for i, part := range parts {
		tokens[i] = transform.Trim(part, "")
	}
	return tokens
}

// Join concatenates tokens with the delimiter between them, with no
// trailing delimiter. An empty delimiter falls back to the default
// ", ".
func Join(tokens []string, delim string) string {
	if delim == "" {
		delim = DefaultJoinDelimiter
	}
	return strings.Join(tokens, delim)
}

// SortList splits text on the delimiter, trims each token, sorts the
// tokens by byte order (descending when reverse), drops duplicates
// when unique, and rejoins with the same delimiter. An empty delimiter
// falls back to the default single space.
func SortList(text, delim string, unique, reverse bool) string {
	if delim == "" {
		delim = DefaultSortDelimiter
	}

	tokens := Split(text, delim)
	if len(tokens) == 0 {
		return ""
	}

	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)

	if unique {
		sorted = dedupeSorted(sorted)
	}

	if reverse {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}

	return Join(sorted, delim)
}

// splitCollapsing splits on a single-character whitespace delimiter,
// treating runs as one separator and ignoring outer occurrences.
func splitCollapsing(text, delim string) []string {
	var tokens []string
	for _, part := range strings.Split(text, delim) {
		if part == "" {
			continue
		}
		tokens = append(tokens, transform.Trim(part, ""))
	}
	return tokens
}

// dedupeSorted removes adjacent duplicates from an already sorted
// slice.
func dedupeSorted(tokens []string) []string {
	out := tokens[:1]
	for _, tok := range tokens[1:] {
		if tok != out[len(out)-1] {
			out = append(out, tok)
		}
	}
	return out
}

// blankDelimiter reports whether delim is exactly one whitespace
// character, the class that collapses like shell word-splitting.
func blankDelimiter(delim string) bool {
	return len(delim) == 1 && (delim == " " || delim == "\t" || delim == "\n")
}
