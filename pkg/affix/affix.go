// Package affix computes the longest shared leading or trailing
// substring across a sequence of strings.
package affix

// CommonPrefix returns the longest string that is a prefix of every
// item. The running prefix is seeded with the first item and narrowed
// by each subsequent one, so an empty sequence or any empty item
// yields the empty string.
func CommonPrefix(items []string) string {
	if len(items) == 0 {
		return ""
	}

	prefix := items[0]
	for _, item := range items[1:] {
		prefix = narrow(prefix, item)
		if prefix == "" {
			break
		}
	}
	return prefix
}

// CommonSuffix returns the longest string that is a suffix of every
// item. It is CommonPrefix over the reversed items, reversed back.
func CommonSuffix(items []string) string {
	if len(items) == 0 {
		return ""
	}

	reversed := make([]string, len(items))
	for i, item := range items {
		reversed[i] = reverse(item)
	}
	return reverse(CommonPrefix(reversed))
}

// narrow truncates the candidate prefix at the first mismatch with s,
// or at the end of either string. Comparison is rune-wise so a
// multibyte character is never split.
func narrow(prefix, s string) string {
	pr := []rune(prefix)
	sr := []rune(s)

	limit := len(pr)
	if len(sr) < limit {
		limit = len(sr)
	}

	i := 0
	for i < limit && pr[i] == sr[i] {
		i++
	}
	return string(pr[:i])
}

// reverse returns s with its runes in reverse order.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
