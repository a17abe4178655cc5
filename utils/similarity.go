package utils

// Similarity scores how close two strings are, from 0 (nothing in common)
// to 1 (identical), as 1 - editDistance/max(len). Callers are expected to
// Normalize both inputs first. An empty string against anything scores 0.
func Similarity(s1, s2 string) float64 {
	if s1 == "" || s2 == "" {
		return 0.0
	}
	if s1 == s2 {
		return 1.0
	}

	dist := levenshtein(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(dist)/float64(maxLen)
}

// levenshtein computes the edit distance with a single rolling row.
func levenshtein(s1, s2 string) int {
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}

	current := make([]int, len(s1)+1)
	for j := range current {
		current[j] = j
	}

	for i := 1; i <= len(s2); i++ {
		previous := current
		current = make([]int, len(s1)+1)
		current[0] = i
		for j := 1; j <= len(s1); j++ {
			insert := previous[j] + 1
			remove := current[j-1] + 1
			replace := previous[j-1]
			if s1[j-1] != s2[i-1] {
				replace++
			}
			current[j] = min3(insert, remove, replace)
		}
	}

	return current[len(s1)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
