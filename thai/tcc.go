package thai

// Clusters splits s into Thai character clusters: the smallest units that a word
// boundary may never fall inside. A cluster is a leading vowel with the consonant it
// precedes, or a consonant, followed by any above/below marks and a trailing ะ า ำ.
// Runes outside the Thai block form clusters of their own.
func Clusters(s string) []string {
	runes := []rune(s)
	bounds := clusterBounds(runes)
	out := make([]string, 0, len(bounds))
	start := 0
	for _, end := range bounds {
		out = append(out, string(runes[start:end]))
		start = end
	}
	return out
}

// clusterBounds returns the exclusive end offset of every cluster in runes.
func clusterBounds(runes []rune) []int {
	var bounds []int
	n := len(runes)
	for i := 0; i < n; {
		if !IsThai(runes[i]) {
			i++
			bounds = append(bounds, i)
			continue
		}
		if IsLeadingVowel(runes[i]) {
			i++
			if i < n && IsConsonant(runes[i]) {
				i++
			}
		} else {
			i++
		}
		for i < n && isFollowingMark(runes[i]) {
			i++
		}
		if i < n && isTrailingVowel(runes[i]) {
			i++
			for i < n && isFollowingMark(runes[i]) {
				i++
			}
		}
		bounds = append(bounds, i)
	}
	return bounds
}
