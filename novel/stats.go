package novel

import "unicode"

// CollectStats counts chapters and the non-whitespace runes of their bodies.
func CollectStats(chapters []Chapter) Stats {
	stats := Stats{ChapterCount: len(chapters)}
	for _, c := range chapters {
		stats.TotalWords += CountWords(c.Body)
	}
	return stats
}

// CountWords returns the number of non-whitespace runes in text. For Chinese
// prose this is the conventional 字数.
func CountWords(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
