package novel

import (
	"github.com/cloudflare/ahocorasick"
)

// LineFilter drops lines that contain any of a set of block keywords.
// Matching is a case-sensitive substring match.
type LineFilter struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// NewLineFilter builds a filter over keywords. Empty keywords are ignored,
// they would otherwise match every line.
func NewLineFilter(keywords []string) *LineFilter {
	kept := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k != "" {
			kept = append(kept, k)
		}
	}

	f := &LineFilter{keywords: kept}
	if len(kept) > 0 {
		f.matcher = ahocorasick.NewStringMatcher(kept)
	}
	return f
}

// Keywords returns the keywords the filter matches on.
func (f *LineFilter) Keywords() []string {
	return f.keywords
}

// Blocks reports whether line contains a block keyword.
func (f *LineFilter) Blocks(line string) bool {
	if f.matcher == nil || line == "" {
		return false
	}
	return len(f.matcher.MatchThreadSafe([]byte(line))) > 0
}

// Filter returns the lines that contain no block keyword, in their original
// order, and the number of lines dropped. With no keywords the input slice is
// returned as is.
func (f *LineFilter) Filter(lines []string) ([]string, int) {
	if f.matcher == nil {
		return lines, 0
	}

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if f.Blocks(line) {
			continue
		}
		kept = append(kept, line)
	}
	return kept, len(lines) - len(kept)
}

// FilterLines is a shorthand for NewLineFilter(keywords).Filter(lines).
func FilterLines(lines, keywords []string) ([]string, int) {
	return NewLineFilter(keywords).Filter(lines)
}
