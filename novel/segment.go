package novel

import (
	"regexp"
	"strings"
)

// headingPattern matches 第<numeral>章 followed by optional whitespace and a
// suffix running to end of line. Fullwidth digits and the ideographic space
// are accepted.
var headingPattern = regexp.MustCompile(
	`^第([零〇一二两三四五六七八九十百千万亿0-9０-９]+)章[\s\p{Zs}]*(.*)$`)

type heading struct {
	numeral string
	suffix  string
	raw     string
}

func parseHeading(line string) (heading, bool) {
	trimmed := strings.TrimSpace(line)
	m := headingPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return heading{}, false
	}
	return heading{numeral: m[1], suffix: strings.TrimSpace(m[2]), raw: trimmed}, true
}

// IsHeading reports whether line starts a new chapter. Surrounding
// whitespace is ignored.
func IsHeading(line string) bool {
	_, ok := parseHeading(line)
	return ok
}

// ContainsHeading reports whether any of lines is a heading.
func ContainsHeading(lines []string) bool {
	for _, line := range lines {
		if IsHeading(line) {
			return true
		}
	}
	return false
}

// Segment partitions lines into chapters in order of appearance. Lines before
// the first heading are not part of any chapter and are discarded.
func Segment(lines []string) []Chapter {
	var (
		chapters []Chapter
		current  *Chapter
		body     []string
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.TrimSpace(strings.Join(body, "\n"))
		if current.Body == "" {
			current.Body = EmptyBody
		}
		chapters = append(chapters, *current)
	}

	for _, line := range lines {
		h, ok := parseHeading(line)
		if !ok {
			if current != nil {
				body = append(body, line)
			}
			continue
		}

		flush()
		current = newChapter(h)
		body = body[:0:0]
	}
	flush()

	return chapters
}

func newChapter(h heading) *Chapter {
	c := &Chapter{Suffix: h.suffix, Title: h.raw}
	if n, ok := NormalizeNumeral(h.numeral); ok {
		c.Number = n
		c.Numbered = true
		c.Title = CanonicalTitle(n, h.suffix)
	}
	return c
}

// Serialize writes chapters back to plain text, one heading line followed by
// the body. Segment(Serialize(c)) yields the same titles.
func Serialize(chapters []Chapter) []string {
	var lines []string
	for _, c := range chapters {
		lines = append(lines, c.Title)
		lines = append(lines, c.Lines()...)
		lines = append(lines, "")
	}
	return lines
}
