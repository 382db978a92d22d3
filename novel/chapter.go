// Package novel splits the plain text of a novel into numbered chapters.
//
// Every function in this package is pure: it reads its input, returns new
// values and never logs. Narration of a conversion belongs to the caller.
package novel

import (
	"errors"
	"strconv"
	"strings"
)

// EmptyBody replaces the body of a chapter that has no text.
const EmptyBody = "(本章暂无内容)"

// ErrEmptyChapterSet is returned when no heading was found anywhere in a document.
var ErrEmptyChapterSet = errors.New("no chapter heading found in document")

// Chapter is one segment of a document that starts at a recognized heading.
type Chapter struct {
	// Number is the normalized chapter index. Only meaningful when Numbered is true.
	Number   int    `json:"number"`
	Numbered bool   `json:"numbered"`
	Suffix   string `json:"suffix,omitempty"`
	Title    string `json:"title"`
	Body     string `json:"body"`
}

// Lines returns the body split back into lines.
func (c Chapter) Lines() []string {
	return strings.Split(c.Body, "\n")
}

// CanonicalTitle builds the renumbered title used in output, e.g. "第12章 归来".
func CanonicalTitle(number int, suffix string) string {
	title := "第" + strconv.Itoa(number) + "章"
	if suffix != "" {
		title += " " + suffix
	}
	return strings.TrimSpace(title)
}

// Stats aggregates a final chapter list.
type Stats struct {
	ChapterCount int `json:"chapter_count"`
	TotalWords   int `json:"total_words"`
}
