// Package render turns chapter bodies into the markup handed to an e-book packager.
package render

import (
	"bytes"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Paragraphs wraps every non-blank line of body in a <p> element. Lines are
// trimmed and their text escaped; blank lines produce nothing.
func Paragraphs(body string) string {
	var buf bytes.Buffer
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
		p.AppendChild(&html.Node{Type: html.TextNode, Data: line})
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		// Rendering a detached element with a text child cannot fail on a bytes.Buffer.
		_ = html.Render(&buf, p)
	}
	return buf.String()
}

// Markdown renders body as paragraphs and converts them to Markdown, for
// previews where HTML is not wanted.
func Markdown(body string) (string, error) {
	return htmltomarkdown.ConvertString(Paragraphs(body))
}
