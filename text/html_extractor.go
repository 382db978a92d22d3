package text

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

var errNoContent = errors.New("no readable content")

// HTMLExtractor reads a scraped novel page. Main content is taken from
// trafilatura, then readability, then a plain goquery walk of the body; the
// first result accepted by Accept wins.
type HTMLExtractor struct {
	// Accept decides whether extracted lines are usable, typically by
	// checking that they still contain chapter headings. Nil accepts any
	// non-empty result.
	Accept func(lines []string) bool

	pageURL *url.URL
	logger  *zap.Logger
}

func NewHTMLExtractor(pageURL string, accept func([]string) bool, logger *zap.Logger) (*HTMLExtractor, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}
	return &HTMLExtractor{Accept: accept, pageURL: parsedURL, logger: logger}, nil
}

func (e *HTMLExtractor) Extract(data []byte) (*Document, error) {
	decoded, err := Decode(data)
	if err != nil {
		return nil, err
	}

	extractors := []struct {
		name string
		fn   func(string) (*Document, error)
	}{
		{"trafilatura", e.extractWithTrafilatura},
		{"readability", e.extractWithReadability},
		{"goquery", e.extractWithGoquery},
	}

	for _, x := range extractors {
		doc, err := x.fn(decoded)
		if err != nil {
			e.logger.Debug("html extraction failed", zap.String("extractor", x.name), zap.Error(err))
			continue
		}
		if !e.accept(doc.Lines) {
			e.logger.Debug("html extraction rejected", zap.String("extractor", x.name), zap.Int("lines", len(doc.Lines)))
			continue
		}
		return doc, nil
	}
	return nil, errNoContent
}

func (e *HTMLExtractor) accept(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	if e.Accept == nil {
		return true
	}
	return e.Accept(lines)
}

func (e *HTMLExtractor) extractWithTrafilatura(page string) (*Document, error) {
	result, err := trafilatura.Extract(strings.NewReader(page), trafilatura.Options{
		OriginalURL: e.pageURL,
	})
	if err != nil {
		return nil, err
	}
	if result == nil || result.ContentNode == nil {
		return nil, errNoContent
	}
	return &Document{Lines: NodeLines(result.ContentNode), Title: result.Metadata.Title}, nil
}

func (e *HTMLExtractor) extractWithReadability(page string) (*Document, error) {
	article, err := readability.FromReader(strings.NewReader(page), e.pageURL)
	if err != nil {
		return nil, err
	}

	content, err := html.Parse(strings.NewReader(article.Content))
	if err != nil {
		return nil, err
	}
	return &Document{Lines: NodeLines(content), Title: article.Title}, nil
}

func (e *HTMLExtractor) extractWithGoquery(page string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, err
	}

	doc.Find("script, style, noscript, nav, header, footer, aside").Remove()
	body := doc.Find("body")
	if body.Length() == 0 {
		return nil, errNoContent
	}

	return &Document{
		Lines: NodeLines(body.Nodes[0]),
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}, nil
}

var blockElements = map[string]bool{
	"address": true, "article": true, "blockquote": true, "br": true, "dd": true,
	"div": true, "dl": true, "dt": true, "figcaption": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "hr": true, "li": true,
	"main": true, "ol": true, "p": true, "pre": true, "section": true, "td": true,
	"tr": true, "ul": true,
}

var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true, "head": true,
}

// NodeLines flattens the text under n into lines, starting a new line at
// every block element, <br> and newline in the text. Lines are trimmed and
// empty ones dropped.
func NodeLines(n *html.Node) []string {
	var (
		lines []string
		cur   bytes.Buffer
	)
	flush := func() {
		for _, line := range strings.Split(cur.String(), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		cur.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			cur.WriteString(n.Data)
			return
		case html.ElementNode:
			if skippedElements[n.Data] {
				return
			}
		}

		block := n.Type == html.ElementNode && blockElements[n.Data]
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		}
	}
	walk(n)
	flush()

	return lines
}
