package text

import "errors"

// ErrUnsupportedFormat is returned for files the loader has no extractor for.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Document is the decoded input of one conversion: the lines of the novel in
// order, without byte-order mark or line terminators.
type Document struct {
	Lines  []string `json:"-"`
	Title  string   `json:"title,omitempty"`
	Source string   `json:"source"`
}

// TextExtractor decodes raw file contents into a Document.
type TextExtractor interface {
	Extract(data []byte) (*Document, error)
}
