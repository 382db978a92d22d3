package text

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// TxtExtractor decodes plain text. Input with a byte-order mark is decoded
// per the mark; otherwise it must be UTF-8, and anything that is not valid
// UTF-8 is read as GB18030.
type TxtExtractor struct{}

func NewTxtExtractor() *TxtExtractor {
	return &TxtExtractor{}
}

func (e *TxtExtractor) Extract(data []byte) (*Document, error) {
	decoded, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return &Document{Lines: SplitLines(decoded)}, nil
}

// Decode converts raw bytes to a string with any byte-order mark removed.
func Decode(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8),
		bytes.HasPrefix(data, bomUTF16BE),
		bytes.HasPrefix(data, bomUTF16LE):
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			return "", fmt.Errorf("decode with byte-order mark: %w", err)
		}
		return string(out), nil
	case utf8.Valid(data):
		return string(data), nil
	default:
		out, _, err := transform.Bytes(simplifiedchinese.GB18030.NewDecoder(), data)
		if err != nil {
			return "", fmt.Errorf("decode gb18030: %w", err)
		}
		return string(out), nil
	}
}

// SplitLines splits text on LF, dropping the CR of CRLF endings.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
