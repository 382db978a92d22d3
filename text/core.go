package text

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Core picks an extractor by file extension.
type Core struct {
	txtExtractor  TextExtractor
	htmlExtractor TextExtractor
	logger        *zap.Logger
}

func NewCore(txtExtractor, htmlExtractor TextExtractor, logger *zap.Logger) *Core {
	return &Core{
		txtExtractor:  txtExtractor,
		htmlExtractor: htmlExtractor,
		logger:        logger,
	}
}

// Load reads and decodes the file at path.
func (c *Core) Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return c.LoadBytes(path, data)
}

// LoadBytes decodes data, using name only to choose the extractor.
func (c *Core) LoadBytes(name string, data []byte) (*Document, error) {
	extension := strings.ToLower(filepath.Ext(name))

	var extractor TextExtractor
	switch extension {
	case ".txt", "":
		extractor = c.txtExtractor
	case ".html", ".htm", ".xhtml":
		extractor = c.htmlExtractor
	}
	if extractor == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, extension)
	}

	doc, err := extractor.Extract(data)
	if err != nil {
		c.logger.Error("Failed to extract document", zap.String("file", name), zap.Error(err))
		return nil, fmt.Errorf("extract %s: %w", name, err)
	}
	doc.Source = name
	if doc.Title == "" {
		doc.Title = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}

	c.logger.Debug("document_loaded",
		zap.String("file", name),
		zap.Int("size", len(data)),
		zap.Int("lines", len(doc.Lines)))
	return doc, nil
}
