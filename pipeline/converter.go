// Package pipeline runs a document through filtering, segmentation,
// deduplication and rendering, and narrates each stage.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"novelpub/novel"
	"novelpub/render"
	"novelpub/text"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Book is the metadata handed to the packaging collaborator with the sections.
type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Maker       string `json:"maker,omitempty"`
	Description string `json:"description,omitempty"`
	Cover       string `json:"cover,omitempty"`
}

// Section is one packaged chapter: its title and paragraph markup.
type Section struct {
	Title    string `json:"title"`
	HTMLBody string `json:"html_body"`
}

type Result struct {
	ID         string          `json:"id"`
	Source     string          `json:"source"`
	Book       Book            `json:"book"`
	Chapters   []novel.Chapter `json:"chapters"`
	Sections   []Section       `json:"sections"`
	Stats      novel.Stats     `json:"stats"`
	Dropped    int             `json:"dropped_lines"`
	Preamble   int             `json:"preamble_lines"`
	Duplicates int             `json:"duplicates"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Options tune a single conversion.
type Options struct {
	// BlockKeywords are added to the converter's own keywords.
	BlockKeywords []string
	Book          Book
}

type Converter struct {
	blockKeywords []string
	defaults      Book
	logger        *zap.Logger
}

func NewConverter(blockKeywords []string, defaults Book, logger *zap.Logger) *Converter {
	return &Converter{
		blockKeywords: blockKeywords,
		defaults:      defaults,
		logger:        logger,
	}
}

// Convert turns doc into a list of chapters. It fails with
// novel.ErrEmptyChapterSet when the document has no chapter heading.
func (c *Converter) Convert(ctx context.Context, doc *text.Document, opts Options) (*Result, error) {
	start := time.Now()
	id := uuid.New().String()
	logger := c.logger.With(zap.String("conversion_id", id), zap.String("source", doc.Source))
	logger.Info("document_loaded", zap.Int("lines", len(doc.Lines)))

	keywords := append(append([]string{}, c.blockKeywords...), opts.BlockKeywords...)
	lines, dropped := novel.FilterLines(doc.Lines, keywords)
	logger.Info("lines_filtered", zap.Int("dropped", dropped), zap.Int("keywords", len(keywords)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	preamble := leadingLines(lines)
	segmented := novel.Segment(lines)
	logger.Info("chapters_segmented", zap.Int("chapters", len(segmented)), zap.Int("preamble_lines", preamble))
	if len(segmented) == 0 {
		logger.Warn("no chapter heading found")
		return nil, fmt.Errorf("convert %s: %w", doc.Source, novel.ErrEmptyChapterSet)
	}
	for _, ch := range segmented {
		if !ch.Numbered {
			logger.Warn("unparseable chapter numeral", zap.String("heading", ch.Title))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chapters := novel.Dedupe(segmented)
	duplicates := len(segmented) - len(chapters)
	logger.Info("chapters_deduplicated", zap.Int("removed", duplicates))

	sections := make([]Section, 0, len(chapters))
	for _, ch := range chapters {
		sections = append(sections, Section{Title: ch.Title, HTMLBody: render.Paragraphs(ch.Body)})
	}

	stats := novel.CollectStats(chapters)
	logger.Info("conversion_finished",
		zap.Int("chapter_count", stats.ChapterCount),
		zap.Int("total_words", stats.TotalWords),
		zap.Duration("duration", time.Since(start)))

	return &Result{
		ID:         id,
		Source:     doc.Source,
		Book:       c.book(doc, opts.Book),
		Chapters:   chapters,
		Sections:   sections,
		Stats:      stats,
		Dropped:    dropped,
		Preamble:   preamble,
		Duplicates: duplicates,
		CreatedAt:  start.UTC(),
	}, nil
}

// book fills empty fields of override from the converter defaults, and the
// title from the document as a last resort.
func (c *Converter) book(doc *text.Document, override Book) Book {
	b := override
	fill := func(dst *string, fallback string) {
		if *dst == "" {
			*dst = fallback
		}
	}
	fill(&b.Title, c.defaults.Title)
	fill(&b.Title, doc.Title)
	fill(&b.Author, c.defaults.Author)
	fill(&b.Maker, c.defaults.Maker)
	fill(&b.Description, c.defaults.Description)
	fill(&b.Cover, c.defaults.Cover)
	return b
}

func leadingLines(lines []string) int {
	for i, line := range lines {
		if novel.IsHeading(line) {
			return i
		}
	}
	return len(lines)
}
