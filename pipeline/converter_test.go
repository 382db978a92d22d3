package pipeline

import (
	"context"
	"strings"
	"testing"

	"novelpub/novel"
	"novelpub/text"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newDoc(body string) *text.Document {
	return &text.Document{Lines: strings.Split(body, "\n"), Title: "山河", Source: "shanhe.txt"}
}

func TestConverter_Convert(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c := NewConverter([]string{"广告"}, Book{Author: "佚名", Maker: "novelpub"}, zap.New(core))

	doc := newDoc("序言\n第一章 开始\n你好\n本章广告\n\n第二章\n世界\n第二章\n世界")
	result, err := c.Convert(context.Background(), doc, Options{BlockKeywords: []string{"序言"}, Book: Book{Author: "某人"}})
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, Book{Title: "山河", Author: "某人", Maker: "novelpub"}, result.Book)
	assert.Equal(t, 2, result.Dropped)
	assert.Equal(t, 0, result.Preamble)
	assert.Equal(t, 1, result.Duplicates)
	assert.Equal(t, novel.Stats{ChapterCount: 2, TotalWords: 4}, result.Stats)
	assert.Equal(t, []Section{
		{Title: "第1章 开始", HTMLBody: "<p>你好</p>"},
		{Title: "第2章", HTMLBody: "<p>世界</p>"},
	}, result.Sections)

	var events []string
	for _, entry := range logs.All() {
		events = append(events, entry.Message)
	}
	assert.Equal(t, []string{
		"document_loaded",
		"lines_filtered",
		"chapters_segmented",
		"chapters_deduplicated",
		"conversion_finished",
	}, events)
}

func TestConverter_EmptyChapterSet(t *testing.T) {
	c := NewConverter(nil, Book{}, zap.NewNop())

	_, err := c.Convert(context.Background(), newDoc("没有标题\n只有正文"), Options{})

	assert.ErrorIs(t, err, novel.ErrEmptyChapterSet)
}

func TestConverter_FilteredHeadingLeavesNothing(t *testing.T) {
	c := NewConverter([]string{"第一章"}, Book{}, zap.NewNop())

	_, err := c.Convert(context.Background(), newDoc("第一章 开始\n你好"), Options{})

	assert.ErrorIs(t, err, novel.ErrEmptyChapterSet)
}

func TestConverter_CountsPreamble(t *testing.T) {
	c := NewConverter(nil, Book{}, zap.NewNop())

	result, err := c.Convert(context.Background(), newDoc("intro text\n\n第1章\n正文"), Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Preamble)
	require.Len(t, result.Chapters, 1)
	assert.Equal(t, novel.Chapter{Number: 1, Numbered: true, Title: "第1章", Body: "正文"}, result.Chapters[0])
}

func TestConverter_Canceled(t *testing.T) {
	c := NewConverter(nil, Book{}, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Convert(ctx, newDoc("第一章\n正文"), Options{})

	assert.ErrorIs(t, err, context.Canceled)
}
