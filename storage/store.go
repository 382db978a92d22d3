package storage

import (
	"context"
	"errors"
	"time"

	"novelpub/pipeline"
)

// ErrNotFound is returned for an unknown conversion id.
var ErrNotFound = errors.New("conversion not found")

type Store interface {
	Save(ctx context.Context, result *pipeline.Result) error
	Get(ctx context.Context, id string) (*pipeline.Result, error)
	List(ctx context.Context) ([]Summary, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// Summary is the listing view of a stored conversion.
type Summary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author,omitempty"`
	ChapterCount int       `json:"chapter_count"`
	TotalWords   int       `json:"total_words"`
	CreatedAt    time.Time `json:"created_at"`
}

func summarize(r *pipeline.Result) Summary {
	return Summary{
		ID:           r.ID,
		Title:        r.Book.Title,
		Author:       r.Book.Author,
		ChapterCount: r.Stats.ChapterCount,
		TotalWords:   r.Stats.TotalWords,
		CreatedAt:    r.CreatedAt,
	}
}
