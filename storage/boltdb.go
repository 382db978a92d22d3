package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"novelpub/pipeline"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var bucketName = []byte("conversions")

// BoltStore keeps conversion results in a single bbolt bucket, JSON encoded
// and keyed by conversion id.
type BoltStore struct {
	db     *bolt.DB
	logger *zap.Logger
}

// OpenBoltStore opens or creates the database at path.
func OpenBoltStore(path string, logger *zap.Logger) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for BoltDB: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open BoltDB: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltStore{db: db, logger: logger}, nil
}

func (s *BoltStore) Save(ctx context.Context, result *pipeline.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode conversion %s: %w", result.ID, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(result.ID), value)
	})
	if err != nil {
		return fmt.Errorf("save conversion %s: %w", result.ID, err)
	}
	s.logger.Debug("conversion_saved", zap.String("conversion_id", result.ID), zap.Int("bytes", len(value)))
	return nil
}

func (s *BoltStore) Get(ctx context.Context, id string) (*pipeline.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result pipeline.Result
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &result)
	})
	if err != nil {
		return nil, fmt.Errorf("get conversion %s: %w", id, err)
	}
	return &result, nil
}

// List returns summaries of all stored conversions, newest first.
func (s *BoltStore) List(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summaries := []Summary{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, v []byte) error {
			var result pipeline.Result
			if err := json.Unmarshal(v, &result); err != nil {
				s.logger.Error("Skipping unreadable conversion", zap.ByteString("conversion_id", k), zap.Error(err))
				return nil
			}
			summaries = append(summaries, summarize(&result))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list conversions: %w", err)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (s *BoltStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b.Get([]byte(id)) == nil {
			return ErrNotFound
		}
		return b.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete conversion %s: %w", id, err)
	}
	return nil
}

// Close closes the BoltDB database
func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ Store = (*BoltStore)(nil)
