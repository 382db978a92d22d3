package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"novelpub/api"
	"novelpub/config"
	"novelpub/novel"
	"novelpub/pipeline"
	"novelpub/storage"
	"novelpub/text"

	"go.uber.org/zap"
)

func main() {
	in := flag.String("in", "", "convert this .txt or .html file once and exit")
	flag.Parse()

	// =========
	// Config
	// =========
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}

	// =========
	// Logging
	// =========
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// =========
	// Store
	// =========
	store, err := storage.OpenBoltStore(cfg.StorePath, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("path", cfg.StorePath), zap.Error(err))
	}
	defer store.Close()

	// =========
	// Loader
	// =========
	htmlExtractor, err := text.NewHTMLExtractor(cfg.PageURL, novel.ContainsHeading, logger)
	if err != nil {
		logger.Fatal("failed to create html extractor", zap.Error(err))
	}
	loader := text.NewCore(text.NewTxtExtractor(), htmlExtractor, logger)

	// =========
	// Converter
	// =========
	converter := pipeline.NewConverter(profile.BlockKeywords, pipeline.Book{
		Title:       profile.Book.Title,
		Author:      profile.Book.Author,
		Maker:       profile.Book.Maker,
		Description: profile.Book.Description,
		Cover:       profile.Book.Cover,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *in != "" {
		if err := convertFile(ctx, *in, loader, converter, store); err != nil {
			logger.Error("conversion failed", zap.String("file", *in), zap.Error(err))
			os.Exit(1)
		}
		return
	}

	// =========
	// HTTP
	// =========
	server := api.NewServer(cfg.AppPort, loader, converter, store, logger)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	if err := server.Start(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func convertFile(ctx context.Context, path string, loader *text.Core, converter *pipeline.Converter, store storage.Store) error {
	doc, err := loader.Load(path)
	if err != nil {
		return err
	}
	result, err := converter.Convert(ctx, doc, pipeline.Options{})
	if err != nil {
		return err
	}
	if err := store.Save(ctx, result); err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		ID    string        `json:"id"`
		Book  pipeline.Book `json:"book"`
		Stats novel.Stats   `json:"stats"`
		Dups  int           `json:"duplicates"`
		Lost  int           `json:"preamble_lines"`
	}{result.ID, result.Book, result.Stats, result.Duplicates, result.Preamble})
}
