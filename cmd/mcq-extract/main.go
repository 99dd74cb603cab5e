package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/clatprep/mcq-extract/internal/config"
	"github.com/clatprep/mcq-extract/internal/extractor"
	"github.com/clatprep/mcq-extract/internal/pdf"
	"github.com/clatprep/mcq-extract/internal/pipeline"
	"github.com/clatprep/mcq-extract/internal/store"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures logging based on the run mode
func setupLogging(cfg *config.Config) {
	// Keep stdout clean for JSON output in extract mode
	log.SetOutput(os.Stderr)
	if cfg.IsDebug() {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.IsBatchMode() {
		err = runBatch(ctx, cfg)
	} else {
		err = runExtract(cfg)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

// runExtract parses a single PDF and writes its records as JSON on stdout.
func runExtract(cfg *config.Config) error {
	reader := pdf.NewReader(cfg.MaxFileSize)

	text, err := reader.ExtractText(cfg.InputFile)
	if err != nil {
		// Degraded input: the engine accepts empty text and yields no records
		log.Printf("Warning: text extraction failed for %s: %v", cfg.InputFile, err)
		text = ""
	}

	records := extractor.NewEngine().Extract(text)

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	fmt.Println(string(out))

	log.Printf("Extracted %d questions from %s", len(records), cfg.InputFile)
	return nil
}

// runBatch processes every PDF in the source directory into the questions
// database, chunking oversized files first.
func runBatch(ctx context.Context, cfg *config.Config) error {
	scanner := pdf.NewScanner()
	files, err := scanner.ScanFolder(cfg.SourceDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Printf("No PDF files found in %s", cfg.SourceDir)
		return nil
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	runID, err := db.StartRun(cfg.SourceDir)
	if err != nil {
		return err
	}

	chunkDir, err := os.MkdirTemp("", "mcq-extract-chunks-")
	if err != nil {
		return fmt.Errorf("failed to create chunk directory: %w", err)
	}
	defer os.RemoveAll(chunkDir)

	chunker := pdf.NewChunker(cfg.ChunkPages)
	batch := pipeline.NewBatch(pdf.NewReader(cfg.MaxFileSize), cfg.Workers)

	totalQuestions := 0
	processed := 0
	for _, file := range files {
		chunks, err := chunker.Split(file.Path, chunkDir)
		if err != nil {
			log.Printf("Skipping %s: %v", file.Name, err)
			continue
		}

		results, err := batch.Run(ctx, chunks)
		if err != nil {
			return err
		}

		var records []extractor.QuestionRecord
		for _, result := range results {
			if result.Err != nil {
				log.Printf("Warning: %s: %v", result.Path, result.Err)
			}
			records = append(records, result.Records...)
		}

		if err := db.SaveQuestions(runID, file.Name, records); err != nil {
			return err
		}

		log.Printf("%s: %d questions", file.Name, len(records))
		totalQuestions += len(records)
		processed++
	}

	if err := db.FinishRun(runID, processed, totalQuestions); err != nil {
		return err
	}

	log.Printf("Run %s complete: %d documents, %d questions", runID, processed, totalQuestions)
	return nil
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("MCQ Extract\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
