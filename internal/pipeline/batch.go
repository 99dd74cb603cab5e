// Package pipeline runs the extraction engine over batches of documents.
// The engine itself is a pure function of its input, so documents are
// processed concurrently with one worker per document and no coordination.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/clatprep/mcq-extract/internal/extractor"
)

// TextExtractor supplies the plain text of one document. Extraction errors
// belong to the collaborator, not the engine: a failed document degrades to
// an empty record list.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// DocumentResult holds the outcome for one document in a batch.
type DocumentResult struct {
	Path    string
	Records []extractor.QuestionRecord
	Err     error
}

// Batch extracts questions from many documents concurrently.
type Batch struct {
	engine  *extractor.Engine
	texts   TextExtractor
	workers int
}

// NewBatch creates a batch runner with the given text source and worker
// bound. A non-positive worker count serializes the batch.
func NewBatch(texts TextExtractor, workers int) *Batch {
	if workers <= 0 {
		workers = 1
	}
	return &Batch{
		engine:  extractor.NewEngine(),
		texts:   texts,
		workers: workers,
	}
}

// Run processes every document and returns one result per path, in input
// order. Text extraction failures are recorded on the result and yield an
// empty record list; they never abort the batch. Run returns early only on
// context cancellation.
func (b *Batch) Run(ctx context.Context, paths []string) ([]DocumentResult, error) {
	results := make([]DocumentResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			text, err := b.texts.ExtractText(path)
			if err != nil {
				text = ""
			}
			results[i] = DocumentResult{
				Path:    path,
				Records: b.engine.Extract(text),
				Err:     err,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
