package pdf

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Chunker splits oversized PDFs into fixed page spans so each chunk stays
// within the extraction engine's comfortable working size.
type Chunker struct {
	maxPages int
	conf     *model.Configuration
}

// NewChunker creates a chunker that splits documents longer than maxPages.
func NewChunker(maxPages int) *Chunker {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Chunker{
		maxPages: maxPages,
		conf:     conf,
	}
}

// Split writes page-range chunks of inFile into outDir and returns their
// paths in page order. Documents at or under the page limit are returned
// as-is without writing anything.
func (c *Chunker) Split(inFile, outDir string) ([]string, error) {
	pageCount, err := api.PageCountFile(inFile)
	if err != nil {
		return nil, fmt.Errorf("cannot count pages of %s: %w", inFile, err)
	}

	if pageCount <= c.maxPages {
		return []string{inFile}, nil
	}

	if err := api.SplitFile(inFile, outDir, c.maxPages, c.conf); err != nil {
		return nil, fmt.Errorf("failed to split %s: %w", inFile, err)
	}

	base := strings.TrimSuffix(filepath.Base(inFile), filepath.Ext(inFile))
	chunks, err := filepath.Glob(filepath.Join(outDir, base+"_*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("failed to list chunks for %s: %w", inFile, err)
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("split of %s produced no chunks", inFile)
	}

	sort.Strings(chunks)
	return chunks, nil
}
