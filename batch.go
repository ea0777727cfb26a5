package strata

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/source"
)

// DocumentResult holds the full reconstruction of one document from a
// batch run.
type DocumentResult struct {
	Pages    []model.PageData
	Analysis model.DocumentAnalysis
	Warnings []Warning
}

// ExtractDocuments reconstructs several documents concurrently, at most
// limit at a time (limit <= 0 means no cap). Each document gets its own
// session, so pages within a document still process sequentially.
// Results are positional: results[i] corresponds to docs[i]. The first
// document error cancels the rest.
func ExtractDocuments(ctx context.Context, docs []source.Document, limit int) ([]DocumentResult, error) {
	results := make([]DocumentResult, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			session := NewSession(doc)
			defer session.Close()

			pages, warns, err := session.Extract(ctx, nil)
			if err != nil {
				return err
			}
			analysis, err := session.Analyze(ctx)
			if err != nil {
				return err
			}
			results[i] = DocumentResult{
				Pages:    pages,
				Analysis: analysis,
				Warnings: warns,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
