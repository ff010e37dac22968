package manager

import (
	"context"

	"github.com/kasuboski/streamportal/pkg/logger"
	"github.com/sourcegraph/conc/iter"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

// SearchPage is the outcome of fetching one catalog page. Err is set when the page failed.
type SearchPage[T any] struct {
	Number int
	Items  []T
	Err    error
}

// PageFetcher fetches a single 1-based page of results
type PageFetcher[T any] func(ctx context.Context, page int) ([]T, error)

// paginate fetches pages 1 through pageCount concurrently and flattens them in page order.
// A failed page is logged and contributes nothing, so paginate never fails.
func paginate[T any](ctx context.Context, pageCount int, fetch PageFetcher[T]) []T {
	log := logger.FromCtx(ctx)
	if pageCount <= 0 {
		return []T{}
	}

	numbers := make([]int, pageCount)
	for i := range numbers {
		numbers[i] = i + 1
	}

	// Map returns pages in input order whatever order they complete in
	mapper := iter.Mapper[int, SearchPage[T]]{MaxGoroutines: pageCount}
	pages := mapper.Map(numbers, func(n *int) SearchPage[T] {
		page := SearchPage[T]{Number: *n}
		if r := panics.Try(func() { page.Items, page.Err = fetch(ctx, *n) }); r != nil {
			page.Err = r.AsError()
		}
		return page
	})

	results := make([]T, 0)
	for _, p := range pages {
		if p.Err != nil {
			log.Errorw("failed to fetch page", "page", p.Number, zap.Error(p.Err))
			continue
		}
		log.Debugw("processing page", "page", p.Number, "count", len(p.Items))
		results = append(results, p.Items...)
	}

	return results
}
