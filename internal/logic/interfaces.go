package logic

import (
	"context"
	"errors"
	"fmt"

	"hnsearch/internal/domain"
)

// Fetcher retrieves one page of search results
type Fetcher interface {
	Fetch(ctx context.Context, term string, page, pageSize int) (domain.ResultPage, error)
}

// FetcherFunc adapts a function to the Fetcher interface
type FetcherFunc func(ctx context.Context, term string, page, pageSize int) (domain.ResultPage, error)

// Fetch calls f
func (f FetcherFunc) Fetch(ctx context.Context, term string, page, pageSize int) (domain.ResultPage, error) {
	return f(ctx, term, page, pageSize)
}

// ErrNoFetcher is returned when a request is run without a fetcher
var ErrNoFetcher = errors.New("no fetcher configured")

// FetchError is the only error kind the store records: a transport or
// parse failure for one page of one term
type FetchError struct {
	Term string
	Page int
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %q page %d: %v", e.Term, e.Page, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
