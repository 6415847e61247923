package logic

import (
	"context"
	"errors"
	"strings"

	"hnsearch/internal/domain"
	"hnsearch/internal/eventbus"
)

// FetchRequest describes one page fetch started by the store
type FetchRequest struct {
	Term     string
	Page     int
	PageSize int
	seq      uint64
}

// FetchOutcome is the result of running a FetchRequest
type FetchOutcome struct {
	Request FetchRequest
	Result  domain.ResultPage
	Err     error
}

// Run performs the fetch. It touches no store state and may run on any goroutine.
// Failures come back wrapped in a *FetchError.
func (r FetchRequest) Run(ctx context.Context, f Fetcher) FetchOutcome {
	if f == nil {
		return FetchOutcome{Request: r, Err: &FetchError{Term: r.Term, Page: r.Page, Err: ErrNoFetcher}}
	}
	result, err := f.Fetch(ctx, r.Term, r.Page, r.PageSize)
	if err != nil {
		var fe *FetchError
		if !errors.As(err, &fe) {
			err = &FetchError{Term: r.Term, Page: r.Page, Err: err}
		}
		return FetchOutcome{Request: r, Err: err}
	}
	return FetchOutcome{Request: r, Result: result}
}

// Store caches search results by term and tracks the active search.
// It is not safe for concurrent use; the UI goroutine owns it.
type Store struct {
	results    map[string]*domain.ResultPage
	activeTerm string
	inputValue string
	pageSize   int

	loading bool
	lastErr error

	// seq numbers requests; only the newest one controls the loading flag
	seq        uint64
	currentSeq uint64

	bus eventbus.EventBus
}

// NewStore creates a store whose active term and input start at defaultTerm.
// bus may be nil.
func NewStore(defaultTerm string, pageSize int, bus eventbus.EventBus) *Store {
	return &Store{
		results:    make(map[string]*domain.ResultPage),
		activeTerm: defaultTerm,
		inputValue: defaultTerm,
		pageSize:   pageSize,
		bus:        bus,
	}
}

// SetInputValue updates the pending search text
func (s *Store) SetInputValue(text string) {
	s.inputValue = text
}

// InputValue returns the pending search text
func (s *Store) InputValue() string {
	return s.inputValue
}

// ActiveTerm returns the term whose results are displayed
func (s *Store) ActiveTerm() string {
	return s.activeTerm
}

// IsLoading reports whether the most recent fetch is still outstanding
func (s *Store) IsLoading() bool {
	return s.loading
}

// LastError returns the error of the latest failed fetch, cleared by the next success
func (s *Store) LastError() error {
	return s.lastErr
}

// PageSize returns the page size sent with every request
func (s *Store) PageSize() int {
	return s.pageSize
}

// SubmitSearch makes the input value the active term. A fetch of page 0 is
// started only when the term has no cache entry yet; the returned bool tells
// whether the request must be run. Blank input is ignored.
func (s *Store) SubmitSearch() (FetchRequest, bool) {
	if strings.TrimSpace(s.inputValue) == "" {
		return FetchRequest{}, false
	}

	term := s.inputValue
	s.activeTerm = term

	if _, cached := s.results[term]; cached {
		s.publish(eventbus.SearchSubmittedEvent{Term: term, Cached: true})
		return FetchRequest{}, false
	}

	s.publish(eventbus.SearchSubmittedEvent{Term: term})
	return s.FetchPage(term, 0), true
}

// FetchPage marks the store as loading and returns the request to run
func (s *Store) FetchPage(term string, page int) FetchRequest {
	s.seq++
	s.currentSeq = s.seq
	s.loading = true

	s.publish(eventbus.FetchStartedEvent{Term: term, Page: page})

	return FetchRequest{
		Term:     term,
		Page:     page,
		PageSize: s.pageSize,
		seq:      s.seq,
	}
}

// FetchNextPage requests the page after the active term's current page
func (s *Store) FetchNextPage() FetchRequest {
	return s.FetchPage(s.activeTerm, s.CurrentPage()+1)
}

// Complete merges a finished fetch. Hits are appended to the request's term in
// arrival order and the page number is taken from the response. A failure is
// recorded without touching cached results.
func (s *Store) Complete(outcome FetchOutcome) {
	req := outcome.Request
	if req.seq == s.currentSeq {
		s.loading = false
	}

	if outcome.Err != nil {
		s.lastErr = outcome.Err
		s.publish(eventbus.FetchFailedEvent{Term: req.Term, Page: req.Page, Err: outcome.Err})
		return
	}

	entry, ok := s.results[req.Term]
	if !ok {
		entry = &domain.ResultPage{Hits: []domain.Hit{}}
		s.results[req.Term] = entry
	}
	entry.Hits = append(entry.Hits, outcome.Result.Hits...)
	entry.Page = outcome.Result.Page
	entry.NbPages = outcome.Result.NbPages
	entry.NbHits = outcome.Result.NbHits
	s.lastErr = nil

	s.publish(eventbus.FetchCompletedEvent{
		Term:      req.Term,
		Page:      entry.Page,
		NewHits:   len(outcome.Result.Hits),
		TotalHits: len(entry.Hits),
	})
}

// Dismiss removes every hit with objectID from the active term's results
func (s *Store) Dismiss(objectID string) {
	entry, ok := s.results[s.activeTerm]
	if !ok {
		return
	}

	kept := make([]domain.Hit, 0, len(entry.Hits))
	for _, hit := range entry.Hits {
		if hit.ObjectID != objectID {
			kept = append(kept, hit)
		}
	}
	removed := len(entry.Hits) - len(kept)
	if removed == 0 {
		return
	}
	entry.Hits = kept

	s.publish(eventbus.HitDismissedEvent{Term: s.activeTerm, ObjectID: objectID, Removed: removed})
}

// ActiveResultSet returns a copy of the active term's hits
func (s *Store) ActiveResultSet() []domain.Hit {
	entry, ok := s.results[s.activeTerm]
	if !ok {
		return []domain.Hit{}
	}
	hits := make([]domain.Hit, len(entry.Hits))
	copy(hits, entry.Hits)
	return hits
}

// CurrentPage returns the active term's page number, 0 when nothing is cached
func (s *Store) CurrentPage() int {
	if entry, ok := s.results[s.activeTerm]; ok {
		return entry.Page
	}
	return 0
}

// Entry returns a copy of the cache entry for term
func (s *Store) Entry(term string) (domain.ResultPage, bool) {
	entry, ok := s.results[term]
	if !ok {
		return domain.ResultPage{}, false
	}
	cp := *entry
	cp.Hits = make([]domain.Hit, len(entry.Hits))
	copy(cp.Hits, entry.Hits)
	return cp, true
}

// Terms returns the cached search terms in no particular order
func (s *Store) Terms() []string {
	terms := make([]string, 0, len(s.results))
	for term := range s.results {
		terms = append(terms, term)
	}
	return terms
}

func (s *Store) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
