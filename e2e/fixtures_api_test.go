//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

// story is one hit as the search API returns it
type story struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Author      string `json:"author"`
	NumComments int    `json:"num_comments"`
	Points      int    `json:"points"`
}

type apiPage struct {
	Hits    []story `json:"hits"`
	Page    int     `json:"page"`
	NbPages int     `json:"nbPages"`
	NbHits  int     `json:"nbHits"`
}

// fakeAlgolia serves canned search pages and records every request
type fakeAlgolia struct {
	srv *httptest.Server

	mu       sync.Mutex
	pages    map[string]apiPage
	failures map[string]int
	requests []string
}

func newFakeAlgolia(t *testing.T) *fakeAlgolia {
	t.Helper()
	f := &fakeAlgolia{
		pages:    make(map[string]apiPage),
		failures: make(map[string]int),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/search", f.handleSearch)
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func pageKey(query string, page int) string {
	return fmt.Sprintf("%s/%d", query, page)
}

func (f *fakeAlgolia) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	key := pageKey(query, page)

	f.mu.Lock()
	f.requests = append(f.requests, key)
	status, failing := f.failures[key]
	body, ok := f.pages[key]
	f.mu.Unlock()

	if failing {
		http.Error(w, "upstream unavailable", status)
		return
	}
	if !ok {
		body = apiPage{Hits: []story{}, Page: page}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// BaseURL is the API root to configure in the app
func (f *fakeAlgolia) BaseURL() string {
	return f.srv.URL + "/api/v1"
}

// SetPage serves hits for one page of a query
func (f *fakeAlgolia) SetPage(query string, page, nbPages int, hits ...story) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[pageKey(query, page)] = apiPage{
		Hits:    hits,
		Page:    page,
		NbPages: nbPages,
		NbHits:  nbPages * len(hits),
	}
}

// Fail makes one page of a query answer with status
func (f *fakeAlgolia) Fail(query string, page, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[pageKey(query, page)] = status
}

// Requests returns the "query/page" keys requested so far
func (f *fakeAlgolia) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

// CountRequests returns how often one page of a query was requested
func (f *fakeAlgolia) CountRequests(query string, page int) int {
	key := pageKey(query, page)
	n := 0
	for _, r := range f.Requests() {
		if r == key {
			n++
		}
	}
	return n
}

func reduxFixture(t *testing.T) *fakeAlgolia {
	t.Helper()
	api := newFakeAlgolia(t)
	api.SetPage("redux", 0, 2,
		story{ObjectID: "101", Title: "Redux in production", Author: "dan", URL: "https://example.com/redux", Points: 120, NumComments: 40},
		story{ObjectID: "102", Title: "Ask HN: Why Redux", Author: "acemarke", Points: 15, NumComments: 90},
	)
	api.SetPage("redux", 1, 2,
		story{ObjectID: "103", Title: "Middleware deep dive", Author: "zed", Points: 300, NumComments: 2},
	)
	api.SetPage("rust", 0, 1,
		story{ObjectID: "201", Title: "Rust ownership explained", Author: "ferris", Points: 999, NumComments: 321},
	)
	return api
}

// startWithAPI creates a workspace and launches the app against api
func startWithAPI(t *testing.T, api *fakeAlgolia, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	if _, err := tf.CreateTestWorkspace(); err != nil {
		t.Fatalf("Failed to create test workspace: %v", err)
	}
	tf.UseAPI(api)
	if err := tf.StartApp(args...); err != nil {
		t.Fatalf("Failed to start app: %v", err)
	}
	if !tf.Ready() {
		t.Fatalf("app did not render\n--- tail ---\n%s", tf.SnapshotPlain())
	}
	return tf
}
