package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hnsearch/internal/domain"
	"hnsearch/internal/logic"
)

type recordingOpener struct {
	urls []string
	err  error
}

func (o *recordingOpener) Open(url string) error {
	o.urls = append(o.urls, url)
	return o.err
}

func TestExecuteFetchRunsRequest(t *testing.T) {
	var gotTerm string
	var gotPage, gotSize int
	fetcher := logic.FetcherFunc(func(ctx context.Context, term string, page, pageSize int) (domain.ResultPage, error) {
		gotTerm, gotPage, gotSize = term, page, pageSize
		return domain.ResultPage{Hits: []domain.Hit{{ObjectID: "1"}}, Page: page}, nil
	})
	store := logic.NewStore("redux", 100, nil)
	exec := NewExecutor(context.Background(), fetcher, nil)

	cmd := exec.ExecuteFetch(store.FetchPage("redux", 2))
	require.NotNil(t, cmd)
	assert.Empty(t, gotTerm, "nothing runs until the command is invoked")

	msg, ok := cmd().(FetchResultMsg)
	require.True(t, ok)
	assert.Equal(t, "redux", gotTerm)
	assert.Equal(t, 2, gotPage)
	assert.Equal(t, 100, gotSize)
	assert.NoError(t, msg.Outcome.Err)
	assert.Len(t, msg.Outcome.Result.Hits, 1)
}

func TestExecuteFetchWrapsFailure(t *testing.T) {
	boom := errors.New("boom")
	fetcher := logic.FetcherFunc(func(ctx context.Context, term string, page, pageSize int) (domain.ResultPage, error) {
		return domain.ResultPage{}, boom
	})
	store := logic.NewStore("redux", 100, nil)
	exec := NewExecutor(context.TODO(), fetcher, nil)

	msg := exec.ExecuteFetch(store.FetchPage("redux", 0))().(FetchResultMsg)

	var fe *logic.FetchError
	require.ErrorAs(t, msg.Outcome.Err, &fe)
	assert.ErrorIs(t, msg.Outcome.Err, boom)
}

func TestExecuteOpenUsesLinkFallback(t *testing.T) {
	opener := &recordingOpener{}
	exec := NewExecutor(context.Background(), nil, opener)

	msg := exec.ExecuteOpen(domain.Hit{ObjectID: "42"})().(OpenResultMsg)
	assert.NoError(t, msg.Err)
	assert.Equal(t, []string{"https://news.ycombinator.com/item?id=42"}, opener.urls)

	msg = exec.ExecuteOpen(domain.Hit{ObjectID: "43", URL: "https://go.dev"})().(OpenResultMsg)
	assert.Equal(t, "https://go.dev", msg.URL)
}

func TestExecuteOpenWithoutOpener(t *testing.T) {
	exec := NewExecutor(context.Background(), nil, nil)
	msg := exec.ExecuteOpen(domain.Hit{ObjectID: "1"})().(OpenResultMsg)
	assert.Error(t, msg.Err)
}
