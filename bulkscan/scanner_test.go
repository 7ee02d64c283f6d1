package bulkscan

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textsift/urlsift/detect"
	"github.com/textsift/urlsift/logutil"
)

func TestScanPreservesOrder(t *testing.T) {
	docs := make([]Document, 20)
	for i := range docs {
		docs[i] = Document{
			ID:   fmt.Sprintf("doc-%d", i),
			Text: fmt.Sprintf("see http://host%d.example.com/x", i),
		}
	}

	s := New(Config{Workers: 5})
	results, err := s.Scan(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, results, len(docs))

	for i, res := range results {
		assert.Equal(t, docs[i].ID, res.ID)
		require.Len(t, res.URLs, 1, "doc %s", res.ID)
		assert.Equal(t, fmt.Sprintf("host%d.example.com", i), res.URLs[0].Host())
	}
}

func TestScanBoundsConcurrency(t *testing.T) {
	const workers = 3

	var (
		mu       sync.Mutex
		inflight int
		peak     int
	)

	s := New(Config{Workers: workers})
	realScan := s.scan
	s.scan = func(ctx context.Context, doc Document) Result {
		mu.Lock()
		inflight++
		if inflight > peak {
			peak = inflight
		}
		mu.Unlock()

		// Hold the slot long enough for the other workers to pick up
		// jobs, so overlap is actually observed.
		time.Sleep(5 * time.Millisecond)
		res := realScan(ctx, doc)

		mu.Lock()
		inflight--
		mu.Unlock()
		return res
	}

	docs := make([]Document, 24)
	for i := range docs {
		docs[i] = Document{ID: fmt.Sprintf("doc-%d", i), Text: "http://example.com/"}
	}

	results, err := s.Scan(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, results, len(docs))

	assert.LessOrEqual(t, peak, workers, "more documents in flight than configured workers")
	assert.GreaterOrEqual(t, peak, 2, "workers never overlapped")
}

func TestScanNoURLs(t *testing.T) {
	s := New(Config{})
	results, err := s.Scan(context.Background(), []Document{{ID: "empty", Text: "nothing to see"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].URLs)
	assert.NoError(t, results[0].Err)
}

func TestScanNormalizes(t *testing.T) {
	s := New(Config{Normalize: true})
	results, err := s.Scan(context.Background(), []Document{
		{ID: "numeric", Text: "http://3279880203/a/../b"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].URLs, 1)

	u := results[0].URLs[0]
	assert.True(t, u.IsNormalized())
	assert.Equal(t, "195.127.0.11", u.Host())
	assert.Equal(t, "/b", u.Path())
}

func TestScanWithOptions(t *testing.T) {
	s := New(Config{Options: detect.AllowSingleLevelDomain})
	results, err := s.Scan(context.Background(), []Document{
		{ID: "shorthand", Text: "host:8080/path"},
	})
	require.NoError(t, err)
	require.Len(t, results[0].URLs, 1)
	assert.Equal(t, "http://host:8080/path", results[0].URLs[0].FullURL())
}

func TestScanRateLimited(t *testing.T) {
	s := New(Config{Workers: 2, RateLimit: 1000})
	docs := []Document{
		{ID: "a", Text: "a.example.com"},
		{ID: "b", Text: "b.example.com"},
	}
	results, err := s.Scan(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Len(t, results[0].URLs, 1)
	assert.Len(t, results[1].URLs, 1)
}

func TestScanLogsDocumentContext(t *testing.T) {
	var buf bytes.Buffer
	logutil.SetupLoggerWithWriter(&buf, true, false)
	t.Cleanup(func() { logutil.SetupLogger(false, false) })

	s := New(Config{Workers: 1})
	_, err := s.Scan(context.Background(), []Document{{ID: "doc-42", Text: "http://example.com/"}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "component=bulkscan")
	assert.Contains(t, out, "document=doc-42")
	assert.Contains(t, out, "document scanned")
}

func TestScanCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(Config{Workers: 1})
	docs := []Document{{ID: "a", Text: "http://example.com/"}}
	results, err := s.Scan(ctx, docs)
	require.Error(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].ID)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}
