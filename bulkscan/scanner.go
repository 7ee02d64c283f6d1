package bulkscan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/textsift/urlsift/detect"
	"github.com/textsift/urlsift/logutil"
	"github.com/textsift/urlsift/urls"
)

// Document is one unit of text to scan, tagged with a caller-chosen ID.
type Document struct {
	ID   string
	Text string
}

// Result carries the URLs detected in one document. Err is non-nil only
// when the scan was cut short, e.g. by context cancellation.
type Result struct {
	ID       string
	URLs     []*urls.URL
	Duration time.Duration
	Err      error
}

// Config controls a Scanner.
type Config struct {
	// Workers is the number of concurrent detection goroutines.
	// Defaults to 4.
	Workers int

	// Options is the detection option set applied to every document.
	Options detect.Options

	// Normalize replaces each detected URL with its normalized view.
	Normalize bool

	// RateLimit caps documents scanned per second. Zero means no limit.
	RateLimit int
}

const defaultWorkers = 4

// Scanner runs URL detection over batches of documents on a bounded worker
// pool. A Scanner is safe for concurrent use; each document gets its own
// detector instance.
type Scanner struct {
	cfg     Config
	limiter *rate.Limiter
	log     *logutil.ComponentLogger

	// scan is the per-document work function; tests swap it out to
	// observe the worker pool.
	scan func(ctx context.Context, doc Document) Result
}

// New returns a Scanner for the given config.
func New(cfg Config) *Scanner {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit*2)
	}

	s := &Scanner{cfg: cfg, limiter: limiter, log: logutil.NewLogger("bulkscan")}
	s.scan = s.scanOne
	return s
}

// Scan detects URLs in every document and returns one Result per document,
// in input order. It blocks until all documents are processed or ctx is
// done; on cancellation the remaining documents carry ctx's error in their
// Result and ctx's error is returned.
func (s *Scanner) Scan(ctx context.Context, docs []Document) ([]Result, error) {
	results := make([]Result, len(docs))
	scanned := make([]bool, len(docs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < s.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				results[index] = s.scan(ctx, docs[index])
				scanned[index] = true
			}
		}()
	}

dispatch:
	for index := range docs {
		select {
		case jobs <- index:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i, done := range scanned {
			if !done {
				results[i] = Result{ID: docs[i].ID, Err: fmt.Errorf("document %q not scanned: %w", docs[i].ID, err)}
			}
		}
		return results, err
	}
	return results, nil
}

func (s *Scanner) scanOne(ctx context.Context, doc Document) Result {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return Result{ID: doc.ID, Err: fmt.Errorf("document %q not scanned: %w", doc.ID, err)}
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{ID: doc.ID, Err: fmt.Errorf("document %q not scanned: %w", doc.ID, err)}
	}

	scansInflight.Inc()
	defer scansInflight.Dec()

	start := time.Now()
	found := detect.New(doc.Text, s.cfg.Options).Detect()
	if s.cfg.Normalize {
		for i, u := range found {
			found[i] = u.Normalize()
		}
	}
	elapsed := time.Since(start)

	documentsScanned.Inc()
	s.log.WithDocument(doc.ID).Debug("document scanned", "urls", len(found), "duration", elapsed)

	return Result{ID: doc.ID, URLs: found, Duration: elapsed}
}
