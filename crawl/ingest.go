package crawl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sitebind/sitebind"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of ingestion workers used when the
// Ingestor does not specify one.
const DefaultConcurrency = 3

// Each worker pauses for a randomized interval in [MinJobDelay, MaxJobDelay)
// after completing a job, to avoid hammering the target host.
const (
	MinJobDelay = 300 * time.Millisecond
	MaxJobDelay = 800 * time.Millisecond
)

// Ingestor fetches a selection of pages concurrently and turns each into
// a document. Workers pull jobs from a shared queue; a page that fails to
// fetch or parse yields an error-flagged document rather than aborting the
// run.
type Ingestor struct {
	Gateway  sitebind.Fetcher
	Isolator sitebind.Extractor
	Rewriter sitebind.RefRewriter
	Progress *sitebind.Tracker
	Logger   *slog.Logger

	// Concurrency is the worker count; DefaultConcurrency when zero.
	Concurrency int

	// MinDelay and MaxDelay override the per-job pause bounds.
	// Both zero means the package defaults.
	MinDelay time.Duration
	MaxDelay time.Duration
}

// Ingest processes the selected links and returns their documents in the
// same order as the selection, regardless of which worker finished first.
// Canceling ctx stops the pool; jobs not yet started are never dequeued
// and results of jobs in flight at cancellation are discarded, so the
// returned slice holds only documents completed before the stop.
func (ing *Ingestor) Ingest(ctx context.Context, sessionID string, selected []sitebind.DiscoveredLink) []*sitebind.Document {
	if ing.Progress != nil {
		ing.Progress.StartIngest(len(selected))
	}
	concurrency := ing.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var mu sync.Mutex
	next := 0
	results := make(map[string]*sitebind.Document, len(selected))

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < concurrency; i++ {
		g.Go(func() error {
			for {
				if gctx.Err() != nil {
					return nil
				}
				mu.Lock()
				if next >= len(selected) {
					mu.Unlock()
					return nil
				}
				link := selected[next]
				next++
				mu.Unlock()

				if ing.Progress != nil {
					ing.Progress.ReadBegin(link.Href)
				}
				doc := ing.processLink(gctx, sessionID, link)
				if gctx.Err() != nil {
					return nil
				}
				mu.Lock()
				results[link.Href] = doc
				mu.Unlock()
				if ing.Progress != nil {
					ing.Progress.ReadDone(link.Href)
					ing.Progress.WriteDone(doc.Title)
				}

				if err := ing.pause(gctx); err != nil {
					return nil
				}
			}
		})
	}
	_ = g.Wait()

	// Re-project completed documents onto the selection order.
	out := make([]*sitebind.Document, 0, len(selected))
	for _, link := range selected {
		doc, ok := results[link.Href]
		if !ok {
			continue
		}
		doc.Position = len(out)
		out = append(out, doc)
	}
	return out
}

// processLink fetches, isolates, and rewrites one page. Any failure along
// the way returns an error-flagged document carrying the link's label.
func (ing *Ingestor) processLink(ctx context.Context, sessionID string, link sitebind.DiscoveredLink) *sitebind.Document {
	doc := &sitebind.Document{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		URL:       link.Href,
		Title:     link.Text,
		Status:    sitebind.StatusError,
		FetchedAt: time.Now().UTC(),
	}

	html, err := ing.Gateway.Fetch(ctx, link.Href)
	if err != nil {
		ing.logger().Warn("page fetch failed", "url", link.Href, "error", err)
		return doc
	}

	extracted, err := ing.Isolator.Extract(html)
	if err != nil {
		ing.logger().Warn("content extraction failed", "url", link.Href, "error", err)
		return doc
	}

	content, err := ing.Rewriter.Rewrite(extracted.ContentHTML, link.Href)
	if err != nil {
		content = extracted.ContentHTML
	}

	if extracted.Title != "" {
		doc.Title = extracted.Title
	}
	doc.Content = content
	doc.ContentHash = computeHash(content)
	doc.Status = sitebind.StatusOK
	return doc
}

// pause sleeps for a randomized interval between jobs, returning early
// with an error when ctx is canceled.
func (ing *Ingestor) pause(ctx context.Context) error {
	min, max := ing.MinDelay, ing.MaxDelay
	if min == 0 && max == 0 {
		min, max = MinJobDelay, MaxJobDelay
	}
	d := min
	if max > min {
		d += time.Duration(rand.Int64N(int64(max - min)))
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (ing *Ingestor) logger() *slog.Logger {
	if ing.Logger != nil {
		return ing.Logger
	}
	return slog.Default()
}
