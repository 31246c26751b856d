// Package crawl provides site discovery and ingestion orchestration.
// It coordinates breadth-first link discovery over a frontier and the
// concurrent fetching of selected pages into documents.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/sitebind/sitebind"
)

// Visit budgets for the two discovery modes. A shallow scan inspects the
// seed page only; a deep scan follows same-host links breadth-first until
// the frontier is exhausted or the budget is spent.
const (
	ShallowBudget = 1
	DeepBudget    = 50
)

// DefaultPolitenessInterval is the minimum spacing between consecutive
// page visits to the same host during discovery.
const DefaultPolitenessInterval = 500 * time.Millisecond

// Frontier configuration for discovery.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// State describes the lifecycle of a discovery run.
type State int32

// Discovery run states. A run moves from StateReady to StateRunning and
// terminates in StateDone (frontier exhausted or budget spent) or
// StateStopped (canceled mid-run).
const (
	StateReady State = iota
	StateRunning
	StateDone
	StateStopped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Crawler discovers same-host navigation links starting from a seed URL.
// At most one discovery run may be in progress at a time; a completed
// Crawler can be reused, with the new catalog superseding the old one.
type Crawler struct {
	Gateway  sitebind.Fetcher
	Links    sitebind.LinkExtractor
	Limiter  *HostLimiter
	Progress *sitebind.Tracker
	Logger   *slog.Logger

	state atomic.Int32
}

// State returns the current lifecycle state.
func (c *Crawler) State() State {
	return State(c.state.Load())
}

// Crawl visits pages starting from seedURL and returns the catalog of
// discovered links in first-seen order. When deep is false only the seed
// page is inspected. Per-page failures are logged and skipped; they never
// abort the run. Canceling ctx stops the run and returns the partial
// catalog accumulated so far.
//
// The catalog always leads with the seed: if no discovered link points
// back at it, a sentinel entry is prepended.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, deep bool) (*sitebind.Catalog, error) {
	parsed, err := url.Parse(seedURL)
	if err != nil || parsed.Hostname() == "" {
		return nil, sitebind.Errorf(sitebind.EINVALID, "invalid seed URL: %s", seedURL)
	}
	if err := c.begin(); err != nil {
		return nil, err
	}

	seed := sitebind.NormalizeURL(seedURL)
	host := parsed.Hostname()
	budget := ShallowBudget
	if deep {
		budget = DeepBudget
	}
	if c.Progress != nil {
		c.Progress.StartScan(budget)
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(sitebind.DiscoveredLink{Href: seed})
	catalog := sitebind.NewCatalog()

	visited := 0
	for visited < budget {
		link, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := c.Limiter.Wait(ctx, host); err != nil {
			c.finish(StateStopped)
			return c.lead(catalog, seed), nil
		}

		visited++
		if c.Progress != nil {
			c.Progress.Visit(link.Href)
		}

		html, err := c.Gateway.Fetch(ctx, link.Href)
		if err != nil {
			if ctx.Err() != nil {
				c.finish(StateStopped)
				return c.lead(catalog, seed), nil
			}
			c.logger().Warn("page visit failed", "url", link.Href, "error", err)
			continue
		}

		found, err := c.Links.ExtractLinks(html, link.Href)
		if err != nil {
			c.logger().Warn("link extraction failed", "url", link.Href, "error", err)
			continue
		}
		for _, l := range found {
			catalog.Add(l)
			if deep {
				frontier.Push(l)
			}
		}
	}

	if ctx.Err() != nil {
		c.finish(StateStopped)
	} else {
		c.finish(StateDone)
	}
	return c.lead(catalog, seed), nil
}

// lead ensures the seed URL heads the catalog, prepending a sentinel
// entry when discovery never found a link pointing back at it.
func (c *Crawler) lead(catalog *sitebind.Catalog, seed string) *sitebind.Catalog {
	if !catalog.Contains(seed) {
		catalog.Prepend(sitebind.DiscoveredLink{Href: seed, Text: sitebind.SeedLabel})
	}
	return catalog
}

func (c *Crawler) begin() error {
	for {
		s := c.state.Load()
		if State(s) == StateRunning {
			return sitebind.Errorf(sitebind.EINVALID, "a discovery run is already in progress")
		}
		if c.state.CompareAndSwap(s, int32(StateRunning)) {
			return nil
		}
	}
}

func (c *Crawler) finish(s State) {
	c.state.Store(int32(s))
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
