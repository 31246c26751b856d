package main

import (
	"fmt"

	"github.com/sitebind/sitebind"
	"github.com/sitebind/sitebind/crawl"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	if c.Sitemap {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, nil)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitebind.ErrorMessage(err))
			return err
		}
		if len(urls) == 0 {
			fmt.Fprintln(deps.Stdout, "No sitemap URLs found. Try 'sitebind scan' without --sitemap.")
			return nil
		}
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	lastVisit := 0
	deps.Crawler.Progress = sitebind.NewTracker(func(s sitebind.Snapshot) {
		if s.Scan.Visited > lastVisit {
			lastVisit = s.Scan.Visited
			fmt.Fprintf(deps.Stderr, "  scanning [%d/%d] %s\n", s.Scan.Visited, s.Scan.Budget,
				crawl.TruncateURL(s.Scan.CurrentURL, 60))
		}
	})
	catalog, err := deps.Crawler.Crawl(deps.Ctx, c.URL, c.Deep)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebind.ErrorMessage(err))
		return err
	}

	links := catalog.Links()
	fmt.Fprintf(deps.Stdout, "Found %d links:\n\n", len(links))
	for i, link := range links {
		label := link.Text
		if label == "" {
			label = sitebind.PlaceholderLabel
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, label, link.Href)
	}

	return nil
}
