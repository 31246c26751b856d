package main

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/sitebind/sitebind"
	"github.com/sitebind/sitebind/crawl"
	"github.com/sitebind/sitebind/goquery"
)

// Run executes the bind command.
func (c *BindCmd) Run(deps *Dependencies) error {
	urlFilter, err := compileFilter(c.Filter, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	parsed, err := url.Parse(c.URL)
	if err != nil || parsed.Hostname() == "" {
		fmt.Fprintf(deps.Stderr, "error: invalid seed URL %q\n", c.URL)
		return sitebind.Errorf(sitebind.EINVALID, "invalid seed URL: %s", c.URL)
	}

	// One tracker spans both phases: scan visits go to stderr as transient
	// status, completed writes go to stdout with the results.
	lastVisit, lastWrite := 0, 0
	tracker := sitebind.NewTracker(func(s sitebind.Snapshot) {
		if s.Scan.Visited > lastVisit {
			lastVisit = s.Scan.Visited
			fmt.Fprintf(deps.Stderr, "  scanning [%d/%d] %s\n", s.Scan.Visited, s.Scan.Budget,
				crawl.TruncateURL(s.Scan.CurrentURL, 60))
		}
		if s.Write.Completed > lastWrite {
			lastWrite = s.Write.Completed
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", s.Write.Completed, s.Write.Total,
				crawl.TruncateURL(s.Write.LastLabel, 60))
		}
	})
	deps.Crawler.Progress = tracker

	// Discovery phase
	catalog, err := deps.Crawler.Crawl(deps.Ctx, c.URL, c.Deep)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebind.ErrorMessage(err))
		return err
	}

	var selected []sitebind.DiscoveredLink
	for _, link := range catalog.Links() {
		if urlFilter.Match(link.Href) {
			selected = append(selected, link)
		}
	}
	fmt.Fprintf(deps.Stdout, "Found %d links (%d selected)\n", catalog.Len(), len(selected))
	if len(selected) == 0 {
		return sitebind.Errorf(sitebind.ENOTFOUND, "no links selected; adjust --filter/--exclude")
	}

	session := &sitebind.Session{
		SeedURL:  c.URL,
		Hostname: parsed.Hostname(),
	}
	if err := deps.Sessions.CreateSession(deps.Ctx, session); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitebind.ErrorMessage(err))
		return err
	}

	// Retrieval phase
	deps.Ingestor.Progress = tracker
	docs := deps.Ingestor.Ingest(deps.Ctx, session.ID, selected)

	// Persist, then summarize the successful pages.
	var failed, totalBytes int
	for _, doc := range docs {
		if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitebind.ErrorMessage(err))
			return err
		}
		if doc.Status == sitebind.StatusError {
			failed++
			continue
		}
		totalBytes += len(doc.Content)
	}

	if deps.Summarizer != nil {
		for _, doc := range docs {
			if doc.Status != sitebind.StatusOK {
				continue
			}
			plain := goquery.PlainText(doc.Content)
			summary, err := deps.Summarizer.Summarize(deps.Ctx, sitebind.TruncateForSummary(plain))
			if err != nil {
				continue
			}
			doc.Summary = summary
			if err := deps.Documents.UpdateSummary(deps.Ctx, doc.ID, summary); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", sitebind.ErrorMessage(err))
				return err
			}
		}
	}

	if err := deps.Binder.Bind(deps.Ctx, session, docs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Bound %d pages (%d failed, %s) to %s\n",
		len(docs)-failed, failed, crawl.FormatBytes(totalBytes), deps.Binder.Path(session))
	fmt.Fprintf(deps.Stdout, "Session %s\n", session.ID)
	return nil
}

// compileFilter builds a URLFilter from include and exclude patterns.
// A filter with no patterns matches everything.
func compileFilter(include, exclude []string) (*sitebind.URLFilter, error) {
	f := &sitebind.URLFilter{}
	for _, pattern := range include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
		}
		f.Include = append(f.Include, re)
	}
	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		f.Exclude = append(f.Exclude, re)
	}
	return f, nil
}
