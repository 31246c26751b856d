package main

import (
	"context"
	"io"

	"github.com/sitebind/sitebind"
	"github.com/sitebind/sitebind/crawl"
	"github.com/sitebind/sitebind/fs"
	"github.com/sitebind/sitebind/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Sessions   sitebind.SessionService
	Documents  sitebind.DocumentService
	Sitemaps   sitebind.SitemapService
	Gateway    sitebind.Fetcher
	Crawler    *crawl.Crawler
	Ingestor   *crawl.Ingestor
	Binder     *fs.Binder
	Summarizer sitebind.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scan   ScanCmd   `cmd:"" help:"Discover links on a documentation site"`
	Bind   BindCmd   `cmd:"" help:"Crawl a site and write a markdown binder"`
	List   ListCmd   `cmd:"" help:"List stored sessions"`
	Docs   DocsCmd   `cmd:"" help:"List documents for a session"`
	Export ExportCmd `cmd:"" help:"Rewrite the binder for a stored session"`
	Delete DeleteCmd `cmd:"" help:"Delete a session and its documents"`
}

// FetchFlags configure the fallback chain of fetch strategies shared by
// the scan and bind commands.
type FetchFlags struct {
	Relay    string `help:"Wrapped relay endpoint tried when direct fetch fails"`
	RawRelay string `name:"raw-relay" help:"Raw relay endpoint tried as a further fallback"`
	Browser  bool   `help:"Add a headless browser as the last fetch strategy (needs Chrome/Chromium)"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URL     string `arg:"" help:"Seed URL"`
	Deep    bool   `short:"d" help:"Follow same-host links breadth-first"`
	Sitemap bool   `help:"Discover URLs from the sitemap instead of crawling"`
	FetchFlags
}

// BindCmd is the "bind" subcommand.
type BindCmd struct {
	URL         string   `arg:"" help:"Seed URL"`
	Deep        bool     `short:"d" help:"Follow same-host links breadth-first"`
	Out         string   `short:"o" default:"." help:"Output directory for the binder file"`
	Filter      []string `short:"F" name:"filter" help:"Keep only links matching regex (repeatable)"`
	Exclude     []string `short:"x" help:"Drop links matching regex (repeatable)"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent fetch limit"`
	Summarize   bool     `help:"Summarize each page with Gemini (needs GEMINI_API_KEY)"`
	Trafilatura bool     `help:"Use readability-based content isolation"`
	FetchFlags
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Session string `arg:"" help:"Session ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Session string `arg:"" help:"Session ID"`
	Out     string `short:"o" default:"." help:"Output directory for the binder file"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Session string `arg:"" help:"Session ID"`
	Force   bool   `help:"Confirm deletion"`
}
