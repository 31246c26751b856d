package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sitebind/sitebind"
	"github.com/sitebind/sitebind/crawl"
	"github.com/sitebind/sitebind/fs"
	"github.com/sitebind/sitebind/gemini"
	"github.com/sitebind/sitebind/goquery"
	"github.com/sitebind/sitebind/htmltomarkdown"
	sbhttp "github.com/sitebind/sitebind/http"
	"github.com/sitebind/sitebind/rod"
	sbslog "github.com/sitebind/sitebind/slog"
	"github.com/sitebind/sitebind/sqlite"
	"github.com/sitebind/sitebind/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SessionService  sitebind.SessionService
	DocumentService sitebind.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitebind"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitebind --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parsed result, not the raw
	// argument list, so global flags before the command name still route
	// to the right wiring.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEBIND_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.SessionService = sqlite.NewSessionService(m.DB)
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Sessions = m.SessionService
	deps.Documents = m.DocumentService
	deps.Sitemaps = sbslog.NewLoggingSitemapService(sbhttp.NewSitemapService(nil), logger)

	// Commands that reach the network share the gateway wiring.
	if cmd == "scan" || cmd == "bind" {
		flags := cli.Scan.FetchFlags
		if cmd == "bind" {
			flags = cli.Bind.FetchFlags
		}
		gateway, err := buildGateway(flags, logger)
		if err != nil {
			return err
		}
		defer gateway.Close()
		deps.Gateway = gateway

		deps.Crawler = &crawl.Crawler{
			Gateway: gateway,
			Links:   goquery.NewLinkExtractor(),
			Limiter: crawl.NewHostLimiter(crawl.DefaultPolitenessInterval),
			Logger:  logger,
		}
	}

	if cmd == "bind" {
		var isolator sitebind.Extractor = goquery.NewIsolator()
		if cli.Bind.Trafilatura {
			isolator = trafilatura.NewExtractor()
		}
		deps.Ingestor = &crawl.Ingestor{
			Gateway:     deps.Gateway,
			Isolator:    isolator,
			Rewriter:    goquery.NewRewriter(),
			Logger:      logger,
			Concurrency: cli.Bind.Concurrency,
		}
		deps.Binder = fs.NewBinder(cli.Bind.Out, htmltomarkdown.NewConverter())

		if cli.Bind.Summarize {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.Summarizer = sbslog.NewLoggingSummarizer(gemini.NewSummarizer(client, logger), logger)
		}
	}

	if cmd == "export" {
		deps.Binder = fs.NewBinder(cli.Export.Out, htmltomarkdown.NewConverter())
	}

	return kongCtx.Run(deps)
}

// buildGateway assembles the ordered fetch strategy chain: direct HTTP,
// then the relay endpoints when configured, then a rendering browser.
func buildGateway(flags FetchFlags, logger *slog.Logger) (sitebind.Fetcher, error) {
	strategies := []sitebind.Fetcher{sbhttp.NewFetcher()}

	if flags.Relay != "" {
		strategies = append(strategies, sbhttp.NewWrappedRelay(flags.Relay, sbhttp.DefaultFetchTimeout))
	}
	if flags.RawRelay != "" {
		strategies = append(strategies, sbhttp.NewRawRelay(flags.RawRelay, sbhttp.DefaultFetchTimeout))
	}
	if flags.Browser {
		browser, err := rod.NewFetcher()
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		strategies = append(strategies, browser)
	}

	gateway := sbhttp.NewGateway(strategies, sbhttp.WithLogger(logger))
	return sbslog.NewLoggingFetcher(gateway, logger), nil
}

func defaultDBPath() string {
	if path := os.Getenv("SITEBIND_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitebind.db"
	}
	dir := filepath.Join(home, ".sitebind")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sitebind.db")
}
