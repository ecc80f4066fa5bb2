package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkscan"
	"github.com/fwojciec/linkscan/bloom"
	"github.com/fwojciec/linkscan/check"
	"github.com/fwojciec/linkscan/fs"
	"github.com/fwojciec/linkscan/glob"
	"github.com/fwojciec/linkscan/goldmark"
	"github.com/fwojciec/linkscan/goquery"
	lshttp "github.com/fwojciec/linkscan/http"
	"github.com/fwojciec/linkscan/lipgloss"
	"github.com/fwojciec/linkscan/mail"
	lsslog "github.com/fwojciec/linkscan/slog"
	"github.com/fwojciec/linkscan/sqlite"
	"github.com/fwojciec/linkscan/toml"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, errorText(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPath is read unless --config is given.
	ConfigPath string

	// HTTPClient is used for web links. NewClient is used if nil.
	HTTPClient *http.Client
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: linkscan.DefaultConfigFile,
	}
}

// Run executes the CLI with the given arguments. It returns an EFAILED error
// if any link failed.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linkscan"),
		kong.Description("Check the links of Markdown and HTML documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Version {
		fmt.Fprintf(stdout, "linkscan %s\n", version)
		return nil
	}

	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	fileSettings, err := toml.Load(configPath)
	if err != nil {
		return err
	}
	cfg, err := buildConfig(cli.Directory, cli.Quiet, fileSettings.Merge(cli.Settings()))
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cfg.Debug)
	runner, cleanup, err := m.wire(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if err := lipgloss.NewReportWriter(stdout, lipgloss.WithQuiet(cfg.Quiet)).WriteReport(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return report.Err()
}

// wire builds the runner and its dependencies for cfg. The returned cleanup
// function releases the cache database.
func (m *Main) wire(ctx context.Context, cfg *linkscan.Config, logger *slog.Logger) (*check.Runner, func(), error) {
	matcher, err := glob.NewMatcher(cfg.IgnoreLinks)
	if err != nil {
		return nil, nil, err
	}

	client := m.HTTPClient
	if client == nil {
		client = lshttp.NewClient()
	}

	htmlExtractor := goquery.NewExtractor()
	var (
		markdown linkscan.LinkExtractor = goldmark.NewExtractor(htmlExtractor)
		html     linkscan.LinkExtractor = htmlExtractor
		web      linkscan.Validator     = lshttp.NewChecker(client, lshttp.WithLogger(logger))
		local    linkscan.Validator     = fs.NewChecker(cfg.MarkupKinds, cfg.MatchFileExtension)
		email    linkscan.Validator     = mail.NewChecker()
		limiter  linkscan.HostLimiter   = check.NewHostThrottle(cfg.Throttle)
	)
	if cfg.Debug {
		markdown = lsslog.NewLoggingExtractor(markdown, logger)
		html = lsslog.NewLoggingExtractor(html, logger)
		web = lsslog.NewLoggingValidator(web, linkscan.LinkHTTP, logger)
		local = lsslog.NewLoggingValidator(local, linkscan.LinkFileSystem, logger)
		email = lsslog.NewLoggingValidator(email, linkscan.LinkMail, logger)
		limiter = lsslog.NewLoggingLimiter(limiter, logger)
	}

	runner := &check.Runner{
		Config: cfg,
		Finder: fs.NewFinder(cfg),
		Extractors: map[linkscan.MarkupKind]linkscan.LinkExtractor{
			linkscan.Markdown: markdown,
			linkscan.HTML:     html,
		},
		HTTP:     web,
		FS:       local,
		Mail:     email,
		Resolver: fs.NewResolver(cfg.RootDir),
		Limiter:  limiter,
		Links:    matcher,
		Logger:   logger,
	}

	cleanup := func() {}
	if cfg.Cache != "" && !cfg.Offline {
		db := sqlite.NewDB(cfg.Cache)
		if err := db.Open(); err != nil {
			return nil, nil, fmt.Errorf("failed to open cache at %q: %w", cfg.Cache, err)
		}
		filter := bloom.NewFilter(cacheFilterSize, 0.01)
		cache, err := sqlite.NewOutcomeCache(ctx, db, cfg.CacheTTL, sqlite.WithPrefilter(filter))
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to load cache: %w", err)
		}
		logger.Debug("cache loaded", "path", cfg.Cache, "entries", filter.EstimatedCount())
		if n, err := cache.DeleteExpired(ctx); err != nil {
			logger.Warn("cache cleanup failed", "error", err)
		} else if n > 0 {
			logger.Debug("cache cleanup", "deleted", n)
		}
		runner.Cache = cache
		cleanup = func() { db.Close() }
	}

	return runner, cleanup, nil
}

// cacheFilterSize is the expected number of cached URLs.
const cacheFilterSize = 10000

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// errorText returns the message of application errors and the full text of
// anything else.
func errorText(err error) string {
	if code := linkscan.ErrorCode(err); code != linkscan.EINTERNAL {
		return "error: " + linkscan.ErrorMessage(err)
	}
	return "error: " + err.Error()
}
