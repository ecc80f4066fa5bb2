// Package check runs link validation over a directory tree. It ties file
// discovery, link extraction and the per-kind validators together.
package check

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/fwojciec/linkscan"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Outcome messages produced by the runner itself.
const (
	msgIgnoredLink = "Ignore link because of the ignore-links option."
	msgOffline     = "Ignore web link because of the offline flag."
)

// Runner checks every link of every markup file found by Finder.
type Runner struct {
	Config     *linkscan.Config
	Finder     linkscan.FileFinder
	Extractors map[linkscan.MarkupKind]linkscan.LinkExtractor

	HTTP     linkscan.Validator
	FS       linkscan.Validator
	Mail     linkscan.Validator
	Resolver linkscan.PathResolver

	// Optional collaborators.
	Limiter linkscan.HostLimiter
	Links   linkscan.LinkMatcher
	Cache   linkscan.OutcomeCache
	Logger  *slog.Logger

	flight singleflight.Group
	mu     sync.Mutex
	seen   map[string]linkscan.Outcome
}

// Run validates the configuration, discovers files, extracts their links and
// checks every link concurrently. Pre-flight problems are returned as
// errors; problems with individual links or files are results in the report.
func (r *Runner) Run(ctx context.Context) (*linkscan.Report, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}
	logger := r.logger()

	files, err := r.Finder.FindFiles(ctx)
	if err != nil {
		return nil, err
	}

	report := &linkscan.Report{RunID: uuid.NewString(), Files: len(files)}
	logger.Debug("files found", "run_id", report.RunID, "files", len(files))

	var links []linkscan.RawLink
	for _, file := range files {
		found, err := r.extract(file)
		if err != nil {
			logger.Warn("file skipped", "path", file.Path, "error", err)
			report.Results = append(report.Results, linkscan.Result{
				Link:    linkscan.RawLink{Source: file.Path, Target: file.Path},
				Kind:    linkscan.LinkFileSystem,
				Target:  file.Path,
				Outcome: linkscan.Fail(fmt.Sprintf("cannot extract links: %v", err)),
			})
			continue
		}
		links = append(links, found...)
	}
	logger.Debug("links extracted", "run_id", report.RunID, "links", len(links))

	r.mu.Lock()
	r.seen = make(map[string]linkscan.Outcome)
	r.mu.Unlock()

	concurrency := r.Config.Concurrency
	if concurrency <= 0 {
		concurrency = linkscan.DefaultConcurrency
	}

	results := make([]linkscan.Result, len(links))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, link := range links {
		g.Go(func() error {
			results[i] = r.checkLink(gctx, link)
			return nil
		})
	}
	_ = g.Wait()

	report.Results = append(report.Results, results...)
	report.Sort()

	counts := report.Counts()
	logger.Debug("run finished",
		"run_id", report.RunID,
		"links", len(report.Results),
		"failed", counts[linkscan.SeverityFailed],
	)
	return report, nil
}

func (r *Runner) extract(file linkscan.MarkupFile) ([]linkscan.RawLink, error) {
	extractor, ok := r.Extractors[file.Kind]
	if !ok {
		return nil, linkscan.Errorf(linkscan.EINTERNAL, "no extractor for markup type %s", file.Kind)
	}
	content, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, err
	}
	return extractor.ExtractLinks(file.Path, content)
}

// checkLink dispatches one link occurrence to the validator for its kind.
func (r *Runner) checkLink(ctx context.Context, link linkscan.RawLink) linkscan.Result {
	target := strings.TrimSpace(link.Target)
	res := linkscan.Result{
		Link:   link,
		Kind:   linkscan.Classify(target),
		Target: target,
	}
	if r.Links != nil && r.Links.Match(target) {
		res.Outcome = linkscan.Ignore(msgIgnoredLink)
		return res
	}

	switch res.Kind {
	case linkscan.LinkFTP, linkscan.LinkUnknownScheme:
		res.Outcome = linkscan.NotImplemented(
			fmt.Sprintf("Checking of link type '%s' is not implemented (yet).", res.Kind))
	case linkscan.LinkMail:
		res.Outcome = r.Mail.Validate(ctx, target)
	case linkscan.LinkHTTP:
		if r.Config.Offline {
			res.Outcome = linkscan.Ignore(msgOffline)
			break
		}
		res.Outcome = r.checkHTTP(ctx, target)
	case linkscan.LinkFileSystem:
		path, err := r.Resolver.ResolvePath(link.Source, target)
		if err != nil {
			res.Outcome = linkscan.Fail(fmt.Sprintf("cannot resolve target: %v", err))
			break
		}
		res.Target = path
		res.Outcome = r.FS.Validate(ctx, path)
	default:
		res.Outcome = linkscan.Fail(fmt.Sprintf("unhandled link type %s", res.Kind))
	}
	return res
}

// checkHTTP validates a web target once per run. Concurrent checks of the
// same target share one request.
func (r *Runner) checkHTTP(ctx context.Context, target string) linkscan.Outcome {
	r.mu.Lock()
	outcome, ok := r.seen[target]
	r.mu.Unlock()
	if ok {
		return outcome
	}

	v, _, _ := r.flight.Do(target, func() (any, error) {
		outcome := r.validateHTTP(ctx, target)
		r.mu.Lock()
		r.seen[target] = outcome
		r.mu.Unlock()
		return outcome, nil
	})
	return v.(linkscan.Outcome)
}

func (r *Runner) validateHTTP(ctx context.Context, target string) linkscan.Outcome {
	logger := r.logger()

	if r.Cache != nil {
		cached, ok, err := r.Cache.FindOutcome(ctx, target)
		if err != nil {
			logger.Warn("cache lookup failed", "url", target, "error", err)
		} else if ok {
			logger.Debug("cache hit", "url", target)
			return cached
		}
	}

	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, Host(target)); err != nil {
			return linkscan.Fail(fmt.Sprintf("Http(s) request failed: %v", err))
		}
	}

	outcome := r.HTTP.Validate(ctx, target)

	if r.Cache != nil && !outcome.IsFailure() {
		if err := r.Cache.SaveOutcome(ctx, target, outcome); err != nil {
			logger.Warn("cache store failed", "url", target, "error", err)
		}
	}
	return outcome
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}
