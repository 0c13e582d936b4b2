package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mdcrawl/mdcrawl/internal/config"
	"github.com/mdcrawl/mdcrawl/internal/crawler"
	"github.com/mdcrawl/mdcrawl/internal/fetcher"
	"github.com/mdcrawl/mdcrawl/internal/index"
	"github.com/mdcrawl/mdcrawl/internal/logging"
	"github.com/mdcrawl/mdcrawl/internal/status"
)

type crawlFlags struct {
	out           string
	maxPages      int
	render        bool
	respectRobots bool
	delay         time.Duration
	timeout       time.Duration
	metricsAddr   string
	noIndex       bool
}

// newCrawlCmd creates and configures the 'crawl' subcommand.
func newCrawlCmd() *cobra.Command {
	var flags crawlFlags
	cmd := &cobra.Command{
		Use:   "crawl <url>",
		Short: "Crawl a site breadth-first and save pages as Markdown",
		Long: `Crawls the site at <url>, following internal links breadth-first and
writing one Markdown file per page. Traversal never leaves the start
URL's host. An optional page cap bounds the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrawl(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.out, "out", "output_md", "output directory for Markdown files")
	cmd.Flags().IntVar(&flags.maxPages, "max-pages", 0, "maximum pages to crawl (0 = unbounded)")
	cmd.Flags().BoolVar(&flags.render, "render", true, "escalate JavaScript-heavy pages to headless Chrome")
	cmd.Flags().BoolVar(&flags.respectRobots, "respect-robots", false, "honor robots.txt on the target host")
	cmd.Flags().DurationVar(&flags.delay, "delay", 0, "fixed delay between page fetches")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "per-request timeout (0 = config default)")
	cmd.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "serve /metrics and /healthz on this address")
	cmd.Flags().BoolVar(&flags.noIndex, "no-index", false, "skip writing the crawl.db manifest")

	return cmd
}

func runCrawl(cmd *cobra.Command, startURL string, flags crawlFlags) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlags(&cfg, cmd, flags)

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	// Fail before any directory creation or browser startup.
	if err := crawler.ValidateStartURL(startURL); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sink, err := crawler.NewFileSystemSink(cfg.Crawler.OutputDir, logger.Named("sink"))
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	var recorder crawler.Recorder
	if cfg.Crawler.Index {
		manifest, err := index.Open(filepath.Join(cfg.Crawler.OutputDir, "crawl.db"), runID)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := manifest.Close(); cerr != nil {
				logger.Warn("Failed to close manifest", zap.Error(cerr))
			}
		}()
		recorder = manifest
	}

	if cfg.Metrics.Addr != "" {
		statusSrv := status.New(cfg.Metrics.Addr, logger.Named("status"))
		statusSrv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if serr := statusSrv.Shutdown(shutdownCtx); serr != nil {
				logger.Warn("Status server shutdown error", zap.Error(serr))
			}
		}()
	}

	fetch, err := fetcher.New(fetcher.Config{
		UserAgent:            cfg.Fetcher.UserAgent,
		RequestTimeout:       cfg.Fetcher.RequestTimeout,
		RenderEnabled:        cfg.Fetcher.RenderEnabled,
		RenderTimeout:        cfg.Fetcher.RenderTimeout,
		RespectRobots:        cfg.Fetcher.RespectRobots,
		Delay:                cfg.Fetcher.Delay,
		DetectorMinHTMLBytes: cfg.Fetcher.DetectorMinHTMLBytes,
		DetectorKeywords:     cfg.Fetcher.DetectorKeywords,
	}, logger.Named("fetcher"))
	if err != nil {
		return fmt.Errorf("init fetcher: %w", err)
	}
	defer func() {
		if cerr := fetch.Close(); cerr != nil {
			logger.Warn("Failed to close fetcher", zap.Error(cerr))
		}
	}()

	session := crawler.NewSession(crawler.SessionConfig{
		StartURL: startURL,
		MaxPages: cfg.Crawler.MaxPages,
	}, fetch, sink, recorder, logger.Named("crawl").With(zap.String("run_id", runID)))

	summary, err := session.Crawl(ctx)
	if err != nil {
		return err
	}
	logger.Info("Crawl finished",
		zap.Int("pages_visited", summary.PagesVisited),
		zap.Int("pages_saved", summary.PagesSaved),
		zap.Int("pages_failed", summary.PagesFailed),
		zap.String("output_dir", cfg.Crawler.OutputDir),
	)
	return nil
}

// applyFlags lets explicitly set CLI flags override config file values.
func applyFlags(cfg *config.Config, cmd *cobra.Command, flags crawlFlags) {
	set := cmd.Flags().Changed
	if set("out") {
		cfg.Crawler.OutputDir = flags.out
	}
	if set("max-pages") {
		cfg.Crawler.MaxPages = flags.maxPages
	}
	if set("render") {
		cfg.Fetcher.RenderEnabled = flags.render
	}
	if set("respect-robots") {
		cfg.Fetcher.RespectRobots = flags.respectRobots
	}
	if set("delay") {
		cfg.Fetcher.Delay = flags.delay
	}
	if set("timeout") && flags.timeout > 0 {
		cfg.Fetcher.RequestTimeout = flags.timeout
	}
	if set("metrics-addr") {
		cfg.Metrics.Addr = flags.metricsAddr
	}
	if set("no-index") {
		cfg.Crawler.Index = !flags.noIndex
	}
}
