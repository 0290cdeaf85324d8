package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/khaledsamy810-cmd/pricelist/browser"
	"github.com/khaledsamy810-cmd/pricelist/config"
	"github.com/khaledsamy810-cmd/pricelist/models"
	"github.com/khaledsamy810-cmd/pricelist/scraper"
	"github.com/khaledsamy810-cmd/pricelist/sheet"
	"github.com/khaledsamy810-cmd/pricelist/stores"
)

func main() {
	// Missing .env is fine; real deployments use plain env vars.
	_ = godotenv.Load()

	defaultCfg := config.DefaultConfig()
	sheetDefault := defaultCfg.SpreadsheetName
	if value, ok := config.EnvString("PRICELIST_SHEET"); ok {
		sheetDefault = value
	}
	snapshotDefault := defaultCfg.SnapshotFile
	if value, ok := config.EnvString("PRICELIST_SNAPSHOT"); ok {
		snapshotDefault = value
	}
	metricsDefault := defaultCfg.MetricsAddr
	if value, ok := config.EnvString("PRICELIST_METRICS_ADDR"); ok {
		metricsDefault = value
	}
	storeDelayDefault := int(defaultCfg.StoreDelay / time.Millisecond)
	if value, ok, err := config.EnvInt("PRICELIST_STORE_DELAY"); err != nil {
		fmt.Fprintf(os.Stderr, "invalid PRICELIST_STORE_DELAY: %v\n", err)
		os.Exit(1)
	} else if ok {
		storeDelayDefault = value
	}

	sheetName := flag.String("sheet", sheetDefault, "Spreadsheet name to open or create")
	credentials := flag.String("credentials", "", "Service account credentials file (defaults to GOOGLE_APPLICATION_CREDENTIALS)")
	snapshotFile := flag.String("snapshot", snapshotDefault, "Local CSV snapshot path (empty disables)")
	headless := flag.Bool("headless", defaultCfg.Headless, "Run Chromium headless")
	browserBin := flag.String("browser-bin", "", "Chromium binary path (empty auto-detects)")
	navTimeoutMs := flag.Int("nav-timeout", int(defaultCfg.NavigationTimeout/time.Millisecond), "Per-page navigation timeout (milliseconds)")
	settleMs := flag.Int("settle", int(defaultCfg.SettleDelay/time.Millisecond), "Post-load settle delay (milliseconds)")
	storeDelayMs := flag.Int("store-delay", storeDelayDefault, "Delay between store lookups (milliseconds)")
	metricsAddr := flag.String("metrics-addr", metricsDefault, "Prometheus metrics listen address (e.g. :9090)")
	verbose := flag.Bool("v", false, "Enable verbose logging")

	flag.Parse()

	logger, level := newLogger(*verbose)
	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(level.Level())

	cfg := config.DefaultConfig()
	cfg.SpreadsheetName = *sheetName
	cfg.CredentialsFile = *credentials
	cfg.SnapshotFile = *snapshotFile
	cfg.Headless = *headless
	cfg.BrowserBin = *browserBin
	cfg.NavigationTimeout = time.Duration(*navTimeoutMs) * time.Millisecond
	cfg.SettleDelay = time.Duration(*settleMs) * time.Millisecond
	cfg.StoreDelay = time.Duration(*storeDelayMs) * time.Millisecond
	cfg.MetricsAddr = *metricsAddr
	cfg.Verbose = *verbose

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	credentialsFile, err := cfg.ResolveCredentials()
	if err != nil {
		slog.Error("resolving credentials", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		slog.Info("shutdown signal received, finishing current row")
	}()

	slog.Info("opening spreadsheet", slog.String("name", cfg.SpreadsheetName))
	backend, err := sheet.Dial(ctx, credentialsFile, cfg.SpreadsheetName)
	if err != nil {
		slog.Error("opening spreadsheet", slog.Any("error", err))
		os.Exit(1)
	}

	pricelist := sheet.NewPricelist(backend, stores.Sellers())
	if cfg.SnapshotFile != "" {
		snapshot, err := sheet.NewSnapshot(cfg.SnapshotFile, pricelist.Header())
		if err != nil {
			slog.Error("creating snapshot", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := snapshot.Close(); err != nil {
				slog.Error("close snapshot", slog.Any("error", err))
			}
		}()
		pricelist.AttachSnapshot(snapshot)
	}

	b, err := browser.Launch(browser.Options{
		Headless:          cfg.Headless,
		Bin:               cfg.BrowserBin,
		UserAgent:         cfg.UserAgent,
		NavigationTimeout: cfg.NavigationTimeout,
	})
	if err != nil {
		slog.Error("launching browser", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := b.Close(); err != nil {
			slog.Error("close browser", slog.Any("error", err))
		}
	}()

	s := scraper.New(cfg, stores.Registry(), pricelist, browserPager{b})
	s.Metrics = scraper.NewMetrics()

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		metricsServer = &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{}),
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", slog.Any("error", err))
			}
		}()
		slog.Info("metrics server enabled", slog.String("addr", cfg.MetricsAddr))
	}

	result, err := s.Run(ctx)
	if err != nil {
		slog.Error("pricing run failed", slog.Any("error", err))
		os.Exit(1)
	}

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("metrics server shutdown failed", slog.Any("error", err))
		}
		cancel()
	}

	slog.Info("sheet updated",
		slog.String("spreadsheet", cfg.SpreadsheetName),
		slog.Int("rows", result.RowsWritten),
	)
	printSummary(result)
}

// browserPager adapts the browser to the scraper's page source.
type browserPager struct {
	b *browser.Browser
}

func (p browserPager) NewPage(ctx context.Context) (scraper.Page, error) {
	return p.b.NewPage(ctx)
}

func printSummary(result *models.RunResult) {
	separator := "--------------------------------------------------"
	fmt.Println("\n" + separator)
	fmt.Println("Pricing run complete")
	fmt.Printf("  Products:      %d\n", result.Products)
	fmt.Printf("  Rows written:  %d\n", result.RowsWritten)
	fmt.Printf("  Skipped:       %d\n", result.ProductErrors)
	fmt.Printf("  Lookups:       %d\n", result.Lookups)
	fmt.Printf("  Misses:        %d\n", result.Misses)
	fmt.Printf("  Duration:      %v\n", result.EndTime.Sub(result.StartTime).Round(time.Second))
	fmt.Println(separator)
}

func newLogger(verbose bool) (*slog.Logger, *slog.LevelVar) {
	level := &slog.LevelVar{}
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if isTerminal(os.Stdout) {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler), level
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
