package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/newsninja/newsninja/internal/generator"
	"github.com/newsninja/newsninja/internal/pipeline"
	"github.com/newsninja/newsninja/internal/research"
	"github.com/newsninja/newsninja/internal/storage/pg"
	"github.com/newsninja/newsninja/internal/trends"
	"github.com/newsninja/newsninja/pkg/config/env"
	"github.com/spf13/cobra"
)

const (
	defaultCountryCount     = 5
	defaultTrendsPerCountry = 3
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "generate [countries] [trendsPerCountry]",
	Short: "Generate trend-driven news articles",
	Long: "Walks trending topics per country, researches each one on the web and " +
		"writes a localized article into the database via a local LLM.",
	Args: cobra.MaximumNArgs(2),
	RunE: run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML pipeline config")
}

func run(cmd *cobra.Command, args []string) error {
	slog.SetLogLoggerLevel(logLevel())

	if err := env.LoadDotEnv(os.Getenv("APP_ENV"), "cmd/generate/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	countryCount, trendsPerCountry, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := LoadPipelineConfig(configPath)
	if err != nil {
		return err
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: dbURL})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := pg.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("apply database schema: %w", err)
	}

	gen, err := generator.NewFromEnv()
	if err != nil {
		return err
	}

	opts := []pipeline.Option{
		pipeline.WithTrendStorer(pg.NewTrendStorer(pool)),
	}
	if cfg.Delays.TopicSeconds != nil || cfg.Delays.CountrySeconds != nil {
		opts = append(opts, pipeline.WithDelays(
			cfg.TopicDelay(2*time.Second),
			cfg.CountryDelay(3*time.Second),
		))
	}

	serp := trends.NewSerpAPIProviderFromEnv()

	trendSource, err := buildTrendSource(cfg, serp)
	if err != nil {
		return err
	}
	researchSource, err := buildResearchSource(cfg)
	if err != nil {
		return err
	}

	o := pipeline.NewOrchestrator(
		trendSource,
		researchSource,
		gen,
		pg.NewArticleStorer(pool),
		opts...,
	)

	countries := cfg.CountryList()
	if countryCount < len(countries) {
		countries = countries[:countryCount]
	}

	stats, runErr := o.Run(ctx, countries, trendsPerCountry)
	stats.LogSummary()
	printSummary(cmd, stats, serp)

	return runErr
}

func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseArgs(args []string) (int, int, error) {
	countryCount := defaultCountryCount
	trendsPerCountry := defaultTrendsPerCountry

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("countries must be a positive number, got %q", args[0])
		}
		countryCount = n
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return 0, 0, fmt.Errorf("trends per country must be a positive number, got %q", args[1])
		}
		trendsPerCountry = n
	}

	return countryCount, trendsPerCountry, nil
}

func buildTrendSource(cfg *PipelineConfig, serp *trends.SerpAPIProvider) (*trends.Source, error) {
	names := cfg.TrendProviders
	if len(names) == 0 {
		names = []string{"serpapi"}
	}

	var providers []trends.Provider
	for _, name := range names {
		switch name {
		case "serpapi":
			if serp != nil {
				providers = append(providers, serp)
			} else {
				slog.Warn("SERPAPI_KEY not set, skipping serpapi trend provider")
			}
		case "mock":
			// The synthetic catalog is always the tail of the chain;
			// listing it explicitly is allowed but changes nothing.
		default:
			return nil, fmt.Errorf("unknown trend provider %q", name)
		}
	}

	return trends.NewSource(trends.WithProviders(providers...)), nil
}

func buildResearchSource(cfg *PipelineConfig) (*research.Source, error) {
	names := cfg.SearchProviders
	if len(names) == 0 {
		names = []string{"google", "duckduckgo", "google-news"}
	}

	var providers []research.SearchProvider
	for _, name := range names {
		switch name {
		case "google":
			if p := research.NewGoogleCSEProviderFromEnv(); p != nil {
				providers = append(providers, p)
			} else {
				slog.Warn("Google CSE credentials not set, skipping google search provider")
			}
		case "duckduckgo":
			providers = append(providers, research.NewDuckDuckGoProvider())
		case "google-news":
			providers = append(providers, research.NewGoogleNewsProvider())
		default:
			return nil, fmt.Errorf("unknown search provider %q", name)
		}
	}

	return research.NewSource(research.WithProviders(providers...)), nil
}

func printSummary(cmd *cobra.Command, stats *pipeline.RunStats, serp *trends.SerpAPIProvider) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run summary")
	fmt.Fprintf(out, "  Duration:           %s\n", stats.Duration.Round(time.Second))
	fmt.Fprintf(out, "  Countries:          %d\n", stats.CountriesProcessed)
	fmt.Fprintf(out, "  Topics attempted:   %d\n", stats.TopicsAttempted)
	fmt.Fprintf(out, "  Articles published: %d\n", stats.ArticlesSucceeded)
	fmt.Fprintf(out, "  Articles failed:    %d\n", stats.ArticlesFailed)
	fmt.Fprintf(out, "  Searches ok/failed: %d/%d\n", stats.SearchesSucceeded, stats.SearchesFailed)
	fmt.Fprintf(out, "  Trends real/mock:   %d/%d\n", stats.RealTrends, stats.MockTrends)
	if serp != nil {
		fmt.Fprintf(out, "  SerpAPI quota left: %d/%d\n", serp.Quota(), trends.SerpMonthlyQuota)
	}
}
