package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/newsninja/newsninja/internal/generator"
	"github.com/newsninja/newsninja/internal/research"
	"github.com/newsninja/newsninja/internal/router"
	"github.com/newsninja/newsninja/internal/server"
	"github.com/newsninja/newsninja/internal/storage/pg"
	pkgserver "github.com/newsninja/newsninja/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelInfo)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appCfg, err := LoadAppConfig()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	gen, err := generator.NewFromEnv()
	if err != nil {
		slog.Error("Failed to create generator", "error", err)
		os.Exit(1)
	}
	ollamaChecker, err := generator.NewOllamaClient(ollamaURL())
	if err != nil {
		slog.Error("Failed to create ollama health client", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg, pkgserver.NewOkHealthChecker()).
		SetupMiddlewares().
		SetupErrorHandler()

	pool, err := pg.NewConnectionPool(s.Context(), pg.PoolConfig{ConnStr: appCfg.DatabaseURL})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pg.EnsureSchema(s.Context(), pool); err != nil {
		slog.Error("Failed to apply database schema", "error", err)
		os.Exit(1)
	}

	s.SetupHealthChecks("/health", map[string]pkgserver.HealthChecker{
		"database": pg.NewHealthChecker(pool),
		"ollama":   ollamaChecker,
	})

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "News Ninja API is running")
	})

	researchSource := buildResearchSource()

	router.NewArticlesRouter(s.Echo, pg.NewArticleReader(pool), pg.NewArticleStorer(pool), gen, researchSource).Bind()
	router.NewTrendsRouter(s.Echo, pg.NewTrendReader(pool)).Bind()
	router.NewAnalyticsRouter(s.Echo, pg.NewViewTracker(pool), pg.NewAnalyticsReader(pool)).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func buildResearchSource() *research.Source {
	var providers []research.SearchProvider
	if p := research.NewGoogleCSEProviderFromEnv(); p != nil {
		providers = append(providers, p)
	}
	providers = append(providers,
		research.NewDuckDuckGoProvider(),
		research.NewGoogleNewsProvider(),
	)

	return research.NewSource(research.WithProviders(providers...))
}

func ollamaURL() string {
	if url := os.Getenv("OLLAMA_URL"); url != "" {
		return url
	}
	return "http://localhost:11434"
}
