package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"alpha-radar/internal/adapters/ai"
	"alpha-radar/internal/adapters/background"
	"alpha-radar/internal/adapters/cache"
	"alpha-radar/internal/adapters/sentiment"
	"alpha-radar/internal/adapters/source"
	"alpha-radar/internal/adapters/web"
	"alpha-radar/internal/usecases"
	"alpha-radar/pkg/log"
	"alpha-radar/pkg/log/transporters"
)

const (
	defaultModel       = "gemini-2.0-flash"
	searchTimeout      = 15 * time.Second
	shutdownTimeout    = 10 * time.Second
	scansPerMinute     = 10
	selectorConfigPath = "config/selectors.yaml"
	backgroundPath     = "config/background.md"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := log.New(logLevel(), transporters.NewStdout())
	log.SetDefault(logger)
	defer logger.Close()

	ctx := context.Background()

	forceSynthetic := envBool("USE_SYNTHETIC_DATA")
	forceScraper := envBool("USE_SCRAPER")
	bearerToken := os.Getenv("X_BEARER_TOKEN")

	// The browser is only started when the scraper can actually be picked.
	var pool *source.BrowserPool
	var scraper source.Adapter
	if !forceSynthetic {
		selectors, err := source.LoadSelectors(selectorConfigPath)
		if err != nil {
			log.GlobalFatal("failed to load selectors", "path", selectorConfigPath, "error", err)
		}
		pool, err = source.NewBrowserPool(nil)
		if err != nil {
			log.GlobalFatal("failed to start browser", "error", err)
		}
		defer pool.Close()
		scraper = source.NewSearchScraper(pool, selectors, scrapePacing())
	}

	var live source.Adapter
	if bearerToken != "" {
		live = source.NewLiveAPI(bearerToken, &http.Client{Timeout: searchTimeout})
	}
	synthetic := source.NewSynthetic(time.Now().UnixNano())

	adapters := source.Select(source.SelectOptions{
		ForceSynthetic: forceSynthetic,
		ForceScraper:   forceScraper,
		HasLiveCreds:   bearerToken != "",
	}, live, scraper, synthetic)
	chain := source.NewChain(searchTimeout, adapters...)

	syntheticOnly := forceSynthetic || (bearerToken == "" && !forceScraper)
	log.GlobalInfo("post sources configured",
		"synthetic_only", syntheticOnly, "live_api", live != nil, "scraper", scraper != nil)

	var llm ai.Completion
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = defaultModel
		}
		client, err := ai.NewGeminiClient(ctx, apiKey, model)
		if err != nil {
			log.GlobalFatal("failed to create gemini client", "error", err)
		}
		llm = client
		log.GlobalInfo("ai analysis enabled", "model", model)
	} else {
		log.GlobalWarn("GEMINI_API_KEY not set, running with lexical sentiment only")
	}

	reportCache := cache.NewReportCache(cacheTTL())
	backgroundDoc := background.NewProvider(backgroundPath)

	discoverUC := usecases.NewDiscoverPostsUseCase(chain, 0)
	sentimentUC := usecases.NewAnalyzeSentimentUseCase(sentiment.NewScorer(), llm)
	deepDiveUC := usecases.NewDeepDiveUseCase(llm, backgroundDoc, syntheticOnly)
	scanUC := usecases.NewScanUseCase(discoverUC, sentimentUC, deepDiveUC, reportCache, llm, syntheticOnly)

	handlers := web.NewHandlers(scanUC)
	limiter := web.NewScanLimiter(scansPerMinute, time.Minute)

	app := fiber.New(fiber.Config{
		AppName:               "Alpha Radar",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New(web.RequestIDConfig()))
	app.Use(web.RequestIDToContextMiddleware())
	app.Use(web.RequestLoggerMiddleware())

	web.SetupRoutes(app, handlers, limiter)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	go func() {
		log.GlobalInfo("server listening", "port", port)
		if err := app.Listen(":" + port); err != nil {
			log.GlobalFatal("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.GlobalInfo("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.GlobalError("shutdown error", "error", err)
	}
}

func logLevel() log.Level {
	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return log.Info
	}
	level, err := log.ParseLevel(raw)
	if err != nil {
		return log.Info
	}
	return level
}

// cacheTTL returns the report cache TTL from the environment or default.
func cacheTTL() time.Duration {
	raw := os.Getenv("CACHE_TTL_MINUTES")
	if raw == "" {
		return 5 * time.Minute
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		log.GlobalWarn("invalid CACHE_TTL_MINUTES, using default", "value", raw)
		return 5 * time.Minute
	}
	return time.Duration(minutes) * time.Minute
}

// scrapePacing returns the gap between scraper searches, overridable in
// seconds via SCRAPE_PACING_SECONDS.
func scrapePacing() time.Duration {
	raw := os.Getenv("SCRAPE_PACING_SECONDS")
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
