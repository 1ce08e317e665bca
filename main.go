package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"pantry/config"
	"pantry/db"
	"pantry/grocery"
	"pantry/live"
	"pantry/metrics"
	"pantry/middleware"
	"pantry/models"
	"pantry/mq"
	"pantry/prices"
	"pantry/ratelim"
	"pantry/rdx"
	"pantry/recipes"
	"pantry/routes"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "main").Logger()

func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// setupRouter wires all routes and the middleware layers around them.
func setupRouter(cfg *config.Config, database *db.DB, cache *rdx.Cache, hub *live.Hub) http.Handler {
	router := httprouter.New()
	router.GET("/health", Index)

	rateLimiter := ratelim.NewRateLimiter()

	routes.AddShoppingRoutes(router, grocery.NewHandler(database), rateLimiter)
	routes.AddPriceRoutes(router, prices.NewHandler(database, cache), rateLimiter)
	routes.AddRecipeRoutes(router, recipes.NewHandler(database), rateLimiter)
	routes.AddLiveRoutes(router, hub)
	routes.AddHomeRoutes(router)
	routes.AddMetricsRoutes(router)

	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSAllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return metrics.Count(middleware.Recover(middleware.RequestLog(middleware.SecurityHeaders(c.Handler(router)))))
}

func setLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	setLogLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	database, err := db.Connect(connectCtx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("connect record store")
	}
	defer func() {
		if err := database.Close(context.Background()); err != nil {
			logger.Error().Err(err).Msg("disconnect record store")
		}
	}()
	logger.Info().Str("db", cfg.MongoDB).Msg("connected to MongoDB")

	cache, err := rdx.Connect(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect redis")
	}
	defer cache.Close()

	hub := live.NewHub(func(ctx context.Context) ([]models.GroceryItem, error) {
		return grocery.FetchAll(ctx, database)
	})
	go hub.Run(ctx)

	// Every shopping-list write triggers a full snapshot push.
	mq.Subscribe(func(idx mq.Index) {
		if idx.EntityType == "shoppingList" {
			hub.Invalidate()
		}
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           setupRouter(cfg, database, cache, hub),
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("server started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}

	logger.Info().Msg("server stopped cleanly")
}
