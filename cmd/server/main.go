package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hyperhub/internal/app"
	"hyperhub/internal/bot"
	"hyperhub/internal/config"
	"hyperhub/internal/handler"
	"hyperhub/internal/job"
	"hyperhub/internal/logger"
	"hyperhub/pkg/tracing"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "hyperhub/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initLoggerFunc         = logger.Init
	initTracerFunc         = tracing.InitTracer
	connectCacheFunc       = app.ConnectCache
	newServicesFunc        = app.NewServices
	startTelegramBotFunc   = bot.StartTelegramBot
	newNewsPollerFunc      = job.NewNewsPoller
	startPollerFunc        = func(p *job.NewsPoller, ctx context.Context) { go p.Start(ctx) }
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.New
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           HyperHub API
// @version         1.0
// @description     Market, news, sentiment and on-chain dashboard data for Hyperliquid.

// @host      localhost:5000
// @BasePath  /
func main() {
	_ = loadEnvFunc()

	cfg := loadConfigFunc()
	initLoggerFunc(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx, tracing.DefaultServiceName)
	if err != nil {
		log.Fatal("failed to initialize tracer", "err", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Error("error shutting down tracer provider", "err", err)
		}
	}()

	svc := newServicesFunc(cfg, tracer, connectCacheFunc(ctx, cfg))

	// Only worth polling when there is a cache to keep warm.
	if ttl := svc.News.CacheTTL(); ttl > 0 {
		startPollerFunc(newNewsPollerFunc(tracer, svc.News, ttl), ctx)
	}

	if err := startTelegramBotFunc(cfg.TelegramBotToken, bot.Services{
		Quotes:    svc.Quotes,
		News:      svc.News,
		Sentiment: svc.Sentiment,
	}); err != nil {
		log.Error("Telegram bot not started", "err", err)
	}

	h := newHandlerFunc(tracer, svc.Quotes, svc.News, svc.Sentiment, svc.Placeholders)

	r := newRouterFunc()
	r.Use(
		handler.RequestID(),
		gin.Logger(),
		handler.JSONRecovery(),
		otelgin.Middleware(tracing.DefaultServiceName),
		cors.New(corsConfig(cfg.FrontendURL)),
	)

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Info("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", "err", err)
	}

	log.Info("Server exiting")
}

func corsConfig(frontendURL string) cors.Config {
	origins := []string{"http://localhost:5000", "http://127.0.0.1:5000"}
	if frontendURL != "" {
		origins = append(origins, frontendURL)
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", handler.RequestIDHeader},
		ExposeHeaders:    []string{handler.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}
