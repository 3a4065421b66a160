package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"hyperhub/internal/app"
	"hyperhub/internal/config"
	"hyperhub/internal/logger"
	"hyperhub/pkg/tracing"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	loadEnvFunc       = godotenv.Load
	loadConfigFunc    = config.Load
	initLoggerFunc    = logger.Init
	initTracerFunc    = tracing.InitTracer
	connectCacheFunc  = app.ConnectCache
	newServicesFunc   = app.NewServices
	runStdioFunc      = func(ctx context.Context, server *mcp.Server) error { return server.Run(ctx, &mcp.StdioTransport{}) }
	startHTTPFunc     = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPFunc  = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
	setupSignalNotify = signal.Notify
	waitForSignalFunc = func(quit <-chan os.Signal) { <-quit }
)

func main() {
	_ = loadEnvFunc()
	cfg := loadConfigFunc()
	// stdout carries the stdio transport, so logs stay on stderr.
	initLoggerFunc(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx, tracing.DefaultServiceName+"-mcp")
	if err != nil {
		log.Fatal("failed to initialize tracer", "err", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Error("error shutting down tracer provider", "err", err)
		}
	}()

	svc := newServicesFunc(cfg, tracer, connectCacheFunc(ctx, cfg))
	server := newMCPServer(toolServices{
		quotes:       svc.Quotes,
		news:         svc.News,
		sentiment:    svc.Sentiment,
		placeholders: svc.Placeholders,
	})

	if cfg.MCPTransport == "http" {
		serveHTTP(ctx, cancel, server, cfg)
		return
	}

	log.Info("MCP server running on stdio")
	if err := runStdioFunc(ctx, server); err != nil && ctx.Err() == nil {
		log.Error("MCP stdio session ended", "err", err)
	}
}

func serveHTTP(ctx context.Context, cancel context.CancelFunc, server *mcp.Server, cfg *config.Config) {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.MCPHTTPBind, strconv.Itoa(cfg.MCPHTTPPort)),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		log.Info("MCP HTTP server listening", "addr", srv.Addr)
		if err := startHTTPFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen failed", "err", fmt.Errorf("mcp http: %w", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Info("Shutting down MCP server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := shutdownHTTPFunc(srv, shutdownCtx); err != nil {
		log.Error("MCP server shutdown error", "err", err)
	}
	log.Info("MCP server exited")
}
