package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/tariquesani/aruuz-nigar/internal/cache"
	"github.com/tariquesani/aruuz-nigar/internal/catalog"
	"github.com/tariquesani/aruuz-nigar/internal/config"
	"github.com/tariquesani/aruuz-nigar/internal/httpapi"
)

var (
	servePort  int
	serveDebug bool
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP scansion API (POST /api/islah, POST /api/meter/dominant)",
		RunE:  runServe,
	}
	cmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	cmd.Flags().BoolVar(&serveDebug, "debug", false, "enable gin debug mode and request logging")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	tpOpts := []sdktrace.TracerProviderOption{}
	if serveDebug {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("setting up stdout trace exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithSyncer(exporter))
	}
	tp := sdktrace.NewTracerProvider(tpOpts...)
	otel.SetTracerProvider(tp)
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			slog.Warn("tracer provider shutdown failed", "error", err)
		}
	}()

	if serveDebug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	cat := catalog.BuildCatalog()
	defaults, err := config.Defaults()
	if err != nil {
		return fmt.Errorf("loading engine defaults: %w", err)
	}

	var memo *cache.Cache
	if defaults.CacheEnabled {
		memo, err = cache.Open(defaults.CacheDir, logger)
		if err != nil {
			slog.Warn("cache unavailable, continuing without memoization", "dir", defaults.CacheDir, "error", err)
			memo = nil
		}
	}

	handlers := httpapi.NewHandlers(cat, defaults, memo, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("aruuz-nigar"))
	if serveDebug {
		router.Use(gin.Logger())
	}

	root := router.Group("/")
	httpapi.RegisterRoutes(root, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		slog.Info("shutting down aruuz-nigar server")
		if memo != nil {
			if err := memo.Close(); err != nil {
				slog.Warn("cache close failed", "error", err)
			}
		}
		os.Exit(0)
	}()

	addr := fmt.Sprintf(":%d", servePort)
	slog.Info("starting aruuz-nigar server", "address", addr)
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
