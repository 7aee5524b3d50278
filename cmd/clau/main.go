// Command clau runs the Clau financial-advisory chatbot backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claubot/clau/internal/advisor"
	"github.com/claubot/clau/internal/config"
	"github.com/claubot/clau/internal/llm/gemini"
	"github.com/claubot/clau/internal/server"
	"github.com/claubot/clau/internal/version"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Load configuration (before logger, so log level/format can be configured).
	v, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Clau backend starting", zap.String("version", version.Short()))

	if f := v.ConfigFileUsed(); f != "" {
		logger.Info("configuration loaded",
			zap.String("component", "config"),
			zap.String("source", f),
		)
	} else {
		logger.Warn("no configuration file found, using defaults",
			zap.String("component", "config"),
		)
	}

	var geminiCfg gemini.Config
	if err := v.UnmarshalKey("gemini", &geminiCfg); err != nil {
		logger.Fatal("invalid gemini configuration", zap.Error(err))
	}

	client := gemini.New(geminiCfg, v.GetString("gemini.api_key"), logger.Named("gemini"))
	if !client.Configured() {
		logger.Warn("GEMINI_API_KEY not set, /ask will fail until it is configured")
	}
	logger.Info("gemini client created",
		zap.String("component", "gemini"),
		zap.String("model", client.Model()),
	)

	handler := advisor.NewHandler(client, v.GetInt("advisor.wrap_width"), logger.Named("advisor"))

	ready := func(context.Context) error {
		if !client.Configured() {
			return fmt.Errorf("gemini api key not configured")
		}
		return nil
	}

	addr := fmt.Sprintf("%s:%d", v.GetString("server.host"), v.GetInt("server.port"))
	srv := server.New(addr, logger.Named("server"), ready, v.GetBool("server.dev_mode"), handler)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case s := <-sig:
		logger.Info("shutdown signal received", zap.String("signal", s.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}

	logger.Info("Clau backend stopped")
}
