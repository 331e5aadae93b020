package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/rss-readme/app/api"
	"github.com/lysyi3m/rss-readme/app/cfg"
	"github.com/lysyi3m/rss-readme/app/feed"
	"github.com/lysyi3m/rss-readme/app/readme"
)

func main() {
	appCfg, err := cfg.Load(os.Args[1:])
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		return
	}

	setupLogger(appCfg.Debug)

	slog.Info("Starting RSS Readme", "version", appCfg.Version)

	profile, err := feed.LoadProfile(appCfg.ProfileFile)
	if err != nil {
		slog.Error("Failed to load profile", "path", appCfg.ProfileFile, "error", err)
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: appCfg.FetchTimeout}
	fetcher := feed.NewFetcher(httpClient, feed.NewParser(), appCfg.UserAgent, appCfg.FetchTimeout)

	assembler := readme.NewAssembler(fetcher, readme.NewMarkdownRenderer(), readme.NewFileWriter(), profile, readme.Options{
		BlogFeedURL:   appCfg.BlogFeedURL,
		WeatherURL:    appCfg.WeatherURL(),
		WebsiteURL:    appCfg.WebsiteURL,
		BlogPostLimit: appCfg.BlogPostLimit,
		OutputPath:    appCfg.OutputPath,
		Location:      appCfg.Location,
	})

	if appCfg.Serve {
		if err := serve(appCfg, assembler); err != nil {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := assembler.Run(ctx); err != nil {
		slog.Error("Failed to generate document", "path", appCfg.OutputPath, "error", err)
		stop()
		os.Exit(1)
	}
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func serve(appCfg *cfg.Cfg, assembler *readme.Assembler) error {
	server := api.NewServer(api.NewHandler(assembler, appCfg.Version))

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2*appCfg.FetchTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting preview server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig)
	case err := <-serverErrChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	slog.Info("Preview server stopped")

	return nil
}
