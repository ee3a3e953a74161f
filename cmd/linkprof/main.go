// Command linkprof extracts one LinkedIn profile through an authenticated
// Chrome session and prints the aggregate as JSON.
//
// Usage:
//
//	linkprof -url https://www.linkedin.com/in/example          # token from $LI_AT
//	linkprof -url ... -cookie <li_at>                          # token on the command line
//	linkprof -url ... -config linkprof.yaml                    # settings from YAML
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hazyhaar/linkprof"
)

func main() {
	profileURL := flag.String("url", "", "profile URL to extract")
	configPath := flag.String("config", "", "path to linkprof.yaml config file")
	cookie := flag.String("cookie", "", "li_at session cookie (default: $LI_AT)")
	timeout := flag.Duration("timeout", 0, "navigation timeout (default 10s)")
	headful := flag.Bool("headful", false, "run Chrome with a visible window")
	keepAlive := flag.Bool("keep-alive", false, "leave the browser running after the run")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *configPath, *profileURL, *cookie, *timeout, *headful, *keepAlive); err != nil {
		logger.Error("linkprof: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, configPath, profileURL, cookie string,
	timeout time.Duration, headful, keepAlive bool) error {

	if profileURL == "" {
		fmt.Fprintln(os.Stderr, "usage: linkprof -url <profile-url> [-config <file>] [-cookie <li_at>]")
		os.Exit(1)
	}

	cfg, err := buildConfig(configPath, cookie, timeout, headful, keepAlive)
	if err != nil {
		return err
	}
	cfg.Logger = logger

	scraper, err := linkprof.New(*cfg)
	if err != nil {
		return err
	}
	defer scraper.Close()

	if err := scraper.Setup(ctx); err != nil {
		return err
	}

	result, err := scraper.Run(ctx, profileURL)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
	return nil
}

// buildConfig layers the config file (when given) under the command-line
// flags; flags win.
func buildConfig(configPath, cookie string, timeout time.Duration, headful, keepAlive bool) (*linkprof.Config, error) {
	cfg := &linkprof.Config{}
	if configPath != "" {
		loaded, err := linkprof.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if cookie != "" {
		cfg.SessionToken = cookie
	}
	if cfg.SessionToken == "" {
		cfg.SessionToken = os.Getenv("LI_AT")
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	if headful {
		cfg.Headful = true
	}
	if keepAlive {
		cfg.KeepAlive = true
	}
	return cfg, nil
}
