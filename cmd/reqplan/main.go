// Command reqplan prints the request that would be sent after merging
// defaults from the environment with command-line overrides. It performs no I/O
// besides printing.
package main

import (
	"fmt"
	"io"
	"legacy-http/http"
	"legacy-http/internal/config"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := setupLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up logging:", err)
		os.Exit(1)
	}

	args, err := ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	req, err := plan(cfg, args)
	if err != nil {
		slog.Error("failed to plan request", "error", err)
		os.Exit(1)
	}

	if err := printRequest(os.Stdout, req); err != nil {
		slog.Error("failed to print request", "error", err)
		os.Exit(1)
	}
}

func plan(cfg *config.Config, args *Args) (*http.Request, error) {
	defaults, err := cfg.RequestOptions()
	if err != nil {
		return nil, err
	}

	opts := http.BaseRequestOptions().Merge(&defaults).Merge(&args.Options)
	slog.Debug("merged request options", "url", *opts.URL, "method", *opts.Method)

	return http.NewRequest(opts)
}

func printRequest(w io.Writer, req *http.Request) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", req.Method, req.URL); err != nil {
		return err
	}
	if req.WithCredentials {
		if _, err := fmt.Fprintln(w, "# with credentials"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, req.Headers.String()); err != nil {
		return err
	}

	payload, err := req.Payload()
	if err != nil {
		return err
	}
	switch p := payload.(type) {
	case nil:
		return nil
	case string:
		_, err = fmt.Fprintf(w, "\n%s\n", p)
	case []byte:
		_, err = fmt.Fprintf(w, "\n%s\n", p)
	default:
		_, err = fmt.Fprintf(w, "\n%v\n", p)
	}
	return err
}

func setupLogger(level, filename string) error {
	var out io.Writer = os.Stderr

	if filename != "" {
		if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
			return err
		}

		logWriter := &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     14,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stderr, logWriter)
	}

	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(h))
	return nil
}
