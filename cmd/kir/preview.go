package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kryon-dev/kir/internal/preview"
)

func previewCmd() *cobra.Command {
	var (
		addr     string
		language string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Serve a live view of a document",
		Long: `Start a local server that watches a document file and serves it.

Endpoints:
  /            Viewer page with live reload
  /document    Canonical JSON encoding
  /source      Regenerated Go source
  /healthz     Liveness check
  /metrics     Prometheus metrics
  /ws          Reload WebSocket

The file is polled for changes; connected viewers refresh
automatically when it is rewritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(args[0], addr, language, verbose)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8090", "Listen address")
	cmd.Flags().StringVar(&language, "language", "", "Override the metadata language tag")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every request")

	return cmd
}

func runPreview(path, addr, language string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srv := preview.New(preview.Config{
		Path:     path,
		Addr:     addr,
		Language: language,
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info("previewing %s on %s", path, addr)
	err := srv.ListenAndServe(ctx)
	if err == context.Canceled {
		return nil
	}
	return err
}
