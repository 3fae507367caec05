package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davetashner/textinfo/internal/httpapi"
	"github.com/davetashner/textinfo/internal/pipeline"
)

// DefaultAddr is where serve listens unless --addr says otherwise.
const DefaultAddr = "127.0.0.1:8080"

var (
	serveAddr      string
	serveCacheSize int
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the readability pipeline over HTTP:
  POST /v1/analyze    score the comments of a JSON {text, language, options} body
  GET  /v1/languages  list supported languages
  GET  /healthz       liveness check

The server shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", DefaultAddr, "listen address")
	serveCmd.Flags().IntVar(&serveCacheSize, "cache-size", pipeline.DefaultCacheSize, "compiled pattern sets kept in memory")
}

func runServe(cmd *cobra.Command, _ []string) error {
	engine, err := pipeline.NewEngine(serveCacheSize)
	if err != nil {
		return exitError(ExitInvalidArgs, "textinfo: %v", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := httpapi.NewServer(engine, Version).ListenAndServe(ctx, serveAddr); err != nil {
		return exitError(ExitTotalFailure, "textinfo: %v", err)
	}
	return nil
}
