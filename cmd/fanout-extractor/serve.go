// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fanout-extractor/internal/dataforseo"
	"github.com/pdiddy/fanout-extractor/internal/logging"
	"github.com/pdiddy/fanout-extractor/internal/web"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser form for keyword batches",
	Long: `Serve starts an HTTP server with a form for credentials, keywords,
location, and language. Results render on the page and the last batch can be
downloaded as TXT, CSV, JSON, or YAML. Nothing is persisted: each submission
replaces the previous batch.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", defaultAddr, "listen address")
	if err := viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := appConfig()
	log := logging.WithService(logger, "web")

	gin.SetMode(gin.ReleaseMode)
	client := dataforseo.NewClient(cfg.API, cfg.Search, log)
	handler := web.NewHandler(client, cfg.Search, cfg.API.Credentials, log)

	srv := &http.Server{
		Addr:              cfg.Serve.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Listening on %s\n", cfg.Serve.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
