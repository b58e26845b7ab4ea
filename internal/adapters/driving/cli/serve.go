package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bijilboby/TQuery/internal/adapters/driven/config/file"
	"github.com/bijilboby/TQuery/internal/adapters/driving/httpapi"
	"github.com/bijilboby/TQuery/internal/logger"
)

const defaultServeAddr = ":8010"

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Start the HTTP API server.

Questions are accepted as POST /ask with a JSON body {"query": "..."} and
answered with {"answer": "..."}. The OpenAPI document is served at /openapi.json.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, else "+defaultServeAddr+")")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := initPipeline(); err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = configStore.GetString(file.KeyServeAddr)
	}
	if addr == "" {
		addr = defaultServeAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Reload prompts when the user edits the files on disk.
	go func() {
		if err := promptStore.Watch(ctx); err != nil {
			logger.Warn("Prompt watcher stopped: %v", err)
		}
	}()

	srv := &http.Server{
		Addr:    addr,
		Handler: httpapi.New(httpapi.Config{Ask: askService}),
	}

	errCh := make(chan error, 1)
	go func() {
		cmd.Printf("Listening on %s\n", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	cmd.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
