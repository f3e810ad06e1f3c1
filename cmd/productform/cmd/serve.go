package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the product form API",
	Long: `Start the HTTP API.

Endpoints:
  POST /products           submit a form (urlencoded, multipart or JSON)
  POST /products/validate  validate current values and touched fields
  GET  /openapi.json       API description

Settings come from PRODUCTFORM_* environment variables or a .env file.
Flags override them.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr   string
	serveSchema string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides PRODUCTFORM_ADDR)")
	serveCmd.Flags().StringVar(&serveSchema, "schema", "", "YAML schema for submissions (overrides PRODUCTFORM_SCHEMA_FILE)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		printError("load config", err)
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}
	if cmd.Flags().Changed("schema") {
		cfg.SchemaFile = serveSchema
	}

	opts := server.Options{Logger: log}
	if cfg.SchemaFile != "" {
		schema, err := loadSchemaFile(cfg.SchemaFile)
		if err != nil {
			printError("load schema", err)
			return err
		}
		opts.Submit = &schema
		log.Info("loaded submission schema", slog.String("file", cfg.SchemaFile), slog.Int("fields", schema.Len()))
	}

	handler, err := server.New(opts)
	if err != nil {
		printError("build server", err)
		return err
	}

	srv := &http.Server{Addr: cfg.Addr, Handler: handler}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", slog.Any("error", err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func loadSchemaFile(path string) (v.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return v.Schema{}, err
	}
	defer f.Close()
	return v.LoadSchema(f, v.DefaultPredicates())
}
