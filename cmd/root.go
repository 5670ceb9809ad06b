package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"geninv/internal/logger"
	"geninv/internal/store"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "geninv",
	Short: "Generate synthetic invoice data",
	Long: `geninv generates synthetic business records (postal addresses, companies,
invoice line items) with an LLM, stores them in a local SQLite database with
deduplication, and composes invoices rendered to PDF.

The generated data is meant for testing invoice-processing pipelines.`,
	Version: version,
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}

// commandContext returns a context canceled on SIGINT/SIGTERM.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// openStore opens the database and reports a usable error on failure.
func openStore(path string) (*store.Store, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return st, nil
}
