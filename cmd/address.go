package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"geninv/internal/config"
	"geninv/internal/generate"
	"geninv/internal/logger"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Generate or list synthetic Canadian postal addresses",
	Long: `Generate synthetic Canadian postal addresses with the configured LLM and
store the non-duplicate ones, or list the addresses already stored.

Each --generate run requests batches of 5 addresses. Addresses already in the
database are passed to the model as an exclusion list; any duplicates it
produces anyway are rejected by the database's unique constraint and counted.`,
	Example: `  # Generate 3 batches of addresses
  geninv address --generate 3

  # List stored addresses
  geninv address --list`,
	RunE: runAddress,
}

func init() {
	rootCmd.AddCommand(addressCmd)

	addressCmd.Flags().IntP("generate", "g", 0, "Number of address batches to generate")
	addressCmd.Flags().Bool("list", false, "List stored addresses")
	addressCmd.MarkFlagsMutuallyExclusive("generate", "list")
	addressCmd.MarkFlagsOneRequired("generate", "list")
}

func runAddress(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("address")
	cfg := config.Load()

	batches, _ := cmd.Flags().GetInt("generate")
	list, _ := cmd.Flags().GetBool("list")

	ctx, cancel := commandContext()
	defer cancel()

	st, err := openStore(cfg.DBFile)
	if err != nil {
		return err
	}
	defer st.Close()

	if list {
		rows, err := st.ListAddresses(ctx)
		if err != nil {
			fmt.Printf("Database error: %v\n", err)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ADDRESS LINE 1\tADDRESS LINE 2\tCITY\tPROVINCE\tPOSTAL CODE\tCOUNTRY")
		for _, a := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				a.AddressLine1, a.AddressLine2, a.City, a.Province, a.PostalCode, a.Country)
		}
		return w.Flush()
	}

	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}
	if err := st.CreateSchema(ctx); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	gen := generate.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	for i := 1; i <= batches; i++ {
		fmt.Printf("Generating address batch %d out of %d\n", i, batches)
		report, err := generate.GenerateAddresses(ctx, st, gen, generate.DefaultBatchSize)
		if err != nil {
			log.Error().Err(err).Msg("Address batch failed")
			fmt.Printf("Generation failed: %v\n", err)
			continue
		}
		fmt.Printf("New addresses: %d, duplicate addresses: %d\n", report.New, report.Duplicates)
	}

	return nil
}
