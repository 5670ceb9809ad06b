package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"geninv/internal/config"
	"geninv/internal/generate"
	"geninv/internal/logger"
	"geninv/pkg/models"
)

var invoiceItemCmd = &cobra.Command{
	Use:     "invoice-item",
	Aliases: []string{"invoice_item"},
	Short:   "Generate or list synthetic invoice line items",
	Long: `Generate synthetic computer equipment line items with the configured LLM
and store the non-duplicate ones, or list the line items already stored.`,
	Example: `  # Generate 4 batches of line items
  geninv invoice-item --generate 4

  # List stored line items
  geninv invoice-item --list`,
	RunE: runInvoiceItem,
}

func init() {
	rootCmd.AddCommand(invoiceItemCmd)

	invoiceItemCmd.Flags().IntP("generate", "g", 0, "Number of line item batches to generate")
	invoiceItemCmd.Flags().Bool("list", false, "List stored line items")
	invoiceItemCmd.MarkFlagsMutuallyExclusive("generate", "list")
	invoiceItemCmd.MarkFlagsOneRequired("generate", "list")
}

func runInvoiceItem(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("invoice-item")
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
		rows, err := st.ListInvoiceItems(ctx)
		if err != nil {
			fmt.Printf("Database error: %v\n", err)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SKU\tDESCRIPTION\tQUANTITY\tUNIT PRICE\tTOTAL PRICE")
		for _, item := range rows {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
				item.ItemSKU, item.ItemInfo, item.Quantity,
				models.FormatMoney(item.UnitPrice, models.CAD),
				models.FormatMoney(item.TotalPrice, models.CAD))
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
		fmt.Printf("Generating invoice items batch %d out of %d\n", i, batches)
		report, err := generate.GenerateInvoiceItems(ctx, st, gen, generate.DefaultBatchSize)
		if err != nil {
			log.Error().Err(err).Msg("Invoice item batch failed")
			fmt.Printf("Generation failed: %v\n", err)
			continue
		}
		fmt.Printf("New invoice items: %d, duplicate invoice items: %d\n", report.New, report.Duplicates)
	}

	return nil
}
