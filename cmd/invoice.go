package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"geninv/internal/compose"
	"geninv/internal/config"
	"geninv/internal/logger"
	"geninv/internal/render"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Compose and render synthetic invoices to PDF",
	Long: `Compose invoices from stored companies and line items and render them to
PDF. No LLM call is involved: each invoice samples 2 random companies
(supplier and customer) and 1 to 10 random line items, computes totals and
writes <invoice_number>.pdf to the output directory.

Requires at least 2 stored companies and 1 stored line item.`,
	Example: `  # Generate 3 invoice PDFs into the default output directory
  geninv invoice --generate 3

  # Generate into a specific directory
  geninv invoice --generate 1 --output /tmp/invoices`,
	RunE: runInvoice,
}

func init() {
	rootCmd.AddCommand(invoiceCmd)

	invoiceCmd.Flags().IntP("generate", "g", 0, "Number of invoices to generate")
	invoiceCmd.Flags().StringP("output", "o", "", "Output directory (default: the configured downloads directory)")
	_ = invoiceCmd.MarkFlagRequired("generate")
}

func runInvoice(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("invoice")
	cfg := config.Load()

	count, _ := cmd.Flags().GetInt("generate")
	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	st, err := openStore(cfg.DBFile)
	if err != nil {
		return err
	}
	defer st.Close()

	for i := 1; i <= count; i++ {
		fmt.Printf("Generating invoice %d out of %d\n", i, count)

		inv, err := compose.Compose(ctx, st)
		if err != nil {
			return fmt.Errorf("failed to compose invoice: %w", err)
		}

		pdfBytes, err := render.PDF(inv)
		if err != nil {
			return fmt.Errorf("failed to render invoice %s: %w", inv.InvoiceNumber, err)
		}

		outPath := filepath.Join(outputDir, inv.InvoiceNumber+".pdf")
		if err := os.WriteFile(outPath, pdfBytes, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}

		log.Info().
			Str("invoice_number", inv.InvoiceNumber).
			Str("supplier", inv.Supplier.CompanyName).
			Str("customer", inv.Customer.CompanyName).
			Int("line_items", len(inv.LineItems)).
			Str("total", inv.TotalFormatted()).
			Str("file", outPath).
			Msg("Invoice written")
	}

	fmt.Printf("Output directory: %s\n", outputDir)
	return nil
}
