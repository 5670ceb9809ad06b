package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"geninv/internal/config"
	"geninv/internal/generate"
	"geninv/internal/logger"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Generate or list synthetic company profiles",
	Long: `Generate synthetic company profiles with the configured LLM and store the
non-duplicate ones, or list the companies already stored.

Every generated company is assigned a billing and a shipping address sampled
at random from the stored addresses, so at least 2 addresses must exist
before companies can be generated (run "geninv address --generate" first).`,
	Example: `  # Generate 2 batches of companies
  geninv company --generate 2

  # List stored companies
  geninv company --list`,
	RunE: runCompany,
}

func init() {
	rootCmd.AddCommand(companyCmd)

	companyCmd.Flags().IntP("generate", "g", 0, "Number of company batches to generate")
	companyCmd.Flags().Bool("list", false, "List stored companies")
	companyCmd.MarkFlagsMutuallyExclusive("generate", "list")
	companyCmd.MarkFlagsOneRequired("generate", "list")
}

func runCompany(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("company")
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
		rows, err := st.ListCompanies(ctx)
		if err != nil {
			fmt.Printf("Database error: %v\n", err)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COMPANY ID\tCOMPANY NAME\tPHONE NUMBER\tEMAIL\tWEBSITE")
		for _, c := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				c.CompanyID, c.CompanyName, c.PhoneNumber, c.Email, c.Website)
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
		fmt.Printf("Generating company batch %d out of %d\n", i, batches)
		report, err := generate.GenerateCompanies(ctx, st, gen, generate.DefaultBatchSize)
		if err != nil {
			if errors.Is(err, generate.ErrInsufficientAddresses) {
				return fmt.Errorf("%w: run \"geninv address --generate\" first", err)
			}
			log.Error().Err(err).Msg("Company batch failed")
			fmt.Printf("Generation failed: %v\n", err)
			continue
		}
		fmt.Printf("New companies: %d, duplicate companies: %d\n", report.New, report.Duplicates)
	}

	return nil
}
