package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"geninv/internal/config"
)

var databaseCmd = &cobra.Command{
	Use:     "database",
	Aliases: []string{"db"},
	Short:   "Database operations",
	Long: `Inspect or manage the local SQLite database: show row counts, create or
show the schema, or drop all tables.`,
	Example: `  # Show row counts per table
  geninv database --stats

  # Show the reflected schema
  geninv db --show-schema`,
	RunE: runDatabase,
}

func init() {
	rootCmd.AddCommand(databaseCmd)

	databaseCmd.Flags().Bool("stats", false, "Show database statistics")
	databaseCmd.Flags().Bool("create-schema", false, "Create database schema")
	databaseCmd.Flags().Bool("show-schema", false, "Show database schema")
	databaseCmd.Flags().Bool("drop-schema", false, "Drop database schema")
	databaseCmd.MarkFlagsMutuallyExclusive("stats", "create-schema", "show-schema", "drop-schema")
	databaseCmd.MarkFlagsOneRequired("stats", "create-schema", "show-schema", "drop-schema")
}

func runDatabase(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	stats, _ := cmd.Flags().GetBool("stats")
	createSchema, _ := cmd.Flags().GetBool("create-schema")
	showSchema, _ := cmd.Flags().GetBool("show-schema")
	dropSchema, _ := cmd.Flags().GetBool("drop-schema")

	ctx, cancel := commandContext()
	defer cancel()

	st, err := openStore(cfg.DBFile)
	if err != nil {
		// Introspection reports connection problems instead of crashing.
		fmt.Printf("Database connection error: %v\n", err)
		return nil
	}
	defer st.Close()

	switch {
	case stats:
		tableStats, err := st.Stats(ctx)
		if err != nil {
			fmt.Printf("Database connection error: %v\n", err)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TABLE\tROWS")
		for _, ts := range tableStats {
			fmt.Fprintf(w, "%s\t%d\n", ts.Table, ts.Rows)
		}
		return w.Flush()

	case createSchema:
		if err := st.CreateSchema(ctx); err != nil {
			return fmt.Errorf("failed to create database schema: %w", err)
		}
		fmt.Println("Created database schema")

	case showSchema:
		schemas, err := st.Schema(ctx)
		if err != nil {
			fmt.Printf("Database connection error: %v\n", err)
			return nil
		}
		if len(schemas) == 0 {
			fmt.Println("No tables found; run \"geninv database --create-schema\" first")
			return nil
		}
		for _, table := range schemas {
			fmt.Printf("TABLE %s\n", table.Name)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "  COLUMN\tTYPE\tNULLABLE\tUNIQUE")
			for _, col := range table.Columns {
				fmt.Fprintf(w, "  %s\t%s\t%t\t%t\n", col.Name, col.Type, col.Nullable, col.Unique)
			}
			w.Flush()
			if len(table.Indexes) > 0 {
				fmt.Printf("  indexes: %s\n", strings.Join(table.Indexes, ", "))
			}
			fmt.Println()
		}

	case dropSchema:
		if err := st.DropSchema(ctx); err != nil {
			return fmt.Errorf("failed to drop database schema: %w", err)
		}
		fmt.Println("Dropped database schema")
	}

	return nil
}
