package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"geninv/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "List or save program settings",
	Long: `List the effective program settings or save them to the settings file.

Settings are resolved from the environment (including a local .env file and
the saved settings file); --save persists the current values so later runs
pick them up without environment variables.`,
	Example: `  # Show the effective settings
  geninv settings --list

  # Persist the current settings
  OPENAI_API_KEY=sk-... geninv settings --save`,
	RunE: runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)

	settingsCmd.Flags().Bool("list", false, "List program settings")
	settingsCmd.Flags().Bool("save", false, "Save program settings")
	settingsCmd.MarkFlagsMutuallyExclusive("list", "save")
	settingsCmd.MarkFlagsOneRequired("list", "save")
}

func runSettings(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	list, _ := cmd.Flags().GetBool("list")
	save, _ := cmd.Flags().GetBool("save")

	switch {
	case list:
		settings := cfg.Settings()
		keys := make([]string, 0, len(settings))
		for key := range settings {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tVALUE")
		for _, key := range keys {
			fmt.Fprintf(w, "%s\t%s\n", key, settings[key])
		}
		return w.Flush()

	case save:
		path := config.SettingsFile()
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Printf("Saved program settings to the file %s\n", path)
	}

	return nil
}
