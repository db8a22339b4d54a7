package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/seedgen/internal/config"
	"github.com/Lumos-Labs-HQ/seedgen/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [seed.sql]",
	Short: "Check a generated seed script",
	Long: `
Parse a seed script and check its framing (USE/GO preamble, table resets,
trailing GO), the column lists of every INSERT, and that each ticket category
references an event inserted before it.

Without an argument the configured output path is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			path = cfg.OutputPath
		}

		report, err := seeder.VerifyFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		color.Green("✅ %s is valid", path)
		color.Cyan("   Database:          %s", report.Database)
		color.Cyan("   Events:            %d", len(report.Events))
		color.Cyan("   Ticket categories: %d", len(report.TicketCategories))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
