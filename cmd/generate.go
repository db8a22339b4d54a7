package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/Lumos-Labs-HQ/seedgen/internal/config"
	"github.com/Lumos-Labs-HQ/seedgen/internal/fixture"
	"github.com/Lumos-Labs-HQ/seedgen/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Write the seed script",
	Long: `
Render the fixture into a SQL seed script and write it to the output path,
replacing any existing file. The output directory must already exist.

Examples:
  seedgen generate
  seedgen generate --fixture db/seed/events.yaml --out azure/database/seed.sql
  seedgen generate --database eventix_dev`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		set, err := loadSeedSet(cfg)
		if err != nil {
			return err
		}

		if err := seeder.New(cfg.Database).WriteFile(cfg.OutputPath, set); err != nil {
			return err
		}

		color.Green("Generated %s at %s", filepath.Base(cfg.OutputPath), cfg.OutputPath)
		return nil
	},
}

func loadSeedSet(cfg *config.Config) (*fixture.SeedSet, error) {
	var (
		set *fixture.SeedSet
		err error
	)
	if cfg.FixturePath == "" {
		set, err = fixture.Default()
	} else {
		set, err = fixture.Load(cfg.FixturePath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load seed set: %w", err)
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed set: %w", err)
	}
	return set, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("fixture", "", "Fixture file (YAML or JSON); defaults to the bundled seed set")
	generateCmd.Flags().StringP("out", "o", "", "Output file (default "+config.DefaultOutputPath+")")
	generateCmd.Flags().String("database", "", "Database named in the USE statement (default "+config.DefaultDatabase+")")

	viper.BindPFlag("fixture_path", generateCmd.Flags().Lookup("fixture"))
	viper.BindPFlag("output_path", generateCmd.Flags().Lookup("out"))
	viper.BindPFlag("database", generateCmd.Flags().Lookup("database"))
}
