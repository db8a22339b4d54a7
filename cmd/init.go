package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Lumos-Labs-HQ/seedgen/internal/config"
	"github.com/Lumos-Labs-HQ/seedgen/internal/utils"
	"github.com/Lumos-Labs-HQ/seedgen/template"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initDatabase string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a seedgen project",
	Long:  `Create seedgen.config.json, a sample fixture and the output directory in the current directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if initDatabase != "" && !utils.IsValidIdentifier(initDatabase) {
			return fmt.Errorf("invalid database name: %q", initDatabase)
		}
		return initializeProject(template.NewProjectTemplate(initDatabase))
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initDatabase, "database", "", "Database named in the USE statement (default "+config.DefaultDatabase+")")
}

func initializeProject(tmpl *template.ProjectTemplate) error {
	if config.IsInitialized() {
		return fmt.Errorf("%s already exists", config.FileName)
	}

	directories := tmpl.GetDirectoryStructure()
	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// The config goes last: its presence marks the project as initialized.
	fixtureCreated := false
	if _, err := os.Stat(template.FixturePath); os.IsNotExist(err) {
		if err := os.WriteFile(template.FixturePath, tmpl.GetFixture(), 0644); err != nil {
			return fmt.Errorf("failed to create file %s: %w", template.FixturePath, err)
		}
		fixtureCreated = true
	}

	if err := os.WriteFile(config.FileName, []byte(tmpl.GetSeedgenConfig()), 0644); err != nil {
		return fmt.Errorf("failed to create file %s: %w", config.FileName, err)
	}

	if err := handleEnvFile(tmpl.GetEnvTemplate()); err != nil {
		return fmt.Errorf("failed to handle .env file: %w", err)
	}

	color.Green("✅ Initialized seedgen project for database %s", tmpl.Database)
	fmt.Println()
	fmt.Println("📁 Directories:")
	for _, dir := range directories {
		fmt.Printf("   %s/\n", dir)
	}
	fmt.Println()
	fmt.Println("📝 Files:")
	fmt.Printf("   %s\n", config.FileName)
	if fixtureCreated {
		fmt.Printf("   %s\n", template.FixturePath)
	} else {
		fmt.Printf("ℹ️  Skipped %s (already exists)\n", template.FixturePath)
	}

	fmt.Println()
	fmt.Printf("🚀 Next steps:\n")
	fmt.Printf("   seedgen generate   # Write the seed script\n")
	fmt.Printf("   seedgen verify     # Check it\n")

	return nil
}

func handleEnvFile(defaultEnvContent string) error {
	envPath := ".env"

	existingContent, err := os.ReadFile(envPath)
	if err != nil {
		if os.IsNotExist(err) {
			return os.WriteFile(envPath, []byte(defaultEnvContent), 0644)
		}
		return err
	}

	existingStr := string(existingContent)
	if strings.Contains(existingStr, "SEEDGEN_DATABASE") {
		return nil
	}

	if len(existingStr) > 0 && !strings.HasSuffix(existingStr, "\n") {
		existingStr += "\n"
	}

	existingStr += "\n# Added by seedgen\n" + defaultEnvContent

	return os.WriteFile(envPath, []byte(existingStr), 0644)
}
