package template

import (
	"fmt"
	"path/filepath"

	"github.com/Lumos-Labs-HQ/seedgen/internal/config"
	"github.com/Lumos-Labs-HQ/seedgen/internal/fixture"
)

const FixturePath = "db/seed/events.yaml"

type ProjectTemplate struct {
	Database string
}

func NewProjectTemplate(database string) *ProjectTemplate {
	if database == "" {
		database = config.DefaultDatabase
	}
	return &ProjectTemplate{Database: database}
}

func (pt *ProjectTemplate) GetSeedgenConfig() string {
	return fmt.Sprintf(`{
  "database": "%s",
  "fixture_path": "%s",
  "output_path": "%s"
}
`, pt.Database, FixturePath, config.DefaultOutputPath)
}

func (pt *ProjectTemplate) GetFixture() []byte {
	return fixture.DefaultYAML()
}

func (pt *ProjectTemplate) GetEnvTemplate() string {
	return fmt.Sprintf("SEEDGEN_DATABASE=%s\n", pt.Database)
}

func (pt *ProjectTemplate) GetDirectoryStructure() []string {
	return []string{filepath.Dir(FixturePath), filepath.Dir(config.DefaultOutputPath)}
}
