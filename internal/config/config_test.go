package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "eventix", cfg.Database)
	assert.Equal(t, "azure/database/seed.sql", cfg.OutputPath)
	assert.Empty(t, cfg.FixturePath)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("database", "eventix_dev")
	viper.Set("fixture_path", "db/seed/events.yaml")
	viper.Set("output_path", "out/seed.sql")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Database:    "eventix_dev",
		FixturePath: "db/seed/events.yaml",
		OutputPath:  "out/seed.sql",
	}, cfg)
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"database": "tickets", "output_path": "seed/out.sql"}`), 0644))

	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tickets", cfg.Database)
	assert.Equal(t, "seed/out.sql", cfg.OutputPath)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", *Default(), false},
		{"empty database", Config{OutputPath: "seed.sql"}, true},
		{"injected database", Config{Database: "eventix; DROP TABLE Events", OutputPath: "seed.sql"}, true},
		{"empty output", Config{Database: "eventix"}, true},
		{"output is a directory", Config{Database: "eventix", OutputPath: dir}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
