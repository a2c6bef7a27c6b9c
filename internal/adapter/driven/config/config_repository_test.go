package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarques/sales-dashboard-go/internal/shared/types"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigFile_TOML(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "config.toml", `
database = "warehouse.db"
report_name = "monthly"
report_type = "by-product"
export_formats = ["csv", "pdf"]
start_date = "2025-06-01"
products = ["Laptop", "Mouse"]
refresh_seconds = 30
paused = true
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warehouse.db", cfg.Database)
	assert.Equal(t, "monthly", cfg.ReportName)
	assert.Equal(t, "by-product", cfg.ReportType)
	assert.Equal(t, []string{"csv", "pdf"}, cfg.ExportFormats)
	assert.Equal(t, "2025-06-01", cfg.StartDate)
	assert.Equal(t, []string{"Laptop", "Mouse"}, cfg.Products)
	assert.Equal(t, 30, cfg.RefreshSeconds)
	assert.True(t, cfg.Paused)
}

func TestLoadConfigFile_YAML(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "config.yaml", `
database: warehouse.db
report_type: daily-summary
export_formats:
  - xlsx
categories:
  - Electronics
listen_addr: ":9090"
`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warehouse.db", cfg.Database)
	assert.Equal(t, "daily-summary", cfg.ReportType)
	assert.Equal(t, []string{"xlsx"}, cfg.ExportFormats)
	assert.Equal(t, []string{"Electronics"}, cfg.Categories)
	assert.Equal(t, ":9090", cfg.ListenAddr)
}

func TestLoadConfigFile_JSON(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "config.json", `{
  "database": "warehouse.db",
  "report_type": "by-category",
  "end_date": "2025-07-31",
  "trend": true
}`)

	repo := NewConfigRepository()
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warehouse.db", cfg.Database)
	assert.Equal(t, "by-category", cfg.ReportType)
	assert.Equal(t, "2025-07-31", cfg.EndDate)
	assert.True(t, cfg.Trend)
}

func TestLoadConfigFile_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "config.ini", "database=warehouse.db")

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(path)
	require.ErrorIs(t, err, types.ErrInvalidConfigFormat)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	t.Parallel()

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, types.ErrConfigNotFound)
}

func TestLoadConfigFile_Directory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "conf.toml")
	require.NoError(t, os.Mkdir(dir, 0755))

	repo := NewConfigRepository()
	_, err := repo.LoadConfigFile(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}
