package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/intakebox/intakebox/pkg/cli/config"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `
[[status]]
id = "new"
name = "New"
color = "#3b82f6"

[[status]]
id = "in-progress"
name = "In Progress"
color = "#f59e0b"

[[status]]
id = "escalated"
name = "Escalated"
color = "#ef4444"

[[status]]
id = "resolved"
name = "Resolved"
color = "#22c55e"
`)

	catalog, err := config.LoadCatalog(path)
	gt.NoError(t, err).Required()
	gt.Array(t, catalog.Statuses).Length(4)
	gt.Value(t, catalog.Statuses[2].ID).Equal(types.StatusID("escalated"))
	gt.Value(t, catalog.StatusName("escalated")).Equal("Escalated")
}

func TestLoadCatalogMissingRequiredStatus(t *testing.T) {
	path := writeCatalog(t, `
[[status]]
id = "new"
name = "New"

[[status]]
id = "in-progress"
name = "In Progress"
`)

	_, err := config.LoadCatalog(path)
	gt.Error(t, err)
}

func TestLoadCatalogDuplicateID(t *testing.T) {
	path := writeCatalog(t, `
[[status]]
id = "new"
name = "New"

[[status]]
id = "new"
name = "Also New"

[[status]]
id = "in-progress"
name = "In Progress"

[[status]]
id = "resolved"
name = "Resolved"
`)

	_, err := config.LoadCatalog(path)
	gt.Error(t, err)
}

func TestLoadCatalogMalformed(t *testing.T) {
	path := writeCatalog(t, `[[status]`)

	_, err := config.LoadCatalog(path)
	gt.Error(t, err)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := config.LoadCatalog(filepath.Join(t.TempDir(), "absent.toml"))
	gt.Error(t, err)
}
