package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Catalog holds CLI flags for the status catalog configuration
type Catalog struct {
	path string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to the status catalog TOML file (built-in catalog when omitted)",
			Sources:     cli.EnvVars("INTAKEBOX_CATALOG"),
			Destination: &c.path,
		},
	}
}

// Path returns the configured catalog file path
func (c *Catalog) Path() string {
	return c.path
}

type catalogFile struct {
	Statuses []statusEntry `toml:"status"`
}

type statusEntry struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// Configure loads and validates the status catalog. Without a path the
// built-in catalog is used.
func (c *Catalog) Configure() (*model.Catalog, error) {
	if c.path == "" {
		return model.DefaultCatalog(), nil
	}
	return LoadCatalog(c.path)
}

// LoadCatalog reads a status catalog from a TOML file
func LoadCatalog(path string) (*model.Catalog, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", path))
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog TOML", goerr.V("path", path))
	}

	catalog := &model.Catalog{
		Statuses: make([]model.StatusDefinition, 0, len(file.Statuses)),
	}
	for _, entry := range file.Statuses {
		catalog.Statuses = append(catalog.Statuses, model.StatusDefinition{
			ID:    types.StatusID(entry.ID),
			Name:  entry.Name,
			Color: entry.Color,
		})
	}

	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "catalog validation failed", goerr.V("path", path))
	}
	return catalog, nil
}
