package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// StatusDefinition is one entry of the configurable status catalog
type StatusDefinition struct {
	ID    types.StatusID
	Name  string
	Color string
}

// Catalog is the ordered set of status definitions a deployment uses.
// The reserved statuses (New, Resolved, Case Closed) must always be
// present; intermediate statuses are deployment-specific.
type Catalog struct {
	Statuses []StatusDefinition
}

// DefaultCatalog returns the built-in status catalog
func DefaultCatalog() *Catalog {
	return &Catalog{
		Statuses: []StatusDefinition{
			{ID: types.StatusNew, Name: "New", Color: "#3b82f6"},
			{ID: types.StatusInProgress, Name: "In Progress", Color: "#f59e0b"},
			{ID: "dismissed", Name: "Dismissed", Color: "#6b7280"},
			{ID: "forwarded-to-upper-management", Name: "Forwarded to Upper Management", Color: "#8b5cf6"},
			{ID: types.StatusCaseClosed, Name: "Case Closed", Color: "#64748b"},
			{ID: types.StatusResolved, Name: "Resolved", Color: "#22c55e"},
		},
	}
}

// Validate checks the catalog for malformed or duplicate entries and for
// the presence of the statuses the lifecycle depends on.
func (c *Catalog) Validate() error {
	seen := make(map[types.StatusID]bool, len(c.Statuses))
	for _, def := range c.Statuses {
		if err := def.ID.Validate(); err != nil {
			return goerr.Wrap(err, "invalid status definition")
		}
		if def.Name == "" {
			return goerr.New("status name is required", goerr.V("id", def.ID))
		}
		if seen[def.ID] {
			return goerr.New("duplicate status ID", goerr.V("id", def.ID))
		}
		seen[def.ID] = true
	}

	for _, required := range []types.StatusID{types.StatusNew, types.StatusInProgress, types.StatusResolved} {
		if !seen[required] {
			return goerr.New("catalog is missing a required status", goerr.V("id", required))
		}
	}
	return nil
}

// Lookup returns the definition for the given status ID
func (c *Catalog) Lookup(id types.StatusID) (StatusDefinition, bool) {
	for _, def := range c.Statuses {
		if def.ID == id {
			return def, true
		}
	}
	return StatusDefinition{}, false
}

// StatusName returns the display name of a status, falling back to the raw ID
func (c *Catalog) StatusName(id types.StatusID) string {
	if def, ok := c.Lookup(id); ok {
		return def.Name
	}
	return id.String()
}

// Selectable returns the statuses valid as manual change targets, in
// catalog order. The reserved set is excluded: those states are reachable
// only through their dedicated operations.
func (c *Catalog) Selectable() []StatusDefinition {
	out := make([]StatusDefinition, 0, len(c.Statuses))
	for _, def := range c.Statuses {
		if !def.ID.Reserved() {
			out = append(out, def)
		}
	}
	return out
}
