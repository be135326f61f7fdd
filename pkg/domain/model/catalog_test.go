package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

func TestCatalog(t *testing.T) {
	t.Run("default catalog is valid", func(t *testing.T) {
		catalog := model.DefaultCatalog()
		gt.NoError(t, catalog.Validate())

		def, ok := catalog.Lookup(types.StatusResolved)
		gt.Bool(t, ok).True()
		gt.Value(t, def.Name).Equal("Resolved")
	})

	t.Run("selectable excludes reserved statuses", func(t *testing.T) {
		catalog := model.DefaultCatalog()
		for _, def := range catalog.Selectable() {
			gt.Bool(t, def.ID.Reserved()).False()
		}
		// default catalog: in-progress, dismissed, forwarded-to-upper-management
		gt.Array(t, catalog.Selectable()).Length(3)
	})

	t.Run("duplicate status IDs are rejected", func(t *testing.T) {
		catalog := &model.Catalog{
			Statuses: []model.StatusDefinition{
				{ID: types.StatusNew, Name: "New"},
				{ID: types.StatusInProgress, Name: "In Progress"},
				{ID: types.StatusInProgress, Name: "Also In Progress"},
				{ID: types.StatusResolved, Name: "Resolved"},
			},
		}
		gt.Value(t, catalog.Validate()).NotNil()
	})

	t.Run("missing required status is rejected", func(t *testing.T) {
		catalog := &model.Catalog{
			Statuses: []model.StatusDefinition{
				{ID: types.StatusNew, Name: "New"},
				{ID: types.StatusInProgress, Name: "In Progress"},
			},
		}
		gt.Value(t, catalog.Validate()).NotNil()
	})

	t.Run("status name falls back to raw ID", func(t *testing.T) {
		catalog := model.DefaultCatalog()
		gt.Value(t, catalog.StatusName("unknown-status")).Equal("unknown-status")
	})
}
