package interfaces

import (
	"context"

	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// IdentityRepository defines the interface for officer/admin accounts
type IdentityRepository interface {
	// Put creates or replaces an identity
	Put(ctx context.Context, identity *model.Identity) error

	// Get retrieves an identity by ID
	Get(ctx context.Context, id types.IdentityID) (*model.Identity, error)

	// List returns all identities ordered by name
	List(ctx context.Context) ([]*model.Identity, error)

	// Delete removes an identity by ID
	Delete(ctx context.Context, id types.IdentityID) error
}
