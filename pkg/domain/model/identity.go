package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// Identity is an authenticated admin or officer account. Reporters are
// not identities; they are pseudonymous actors keyed only by case
// association.
type Identity struct {
	ID        types.IdentityID
	Name      string
	Email     string
	AvatarURL string
	Role      types.Role
}

// Validate checks the identity fields
func (i *Identity) Validate() error {
	if i.ID == "" {
		return goerr.New("identity ID is required")
	}
	if strings.TrimSpace(i.Name) == "" {
		return goerr.New("identity name is required", goerr.V("id", i.ID))
	}
	if !strings.Contains(i.Email, "@") {
		return goerr.New("identity email is invalid", goerr.V("id", i.ID))
	}
	if !i.Role.IsValid() {
		return goerr.New("identity role is invalid", goerr.V("id", i.ID), goerr.V("role", i.Role))
	}
	return nil
}
