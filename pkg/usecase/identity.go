package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/google/uuid"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// IdentityInput is the payload for inviting or updating an account
type IdentityInput struct {
	Name      string
	Email     string
	AvatarURL string
	Role      string
}

// ListIdentities returns all accounts. Officers need the list to pick
// assignees, so this is not admin-gated.
func (uc *UseCases) ListIdentities(ctx context.Context) ([]*model.Identity, error) {
	if _, err := requireCaseManager(ctx); err != nil {
		return nil, err
	}

	identities, err := uc.repo.Identity().List(ctx)
	if err != nil {
		return nil, storeErr(ctx, err, "identity.list", "identities", nil)
	}
	return identities, nil
}

// InviteIdentity creates a new officer or admin account. Admin only.
func (uc *UseCases) InviteIdentity(ctx context.Context, input *IdentityInput) (*model.Identity, error) {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	role := types.Role(input.Role)
	identity := &model.Identity{
		ID:        types.IdentityID(uuid.New().String()),
		Name:      input.Name,
		Email:     input.Email,
		AvatarURL: input.AvatarURL,
		Role:      role,
	}
	if err := identity.Validate(); err != nil {
		return nil, goerr.Wrap(ErrValidation, "invalid identity", goerr.V("cause", err.Error()))
	}

	if err := uc.repo.Identity().Put(ctx, identity); err != nil {
		return nil, storeErr(ctx, err, "identity.put", "identities/"+identity.ID.String(), identity.Role)
	}

	action := fmt.Sprintf("invited %s as %s", identity.Email, identity.Role)
	if err := uc.appendAudit(ctx, "", model.ActorRef{ID: actor.ID, Name: actor.Name}, action); err != nil {
		return nil, err
	}
	return identity, nil
}

// UpdateIdentity edits an existing account. Admin only.
func (uc *UseCases) UpdateIdentity(ctx context.Context, id types.IdentityID, input *IdentityInput) (*model.Identity, error) {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	identity, err := uc.repo.Identity().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrIdentityNotFound, "account not found", goerr.V("identity_id", id))
		}
		return nil, storeErr(ctx, err, "identity.get", "identities/"+id.String(), nil)
	}

	identity.Name = input.Name
	identity.Email = input.Email
	identity.AvatarURL = input.AvatarURL
	identity.Role = types.Role(input.Role)
	if err := identity.Validate(); err != nil {
		return nil, goerr.Wrap(ErrValidation, "invalid identity", goerr.V("cause", err.Error()))
	}

	if err := uc.repo.Identity().Put(ctx, identity); err != nil {
		return nil, storeErr(ctx, err, "identity.put", "identities/"+id.String(), identity.Role)
	}

	action := fmt.Sprintf("updated account %s", identity.Email)
	if err := uc.appendAudit(ctx, "", model.ActorRef{ID: actor.ID, Name: actor.Name}, action); err != nil {
		return nil, err
	}
	return identity, nil
}

// DeleteIdentity removes an account. Admin only. Past audit entries and
// assignments keep referring to the removed ID by design.
func (uc *UseCases) DeleteIdentity(ctx context.Context, id types.IdentityID) error {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	if actor.ID == id {
		return goerr.Wrap(ErrValidation, "cannot delete your own account")
	}

	identity, err := uc.repo.Identity().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrIdentityNotFound, "account not found", goerr.V("identity_id", id))
		}
		return storeErr(ctx, err, "identity.get", "identities/"+id.String(), nil)
	}

	if err := uc.repo.Identity().Delete(ctx, id); err != nil {
		return storeErr(ctx, err, "identity.delete", "identities/"+id.String(), nil)
	}

	action := fmt.Sprintf("removed account %s", identity.Email)
	return uc.appendAudit(ctx, "", model.ActorRef{ID: actor.ID, Name: actor.Name}, action)
}
