package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

const sessionIssuer = "intakebox"

// AuthUseCase verifies session tokens and resolves them to identities.
// Upstream authentication (SSO, OAuth) terminates at a front proxy that
// mints short-lived HS256 session tokens with this service's secret.
type AuthUseCase struct {
	repo    interfaces.Repository
	secret  []byte
	maxSkew time.Duration
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(repo interfaces.Repository, secret []byte) *AuthUseCase {
	return &AuthUseCase{
		repo:    repo,
		secret:  secret,
		maxSkew: 10 * time.Second,
	}
}

// VerifySession validates a session token and returns the identity it
// belongs to. Any verification failure is ErrForbidden; no detail about
// why a token was rejected leaks to the caller.
func (uc *AuthUseCase) VerifySession(ctx context.Context, tokenString string) (*model.Identity, error) {
	if len(uc.secret) == 0 {
		return nil, goerr.Wrap(ErrForbidden, "session secret is not configured")
	}
	if tokenString == "" {
		return nil, goerr.Wrap(ErrForbidden, "session token is required")
	}

	token, err := jwt.Parse([]byte(tokenString),
		jwt.WithKey(jwa.HS256, uc.secret),
		jwt.WithValidate(true),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithAcceptableSkew(uc.maxSkew),
	)
	if err != nil {
		return nil, goerr.Wrap(ErrForbidden, "invalid session token")
	}

	sub := token.Subject()
	if sub == "" {
		return nil, goerr.Wrap(ErrForbidden, "session token has no subject")
	}

	identity, err := uc.repo.Identity().Get(ctx, types.IdentityID(sub))
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrForbidden, "session subject is not a known account")
		}
		return nil, goerr.Wrap(err, "failed to resolve session identity")
	}
	return identity, nil
}

// IssueSession mints a session token for an identity. Used by the local
// development login flow and by tests; production deployments mint
// tokens at the auth proxy.
func (uc *AuthUseCase) IssueSession(identity *model.Identity, ttl time.Duration) (string, error) {
	if len(uc.secret) == 0 {
		return "", goerr.New("session secret is not configured")
	}

	now := time.Now().UTC()
	token, err := jwt.NewBuilder().
		Issuer(sessionIssuer).
		Subject(identity.ID.String()).
		IssuedAt(now).
		Expiration(now.Add(ttl)).
		Build()
	if err != nil {
		return "", goerr.Wrap(err, "failed to build session token")
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, uc.secret))
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign session token")
	}
	return string(signed), nil
}
