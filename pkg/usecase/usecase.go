package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/model/auth"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"github.com/intakebox/intakebox/pkg/utils/errutil"
)

// UseCases bundles every application operation over the shared
// repository and external services.
type UseCases struct {
	repo     interfaces.Repository
	catalog  *model.Catalog
	advisor  interfaces.Advisor
	storage  interfaces.ObjectStorage
	notifier interfaces.Notifier
	baseURL  string
}

// Option is a functional option for UseCases
type Option func(*UseCases)

// WithCatalog sets the status catalog. Defaults to the built-in catalog.
func WithCatalog(catalog *model.Catalog) Option {
	return func(uc *UseCases) {
		uc.catalog = catalog
	}
}

// WithAdvisor sets the AI advisory service used at submission
func WithAdvisor(advisor interfaces.Advisor) Option {
	return func(uc *UseCases) {
		uc.advisor = advisor
	}
}

// WithStorage sets the object storage used for attachment uploads
func WithStorage(storage interfaces.ObjectStorage) Option {
	return func(uc *UseCases) {
		uc.storage = storage
	}
}

// WithNotifier sets the optional notification channel
func WithNotifier(notifier interfaces.Notifier) Option {
	return func(uc *UseCases) {
		uc.notifier = notifier
	}
}

// WithBaseURL sets the public base URL used to build share links
func WithBaseURL(baseURL string) Option {
	return func(uc *UseCases) {
		uc.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// New creates the UseCases aggregate
func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:    repo,
		catalog: model.DefaultCatalog(),
		baseURL: "http://localhost:3000",
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Catalog returns the active status catalog
func (uc *UseCases) Catalog() *model.Catalog {
	return uc.catalog
}

// requireCaseManager returns the acting identity, or ErrForbidden when the
// current actor may not mutate cases.
func requireCaseManager(ctx context.Context) (*model.Identity, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok || !identity.Role.CanManageCases() {
		return nil, goerr.Wrap(ErrForbidden, "case mutation requires officer or admin role")
	}
	return identity, nil
}

// requireAdmin returns the acting identity, or ErrForbidden when the
// current actor is not an admin.
func requireAdmin(ctx context.Context) (*model.Identity, error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok || !identity.Role.CanAdminister() {
		return nil, goerr.Wrap(ErrForbidden, "operation requires admin role")
	}
	return identity, nil
}

// storeErr normalizes a repository failure. Permission rejections emit a
// diagnostic event so rule violations are never mistaken for outages.
func storeErr(ctx context.Context, err error, operation, path string, payload any) error {
	if errors.Is(err, interfaces.ErrPermissionDenied) {
		errutil.ReportPermission(ctx, err, operation, path, payload)
	}
	return err
}

func joinNames(identities []*model.Identity) string {
	names := make([]string, 0, len(identities))
	for _, identity := range identities {
		names = append(names, identity.Name)
	}
	return strings.Join(names, ", ")
}

func (uc *UseCases) appendAudit(ctx context.Context, reportID types.ReportID, actor model.ActorRef, action string) error {
	entry := &model.AuditEntry{
		ID:        types.NewAuditID(),
		ReportID:  reportID,
		Actor:     actor,
		Action:    action,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.repo.Audit().Append(ctx, entry); err != nil {
		return goerr.Wrap(err, "failed to append audit entry",
			goerr.V("report_id", reportID),
			goerr.V("action", action),
		)
	}
	return nil
}
