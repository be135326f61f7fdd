package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// ShareLinkResult is the outcome of issuing a share link
type ShareLinkResult struct {
	Link *model.ShareLink
	URL  string
}

// IssueShareLink creates a time-boxed read-only share link for a case.
// There is no revocation: a link stays valid until natural expiry.
func (uc *UseCases) IssueShareLink(ctx context.Context, reportID types.ReportID, ttlDays int) (*ShareLinkResult, error) {
	if _, err := requireCaseManager(ctx); err != nil {
		return nil, err
	}
	if !model.ValidShareTTL(ttlDays) {
		return nil, goerr.Wrap(ErrValidation, "unsupported share TTL",
			goerr.V("ttl_days", ttlDays),
			goerr.V("allowed", model.AllowedShareTTLDays),
		)
	}

	if _, err := uc.repo.Report().Get(ctx, reportID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrReportNotFound, "case not found", goerr.V("report_id", reportID))
		}
		return nil, storeErr(ctx, err, "report.get", "reports/"+reportID.String(), nil)
	}

	token, err := types.NewShareToken()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate share token")
	}

	now := time.Now().UTC()
	link := &model.ShareLink{
		Token:     token,
		ReportID:  reportID,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(ttlDays) * 24 * time.Hour),
	}
	if err := uc.repo.ShareLink().Put(ctx, link); err != nil {
		return nil, storeErr(ctx, err, "sharelink.put", "share_links", reportID)
	}

	return &ShareLinkResult{
		Link: link,
		URL:  fmt.Sprintf("%s/share/%s", uc.baseURL, token),
	}, nil
}

// ResolveShareToken returns the redacted view of the case behind a share
// token. Reporter contact data is stripped unconditionally, even for
// confidential cases.
func (uc *UseCases) ResolveShareToken(ctx context.Context, token types.ShareToken) (*model.Report, error) {
	if err := token.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidLink, "malformed share token")
	}

	link, err := uc.repo.ShareLink().Get(ctx, token)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrInvalidLink, "unknown share token")
		}
		return nil, storeErr(ctx, err, "sharelink.get", "share_links", nil)
	}
	if link.Expired(time.Now().UTC()) {
		return nil, goerr.Wrap(ErrExpiredLink, "share link has expired")
	}

	report, err := uc.repo.Report().Get(ctx, link.ReportID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrInvalidLink, "case behind share link no longer exists")
		}
		return nil, storeErr(ctx, err, "report.get", "reports/"+link.ReportID.String(), nil)
	}

	return report.Redacted(), nil
}
