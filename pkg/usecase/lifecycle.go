package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"github.com/intakebox/intakebox/pkg/utils/async"
	"github.com/intakebox/intakebox/pkg/utils/logging"
)

// loadMutableCase fetches a case and rejects the operation if it has
// already reached the terminal status. Every lifecycle mutation starts
// here: Resolved is immutable, no exceptions.
func (uc *UseCases) loadMutableCase(ctx context.Context, reportID types.ReportID) (*model.Report, error) {
	report, err := uc.repo.Report().Get(ctx, reportID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrReportNotFound, "case not found", goerr.V("report_id", reportID))
		}
		return nil, storeErr(ctx, err, "report.get", "reports/"+reportID.String(), nil)
	}
	if report.IsResolved() {
		return nil, goerr.Wrap(ErrInvalidState, "case is already resolved", goerr.V("report_id", reportID))
	}
	return report, nil
}

func (uc *UseCases) getIdentities(ctx context.Context, ids []types.IdentityID) ([]*model.Identity, error) {
	identities := make([]*model.Identity, 0, len(ids))
	for _, id := range ids {
		identity, err := uc.repo.Identity().Get(ctx, id)
		if err != nil {
			if errors.Is(err, interfaces.ErrNotFound) {
				return nil, goerr.Wrap(ErrIdentityNotFound, "assignee not found", goerr.V("identity_id", id))
			}
			return nil, storeErr(ctx, err, "identity.get", "identities/"+id.String(), nil)
		}
		identities = append(identities, identity)
	}
	return identities, nil
}

func (uc *UseCases) updateCase(ctx context.Context, report *model.Report) (*model.Report, error) {
	updated, err := uc.repo.Report().Update(ctx, report)
	if err != nil {
		return nil, storeErr(ctx, err, "report.update", "reports/"+report.ID.String(), report.Status)
	}
	return updated, nil
}

// AssignCase sets a single assignee on the case. Assigning a fresh case
// moves it from New to In Progress.
func (uc *UseCases) AssignCase(ctx context.Context, reportID types.ReportID, identityID types.IdentityID) (*model.Report, error) {
	actor, err := requireCaseManager(ctx)
	if err != nil {
		return nil, err
	}
	report, err := uc.loadMutableCase(ctx, reportID)
	if err != nil {
		return nil, err
	}
	assignees, err := uc.getIdentities(ctx, []types.IdentityID{identityID})
	if err != nil {
		return nil, err
	}

	report.AssigneeIDs = []types.IdentityID{identityID}
	if report.Status == types.StatusNew {
		report.Status = types.StatusInProgress
	}

	updated, err := uc.updateCase(ctx, report)
	if err != nil {
		return nil, err
	}

	action := fmt.Sprintf("assigned the case to %s", assignees[0].Name)
	if err := uc.appendAudit(ctx, reportID, model.ActorRef{ID: actor.ID, Name: actor.Name}, action); err != nil {
		return nil, err
	}
	return updated, nil
}

// TransferCase replaces the entire assignee set
func (uc *UseCases) TransferCase(ctx context.Context, reportID types.ReportID, identityIDs []types.IdentityID) (*model.Report, error) {
	actor, err := requireCaseManager(ctx)
	if err != nil {
		return nil, err
	}
	if len(identityIDs) == 0 {
		return nil, goerr.Wrap(ErrValidation, "at least one assignee is required")
	}
	report, err := uc.loadMutableCase(ctx, reportID)
	if err != nil {
		return nil, err
	}

	deduped := dedupIdentityIDs(identityIDs)
	assignees, err := uc.getIdentities(ctx, deduped)
	if err != nil {
		return nil, err
	}

	report.AssigneeIDs = deduped
	updated, err := uc.updateCase(ctx, report)
	if err != nil {
		return nil, err
	}

	action := fmt.Sprintf("transferred the case to %s", joinNames(assignees))
	if err := uc.appendAudit(ctx, reportID, model.ActorRef{ID: actor.ID, Name: actor.Name}, action); err != nil {
		return nil, err
	}
	return updated, nil
}

// AddAssignees unions new assignees into the existing set, deduplicated
// by identity ID.
func (uc *UseCases) AddAssignees(ctx context.Context, reportID types.ReportID, identityIDs []types.IdentityID) (*model.Report, error) {
	actor, err := requireCaseManager(ctx)
	if err != nil {
		return nil, err
	}
	if len(identityIDs) == 0 {
		return nil, goerr.Wrap(ErrValidation, "at least one assignee is required")
	}
	report, err := uc.loadMutableCase(ctx, reportID)
	if err != nil {
		return nil, err
	}

	existing := make(map[types.IdentityID]bool, len(report.AssigneeIDs))
	for _, id := range report.AssigneeIDs {
		existing[id] = true
	}

	var added []types.IdentityID
	for _, id := range dedupIdentityIDs(identityIDs) {
		if !existing[id] {
			added = append(added, id)
		}
	}
	if len(added) == 0 {
		return report, nil
	}

	assignees, err := uc.getIdentities(ctx, added)
	if err != nil {
		return nil, err
	}

	report.AssigneeIDs = append(report.AssigneeIDs, added...)
	updated, err := uc.updateCase(ctx, report)
	if err != nil {
		return nil, err
	}

	action := fmt.Sprintf("added %s to the case", joinNames(assignees))
	if err := uc.appendAudit(ctx, reportID, model.ActorRef{ID: actor.ID, Name: actor.Name}, action); err != nil {
		return nil, err
	}
	return updated, nil
}

// ChangeStatus moves the case to another configured status. The reserved
// statuses are never valid targets here: New is set at creation, and the
// terminal states are reachable only through CloseCase.
func (uc *UseCases) ChangeStatus(ctx context.Context, reportID types.ReportID, newStatus types.StatusID) (*model.Report, error) {
	actor, err := requireCaseManager(ctx)
	if err != nil {
		return nil, err
	}

	def, ok := uc.catalog.Lookup(newStatus)
	if !ok {
		return nil, goerr.Wrap(ErrInvalidTransition, "status not in catalog", goerr.V("status", newStatus))
	}
	if newStatus.Reserved() {
		return nil, goerr.Wrap(ErrInvalidTransition, "status is not manually selectable", goerr.V("status", newStatus))
	}

	report, err := uc.loadMutableCase(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.Status == newStatus {
		return report, nil
	}

	oldName := uc.catalog.StatusName(report.Status)
	report.Status = newStatus

	updated, err := uc.updateCase(ctx, report)
	if err != nil {
		return nil, err
	}

	action := fmt.Sprintf("changed status from %s to %s", oldName, def.Name)
	if err := uc.appendAudit(ctx, reportID, model.ActorRef{ID: actor.ID, Name: actor.Name}, action); err != nil {
		return nil, err
	}
	return updated, nil
}

// ChangeSeverity reclassifies the case severity in either direction
func (uc *UseCases) ChangeSeverity(ctx context.Context, reportID types.ReportID, newSeverity types.Severity) (*model.Report, error) {
	actor, err := requireCaseManager(ctx)
	if err != nil {
		return nil, err
	}
	if !newSeverity.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "unknown severity", goerr.V("severity", newSeverity))
	}

	report, err := uc.loadMutableCase(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.Severity == newSeverity {
		return report, nil
	}

	oldSeverity := report.Severity
	report.Severity = newSeverity

	updated, err := uc.updateCase(ctx, report)
	if err != nil {
		return nil, err
	}

	action := fmt.Sprintf("changed severity from %s to %s", oldSeverity, newSeverity)
	if err := uc.appendAudit(ctx, reportID, model.ActorRef{ID: actor.ID, Name: actor.Name}, action); err != nil {
		return nil, err
	}
	return updated, nil
}

// CloseCase moves the case to the terminal Resolved status. A final
// system-authored message carries the closing remarks, and this is the
// only path into the terminal state.
func (uc *UseCases) CloseCase(ctx context.Context, reportID types.ReportID, remarks string) (*model.Report, error) {
	actor, err := requireCaseManager(ctx)
	if err != nil {
		return nil, err
	}
	report, err := uc.loadMutableCase(ctx, reportID)
	if err != nil {
		return nil, err
	}

	report.Status = types.StatusResolved
	updated, err := uc.updateCase(ctx, report)
	if err != nil {
		return nil, err
	}

	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		remarks = "No remarks provided."
	}
	closeMsg := &model.Message{
		ID:       types.NewMessageID(),
		ReportID: reportID,
		Sender:   types.SenderOfficer,
		Content:  fmt.Sprintf("Case closed with the following remarks: %s", remarks),
		SenderInfo: &model.SenderInfo{
			IdentityID: actor.ID,
			Name:       actor.Name,
			AvatarURL:  actor.AvatarURL,
		},
		SentAt: time.Now().UTC(),
	}
	if err := uc.repo.Message().Append(ctx, closeMsg); err != nil {
		return nil, storeErr(ctx, err, "message.append", "reports/"+reportID.String()+"/messages", nil)
	}

	action := `closed the case and marked it as "Resolved"`
	if err := uc.appendAudit(ctx, reportID, model.ActorRef{ID: actor.ID, Name: actor.Name}, action); err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		notified := updated.Clone()
		closedBy := actor.Name
		async.Dispatch(ctx, func(ctx context.Context) error {
			if err := uc.notifier.NotifyClosed(ctx, notified, closedBy); err != nil {
				logging.From(ctx).Warn("failed to notify case close",
					"tracking_code", notified.TrackingCode, "error", err.Error())
			}
			return nil
		})
	}

	return updated, nil
}

func dedupIdentityIDs(ids []types.IdentityID) []types.IdentityID {
	seen := make(map[types.IdentityID]bool, len(ids))
	out := make([]types.IdentityID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
