package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"github.com/intakebox/intakebox/pkg/repository/firestore"
	"github.com/intakebox/intakebox/pkg/repository/memory"
)

func newMemoryRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	repo, err := firestore.New(context.Background(), projectID, databaseID)
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

// newTestReport builds a valid report ready for ReportRepository.Create.
func newTestReport(t *testing.T) *model.Report {
	t.Helper()

	code, err := types.NewTrackingCode()
	gt.NoError(t, err).Required()

	now := time.Now().UTC()
	return &model.Report{
		ID:             types.NewReportID(),
		TrackingCode:   code,
		Title:          "Expense fraud in procurement",
		Content:        "Invoices are approved without receipts for a vendor owned by a relative.",
		Category:       types.CategoryFinancial,
		SubmissionType: types.SubmissionAnonymous,
		Severity:       types.SeverityMedium,
		Status:         types.StatusNew,
		SubmittedAt:    now,
		UpdatedAt:      now,
	}
}

func newTestMessage(t *testing.T, reportID types.ReportID, sentAt time.Time, content string) *model.Message {
	t.Helper()

	return &model.Message{
		ID:       types.NewMessageID(),
		ReportID: reportID,
		Sender:   types.SenderReporter,
		Content:  content,
		SentAt:   sentAt,
	}
}

func newTestAuditEntry(reportID types.ReportID, action string, ts time.Time) *model.AuditEntry {
	return &model.AuditEntry{
		ID:        types.NewAuditID(),
		ReportID:  reportID,
		Actor:     model.ActorRef{ID: "officer-1", Name: "Dana Officer"},
		Action:    action,
		Timestamp: ts,
	}
}

func newTestIdentity(id string, role types.Role) *model.Identity {
	return &model.Identity{
		ID:    types.IdentityID(id),
		Name:  fmt.Sprintf("User %s", id),
		Email: fmt.Sprintf("%s@example.com", id),
		Role:  role,
	}
}
