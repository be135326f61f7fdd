package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

func runReportRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		report := newTestReport(t)
		report.SubmissionType = types.SubmissionConfidential
		report.Reporter = &model.Reporter{Name: "Jamie Doe", Email: "jamie@example.com"}
		gt.NoError(t, repo.Report().Create(ctx, report)).Required()

		retrieved, err := repo.Report().Get(ctx, report.ID)
		gt.NoError(t, err).Required()

		gt.Value(t, retrieved.ID).Equal(report.ID)
		gt.Value(t, retrieved.TrackingCode).Equal(report.TrackingCode)
		gt.Value(t, retrieved.Title).Equal(report.Title)
		gt.Value(t, retrieved.Status).Equal(types.StatusNew)
		gt.Value(t, retrieved.Severity).Equal(types.SeverityMedium)
		gt.Value(t, retrieved.Reporter).NotNil()
		gt.Value(t, retrieved.Reporter.Email).Equal("jamie@example.com")
	})

	t.Run("Get returns ErrNotFound for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Report().Get(ctx, types.NewReportID())
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("GetByTrackingCode finds the report", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		report := newTestReport(t)
		gt.NoError(t, repo.Report().Create(ctx, report)).Required()

		retrieved, err := repo.Report().GetByTrackingCode(ctx, report.TrackingCode)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.ID).Equal(report.ID)
	})

	t.Run("GetByTrackingCode returns ErrNotFound for unknown code", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Report().GetByTrackingCode(ctx, types.TrackingCode("IB-ZZZZ-ZZZZZZ"))
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("List orders by submission time descending", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		base := time.Now().UTC().Add(-time.Hour)
		var ids []types.ReportID
		for i := 0; i < 3; i++ {
			report := newTestReport(t)
			report.SubmittedAt = base.Add(time.Duration(i) * time.Minute)
			report.UpdatedAt = report.SubmittedAt
			gt.NoError(t, repo.Report().Create(ctx, report)).Required()
			ids = append(ids, report.ID)
		}

		reports, err := repo.Report().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, reports).Length(3)

		// newest first
		gt.Value(t, reports[0].ID).Equal(ids[2])
		gt.Value(t, reports[1].ID).Equal(ids[1])
		gt.Value(t, reports[2].ID).Equal(ids[0])
	})

	t.Run("Update overwrites fields and preserves SubmittedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		report := newTestReport(t)
		gt.NoError(t, repo.Report().Create(ctx, report)).Required()

		report.Status = types.StatusInProgress
		report.Severity = types.SeverityCritical
		report.AssigneeIDs = []types.IdentityID{"officer-1"}

		updated, err := repo.Report().Update(ctx, report)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.StatusInProgress)
		gt.Value(t, updated.Severity).Equal(types.SeverityCritical)
		gt.Array(t, updated.AssigneeIDs).Length(1)

		retrieved, err := repo.Report().Get(ctx, report.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Status).Equal(types.StatusInProgress)
		gt.Bool(t, retrieved.SubmittedAt.Equal(report.SubmittedAt)).True()
		gt.Bool(t, retrieved.UpdatedAt.Before(report.SubmittedAt)).False()
	})

	t.Run("Update returns ErrNotFound for unknown report", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		report := newTestReport(t)
		_, err := repo.Report().Update(ctx, report)
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("Delete removes the report and its code index", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		report := newTestReport(t)
		gt.NoError(t, repo.Report().Create(ctx, report)).Required()
		gt.NoError(t, repo.Report().Delete(ctx, report.ID)).Required()

		_, err := repo.Report().Get(ctx, report.ID)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()

		_, err = repo.Report().GetByTrackingCode(ctx, report.TrackingCode)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})
}

func TestReportRepository_Memory(t *testing.T) {
	runReportRepositoryTest(t, newMemoryRepository)
}

func TestReportRepository_Firestore(t *testing.T) {
	runReportRepositoryTest(t, newFirestoreRepository)
}
