package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"github.com/intakebox/intakebox/pkg/usecase"
)

func TestPostMessages(t *testing.T) {
	t.Run("reporter and officer exchange in one channel", func(t *testing.T) {
		env := newTestEnv(t)
		report := env.submit(t)
		ctx := context.Background()

		_, err := env.uc.PostReporterMessage(ctx, report.TrackingCode, "I have photos of the scaffolding.")
		gt.NoError(t, err).Required()

		officerMsg, err := env.uc.PostOfficerMessage(env.officerCtx(), report.ID, "Please share them here.")
		gt.NoError(t, err).Required()
		gt.Value(t, officerMsg.Sender).Equal(types.SenderOfficer)
		gt.Value(t, officerMsg.SenderInfo).NotNil()
		gt.Value(t, officerMsg.SenderInfo.IdentityID).Equal(env.officer.ID)

		msgs, err := env.uc.ListMessages(env.officerCtx(), report.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, msgs).Length(2)
		gt.Value(t, msgs[0].Sender).Equal(types.SenderReporter)
		gt.Value(t, msgs[0].SenderInfo).Nil()
	})

	t.Run("tracking code is normalized before lookup", func(t *testing.T) {
		env := newTestEnv(t)
		report := env.submit(t)

		lower := types.TrackingCode("  " + string(report.TrackingCode) + " ")
		_, err := env.uc.PostReporterMessage(context.Background(), lower, "still watching this")
		gt.NoError(t, err)
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		report := env.submit(t)

		_, err := env.uc.PostReporterMessage(context.Background(), report.TrackingCode, "   \n\t")
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()

		_, err = env.uc.PostOfficerMessage(env.officerCtx(), report.ID, "")
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})

	t.Run("unknown tracking code fails", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.PostReporterMessage(context.Background(), "IB-ZZZZ-ZZZZZZ", "hello?")
		gt.Bool(t, errors.Is(err, usecase.ErrReportNotFound)).True()
	})
}

func TestListMessagesOrdering(t *testing.T) {
	// messages inserted with skewed client timestamps still list in
	// server-timestamp order
	env := newTestEnv(t)
	report := env.submit(t)
	ctx := context.Background()

	base := time.Now().UTC()
	late := &model.Message{
		ID: types.NewMessageID(), ReportID: report.ID,
		Sender: types.SenderReporter, Content: "second", SentAt: base.Add(time.Second),
	}
	early := &model.Message{
		ID: types.NewMessageID(), ReportID: report.ID,
		Sender: types.SenderReporter, Content: "first", SentAt: base,
	}
	gt.NoError(t, env.repo.Message().Append(ctx, late)).Required()
	gt.NoError(t, env.repo.Message().Append(ctx, early)).Required()

	msgs, err := env.uc.ListMessages(env.officerCtx(), report.ID)
	gt.NoError(t, err).Required()
	gt.Array(t, msgs).Length(2)
	gt.Value(t, msgs[0].Content).Equal("first")
	gt.Value(t, msgs[1].Content).Equal("second")
}

func TestWatchTrackedMessages(t *testing.T) {
	env := newTestEnv(t)
	report := env.submit(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ch, err := env.uc.WatchTrackedMessages(ctx, report.TrackingCode)
	gt.NoError(t, err).Required()

	_, err = env.uc.PostReporterMessage(ctx, report.TrackingCode, "anyone there?")
	gt.NoError(t, err).Required()

	select {
	case msg, ok := <-ch:
		gt.Bool(t, ok).True()
		gt.Value(t, msg.Content).Equal("anyone there?")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for streamed message")
	}
}

func TestTrackReport(t *testing.T) {
	t.Run("returns redacted case and timeline", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()

		report, err := env.uc.SubmitReport(ctx, &usecase.SubmitInput{
			Title:          "Payroll irregularities",
			Content:        "Several contractors have been paid twice for the same invoice period.",
			Category:       "Financial",
			SubmissionType: "confidential",
			Name:           "Jamie Doe",
			Email:          "jamie@example.com",
		})
		gt.NoError(t, err).Required()

		_, err = env.uc.PostReporterMessage(ctx, report.TrackingCode, "following up")
		gt.NoError(t, err).Required()

		view, err := env.uc.TrackReport(ctx, report.TrackingCode)
		gt.NoError(t, err).Required()
		gt.Value(t, view.Report.TrackingCode).Equal(report.TrackingCode)
		gt.Value(t, view.Report.Reporter).Nil()
		gt.Array(t, view.Messages).Length(1)
	})

	t.Run("malformed code yields validation error", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.TrackReport(context.Background(), "not-a-code")
		gt.Bool(t, errors.Is(err, usecase.ErrValidation)).True()
	})
}
