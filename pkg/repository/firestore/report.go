package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"google.golang.org/api/iterator"
)

const reportsCollection = "reports"

type reporterDoc struct {
	Name  string `firestore:"Name"`
	Email string `firestore:"Email"`
}

type advisoryDoc struct {
	Summary        string   `firestore:"Summary"`
	RiskAssessment string   `firestore:"RiskAssessment"`
	SuggestedSteps []string `firestore:"SuggestedSteps"`
	Reasoning      string   `firestore:"Reasoning"`
}

type reportDoc struct {
	ID             string       `firestore:"ID"`
	TrackingCode   string       `firestore:"TrackingCode"`
	Title          string       `firestore:"Title"`
	Content        string       `firestore:"Content"`
	Category       string       `firestore:"Category"`
	SubmissionType string       `firestore:"SubmissionType"`
	Severity       string       `firestore:"Severity"`
	Status         string       `firestore:"Status"`
	AssigneeIDs    []string     `firestore:"AssigneeIDs"`
	Reporter       *reporterDoc `firestore:"Reporter"`
	Advisory       *advisoryDoc `firestore:"Advisory"`
	SubmittedAt    time.Time    `firestore:"SubmittedAt"`
	UpdatedAt      time.Time    `firestore:"UpdatedAt"`
}

func toReportDoc(r *model.Report) *reportDoc {
	doc := &reportDoc{
		ID:             r.ID.String(),
		TrackingCode:   r.TrackingCode.String(),
		Title:          r.Title,
		Content:        r.Content,
		Category:       r.Category.String(),
		SubmissionType: r.SubmissionType.String(),
		Severity:       r.Severity.String(),
		Status:         r.Status.String(),
		AssigneeIDs:    make([]string, 0, len(r.AssigneeIDs)),
		SubmittedAt:    r.SubmittedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	for _, id := range r.AssigneeIDs {
		doc.AssigneeIDs = append(doc.AssigneeIDs, id.String())
	}
	if r.Reporter != nil {
		doc.Reporter = &reporterDoc{Name: r.Reporter.Name, Email: r.Reporter.Email}
	}
	if r.Advisory != nil {
		doc.Advisory = &advisoryDoc{
			Summary:        r.Advisory.Summary,
			RiskAssessment: r.Advisory.RiskAssessment,
			SuggestedSteps: r.Advisory.SuggestedSteps,
			Reasoning:      r.Advisory.Reasoning,
		}
	}
	return doc
}

func fromReportDoc(d *reportDoc) *model.Report {
	report := &model.Report{
		ID:             types.ReportID(d.ID),
		TrackingCode:   types.TrackingCode(d.TrackingCode),
		Title:          d.Title,
		Content:        d.Content,
		Category:       types.Category(d.Category),
		SubmissionType: types.SubmissionType(d.SubmissionType),
		Severity:       types.Severity(d.Severity),
		Status:         types.StatusID(d.Status),
		AssigneeIDs:    make([]types.IdentityID, 0, len(d.AssigneeIDs)),
		SubmittedAt:    d.SubmittedAt,
		UpdatedAt:      d.UpdatedAt,
	}
	for _, id := range d.AssigneeIDs {
		report.AssigneeIDs = append(report.AssigneeIDs, types.IdentityID(id))
	}
	if d.Reporter != nil {
		report.Reporter = &model.Reporter{Name: d.Reporter.Name, Email: d.Reporter.Email}
	}
	if d.Advisory != nil {
		report.Advisory = &model.Advisory{
			Summary:        d.Advisory.Summary,
			RiskAssessment: d.Advisory.RiskAssessment,
			SuggestedSteps: d.Advisory.SuggestedSteps,
			Reasoning:      d.Advisory.Reasoning,
		}
	}
	return report
}

type reportRepository struct {
	client *firestore.Client
}

func newReportRepository(client *firestore.Client) *reportRepository {
	return &reportRepository{client: client}
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	docRef := r.client.Collection(reportsCollection).Doc(report.ID.String())
	if _, err := docRef.Create(ctx, toReportDoc(report)); err != nil {
		return wrapStoreErr(err, "failed to create report", goerr.V("id", report.ID))
	}
	return nil
}

func (r *reportRepository) Get(ctx context.Context, id types.ReportID) (*model.Report, error) {
	docSnap, err := r.client.Collection(reportsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to get report", goerr.V("id", id))
	}

	var doc reportDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report", goerr.V("id", id))
	}
	return fromReportDoc(&doc), nil
}

func (r *reportRepository) GetByTrackingCode(ctx context.Context, code types.TrackingCode) (*model.Report, error) {
	iter := r.client.Collection(reportsCollection).
		Where("TrackingCode", "==", code.String()).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(ErrNotFound, "report not found", goerr.V("code", code))
	}
	if err != nil {
		return nil, wrapStoreErr(err, "failed to query report by tracking code", goerr.V("code", code))
	}

	var doc reportDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report", goerr.V("code", code))
	}
	return fromReportDoc(&doc), nil
}

func (r *reportRepository) List(ctx context.Context) ([]*model.Report, error) {
	iter := r.client.Collection(reportsCollection).
		OrderBy("SubmittedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var reports []*model.Report
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr(err, "failed to iterate reports")
		}

		var doc reportDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode report", goerr.V("doc_id", docSnap.Ref.ID))
		}
		reports = append(reports, fromReportDoc(&doc))
	}
	return reports, nil
}

func (r *reportRepository) Update(ctx context.Context, report *model.Report) (*model.Report, error) {
	docRef := r.client.Collection(reportsCollection).Doc(report.ID.String())

	existing, err := docRef.Get(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to check report existence", goerr.V("id", report.ID))
	}

	var existingDoc reportDoc
	if err := existing.DataTo(&existingDoc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report", goerr.V("id", report.ID))
	}

	updated := report.Clone()
	updated.SubmittedAt = existingDoc.SubmittedAt
	updated.UpdatedAt = time.Now().UTC()

	if _, err := docRef.Set(ctx, toReportDoc(updated)); err != nil {
		return nil, wrapStoreErr(err, "failed to update report", goerr.V("id", report.ID))
	}
	return updated, nil
}

func (r *reportRepository) Delete(ctx context.Context, id types.ReportID) error {
	docRef := r.client.Collection(reportsCollection).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		return wrapStoreErr(err, "failed to check report existence", goerr.V("id", id))
	}
	if _, err := docRef.Delete(ctx); err != nil {
		return wrapStoreErr(err, "failed to delete report", goerr.V("id", id))
	}
	return nil
}
