package http

import (
	"time"

	"github.com/intakebox/intakebox/pkg/domain/model"
)

type reporterView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type advisoryView struct {
	Summary        string   `json:"summary"`
	RiskAssessment string   `json:"riskAssessment"`
	SuggestedSteps []string `json:"suggestedSteps"`
	Reasoning      string   `json:"reasoning"`
}

type reportView struct {
	ID             string        `json:"id"`
	TrackingCode   string        `json:"trackingCode"`
	Title          string        `json:"title"`
	Content        string        `json:"content"`
	Category       string        `json:"category"`
	SubmissionType string        `json:"submissionType"`
	Severity       string        `json:"severity"`
	Status         string        `json:"status"`
	StatusName     string        `json:"statusName"`
	AssigneeIDs    []string      `json:"assigneeIds"`
	Reporter       *reporterView `json:"reporter,omitempty"`
	Advisory       *advisoryView `json:"advisory,omitempty"`
	SubmittedAt    time.Time     `json:"submittedAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func (s *Server) toReportView(report *model.Report) *reportView {
	view := &reportView{
		ID:             report.ID.String(),
		TrackingCode:   report.TrackingCode.String(),
		Title:          report.Title,
		Content:        report.Content,
		Category:       report.Category.String(),
		SubmissionType: report.SubmissionType.String(),
		Severity:       report.Severity.String(),
		Status:         report.Status.String(),
		StatusName:     s.uc.Catalog().StatusName(report.Status),
		AssigneeIDs:    make([]string, 0, len(report.AssigneeIDs)),
		SubmittedAt:    report.SubmittedAt,
		UpdatedAt:      report.UpdatedAt,
	}
	for _, id := range report.AssigneeIDs {
		view.AssigneeIDs = append(view.AssigneeIDs, id.String())
	}
	if report.Reporter != nil {
		view.Reporter = &reporterView{Name: report.Reporter.Name, Email: report.Reporter.Email}
	}
	if report.Advisory != nil {
		view.Advisory = &advisoryView{
			Summary:        report.Advisory.Summary,
			RiskAssessment: report.Advisory.RiskAssessment,
			SuggestedSteps: report.Advisory.SuggestedSteps,
			Reasoning:      report.Advisory.Reasoning,
		}
	}
	return view
}

func (s *Server) toReportViews(reports []*model.Report) []*reportView {
	views := make([]*reportView, 0, len(reports))
	for _, report := range reports {
		views = append(views, s.toReportView(report))
	}
	return views
}

type senderInfoView struct {
	IdentityID string `json:"identityId"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatarUrl"`
}

type messageView struct {
	ID         string          `json:"id"`
	Sender     string          `json:"sender"`
	Content    string          `json:"content"`
	SenderInfo *senderInfoView `json:"senderInfo,omitempty"`
	SentAt     time.Time       `json:"sentAt"`
}

func toMessageView(msg *model.Message) *messageView {
	view := &messageView{
		ID:      msg.ID.String(),
		Sender:  msg.Sender.String(),
		Content: msg.Content,
		SentAt:  msg.SentAt,
	}
	if msg.SenderInfo != nil {
		view.SenderInfo = &senderInfoView{
			IdentityID: msg.SenderInfo.IdentityID.String(),
			Name:       msg.SenderInfo.Name,
			AvatarURL:  msg.SenderInfo.AvatarURL,
		}
	}
	return view
}

func toMessageViews(msgs []*model.Message) []*messageView {
	views := make([]*messageView, 0, len(msgs))
	for _, msg := range msgs {
		views = append(views, toMessageView(msg))
	}
	return views
}

type attachmentView struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	UploadedAt time.Time `json:"uploadedAt"`
	UploadedBy string    `json:"uploadedBy"`
}

func toAttachmentViews(attachments []*model.Attachment) []*attachmentView {
	views := make([]*attachmentView, 0, len(attachments))
	for _, a := range attachments {
		views = append(views, &attachmentView{
			ID:         a.ID.String(),
			URL:        a.URL,
			FileName:   a.FileName,
			FileType:   a.FileType,
			UploadedAt: a.UploadedAt,
			UploadedBy: a.UploadedBy.Name,
		})
	}
	return views
}

type auditView struct {
	ID        string    `json:"id"`
	ReportID  string    `json:"reportId,omitempty"`
	ActorID   string    `json:"actorId"`
	ActorName string    `json:"actorName"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

func toAuditViews(entries []*model.AuditEntry) []*auditView {
	views := make([]*auditView, 0, len(entries))
	for _, e := range entries {
		views = append(views, &auditView{
			ID:        e.ID.String(),
			ReportID:  e.ReportID.String(),
			ActorID:   e.Actor.ID.String(),
			ActorName: e.Actor.Name,
			Action:    e.Action,
			Timestamp: e.Timestamp,
		})
	}
	return views
}

type identityView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
	Role      string `json:"role"`
}

func toIdentityView(identity *model.Identity) *identityView {
	return &identityView{
		ID:        identity.ID.String(),
		Name:      identity.Name,
		Email:     identity.Email,
		AvatarURL: identity.AvatarURL,
		Role:      identity.Role.String(),
	}
}
