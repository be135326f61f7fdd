package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

func reportID(r *http.Request) types.ReportID {
	return types.ReportID(chi.URLParam(r, "id"))
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.uc.GetReport(r.Context(), reportID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, s.toReportView(report))
}

func (s *Server) listReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.uc.ListReports(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, s.toReportViews(reports))
}

func (s *Server) deleteReport(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.DeleteReport(r.Context(), reportID(r)); err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, nil)
}

func (s *Server) assignCase(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IdentityID string `json:"identityId"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	report, err := s.uc.AssignCase(r.Context(), reportID(r), types.IdentityID(body.IdentityID))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, s.toReportView(report))
}

func identityIDs(raw []string) []types.IdentityID {
	ids := make([]types.IdentityID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, types.IdentityID(id))
	}
	return ids
}

func (s *Server) transferCase(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IdentityIDs []string `json:"identityIds"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	report, err := s.uc.TransferCase(r.Context(), reportID(r), identityIDs(body.IdentityIDs))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, s.toReportView(report))
}

func (s *Server) addAssignees(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IdentityIDs []string `json:"identityIds"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	report, err := s.uc.AddAssignees(r.Context(), reportID(r), identityIDs(body.IdentityIDs))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, s.toReportView(report))
}

func (s *Server) changeStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	report, err := s.uc.ChangeStatus(r.Context(), reportID(r), types.StatusID(body.Status))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, s.toReportView(report))
}

func (s *Server) changeSeverity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Severity string `json:"severity"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	report, err := s.uc.ChangeSeverity(r.Context(), reportID(r), types.Severity(body.Severity))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, s.toReportView(report))
}

func (s *Server) closeCase(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Remarks string `json:"remarks"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	report, err := s.uc.CloseCase(r.Context(), reportID(r), body.Remarks)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, s.toReportView(report))
}

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.uc.ListMessages(r.Context(), reportID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, toMessageViews(msgs))
}

func (s *Server) postOfficerMessage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	msg, err := s.uc.PostOfficerMessage(r.Context(), reportID(r), body.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondCreated(w, r, toMessageView(msg))
}

func (s *Server) listAttachments(w http.ResponseWriter, r *http.Request) {
	attachments, err := s.uc.ListAttachments(r.Context(), reportID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, toAttachmentViews(attachments))
}

func (s *Server) issueUploadURL(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	target, err := s.uc.IssueUploadURL(r.Context(), reportID(r), body.FileName, body.FileType)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, r, map[string]any{
		"uploadUrl": target.UploadURL,
		"publicUrl": target.PublicURL,
		"expiresAt": target.ExpiresAt,
	})
}

func (s *Server) recordAttachment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL      string `json:"url"`
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	attachment, err := s.uc.RecordAttachment(r.Context(), reportID(r), body.URL, body.FileName, body.FileType)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondCreated(w, r, map[string]string{"id": attachment.ID.String()})
}

func (s *Server) listCaseAudit(w http.ResponseWriter, r *http.Request) {
	entries, err := s.uc.ListAuditByReport(r.Context(), reportID(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, toAuditViews(entries))
}
