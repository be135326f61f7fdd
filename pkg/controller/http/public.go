package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"github.com/intakebox/intakebox/pkg/usecase"
)

func (s *Server) submitReport(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title          string `json:"title"`
		Content        string `json:"content"`
		Category       string `json:"category"`
		SubmissionType string `json:"submissionType"`
		Name           string `json:"name"`
		Email          string `json:"email"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	report, err := s.uc.SubmitReport(r.Context(), &usecase.SubmitInput{
		Title:          body.Title,
		Content:        body.Content,
		Category:       body.Category,
		SubmissionType: body.SubmissionType,
		Name:           body.Name,
		Email:          body.Email,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondCreated(w, r, map[string]string{
		"reportId": report.TrackingCode.String(),
	})
}

func trackingCode(r *http.Request) types.TrackingCode {
	return types.NormalizeTrackingCode(chi.URLParam(r, "code"))
}

func (s *Server) trackReport(w http.ResponseWriter, r *http.Request) {
	view, err := s.uc.TrackReport(r.Context(), trackingCode(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, r, map[string]any{
		"report":   s.toReportView(view.Report),
		"messages": toMessageViews(view.Messages),
	})
}

func (s *Server) postReporterMessage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	msg, err := s.uc.PostReporterMessage(r.Context(), trackingCode(r), body.Content)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondCreated(w, r, toMessageView(msg))
}

func (s *Server) issueReporterUploadURL(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	target, err := s.uc.IssueReporterUploadURL(r.Context(), trackingCode(r), body.FileName, body.FileType)
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

func (s *Server) recordReporterAttachment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL      string `json:"url"`
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	reportID, err := s.uc.ReportIDByCode(r.Context(), trackingCode(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	attachment, err := s.uc.RecordAttachment(r.Context(), reportID, body.URL, body.FileName, body.FileType)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondCreated(w, r, map[string]string{"id": attachment.ID.String()})
}

func (s *Server) resolveShare(w http.ResponseWriter, r *http.Request) {
	token := types.ShareToken(chi.URLParam(r, "token"))

	report, err := s.uc.ResolveShareToken(r.Context(), token)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, s.toReportView(report))
}
