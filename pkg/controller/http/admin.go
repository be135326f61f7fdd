package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/intakebox/intakebox/pkg/domain/model/auth"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"github.com/intakebox/intakebox/pkg/usecase"
)

func (s *Server) currentIdentity(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respondJSON(w, r, http.StatusUnauthorized,
			envelope{Success: false, Message: "authentication required"})
		return
	}
	respondOK(w, r, toIdentityView(identity))
}

func (s *Server) listStatuses(w http.ResponseWriter, r *http.Request) {
	type statusView struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Color    string `json:"color"`
		Reserved bool   `json:"reserved"`
	}

	catalog := s.uc.Catalog()
	views := make([]statusView, 0, len(catalog.Statuses))
	for _, def := range catalog.Statuses {
		views = append(views, statusView{
			ID:       def.ID.String(),
			Name:     def.Name,
			Color:    def.Color,
			Reserved: def.ID.Reserved(),
		})
	}
	respondOK(w, r, views)
}

func (s *Server) issueShareLink(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ReportID string `json:"reportId"`
		TTLDays  int    `json:"ttlDays"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	result, err := s.uc.IssueShareLink(r.Context(), types.ReportID(body.ReportID), body.TTLDays)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondCreated(w, r, map[string]any{
		"token":     result.Link.Token.String(),
		"url":       result.URL,
		"expiresAt": result.Link.ExpiresAt,
	})
}

func (s *Server) listAudit(w http.ResponseWriter, r *http.Request) {
	entries, err := s.uc.ListAudit(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, toAuditViews(entries))
}

func (s *Server) listIdentities(w http.ResponseWriter, r *http.Request) {
	identities, err := s.uc.ListIdentities(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	views := make([]*identityView, 0, len(identities))
	for _, identity := range identities {
		views = append(views, toIdentityView(identity))
	}
	respondOK(w, r, views)
}

func decodeIdentityInput(r *http.Request) (*usecase.IdentityInput, error) {
	var body struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatarUrl"`
		Role      string `json:"role"`
	}
	if err := decodeBody(r, &body); err != nil {
		return nil, err
	}
	return &usecase.IdentityInput{
		Name:      body.Name,
		Email:     body.Email,
		AvatarURL: body.AvatarURL,
		Role:      body.Role,
	}, nil
}

func (s *Server) inviteIdentity(w http.ResponseWriter, r *http.Request) {
	input, err := decodeIdentityInput(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	identity, err := s.uc.InviteIdentity(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondCreated(w, r, toIdentityView(identity))
}

func (s *Server) updateIdentity(w http.ResponseWriter, r *http.Request) {
	input, err := decodeIdentityInput(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	identity, err := s.uc.UpdateIdentity(r.Context(), types.IdentityID(chi.URLParam(r, "id")), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, toIdentityView(identity))
}

func (s *Server) deleteIdentity(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.DeleteIdentity(r.Context(), types.IdentityID(chi.URLParam(r, "id"))); err != nil {
		respondError(w, r, err)
		return
	}
	respondOK(w, r, nil)
}
