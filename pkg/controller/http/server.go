package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/intakebox/intakebox/pkg/usecase"
)

// Server routes the public intake surface, the authenticated dashboard
// API, and the share view over one chi router.
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
	authUC *usecase.AuthUseCase
}

// Options configures optional Server behavior
type Options func(*Server)

// WithAuth enables session verification for the dashboard API
func WithAuth(authUC *usecase.AuthUseCase) Options {
	return func(s *Server) {
		s.authUC = authUC
	}
}

// New creates the HTTP server
func New(uc *usecase.UseCases, opts ...Options) *Server {
	s := &Server{
		router: chi.NewRouter(),
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := s.router
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)
	r.Use(sessionMiddleware(s.authUC))

	// public intake surface: no authentication, possession of the
	// tracking code is the capability
	r.Route("/api/reports/track/{code}", func(r chi.Router) {
		r.Get("/", s.trackReport)
		r.Post("/messages", s.postReporterMessage)
		r.Get("/messages/stream", s.streamTrackedMessages)
		r.Post("/attachments/upload-url", s.issueReporterUploadURL)
		r.Post("/attachments", s.recordReporterAttachment)
	})
	r.Post("/api/reports", s.submitReport)

	// share view: token in the path is the capability
	r.Get("/share/{token}", s.resolveShare)
	r.Get("/api/share/{token}", s.resolveShare)

	// authenticated dashboard API
	r.Group(func(r chi.Router) {
		r.Use(requireIdentity)

		r.Get("/api/auth/me", s.currentIdentity)
		r.Get("/api/catalog/statuses", s.listStatuses)

		r.Route("/api/reports/{id}", func(r chi.Router) {
			r.Get("/", s.getReport)
			r.Delete("/", s.deleteReport)
			r.Post("/assign", s.assignCase)
			r.Post("/transfer", s.transferCase)
			r.Post("/assignees", s.addAssignees)
			r.Post("/status", s.changeStatus)
			r.Post("/severity", s.changeSeverity)
			r.Post("/close", s.closeCase)
			r.Get("/messages", s.listMessages)
			r.Post("/messages", s.postOfficerMessage)
			r.Get("/messages/stream", s.streamMessages)
			r.Get("/attachments", s.listAttachments)
			r.Post("/attachments", s.recordAttachment)
			r.Post("/attachments/upload-url", s.issueUploadURL)
			r.Get("/audit", s.listCaseAudit)
		})
		r.Get("/api/reports", s.listReports)

		r.Post("/api/share", s.issueShareLink)
		r.Get("/api/audit", s.listAudit)

		r.Route("/api/identities", func(r chi.Router) {
			r.Get("/", s.listIdentities)
			r.Post("/", s.inviteIdentity)
			r.Put("/{id}", s.updateIdentity)
			r.Delete("/{id}", s.deleteIdentity)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
