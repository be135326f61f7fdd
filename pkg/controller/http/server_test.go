package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	controller "github.com/intakebox/intakebox/pkg/controller/http"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"github.com/intakebox/intakebox/pkg/repository/memory"
	"github.com/intakebox/intakebox/pkg/usecase"
)

type cannedAdvisor struct{}

func (cannedAdvisor) Classify(ctx context.Context, content string) (*interfaces.Classification, error) {
	return &interfaces.Classification{Severity: types.SeverityHigh, Reasoning: "credible hazard"}, nil
}

func (cannedAdvisor) Summarize(ctx context.Context, content string) (*interfaces.CaseSummary, error) {
	return &interfaces.CaseSummary{Summary: "Unsafe scaffolding reported.", RiskAssessment: "Injury risk."}, nil
}

func (cannedAdvisor) SuggestSteps(ctx context.Context, content string, severity types.Severity) (*interfaces.StepSuggestion, error) {
	return &interfaces.StepSuggestion{Steps: []string{"Interview foreman"}, Reasoning: "Start on site."}, nil
}

type serverEnv struct {
	repo         interfaces.Repository
	server       *controller.Server
	officerToken string
	adminToken   string
	officer      *model.Identity
	admin        *model.Identity
}

func newServerEnv(t *testing.T) *serverEnv {
	t.Helper()

	repo := memory.New()
	uc := usecase.New(repo,
		usecase.WithAdvisor(cannedAdvisor{}),
		usecase.WithBaseURL("https://intakebox.example.com"),
	)
	authUC := usecase.NewAuthUseCase(repo, []byte("test-session-secret"))

	officer := &model.Identity{ID: "officer-1", Name: "Dana Officer", Email: "dana@example.com", Role: types.RoleOfficer}
	admin := &model.Identity{ID: "admin-1", Name: "Alex Admin", Email: "alex@example.com", Role: types.RoleAdmin}
	ctx := context.Background()
	gt.NoError(t, repo.Identity().Put(ctx, officer)).Required()
	gt.NoError(t, repo.Identity().Put(ctx, admin)).Required()

	officerToken, err := authUC.IssueSession(officer, time.Hour)
	gt.NoError(t, err).Required()
	adminToken, err := authUC.IssueSession(admin, time.Hour)
	gt.NoError(t, err).Required()

	return &serverEnv{
		repo:         repo,
		server:       controller.New(uc, controller.WithAuth(authUC)),
		officerToken: officerToken,
		adminToken:   adminToken,
		officer:      officer,
		admin:        admin,
	}
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *serverEnv) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, *apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		gt.NoError(t, json.NewEncoder(&buf).Encode(body)).Required()
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)

	var resp apiResponse
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	return rec, &resp
}

func (e *serverEnv) submit(t *testing.T) string {
	t.Helper()

	rec, resp := e.request(t, http.MethodPost, "/api/reports", "", map[string]string{
		"title":          "Unsafe scaffolding on site B",
		"content":        "The scaffolding on the north face sways visibly and is missing cross-braces.",
		"category":       "Safety",
		"submissionType": "anonymous",
	})
	gt.Value(t, rec.Code).Equal(http.StatusCreated)

	var data struct {
		ReportID string `json:"reportId"`
	}
	gt.NoError(t, json.Unmarshal(resp.Data, &data)).Required()
	return data.ReportID
}

func (e *serverEnv) reportID(t *testing.T, code string) string {
	t.Helper()

	report, err := e.repo.Report().GetByTrackingCode(context.Background(), types.TrackingCode(code))
	gt.NoError(t, err).Required()
	return report.ID.String()
}

func TestSubmitAndTrack(t *testing.T) {
	env := newServerEnv(t)

	code := env.submit(t)
	gt.Bool(t, regexp.MustCompile(`^IB-[0-9A-Z]{4}-[0-9A-Z]{6}$`).MatchString(code)).True()

	rec, resp := env.request(t, http.MethodGet, "/api/reports/track/"+code, "", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Bool(t, resp.Success).True()

	var data struct {
		Report struct {
			TrackingCode string `json:"trackingCode"`
			Status       string `json:"status"`
			Severity     string `json:"severity"`
			Reporter     *struct {
				Email string `json:"email"`
			} `json:"reporter"`
		} `json:"report"`
		Messages []json.RawMessage `json:"messages"`
	}
	gt.NoError(t, json.Unmarshal(resp.Data, &data)).Required()
	gt.Value(t, data.Report.TrackingCode).Equal(code)
	gt.Value(t, data.Report.Status).Equal("new")
	gt.Value(t, data.Report.Severity).Equal("High")
	gt.Value(t, data.Report.Reporter).Nil()
	gt.Array(t, data.Messages).Length(0)
}

func TestTrackUnknownCode(t *testing.T) {
	env := newServerEnv(t)

	rec, resp := env.request(t, http.MethodGet, "/api/reports/track/IB-ZZZZ-ZZZZZZ", "", nil)
	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	gt.Bool(t, resp.Success).False()
}

func TestSubmitValidation(t *testing.T) {
	env := newServerEnv(t)

	rec, resp := env.request(t, http.MethodPost, "/api/reports", "", map[string]string{
		"title":          "",
		"content":        "no title given",
		"category":       "Safety",
		"submissionType": "anonymous",
	})
	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	gt.Bool(t, resp.Success).False()
}

func TestReporterMessageExchange(t *testing.T) {
	env := newServerEnv(t)
	code := env.submit(t)
	id := env.reportID(t, code)

	rec, _ := env.request(t, http.MethodPost, "/api/reports/track/"+code+"/messages", "", map[string]string{
		"content": "Additional detail: the missing braces are on level 3.",
	})
	gt.Value(t, rec.Code).Equal(http.StatusCreated)

	rec, _ = env.request(t, http.MethodPost, "/api/reports/"+id+"/messages", env.officerToken, map[string]string{
		"content": "Thank you, we are looking into it.",
	})
	gt.Value(t, rec.Code).Equal(http.StatusCreated)

	rec, resp := env.request(t, http.MethodGet, "/api/reports/track/"+code, "", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var data struct {
		Messages []struct {
			Sender     string `json:"sender"`
			SenderInfo *struct {
				Name string `json:"name"`
			} `json:"senderInfo"`
		} `json:"messages"`
	}
	gt.NoError(t, json.Unmarshal(resp.Data, &data)).Required()
	gt.Array(t, data.Messages).Length(2)
	gt.Value(t, data.Messages[0].Sender).Equal("reporter")
	gt.Value(t, data.Messages[1].Sender).Equal("officer")
	gt.Value(t, data.Messages[1].SenderInfo.Name).Equal("Dana Officer")

	rec, _ = env.request(t, http.MethodPost, "/api/reports/track/"+code+"/messages", "", map[string]string{
		"content": "   ",
	})
	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestDashboardRequiresSession(t *testing.T) {
	env := newServerEnv(t)

	rec, resp := env.request(t, http.MethodGet, "/api/reports", "", nil)
	gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)
	gt.Bool(t, resp.Success).False()

	rec, _ = env.request(t, http.MethodGet, "/api/reports", "not-a-token", nil)
	gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)

	rec, _ = env.request(t, http.MethodGet, "/api/reports", env.officerToken, nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
}

func TestSessionCookie(t *testing.T) {
	env := newServerEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "intakebox_session", Value: env.officerToken})
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp apiResponse
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()

	var data struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}
	gt.NoError(t, json.Unmarshal(resp.Data, &data)).Required()
	gt.Value(t, data.ID).Equal("officer-1")
	gt.Value(t, data.Role).Equal("officer")
}

func TestCaseLifecycleOverHTTP(t *testing.T) {
	env := newServerEnv(t)
	code := env.submit(t)
	id := env.reportID(t, code)

	rec, _ := env.request(t, http.MethodPost, "/api/reports/"+id+"/assign", env.officerToken, map[string]string{
		"identityId": "officer-1",
	})
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	rec, resp := env.request(t, http.MethodPost, "/api/reports/"+id+"/status", env.officerToken, map[string]string{
		"status": "dismissed",
	})
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	var report struct {
		Status     string `json:"status"`
		StatusName string `json:"statusName"`
	}
	gt.NoError(t, json.Unmarshal(resp.Data, &report)).Required()
	gt.Value(t, report.Status).Equal("dismissed")
	gt.Value(t, report.StatusName).Equal("Dismissed")

	// reserved statuses are rejected as manual targets
	rec, _ = env.request(t, http.MethodPost, "/api/reports/"+id+"/status", env.officerToken, map[string]string{
		"status": "resolved",
	})
	gt.Value(t, rec.Code).Equal(http.StatusConflict)

	rec, _ = env.request(t, http.MethodPost, "/api/reports/"+id+"/close", env.officerToken, map[string]string{
		"remarks": "Braces replaced and inspected.",
	})
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	// resolved cases refuse further mutation
	rec, _ = env.request(t, http.MethodPost, "/api/reports/"+id+"/severity", env.officerToken, map[string]string{
		"severity": "Low",
	})
	gt.Value(t, rec.Code).Equal(http.StatusConflict)

	rec, resp = env.request(t, http.MethodGet, "/api/reports/"+id+"/audit", env.officerToken, nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	var entries []struct {
		Action string `json:"action"`
	}
	gt.NoError(t, json.Unmarshal(resp.Data, &entries)).Required()
	gt.Array(t, entries).Length(3)
}

func TestDeleteReportRequiresAdmin(t *testing.T) {
	env := newServerEnv(t)
	code := env.submit(t)
	id := env.reportID(t, code)

	rec, _ := env.request(t, http.MethodDelete, "/api/reports/"+id, env.officerToken, nil)
	gt.Value(t, rec.Code).Equal(http.StatusForbidden)

	rec, _ = env.request(t, http.MethodDelete, "/api/reports/"+id, env.adminToken, nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	rec, _ = env.request(t, http.MethodGet, "/api/reports/track/"+code, "", nil)
	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
}

func TestShareLinkOverHTTP(t *testing.T) {
	env := newServerEnv(t)
	code := env.submit(t)
	id := env.reportID(t, code)

	rec, resp := env.request(t, http.MethodPost, "/api/share", env.officerToken, map[string]any{
		"reportId": id,
		"ttlDays":  7,
	})
	gt.Value(t, rec.Code).Equal(http.StatusCreated)

	var share struct {
		Token string `json:"token"`
		URL   string `json:"url"`
	}
	gt.NoError(t, json.Unmarshal(resp.Data, &share)).Required()
	gt.Value(t, share.URL).Equal("https://intakebox.example.com/share/" + share.Token)

	rec, resp = env.request(t, http.MethodGet, "/api/share/"+share.Token, "", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	var shared struct {
		TrackingCode string `json:"trackingCode"`
	}
	gt.NoError(t, json.Unmarshal(resp.Data, &shared)).Required()
	gt.Value(t, shared.TrackingCode).Equal(code)

	rec, _ = env.request(t, http.MethodPost, "/api/share", env.officerToken, map[string]any{
		"reportId": id,
		"ttlDays":  14,
	})
	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

	rec, _ = env.request(t, http.MethodGet, "/api/share/"+"A0000000000000000000", "", nil)
	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
}

func TestStatusCatalogEndpoint(t *testing.T) {
	env := newServerEnv(t)

	rec, resp := env.request(t, http.MethodGet, "/api/catalog/statuses", env.officerToken, nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var statuses []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Reserved bool   `json:"reserved"`
	}
	gt.NoError(t, json.Unmarshal(resp.Data, &statuses)).Required()
	gt.Array(t, statuses).Length(6)

	reserved := map[string]bool{}
	for _, s := range statuses {
		reserved[s.ID] = s.Reserved
	}
	gt.Bool(t, reserved["new"]).True()
	gt.Bool(t, reserved["resolved"]).True()
	gt.Bool(t, reserved["case-closed"]).True()
	gt.Bool(t, reserved["dismissed"]).False()
}

func TestIdentityEndpoints(t *testing.T) {
	env := newServerEnv(t)

	rec, resp := env.request(t, http.MethodPost, "/api/identities", env.adminToken, map[string]string{
		"name":  "Robin Officer",
		"email": "robin@example.com",
		"role":  "officer",
	})
	gt.Value(t, rec.Code).Equal(http.StatusCreated)

	var invited struct {
		ID string `json:"id"`
	}
	gt.NoError(t, json.Unmarshal(resp.Data, &invited)).Required()

	rec, _ = env.request(t, http.MethodPost, "/api/identities", env.officerToken, map[string]string{
		"name":  "Sam Intruder",
		"email": "sam@example.com",
		"role":  "admin",
	})
	gt.Value(t, rec.Code).Equal(http.StatusForbidden)

	rec, resp = env.request(t, http.MethodGet, "/api/identities", env.officerToken, nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	var identities []json.RawMessage
	gt.NoError(t, json.Unmarshal(resp.Data, &identities)).Required()
	gt.Array(t, identities).Length(3)

	rec, _ = env.request(t, http.MethodDelete, "/api/identities/"+invited.ID, env.adminToken, nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
}

func TestMessageStream(t *testing.T) {
	env := newServerEnv(t)
	code := env.submit(t)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/reports/track/"+code+"/messages/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		defer close(done)
		env.server.ServeHTTP(rec, req)
	}()

	// backlog is empty; post one message and expect it on the stream
	time.Sleep(100 * time.Millisecond)
	env.request(t, http.MethodPost, "/api/reports/track/"+code+"/messages", "", map[string]string{
		"content": "First update from the reporter.",
	})
	time.Sleep(300 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("stream handler did not return after cancel")
	}

	gt.Value(t, rec.Header().Get("Content-Type")).Equal("text/event-stream")
	body := rec.Body.String()
	gt.Bool(t, regexp.MustCompile(`data: \{.*"content":"First update from the reporter\."`).MatchString(body)).True()
}
