package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/openmohaa/mixup/internal/models"
)

func newTestHandler(svc *MockMixupService) *Handler {
	return New(Config{
		Mixup:  svc,
		Logger: zap.NewNop(),
	})
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&MockMixupService{})
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		wantStatus int
	}{
		{"no redis", nil, http.StatusOK},
		{"redis up", &MockPinger{}, http.StatusOK},
		{"redis down", &MockPinger{Err: errors.New("connection refused")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(Config{Mixup: &MockMixupService{}, Redis: tt.pinger, Logger: zap.NewNop()})
			req := httptest.NewRequest("GET", "/ready", nil)
			w := httptest.NewRecorder()

			h.Ready(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestCreateBuild(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		query       string
		body        string
		serviceErr  error
		wantStatus  int
		wantPlayers int
		wantBody    string
	}{
		{
			name:        "json roster",
			contentType: "application/json",
			body:        `{"players":[{"nickname":"Ace","skill":"prem","main":"scout"},{"nickname":"Doc","skill":"MID","main":"medic only"}]}`,
			wantStatus:  http.StatusOK,
			wantPlayers: 2,
			wantBody:    `"id":"mock-build"`,
		},
		{
			name:        "text roster",
			contentType: "text/plain; charset=utf-8",
			body:        "// comment\nprem\tAce\tscout\tsoldier\n\nopen\tNew\tdemoman\n",
			wantStatus:  http.StatusOK,
			wantPlayers: 2,
		},
		{
			name:        "text output",
			contentType: "application/json",
			query:       "?format=text",
			body:        `{"players":[{"nickname":"Ace","skill":"prem","main":"scout"}]}`,
			wantStatus:  http.StatusOK,
			wantPlayers: 1,
			wantBody:    "Team #1\nAce[prem]: scout\nStrength: 16\n",
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        `{"players":[`,
			wantStatus:  http.StatusBadRequest,
			wantBody:    "invalid JSON",
		},
		{
			name:        "validation failure",
			contentType: "application/json",
			body:        `{"players":[{"skill":"prem","main":"scout"}]}`,
			wantStatus:  http.StatusBadRequest,
			wantBody:    "validation failed",
		},
		{
			name:        "mixed case skill",
			contentType: "application/json",
			body:        `{"players":[{"nickname":"Ace","skill":"Prem","main":"Scout"}]}`,
			wantStatus:  http.StatusOK,
			wantPlayers: 1,
		},
		{
			name:        "unknown skill",
			contentType: "application/json",
			body:        `{"players":[{"nickname":"Ace","skill":"legend","main":"scout"}]}`,
			wantStatus:  http.StatusBadRequest,
			wantBody:    "unknown skill tier",
		},
		{
			name:        "empty roster",
			contentType: "application/json",
			body:        `{"players":[]}`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "unknown class",
			contentType: "application/json",
			body:        `{"players":[{"nickname":"Ace","skill":"prem","main":"pyro"}]}`,
			wantStatus:  http.StatusBadRequest,
			wantBody:    "unknown game class",
		},
		{
			name:        "short text line",
			contentType: "text/plain",
			body:        "prem\tAce\n",
			wantStatus:  http.StatusBadRequest,
			wantBody:    "line 1",
		},
		{
			name:        "comments only",
			contentType: "text/plain",
			body:        "// nobody signed up\n",
			wantStatus:  http.StatusBadRequest,
			wantBody:    "no players",
		},
		{
			name:        "domain error from service",
			contentType: "application/json",
			body:        `{"players":[{"nickname":"Ace","skill":"prem","main":"scout"}]}`,
			serviceErr:  fmt.Errorf("tuning: %w", models.ErrInvalidDomainValue),
			wantStatus:  http.StatusBadRequest,
			wantPlayers: 1,
		},
		{
			name:        "service failure",
			contentType: "application/json",
			body:        `{"players":[{"nickname":"Ace","skill":"prem","main":"scout"}]}`,
			serviceErr:  context.DeadlineExceeded,
			wantStatus:  http.StatusInternalServerError,
			wantPlayers: 1,
			wantBody:    "Failed to create build",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockMixupService{}
			if tt.serviceErr != nil {
				svc.CreateBuildFunc = func(ctx context.Context, players []models.PlayerInfo) (*models.BuildView, error) {
					return nil, tt.serviceErr
				}
			}
			h := newTestHandler(svc)

			req := httptest.NewRequest("POST", "/api/v1/builds"+tt.query, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()

			h.CreateBuild(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if len(svc.Received) != tt.wantPlayers {
				t.Errorf("service received %d players, want %d", len(svc.Received), tt.wantPlayers)
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body %q does not contain %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestCreateBuild_InfersClasses(t *testing.T) {
	svc := &MockMixupService{}
	h := newTestHandler(svc)

	body := `{"players":[{"nickname":"Ace","skill":"prem","main":"scout","additional":["soldier"]},` +
		`{"nickname":"Doc","skill":"mid","main":"medic only"},` +
		`{"nickname":"New","skill":"open","main":"demoman"}],"open_skips_nonmain":true}`
	req := httptest.NewRequest("POST", "/api/v1/builds", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.CreateBuild(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(svc.Received) != 3 {
		t.Fatalf("service received %d players, want 3", len(svc.Received))
	}

	ace, doc, rookie := svc.Received[0], svc.Received[1], svc.Received[2]
	if got := len(ace.Classes()); got != 4 {
		t.Errorf("Ace has %d classes, want 4", got)
	}
	if p, err := ace.ClassProficiency(models.Soldier); err != nil || p != models.Additional {
		t.Errorf("Ace soldier = %v, %v; want additional", p, err)
	}
	if got := doc.Classes(); len(got) != 1 || got[0].GameClass() != models.Medic {
		t.Errorf("Doc classes = %v, want medic only", got)
	}
	if got := len(rookie.Classes()); got != 1 {
		t.Errorf("open player with open_skips_nonmain has %d classes, want 1", got)
	}
}

func TestCreateBuild_AdditionalOrderDoesNotMatter(t *testing.T) {
	svc := &MockMixupService{}
	h := newTestHandler(svc)

	body := `{"players":[{"nickname":"X","skill":"mid","main":"medic","additional":["soldier","scout"]},` +
		`{"nickname":"X","skill":"mid","main":"medic","additional":"scout, soldier"}]}`
	req := httptest.NewRequest("POST", "/api/v1/builds", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.CreateBuild(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(svc.Received) != 2 {
		t.Fatalf("service received %d players, want 2", len(svc.Received))
	}
	if svc.Received[0] != svc.Received[1] {
		t.Errorf("same player with reordered classes decoded as %s and %s", svc.Received[0], svc.Received[1])
	}
}

func TestCreateBuild_BodyTooLarge(t *testing.T) {
	svc := &MockMixupService{}
	h := New(Config{Mixup: svc, Logger: zap.NewNop(), MaxBodySize: 16})

	req := httptest.NewRequest("POST", "/api/v1/builds", strings.NewReader(strings.Repeat("x", 64)))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	h.CreateBuild(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected status 413, got %d", w.Code)
	}
	if svc.Received != nil {
		t.Error("service must not be called for an oversized body")
	}
}

func TestRouter(t *testing.T) {
	h := newTestHandler(&MockMixupService{})
	srv := httptest.NewServer(h.Router(RouterConfig{AllowedOrigins: []string{"https://example.org"}}))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/builds", "application/json",
		strings.NewReader(`{"players":[{"nickname":"Ace","skill":"prem","main":"scout"}]}`))
	if err != nil {
		t.Fatalf("POST builds: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Content-Type") != "application/json" {
		t.Errorf("unexpected content type %q", resp.Header.Get("Content-Type"))
	}

	var view models.BuildView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.ID != "mock-build" || len(view.Teams) != 1 {
		t.Errorf("unexpected view: %+v", view)
	}

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		r, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		r.Body.Close()
		if r.StatusCode != http.StatusOK {
			t.Errorf("GET %s: expected status 200, got %d", path, r.StatusCode)
		}
	}

	r, err := http.Get(srv.URL + "/api/v1/builds")
	if err != nil {
		t.Fatalf("GET builds: %v", err)
	}
	r.Body.Close()
	if r.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET builds: expected status 405, got %d", r.StatusCode)
	}
}
