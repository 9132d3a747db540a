package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cognito-assistant/internal/middleware"
	"cognito-assistant/internal/model"
	"cognito-assistant/internal/scheduler"
	"cognito-assistant/pkg/availability"
	"cognito-assistant/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	executeOut scheduler.ExecuteOutput
	executeErr error
	slots      []availability.FreeSlot
	slotsErr   error
	slotsInput scheduler.SlotQueryInput
	bucket     model.Bucket
}

func (m *mockUseCase) Route(ctx context.Context, task model.Task, now time.Time) model.Bucket {
	return m.bucket
}

func (m *mockUseCase) Schedule(ctx context.Context, task model.Task, tl availability.Timeline, now time.Time) scheduler.RoutingDecision {
	return scheduler.RoutingDecision{Bucket: m.bucket}
}

func (m *mockUseCase) FreeSlots(ctx context.Context, input scheduler.SlotQueryInput) ([]availability.FreeSlot, error) {
	m.slotsInput = input
	return m.slots, m.slotsErr
}

func (m *mockUseCase) Execute(ctx context.Context, input scheduler.ExecuteInput) (scheduler.ExecuteOutput, error) {
	return m.executeOut, m.executeErr
}

func setupRouter(uc scheduler.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Generous limit so handler tests never trip the rate limiter.
	RegisterRoutes(r.Group("/api/v1/scheduler"), New(&mockLogger{}, uc), middleware.New(&mockLogger{}, 6000))
	return r
}

func TestExecuteHandler(t *testing.T) {
	uc := &mockUseCase{executeOut: scheduler.ExecuteOutput{
		Processed:    2,
		CardsCreated: 2,
		Results: []scheduler.TaskResult{
			{TaskID: "t1", Subject: "a", Bucket: model.BucketToday, CardURL: "https://trello.test/c/1"},
			{TaskID: "t2", Subject: "b", Bucket: model.BucketLater, CardURL: "https://trello.test/c/2"},
		},
	}}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/execute", strings.NewReader(`{"dry_run":false}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	data := resp.Data.(map[string]interface{})
	if data["processed"].(float64) != 2 {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestExecuteHandler_EmptyBody(t *testing.T) {
	r := setupRouter(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/execute", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("empty body should use defaults, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSlotsHandler(t *testing.T) {
	start := time.Date(2026, 1, 12, 10, 0, 0, 0, time.UTC)
	uc := &mockUseCase{slots: []availability.FreeSlot{
		{Start: start, End: start.Add(30 * time.Minute), GapMinutes: 60},
	}}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/scheduler/slots?duration_minutes=30&from=2026-01-12T09:00:00Z&to=2026-01-12T17:00:00Z", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if uc.slotsInput.DurationMinutes != 30 {
		t.Errorf("duration not passed through: %+v", uc.slotsInput)
	}
	if !uc.slotsInput.From.Equal(time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("window start not passed through: %v", uc.slotsInput.From)
	}
	if !strings.Contains(w.Body.String(), `"gap_minutes":60`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestSlotsHandler_Validation(t *testing.T) {
	r := setupRouter(&mockUseCase{})

	tests := []struct {
		name  string
		query string
	}{
		{"missing duration", ""},
		{"zero duration", "duration_minutes=0"},
		{"bad from", "duration_minutes=30&from=not-a-time"},
		{"bad to", "duration_minutes=30&to=someday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/scheduler/slots?"+tt.query, nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestRouteHandler(t *testing.T) {
	uc := &mockUseCase{bucket: model.BucketTomorrow}
	r := setupRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/route",
		strings.NewReader(`{"subject":"Book flu shot","priority":"Normal","deadline":"tomorrow"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"bucket":"tomorrow"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestSchedulerRoutes_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// 10 req/min gives a burst of one token, so the second immediate
	// request from the same client must be rejected.
	RegisterRoutes(r.Group("/api/v1/scheduler"), New(&mockLogger{}, &mockUseCase{}), middleware.New(&mockLogger{}, 10))

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/execute", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d: %s", first.Code, first.Body.String())
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/execute", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request should be rate limited, got %d", second.Code)
	}
}

func TestRouteHandler_InvalidPriority(t *testing.T) {
	r := setupRouter(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/route",
		strings.NewReader(`{"priority":"Whenever"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid priority, got %d", w.Code)
	}
}
