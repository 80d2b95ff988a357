package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"heater_notifier/internal/models"
	"heater_notifier/internal/service"
)

func TestDecisionHandler(t *testing.T) {
	ev := &mockEvaluator{decision: models.HeaterDecision{TargetState: models.StateOn}}
	r := newTestRouter(&service.Service{Evaluator: ev})

	// missing room → 400 before the evaluator is touched
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/decision?building=ENG", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if ev.calls != 0 {
		t.Fatalf("evaluator called for invalid request")
	}

	// invalid 'at' → 400
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/decision?building=ENG&room=101&at=notatime", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad 'at', got %d", w.Code)
	}

	// valid with 'at'
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/decision?building=ENG&room=101&at=2024-01-03T08:51:00Z", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var d models.HeaterDecision
	if err := json.Unmarshal(w.Body.Bytes(), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d != (models.HeaterDecision{Building: "ENG", Room: "101", TargetState: models.StateOn}) {
		t.Fatalf("unexpected decision: %+v", d)
	}
	if want := time.Date(2024, 1, 3, 8, 51, 0, 0, time.UTC); !ev.lastNow.Equal(want) {
		t.Fatalf("evaluated at %v, want %v", ev.lastNow, want)
	}
}

func TestDecisionHandler_StoreUnavailable(t *testing.T) {
	ev := &mockEvaluator{err: fmt.Errorf("%w: timeout", service.ErrStoreUnavailable)}
	r := newTestRouter(&service.Service{Evaluator: ev})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/decision?building=ENG&room=101", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestParseQueryTime(t *testing.T) {
	if _, err := parseQueryTime("2024-01-03T08:51:00+02:00"); err != nil {
		t.Errorf("RFC3339: %v", err)
	}
	got, err := parseQueryTime("2024-01-03 08:51:00")
	if err != nil {
		t.Fatalf("date-time: %v", err)
	}
	if got.Location() != time.Local || got.Hour() != 8 || got.Minute() != 51 {
		t.Errorf("unexpected parse: %v", got)
	}
	if _, err := parseQueryTime("08:51"); err == nil {
		t.Errorf("expected error for clock-only value")
	}
}
