package handlers

import (
	"context"
	"sync"
	"time"

	"heater_notifier/internal/models"
	"heater_notifier/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockEvaluator struct {
	decision models.HeaterDecision
	err      error

	lastBuilding string
	lastRoom     string
	lastNow      time.Time
	calls        int
}

func (m *mockEvaluator) Evaluate(ctx context.Context, building, room string, now time.Time) (models.HeaterDecision, error) {
	m.calls++
	m.lastBuilding = building
	m.lastRoom = room
	m.lastNow = now
	if m.err != nil {
		return models.HeaterDecision{}, m.err
	}
	d := m.decision
	d.Building, d.Room = building, room
	return d, nil
}

// mockNotifier sends the scripted items, then waits for ctx unless
// returnWhenDone is set.
type mockNotifier struct {
	decisions      []models.HeaterDecision
	degraded       []models.DegradedNotice
	pings          int
	returnWhenDone bool
	err            error

	mu       sync.Mutex
	lastReq  service.StreamRequest
	calls    int
	finished chan struct{}
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{finished: make(chan struct{})}
}

func (m *mockNotifier) Stream(ctx context.Context, req service.StreamRequest, sink service.Sink) error {
	m.mu.Lock()
	m.calls++
	m.lastReq = req
	m.mu.Unlock()
	defer close(m.finished)

	if m.err != nil {
		return m.err
	}
	for _, d := range m.decisions {
		if err := sink.Send(d); err != nil {
			return err
		}
	}
	for _, n := range m.degraded {
		if err := sink.Degraded(n); err != nil {
			return err
		}
	}
	for i := 0; i < m.pings; i++ {
		if err := sink.Ping(); err != nil {
			return err
		}
	}
	if m.returnWhenDone {
		return nil
	}
	<-ctx.Done()
	return nil
}

func (m *mockNotifier) request() service.StreamRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastReq
}

type mockSchedules struct {
	resp       []models.ScheduleEntry
	err        error
	lastFilter service.ScheduleFilter
}

func (m *mockSchedules) ListSchedules(ctx context.Context, f service.ScheduleFilter) ([]models.ScheduleEntry, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func onDecision(state models.TargetState) models.HeaterDecision {
	return models.HeaterDecision{Building: "ENG", Room: "101", TargetState: state}
}
