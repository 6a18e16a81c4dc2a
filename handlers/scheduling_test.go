package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	schedulingRepo "agenda/database/repository/scheduling"
	"agenda/models"
	"agenda/services/scheduling"
)

// stubService returns a fixed error (or success) for every operation, so the
// handler's status-code mapping can be tested in isolation.
type stubService struct {
	err error
}

func (s *stubService) GetCalendarEvents(context.Context, scheduling.CalendarQuery) ([]models.CalendarEvent, error) {
	return nil, s.err
}
func (s *stubService) CreateAppointment(context.Context, scheduling.CreateAppointmentInput) (*models.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Appointment{ID: "a1", Status: models.StatusScheduled}, nil
}
func (s *stubService) UpdateAppointment(context.Context, string, scheduling.UpdateAppointmentInput) (*models.Appointment, error) {
	return nil, s.err
}
func (s *stubService) UpdateAppointmentStatus(context.Context, string, models.AppointmentStatus, string) (*models.Appointment, error) {
	return nil, s.err
}
func (s *stubService) DeleteAppointment(context.Context, string) error { return s.err }
func (s *stubService) CreateBlockedSlot(context.Context, scheduling.CreateBlockedSlotInput) (*models.BlockedSlot, error) {
	return nil, s.err
}
func (s *stubService) DeleteBlockedSlot(context.Context, string) error { return s.err }
func (s *stubService) GetServices(context.Context, bool) ([]models.Service, error) {
	return nil, s.err
}
func (s *stubService) CreateService(context.Context, scheduling.CreateServiceInput) (*models.Service, error) {
	return nil, s.err
}
func (s *stubService) UpdateService(context.Context, string, scheduling.UpdateServiceInput) (*models.Service, error) {
	return nil, s.err
}

func doCreate(t *testing.T, svcErr error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSchedulingHandler(&stubService{err: svcErr}, zap.NewNop())
	r.POST("/api/appointments", h.CreateAppointment)

	body := `{"contactId":"c1","title":"X","startTime":"2024-05-06T09:00:00Z","endTime":"2024-05-06T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAppointmentStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, http.StatusCreated},
		{"validation", &scheduling.ValidationError{Field: "end_time", Message: "bad"}, http.StatusBadRequest},
		{"conflict", &scheduling.ConflictError{Conflicts: []scheduling.Conflict{{Kind: scheduling.ConflictAppointment, ID: "x", Start: time.Now(), End: time.Now()}}}, http.StatusConflict},
		{"state", &scheduling.InvalidStateTransitionError{From: models.StatusCompleted, To: models.StatusConfirmed}, http.StatusConflict},
		{"not found", schedulingRepo.ErrNotFound, http.StatusNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := doCreate(t, c.err)
			if w.Code != c.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, c.want, w.Body.String())
			}
		})
	}
}

func TestCreateAppointmentRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSchedulingHandler(&stubService{}, zap.NewNop())
	r.POST("/api/appointments", h.CreateAppointment)

	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(`{"contactId":}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetCalendarEventsFocusWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSchedulingHandler(&stubService{}, zap.NewNop())
	r.GET("/api/calendar/events", h.GetCalendarEvents)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar/events?focus=2024-06-15", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/calendar/events?focus=june", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad focus: status = %d, want 400", w.Code)
	}
}
