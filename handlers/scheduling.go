package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	schedulingRepo "agenda/database/repository/scheduling"
	"agenda/models"
	"agenda/services/scheduling"
)

// SchedulingHandler exposes the scheduling core over HTTP.
type SchedulingHandler struct {
	Svc    scheduling.SchedulingService
	Logger *zap.Logger
}

func NewSchedulingHandler(svc scheduling.SchedulingService, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Svc: svc, Logger: logger}
}

// respondError maps core error types onto HTTP statuses. Anything unknown is
// a 500.
func (h *SchedulingHandler) respondError(c *gin.Context, err error) {
	var ve *scheduling.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "field": ve.Field, "message": ve.Message})
		return
	}
	var ce *scheduling.ConflictError
	if errors.As(err, &ce) {
		c.JSON(http.StatusConflict, gin.H{"error": "time conflict", "message": ce.Error(), "conflicts": ce.Conflicts})
		return
	}
	var se *scheduling.InvalidStateTransitionError
	if errors.As(err, &se) {
		c.JSON(http.StatusConflict, gin.H{"error": "invalid state transition", "message": se.Error()})
		return
	}
	if errors.Is(err, schedulingRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	h.Logger.Error("scheduling operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// GetCalendarEvents handles GET /api/calendar. The window comes either from
// explicit startDate/endDate or from a focus date expanded to the buffered
// month window.
func (h *SchedulingHandler) GetCalendarEvents(c *gin.Context) {
	var windowStart, windowEnd time.Time
	if focus := c.Query("focus"); focus != "" {
		f, err := time.Parse(models.DateFormat, focus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid focus date", "details": err.Error()})
			return
		}
		windowStart, windowEnd = scheduling.FetchWindow(f)
	} else {
		var err error
		windowStart, err = parseTimeParam(c.Query("startDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate", "details": err.Error()})
			return
		}
		windowEnd, err = parseTimeParam(c.Query("endDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate", "details": err.Error()})
			return
		}
	}

	q := scheduling.CalendarQuery{
		ContactID: c.Query("contactId"),
		StartDate: windowStart,
		EndDate:   windowEnd,
		ServiceID: c.Query("serviceId"),
	}
	for _, t := range splitParam(c.Query("types")) {
		q.Types = append(q.Types, models.CalendarEventType(t))
	}
	for _, st := range splitParam(c.Query("statuses")) {
		q.Statuses = append(q.Statuses, models.AppointmentStatus(st))
	}

	events, err := h.Svc.GetCalendarEvents(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateAppointment handles POST /api/appointments.
func (h *SchedulingHandler) CreateAppointment(c *gin.Context) {
	var body struct {
		ContactID  string    `json:"contactId" binding:"required"`
		ServiceID  string    `json:"serviceId"`
		Title      string    `json:"title"`
		StartTime  time.Time `json:"startTime" binding:"required"`
		EndTime    time.Time `json:"endTime" binding:"required"`
		PriceCents int64     `json:"priceCents"`
		Notes      string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Svc.CreateAppointment(c.Request.Context(), scheduling.CreateAppointmentInput{
		ContactID:  body.ContactID,
		ServiceID:  body.ServiceID,
		Title:      body.Title,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
		PriceCents: body.PriceCents,
		Notes:      body.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// UpdateAppointment handles PUT /api/appointments/:id.
func (h *SchedulingHandler) UpdateAppointment(c *gin.Context) {
	var body struct {
		ServiceID  *string    `json:"serviceId"`
		Title      *string    `json:"title"`
		StartTime  *time.Time `json:"startTime"`
		EndTime    *time.Time `json:"endTime"`
		PriceCents *int64     `json:"priceCents"`
		Notes      *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Svc.UpdateAppointment(c.Request.Context(), c.Param("id"), scheduling.UpdateAppointmentInput{
		ServiceID:  body.ServiceID,
		Title:      body.Title,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
		PriceCents: body.PriceCents,
		Notes:      body.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointmentStatus handles PATCH /api/appointments/:id/status.
func (h *SchedulingHandler) UpdateAppointmentStatus(c *gin.Context) {
	var body struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
		Reason string                   `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Svc.UpdateAppointmentStatus(c.Request.Context(), c.Param("id"), body.Status, body.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DeleteAppointment handles DELETE /api/appointments/:id.
func (h *SchedulingHandler) DeleteAppointment(c *gin.Context) {
	if err := h.Svc.DeleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}

// parseTimeParam accepts RFC3339 timestamps or bare dates.
func parseTimeParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(models.DateFormat, raw)
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
