package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"agenda/models"
	"agenda/services/scheduling"
)

// CreateBlockedSlot handles POST /api/blocked-slots.
func (h *SchedulingHandler) CreateBlockedSlot(c *gin.Context) {
	var body struct {
		StartTime        time.Time                `json:"startTime" binding:"required"`
		EndTime          time.Time                `json:"endTime" binding:"required"`
		Reason           string                   `json:"reason"`
		IsRecurring      bool                     `json:"isRecurring"`
		RecurringPattern *models.RecurringPattern `json:"recurringPattern"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slot, err := h.Svc.CreateBlockedSlot(c.Request.Context(), scheduling.CreateBlockedSlotInput{
		StartTime:        body.StartTime,
		EndTime:          body.EndTime,
		Reason:           body.Reason,
		IsRecurring:      body.IsRecurring,
		RecurringPattern: body.RecurringPattern,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// DeleteBlockedSlot handles DELETE /api/blocked-slots/:id. For a recurring
// template this removes the whole series.
func (h *SchedulingHandler) DeleteBlockedSlot(c *gin.Context) {
	if err := h.Svc.DeleteBlockedSlot(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "blocked slot deleted"})
}
