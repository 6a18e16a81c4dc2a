package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agenda/services/scheduling"
)

// GetServices handles GET /api/services.
func (h *SchedulingHandler) GetServices(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"
	services, err := h.Svc.GetServices(c.Request.Context(), activeOnly)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateService handles POST /api/services.
func (h *SchedulingHandler) CreateService(c *gin.Context) {
	var body struct {
		Name                   string `json:"name" binding:"required"`
		DefaultDurationMinutes int    `json:"defaultDurationMinutes" binding:"required"`
		DefaultPriceCents      int64  `json:"defaultPriceCents"`
		Color                  string `json:"color"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	svc, err := h.Svc.CreateService(c.Request.Context(), scheduling.CreateServiceInput{
		Name:                   body.Name,
		DefaultDurationMinutes: body.DefaultDurationMinutes,
		DefaultPriceCents:      body.DefaultPriceCents,
		Color:                  body.Color,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateService handles PUT /api/services/:id.
func (h *SchedulingHandler) UpdateService(c *gin.Context) {
	var body struct {
		Name                   *string `json:"name"`
		DefaultDurationMinutes *int    `json:"defaultDurationMinutes"`
		DefaultPriceCents      *int64  `json:"defaultPriceCents"`
		Color                  *string `json:"color"`
		IsActive               *bool   `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	svc, err := h.Svc.UpdateService(c.Request.Context(), c.Param("id"), scheduling.UpdateServiceInput{
		Name:                   body.Name,
		DefaultDurationMinutes: body.DefaultDurationMinutes,
		DefaultPriceCents:      body.DefaultPriceCents,
		Color:                  body.Color,
		IsActive:               body.IsActive,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}
