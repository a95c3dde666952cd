package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/services"
)

type ScheduledHandler struct {
	scheduledService *services.ScheduledService
}

func NewScheduledHandler(scheduledService *services.ScheduledService) *ScheduledHandler {
	return &ScheduledHandler{scheduledService: scheduledService}
}

// Mine lists the caller's scheduled activities, newest first
func (h *ScheduledHandler) Mine(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	scheduled, err := h.scheduledService.ListUserScheduled(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scheduledActivities": scheduled})
}
