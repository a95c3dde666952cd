package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/services"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// Nearby returns onboarded players within a radius of the caller's position
func (h *PlayerHandler) Nearby(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	lat, lon, radiusKm, err := parseGeoQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	players, err := h.playerService.GetNearbyPlayers(c.Request.Context(), lat, lon, radiusKm, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"players": players})
}
