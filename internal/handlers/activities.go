package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dev-m-younas/Sport-Link-sub000/internal/models"
	"github.com/dev-m-younas/Sport-Link-sub000/internal/services"
)

// defaultRadiusKm is applied when the client omits the radius query param.
const defaultRadiusKm = 10.0

type ActivityHandler struct {
	activityService *services.ActivityService
	rosterService   *services.RosterService
}

func NewActivityHandler(activityService *services.ActivityService, rosterService *services.RosterService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		rosterService:   rosterService,
	}
}

// Create creates a new activity owned by the caller
func (h *ActivityHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activityID, err := h.activityService.CreateActivity(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"activityId": activityID})
}

// Nearby lists recent activities within a radius of the caller's position,
// excluding the caller's own
func (h *ActivityHandler) Nearby(c *gin.Context) {
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

	activities, err := h.activityService.ListWithinRadius(c.Request.Context(), lat, lon, radiusKm, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// Mine lists the caller's own activities
func (h *ActivityHandler) Mine(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	activities, err := h.activityService.ListUserActivities(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// GetByID fetches a single activity
func (h *ActivityHandler) GetByID(c *gin.Context) {
	activityID := c.Param("activityId")
	if activityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activityId is required"})
		return
	}

	activity, err := h.activityService.GetActivity(c.Request.Context(), activityID)
	if err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activity)
}

// Participants lists an activity's accepted participants and joined count
func (h *ActivityHandler) Participants(c *gin.Context) {
	activityID := c.Param("activityId")
	if activityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activityId is required"})
		return
	}

	participants, err := h.rosterService.GetParticipants(c.Request.Context(), activityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"participants": participants,
		"joinedCount":  len(participants),
	})
}

// parseGeoQuery reads lat/long/radiusKm query params. Latitude and longitude
// are required; radius falls back to the default.
func parseGeoQuery(c *gin.Context) (lat, lon, radiusKm float64, err error) {
	lat, err = strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return 0, 0, 0, errors.New("lat query parameter is required")
	}
	lon, err = strconv.ParseFloat(c.Query("long"), 64)
	if err != nil {
		return 0, 0, 0, errors.New("long query parameter is required")
	}

	radiusKm = defaultRadiusKm
	if raw := c.Query("radiusKm"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, 0, 0, errors.New("radiusKm must be a number")
		}
	}

	return lat, lon, radiusKm, nil
}
