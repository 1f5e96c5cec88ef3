package handlers

import (
	"net/http"

	"partypilot/metrics"
	"partypilot/models"
	"partypilot/services/profile"
	"partypilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler exposes the supplier profile editing session: per section
// change detection and saving against the stored service details.
type ProfileHandler struct {
	Service profile.ProfileService
}

func NewProfileHandler(svc profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

type sectionRequest struct {
	Details models.ServiceDetails `json:"details"`
}

// GetSectionStatesHandler returns the tracked state of every profile section
// for the supplier's editing session.
func (h *ProfileHandler) GetSectionStatesHandler(c *gin.Context) {
	supplierID := c.Param("id")

	states, err := h.Service.SectionStates(c.Request.Context(), supplierID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load profile session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": states})
}

// CheckChangesHandler re-evaluates whether a section differs from its last
// saved baseline, given the caller's current form values.
func (h *ProfileHandler) CheckChangesHandler(c *gin.Context) {
	logger := getLogger(c)
	supplierID := c.Param("id")
	section := c.Param("section")

	if !profile.IsKnownSection(section) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown profile section: " + section})
		return
	}

	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid check-changes request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	state, err := h.Service.CheckChanges(c.Request.Context(), supplierID, section, req.Details)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check changes", err.Error())
		return
	}
	c.JSON(http.StatusOK, state)
}

// SaveSectionHandler persists one profile section. The response always
// carries the resulting section state; persistence failures surface in the
// state's error field rather than as an HTTP error.
func (h *ProfileHandler) SaveSectionHandler(c *gin.Context) {
	logger := getLogger(c)
	supplierID := c.Param("id")
	section := c.Param("section")

	if !profile.IsKnownSection(section) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown profile section: " + section})
		return
	}

	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid save request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	state, err := h.Service.SaveSection(c.Request.Context(), supplierID, section, req.Details)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save section", err.Error())
		return
	}

	outcome := "success"
	if state.Error != "" {
		outcome = "failure"
	}
	metrics.RecordSectionSave(section, outcome)

	c.JSON(http.StatusOK, state)
}

// RefreshSessionHandler drops the supplier's editing session so the next
// request rebuilds baselines from the stored profile.
func (h *ProfileHandler) RefreshSessionHandler(c *gin.Context) {
	supplierID := c.Param("id")
	if err := h.Service.RefreshSession(c.Request.Context(), supplierID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to refresh session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session refreshed"})
}

// CloseSessionHandler discards the supplier's editing session entirely.
func (h *ProfileHandler) CloseSessionHandler(c *gin.Context) {
	supplierID := c.Param("id")
	h.Service.CloseSession(supplierID)
	c.JSON(http.StatusOK, gin.H{"message": "Session closed"})
}
