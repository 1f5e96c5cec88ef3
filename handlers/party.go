package handlers

import (
	"net/http"

	"partypilot/models"
	"partypilot/services/plan"
	"partypilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PartyHandler exposes the party journey: party CRUD, slot assignment, and
// the derived journey dashboard.
type PartyHandler struct {
	Service plan.JourneyService
}

func NewPartyHandler(svc plan.JourneyService) *PartyHandler {
	return &PartyHandler{Service: svc}
}

// CreatePartyHandler creates a party plan with the standard slot layout.
func (h *PartyHandler) CreatePartyHandler(c *gin.Context) {
	logger := getLogger(c)

	var party models.PartyPlan
	if err := c.ShouldBindJSON(&party); err != nil {
		logger.Error("Invalid party creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreateParty(c.Request.Context(), &party)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create party", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetPartyHandler returns one party plan.
func (h *PartyHandler) GetPartyHandler(c *gin.Context) {
	partyID := c.Param("id")

	party, err := h.Service.GetParty(c.Request.Context(), partyID)
	if err != nil {
		getLogger(c).Error("Party not found", zap.String("partyId", partyID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		return
	}
	c.JSON(http.StatusOK, party)
}

// GetCustomerPartiesHandler lists a customer's parties, soonest first.
func (h *PartyHandler) GetCustomerPartiesHandler(c *gin.Context) {
	customerID := c.Param("customerId")

	parties, err := h.Service.GetPartiesByCustomer(c.Request.Context(), customerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list parties", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"parties": parties})
}

type assignSlotRequest struct {
	SupplierID string `json:"supplierId" binding:"required"`
}

// AssignSlotHandler places a supplier into one of the party's slots.
func (h *PartyHandler) AssignSlotHandler(c *gin.Context) {
	logger := getLogger(c)
	partyID := c.Param("id")
	slotType := c.Param("slot")

	var req assignSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid slot assignment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	party, err := h.Service.AssignSlotSupplier(c.Request.Context(), partyID, slotType, req.SupplierID)
	if err != nil {
		logger.Error("Failed to assign slot supplier",
			zap.String("partyId", partyID), zap.String("slot", slotType), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, party)
}

// ClearSlotHandler removes the supplier from one of the party's slots.
func (h *PartyHandler) ClearSlotHandler(c *gin.Context) {
	logger := getLogger(c)
	partyID := c.Param("id")
	slotType := c.Param("slot")

	party, err := h.Service.ClearSlot(c.Request.Context(), partyID, slotType)
	if err != nil {
		logger.Error("Failed to clear slot",
			zap.String("partyId", partyID), zap.String("slot", slotType), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, party)
}

// GetDashboardHandler returns the derived journey dashboard: every slot with
// its display state resolved from the slot's supplier and enquiry history.
func (h *PartyHandler) GetDashboardHandler(c *gin.Context) {
	partyID := c.Param("id")

	dashboard, err := h.Service.Dashboard(c.Request.Context(), partyID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build dashboard", err.Error())
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
