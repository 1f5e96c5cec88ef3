package handlers

import (
	"errors"
	"net/http"

	registryRepo "partypilot/database/repository/registry"
	"partypilot/models"
	"partypilot/services/registry"
	"partypilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegistryHandler exposes the gift registry endpoints.
type RegistryHandler struct {
	Service registry.RegistryService
}

func NewRegistryHandler(svc registry.RegistryService) *RegistryHandler {
	return &RegistryHandler{Service: svc}
}

type createRegistryRequest struct {
	PartyID string `json:"partyId" binding:"required"`
	Title   string `json:"title"`
}

// CreateRegistryHandler creates the party's gift registry.
func (h *RegistryHandler) CreateRegistryHandler(c *gin.Context) {
	logger := getLogger(c)

	var req createRegistryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registry creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reg, err := h.Service.CreateRegistry(c.Request.Context(), req.PartyID, req.Title)
	if err != nil {
		logger.Error("Failed to create registry", zap.String("partyId", req.PartyID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, reg)
}

// GetPartyRegistryHandler returns the registry for a party.
func (h *RegistryHandler) GetPartyRegistryHandler(c *gin.Context) {
	partyID := c.Param("id")

	reg, err := h.Service.GetByParty(c.Request.Context(), partyID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get registry", err.Error())
		return
	}
	if reg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No registry for this party"})
		return
	}
	c.JSON(http.StatusOK, reg)
}

// AddRegistryItemHandler appends an item to the registry.
func (h *RegistryHandler) AddRegistryItemHandler(c *gin.Context) {
	logger := getLogger(c)
	registryID := c.Param("id")

	var item models.RegistryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		logger.Error("Invalid registry item request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reg, err := h.Service.AddItem(c.Request.Context(), registryID, item)
	if err != nil {
		logger.Error("Failed to add registry item", zap.String("registryId", registryID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reg)
}

// RemoveRegistryItemHandler removes an item from the registry.
func (h *RegistryHandler) RemoveRegistryItemHandler(c *gin.Context) {
	registryID := c.Param("id")
	itemID := c.Param("itemId")

	reg, err := h.Service.RemoveItem(c.Request.Context(), registryID, itemID)
	if err != nil {
		getLogger(c).Error("Failed to remove registry item",
			zap.String("registryId", registryID), zap.String("itemId", itemID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reg)
}

type reserveItemRequest struct {
	GuestName string `json:"guestName" binding:"required"`
}

// ReserveRegistryItemHandler reserves an item for a guest. Double
// reservations are rejected with a conflict status.
func (h *RegistryHandler) ReserveRegistryItemHandler(c *gin.Context) {
	logger := getLogger(c)
	registryID := c.Param("id")
	itemID := c.Param("itemId")

	var req reserveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid reservation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	err := h.Service.ReserveItem(c.Request.Context(), registryID, itemID, req.GuestName)
	if err != nil {
		if errors.Is(err, registryRepo.ErrItemAlreadyReserved) {
			c.JSON(http.StatusConflict, gin.H{"error": "Item is already reserved"})
			return
		}
		logger.Error("Failed to reserve registry item",
			zap.String("registryId", registryID), zap.String("itemId", itemID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item reserved"})
}

// ReleaseRegistryItemHandler releases a previously reserved item.
func (h *RegistryHandler) ReleaseRegistryItemHandler(c *gin.Context) {
	registryID := c.Param("id")
	itemID := c.Param("itemId")

	if err := h.Service.ReleaseItem(c.Request.Context(), registryID, itemID); err != nil {
		getLogger(c).Error("Failed to release registry item",
			zap.String("registryId", registryID), zap.String("itemId", itemID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item released"})
}
