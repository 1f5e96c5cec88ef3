package handlers

import (
	"net/http"
	"time"

	supplierRepo "partypilot/database/repository/supplier"
	"partypilot/models"
	"partypilot/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SupplierHandler exposes supplier browsing and CRUD endpoints.
type SupplierHandler struct {
	Repo supplierRepo.SupplierRepository
}

func NewSupplierHandler(repo supplierRepo.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{Repo: repo}
}

// GetSuppliersHandler returns all suppliers, optionally filtered by category.
func (h *SupplierHandler) GetSuppliersHandler(c *gin.Context) {
	var (
		suppliers []models.Supplier
		err       error
	)
	if category := c.Query("category"); category != "" {
		suppliers, err = h.Repo.GetByCategory(category)
	} else {
		suppliers, err = h.Repo.GetAll()
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get suppliers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

// GetSupplierByIDHandler returns details for a specific supplier.
func (h *SupplierHandler) GetSupplierByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	supplier, err := h.Repo.GetByID(id)
	if err != nil {
		logger.Error("Supplier not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// CreateSupplierHandler registers a new supplier.
func (h *SupplierHandler) CreateSupplierHandler(c *gin.Context) {
	logger := getLogger(c)

	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		logger.Error("Invalid supplier creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if supplier.ID == "" {
		supplier.ID = uuid.NewString()
	}
	now := time.Now()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	if err := h.Repo.Create(&supplier); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create supplier", err.Error())
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

// UpdateSupplierHandler replaces supplier information wholesale. Section
// level profile edits go through the profile endpoints instead.
func (h *SupplierHandler) UpdateSupplierHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	supplier.ID = id // Ensure the ID is set.
	supplier.UpdatedAt = time.Now()

	if err := h.Repo.Update(&supplier); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update supplier", err.Error())
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// DeleteSupplierHandler deletes a supplier.
func (h *SupplierHandler) DeleteSupplierHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Repo.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete supplier", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted"})
}
