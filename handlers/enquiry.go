package handlers

import (
	"net/http"

	"partypilot/metrics"
	"partypilot/services/enquiry"
	"partypilot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EnquiryHandler exposes the enquiry lifecycle endpoints.
type EnquiryHandler struct {
	Service enquiry.EnquiryService
}

func NewEnquiryHandler(svc enquiry.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{Service: svc}
}

type createEnquiryRequest struct {
	PartyID  string `json:"partyId" binding:"required"`
	SlotType string `json:"slotType" binding:"required"`
	Message  string `json:"message"`
}

// CreateEnquiryHandler sends an enquiry for the supplier occupying one of
// the party's slots. Auto-accepting suppliers confirm immediately.
func (h *EnquiryHandler) CreateEnquiryHandler(c *gin.Context) {
	logger := getLogger(c)

	var req createEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid enquiry creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	enq, err := h.Service.CreateEnquiry(c.Request.Context(), req.PartyID, req.SlotType, req.Message)
	if err != nil {
		logger.Error("Failed to create enquiry",
			zap.String("partyId", req.PartyID), zap.String("slot", req.SlotType), zap.Error(err))
		metrics.RecordEnquiryOperation("create", "failure")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metrics.RecordEnquiryOperation("create", "success")
	c.JSON(http.StatusCreated, enq)
}

type respondEnquiryRequest struct {
	Accept   bool   `json:"accept"`
	Response string `json:"response"`
}

// RespondToEnquiryHandler records a supplier's manual accept or decline.
func (h *EnquiryHandler) RespondToEnquiryHandler(c *gin.Context) {
	logger := getLogger(c)
	enquiryID := c.Param("id")

	var req respondEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid enquiry response request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	enq, err := h.Service.RespondToEnquiry(c.Request.Context(), enquiryID, req.Accept, req.Response)
	if err != nil {
		logger.Error("Failed to record enquiry response",
			zap.String("enquiryId", enquiryID), zap.Error(err))
		metrics.RecordEnquiryOperation("respond", "failure")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metrics.RecordEnquiryOperation("respond", "success")
	c.JSON(http.StatusOK, enq)
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// RecordPaymentStatusHandler records the externally computed payment status
// for an accepted enquiry.
func (h *EnquiryHandler) RecordPaymentStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	enquiryID := c.Param("id")

	var req paymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid payment status request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	enq, err := h.Service.RecordPaymentStatus(c.Request.Context(), enquiryID, req.PaymentStatus)
	if err != nil {
		logger.Error("Failed to record payment status",
			zap.String("enquiryId", enquiryID), zap.Error(err))
		metrics.RecordEnquiryOperation("payment", "failure")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metrics.RecordEnquiryOperation("payment", "success")
	c.JSON(http.StatusOK, enq)
}

// GetPartyEnquiriesHandler lists a party's enquiries, newest first.
func (h *EnquiryHandler) GetPartyEnquiriesHandler(c *gin.Context) {
	partyID := c.Param("id")

	enquiries, err := h.Service.GetByParty(c.Request.Context(), partyID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list enquiries", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"enquiries": enquiries})
}
