package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Supplier endpoints
	GetSuppliersHandler    gin.HandlerFunc
	GetSupplierByIDHandler gin.HandlerFunc
	CreateSupplierHandler  gin.HandlerFunc
	UpdateSupplierHandler  gin.HandlerFunc
	DeleteSupplierHandler  gin.HandlerFunc

	// Supplier profile session endpoints
	GetSectionStatesHandler gin.HandlerFunc
	CheckChangesHandler     gin.HandlerFunc
	SaveSectionHandler      gin.HandlerFunc
	RefreshSessionHandler   gin.HandlerFunc
	CloseSessionHandler     gin.HandlerFunc

	// Party journey endpoints
	CreatePartyHandler        gin.HandlerFunc
	GetPartyHandler           gin.HandlerFunc
	GetCustomerPartiesHandler gin.HandlerFunc
	AssignSlotHandler         gin.HandlerFunc
	ClearSlotHandler          gin.HandlerFunc
	GetDashboardHandler       gin.HandlerFunc

	// Enquiry endpoints
	CreateEnquiryHandler       gin.HandlerFunc
	RespondToEnquiryHandler    gin.HandlerFunc
	RecordPaymentStatusHandler gin.HandlerFunc
	GetPartyEnquiriesHandler   gin.HandlerFunc

	// Gift registry endpoints
	CreateRegistryHandler      gin.HandlerFunc
	GetPartyRegistryHandler    gin.HandlerFunc
	AddRegistryItemHandler     gin.HandlerFunc
	RemoveRegistryItemHandler  gin.HandlerFunc
	ReserveRegistryItemHandler gin.HandlerFunc
	ReleaseRegistryItemHandler gin.HandlerFunc
}

// NewHandlerBundle wires the per-domain handlers into the flat bundle the
// route registration consumes.
func NewHandlerBundle(
	suppliers *SupplierHandler,
	profiles *ProfileHandler,
	parties *PartyHandler,
	enquiries *EnquiryHandler,
	registries *RegistryHandler,
) *HandlerBundle {
	return &HandlerBundle{
		GetSuppliersHandler:    suppliers.GetSuppliersHandler,
		GetSupplierByIDHandler: suppliers.GetSupplierByIDHandler,
		CreateSupplierHandler:  suppliers.CreateSupplierHandler,
		UpdateSupplierHandler:  suppliers.UpdateSupplierHandler,
		DeleteSupplierHandler:  suppliers.DeleteSupplierHandler,

		GetSectionStatesHandler: profiles.GetSectionStatesHandler,
		CheckChangesHandler:     profiles.CheckChangesHandler,
		SaveSectionHandler:      profiles.SaveSectionHandler,
		RefreshSessionHandler:   profiles.RefreshSessionHandler,
		CloseSessionHandler:     profiles.CloseSessionHandler,

		CreatePartyHandler:        parties.CreatePartyHandler,
		GetPartyHandler:           parties.GetPartyHandler,
		GetCustomerPartiesHandler: parties.GetCustomerPartiesHandler,
		AssignSlotHandler:         parties.AssignSlotHandler,
		ClearSlotHandler:          parties.ClearSlotHandler,
		GetDashboardHandler:       parties.GetDashboardHandler,

		CreateEnquiryHandler:       enquiries.CreateEnquiryHandler,
		RespondToEnquiryHandler:    enquiries.RespondToEnquiryHandler,
		RecordPaymentStatusHandler: enquiries.RecordPaymentStatusHandler,
		GetPartyEnquiriesHandler:   enquiries.GetPartyEnquiriesHandler,

		CreateRegistryHandler:      registries.CreateRegistryHandler,
		GetPartyRegistryHandler:    registries.GetPartyRegistryHandler,
		AddRegistryItemHandler:     registries.AddRegistryItemHandler,
		RemoveRegistryItemHandler:  registries.RemoveRegistryItemHandler,
		ReserveRegistryItemHandler: registries.ReserveRegistryItemHandler,
		ReleaseRegistryItemHandler: registries.ReleaseRegistryItemHandler,
	}
}
