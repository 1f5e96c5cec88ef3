package plan

import (
	"testing"
	"time"

	"partypilot/models"

	"github.com/stretchr/testify/assert"
)

func ptrTime(t time.Time) *time.Time { return &t }

func testSupplier(category string) *models.Supplier {
	return &models.Supplier{
		ID:       "sup-" + category,
		Name:     "Test " + category,
		Category: category,
	}
}

func TestResolveSlotStateEmptySlot(t *testing.T) {
	slot := models.SupplierSlot{Type: "venue"}
	state := ResolveSlotState(slot, nil)
	assert.Equal(t, models.SlotEmpty, state)

	// Enquiries for the category do not matter when no supplier is picked.
	enquiries := []models.Enquiry{{SupplierCategory: "venue", Status: models.EnquiryStatusAccepted}}
	assert.Equal(t, models.SlotEmpty, ResolveSlotState(slot, enquiries))
}

func TestResolveSlotStateSelectedNoEnquiry(t *testing.T) {
	slot := models.SupplierSlot{Type: "venue", Supplier: testSupplier("venue")}
	assert.Equal(t, models.SlotSelected, ResolveSlotState(slot, nil))

	// An enquiry for a different category does not count.
	enquiries := []models.Enquiry{{SupplierCategory: "cakes", Status: models.EnquiryStatusPending}}
	assert.Equal(t, models.SlotSelected, ResolveSlotState(slot, enquiries))
}

func TestResolveSlotStateDeclined(t *testing.T) {
	slot := models.SupplierSlot{Type: "venue", Supplier: testSupplier("venue")}
	// A declined enquiry wins even when payment fields claim paid.
	enquiries := []models.Enquiry{{
		SupplierCategory: "venue",
		Status:           models.EnquiryStatusDeclined,
		PaymentStatus:    models.PaymentStatusPaid,
	}}
	assert.Equal(t, models.SlotDeclined, ResolveSlotState(slot, enquiries))
}

func TestResolveSlotStateAcceptedUnpaid(t *testing.T) {
	slot := models.SupplierSlot{Type: "venue", Supplier: testSupplier("venue")}
	enquiries := []models.Enquiry{{
		SupplierCategory: "venue",
		Status:           models.EnquiryStatusAccepted,
		PaymentStatus:    models.PaymentStatusUnpaid,
	}}
	assert.Equal(t, models.SlotConfirmed, ResolveSlotState(slot, enquiries))

	// Anything short of "paid" counts as unpaid.
	enquiries[0].PaymentStatus = ""
	assert.Equal(t, models.SlotConfirmed, ResolveSlotState(slot, enquiries))
	enquiries[0].PaymentStatus = "pending"
	assert.Equal(t, models.SlotConfirmed, ResolveSlotState(slot, enquiries))
}

func TestResolveSlotStatePaidManualAcceptance(t *testing.T) {
	slot := models.SupplierSlot{Type: "entertainment", Supplier: testSupplier("entertainment")}
	enquiries := []models.Enquiry{{
		SupplierCategory:     "entertainment",
		Status:               models.EnquiryStatusAccepted,
		PaymentStatus:        models.PaymentStatusPaid,
		SupplierResponse:     "Looking forward to it, see you there!",
		SupplierResponseDate: ptrTime(time.Now()),
	}}
	assert.Equal(t, models.SlotPaymentConfirmed, ResolveSlotState(slot, enquiries))
}

func TestResolveSlotStatePaidAutoAcceptance(t *testing.T) {
	slot := models.SupplierSlot{Type: "entertainment", Supplier: testSupplier("entertainment")}

	// Marker in the response means the acceptance was generated, not human.
	enquiries := []models.Enquiry{{
		SupplierCategory:     "entertainment",
		Status:               models.EnquiryStatusAccepted,
		PaymentStatus:        models.PaymentStatusPaid,
		SupplierResponse:     models.AutoResponseMarker + "accepted: this supplier confirms bookings instantly",
		SupplierResponseDate: ptrTime(time.Now()),
	}}
	assert.Equal(t, models.SlotDepositPaidConfirmed, ResolveSlotState(slot, enquiries))

	// No response at all is not a deliberate confirmation either.
	enquiries[0].SupplierResponse = ""
	enquiries[0].SupplierResponseDate = nil
	assert.Equal(t, models.SlotDepositPaidConfirmed, ResolveSlotState(slot, enquiries))

	// A response date without a response body still does not count.
	enquiries[0].SupplierResponseDate = ptrTime(time.Now())
	assert.Equal(t, models.SlotDepositPaidConfirmed, ResolveSlotState(slot, enquiries))
}

func TestResolveSlotStatePending(t *testing.T) {
	slot := models.SupplierSlot{Type: "cakes", Supplier: testSupplier("cakes")}
	enquiries := []models.Enquiry{{
		SupplierCategory: "cakes",
		Status:           models.EnquiryStatusPending,
	}}
	assert.Equal(t, models.SlotAwaitingResponse, ResolveSlotState(slot, enquiries))
}

func TestResolveSlotStateUnknownStatusDegrades(t *testing.T) {
	slot := models.SupplierSlot{Type: "cakes", Supplier: testSupplier("cakes")}
	enquiries := []models.Enquiry{{
		SupplierCategory: "cakes",
		Status:           "cancelled",
	}}
	assert.Equal(t, models.SlotSelected, ResolveSlotState(slot, enquiries))
}

func TestLatestForCategoryPicksNewest(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	enquiries := []models.Enquiry{
		{ID: "old", SupplierCategory: "venue", Status: models.EnquiryStatusDeclined, CreatedAt: base},
		{ID: "new", SupplierCategory: "venue", Status: models.EnquiryStatusPending, CreatedAt: base.Add(time.Hour)},
		{ID: "other", SupplierCategory: "cakes", Status: models.EnquiryStatusAccepted, CreatedAt: base.Add(2 * time.Hour)},
	}

	latest := LatestForCategory(enquiries, "venue")
	assert.NotNil(t, latest)
	assert.Equal(t, "new", latest.ID)

	assert.Nil(t, LatestForCategory(enquiries, "balloons"))

	// The newest enquiry decides the slot state: a re-sent enquiry after a
	// decline shows awaiting_response, not declined.
	slot := models.SupplierSlot{Type: "venue", Supplier: testSupplier("venue")}
	assert.Equal(t, models.SlotAwaitingResponse, ResolveSlotState(slot, enquiries))
}

func TestLatestForCategoryTieKeepsFirst(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	enquiries := []models.Enquiry{
		{ID: "first", SupplierCategory: "venue", CreatedAt: at},
		{ID: "second", SupplierCategory: "venue", CreatedAt: at},
	}
	latest := LatestForCategory(enquiries, "venue")
	assert.Equal(t, "first", latest.ID)
}

// Walks one slot through the whole booking funnel.
func TestResolveSlotStateFullLifecycle(t *testing.T) {
	slot := models.SupplierSlot{Type: "venue"}
	assert.Equal(t, models.SlotEmpty, ResolveSlotState(slot, nil))

	slot.Supplier = testSupplier("venue")
	assert.Equal(t, models.SlotSelected, ResolveSlotState(slot, nil))

	enq := models.Enquiry{
		SupplierCategory: "venue",
		Status:           models.EnquiryStatusPending,
		PaymentStatus:    models.PaymentStatusUnpaid,
		CreatedAt:        time.Now(),
	}
	assert.Equal(t, models.SlotAwaitingResponse, ResolveSlotState(slot, []models.Enquiry{enq}))

	enq.Status = models.EnquiryStatusAccepted
	enq.SupplierResponse = "Happy to host you"
	enq.SupplierResponseDate = ptrTime(time.Now())
	assert.Equal(t, models.SlotConfirmed, ResolveSlotState(slot, []models.Enquiry{enq}))

	enq.PaymentStatus = models.PaymentStatusPaid
	assert.Equal(t, models.SlotPaymentConfirmed, ResolveSlotState(slot, []models.Enquiry{enq}))
}
