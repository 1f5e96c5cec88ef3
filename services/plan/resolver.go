package plan

import (
	"partypilot/models"
)

// ResolveSlotState derives the display state for one supplier slot from the
// party's enquiries. It is pure and total: partial records degrade to the
// most conservative state instead of failing.
//
// The funnel, first match wins:
//
//	no supplier picked            -> empty
//	no enquiry for the category   -> selected
//	enquiry declined              -> declined (payment fields are not re-checked)
//	enquiry accepted, paid        -> payment_confirmed when the supplier replied
//	                                 personally, deposit_paid_confirmed when the
//	                                 acceptance was automatic
//	enquiry accepted, unpaid      -> confirmed
//	enquiry pending               -> awaiting_response
//	anything else                 -> selected
func ResolveSlotState(slot models.SupplierSlot, enquiries []models.Enquiry) models.SupplierDisplayState {
	if slot.Supplier == nil {
		return models.SlotEmpty
	}

	enquiry := LatestForCategory(enquiries, slot.Type)
	if enquiry == nil {
		return models.SlotSelected
	}

	switch enquiry.Status {
	case models.EnquiryStatusDeclined:
		return models.SlotDeclined
	case models.EnquiryStatusAccepted:
		paid := enquiry.PaymentStatus == models.PaymentStatusPaid
		switch {
		case paid && enquiry.ManuallyAccepted():
			return models.SlotPaymentConfirmed
		case paid:
			return models.SlotDepositPaidConfirmed
		default:
			return models.SlotConfirmed
		}
	case models.EnquiryStatusPending:
		return models.SlotAwaitingResponse
	}

	// Unknown status values degrade to "selected" so a new lifecycle value
	// upstream never breaks the dashboard.
	return models.SlotSelected
}

// LatestForCategory returns the most recent enquiry for a slot category, or
// nil when none matches. Duplicates per category should be prevented
// upstream; when they slip through, the newest created_at wins and a full
// tie keeps the first one seen.
func LatestForCategory(enquiries []models.Enquiry, category string) *models.Enquiry {
	var latest *models.Enquiry
	for i := range enquiries {
		e := &enquiries[i]
		if e.SupplierCategory != category {
			continue
		}
		if latest == nil || e.CreatedAt.After(latest.CreatedAt) {
			latest = e
		}
	}
	return latest
}
