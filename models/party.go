package models

import "time"

// SupplierDisplayState is the derived lifecycle state of one supplier slot,
// recomputed on every read and never persisted.
type SupplierDisplayState string

const (
	SlotEmpty                SupplierDisplayState = "empty"
	SlotSelected             SupplierDisplayState = "selected"
	SlotAwaitingResponse     SupplierDisplayState = "awaiting_response"
	SlotConfirmed            SupplierDisplayState = "confirmed"
	SlotDepositPaidConfirmed SupplierDisplayState = "deposit_paid_confirmed"
	SlotPaymentConfirmed     SupplierDisplayState = "payment_confirmed"
	SlotDeclined             SupplierDisplayState = "declined"
)

// DefaultSlotCategories are the categories a new party plan starts with.
// The set is extensible; nothing downstream assumes it is exhaustive.
var DefaultSlotCategories = []string{
	"venue",
	"entertainment",
	"cakes",
	"decorations",
	"facePainting",
	"activities",
	"partyBags",
	"balloons",
	"catering",
}

// SupplierSlot is one supplier category within a party plan.
type SupplierSlot struct {
	Type     string    `bson:"type" json:"type"`
	Supplier *Supplier `bson:"supplier,omitempty" json:"supplier,omitempty"`
}

// PartyPlan is a customer's party under planning.
type PartyPlan struct {
	ID               string         `bson:"id" json:"id"`
	CustomerID       string         `bson:"customerId" json:"customerId"`
	ChildName        string         `bson:"childName" json:"childName"`
	ChildAge         int            `bson:"childAge" json:"childAge,omitempty"`
	Theme            string         `bson:"theme" json:"theme,omitempty"`
	Date             time.Time      `bson:"date" json:"date"`
	GuestCount       int            `bson:"guestCount" json:"guestCount,omitempty"`
	Location         string         `bson:"location" json:"location,omitempty"`
	Slots            []SupplierSlot `bson:"slots" json:"slots"`
	CustomerEmail    string         `bson:"customerEmail" json:"customerEmail,omitempty"`
	CustomerFCMToken string         `bson:"customerFcmToken" json:"-"`
	CreatedAt        time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Slot returns the slot for the given category, or nil if the plan does not
// carry that category.
func (p *PartyPlan) Slot(category string) *SupplierSlot {
	for i := range p.Slots {
		if p.Slots[i].Type == category {
			return &p.Slots[i]
		}
	}
	return nil
}

// JourneySlot is one row of the journey dashboard: the slot, its resolved
// display state and the enquiry backing that state (if any).
type JourneySlot struct {
	Type     string               `json:"type"`
	State    SupplierDisplayState `json:"state"`
	Supplier *Supplier            `json:"supplier,omitempty"`
	Enquiry  *Enquiry             `json:"enquiry,omitempty"`
}

// JourneyDashboard is the rendered party journey served to the dashboard.
type JourneyDashboard struct {
	PartyID     string        `json:"partyId"`
	Slots       []JourneySlot `json:"slots"`
	GeneratedAt time.Time     `json:"generatedAt"`
}
