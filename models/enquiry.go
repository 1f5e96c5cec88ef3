package models

import (
	"strings"
	"time"
)

// Enquiry statuses.
const (
	EnquiryStatusPending  = "pending"
	EnquiryStatusAccepted = "accepted"
	EnquiryStatusDeclined = "declined"
)

// Payment statuses. The value is computed externally (payment provider
// webhooks feed it in); this service only records and displays it.
const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

// AutoResponseMarker prefixes every automatically generated supplier reply.
// A response carrying it is not treated as a deliberate human confirmation.
const AutoResponseMarker = "Auto-"

// Enquiry is a booking request linking a party, a supplier category and its
// status/payment lifecycle.
type Enquiry struct {
	ID                   string     `bson:"id" json:"id"`
	PartyID              string     `bson:"party_id" json:"party_id"`
	SupplierID           string     `bson:"supplier_id" json:"supplier_id"`
	SupplierCategory     string     `bson:"supplier_category" json:"supplier_category"`
	Status               string     `bson:"status" json:"status"`
	PaymentStatus        string     `bson:"payment_status,omitempty" json:"payment_status,omitempty"`
	AutoAccepted         bool       `bson:"auto_accepted" json:"auto_accepted"`
	Message              string     `bson:"message,omitempty" json:"message,omitempty"`
	QuotedPrice          float64    `bson:"quoted_price,omitempty" json:"quoted_price,omitempty"`
	SupplierResponse     string     `bson:"supplier_response,omitempty" json:"supplier_response,omitempty"`
	SupplierResponseDate *time.Time `bson:"supplier_response_date,omitempty" json:"supplier_response_date,omitempty"`
	CreatedAt            time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time  `bson:"updated_at" json:"updated_at"`
}

// ManuallyAccepted reports whether the supplier's acceptance came from a
// human reply rather than the auto-accept path.
func (e *Enquiry) ManuallyAccepted() bool {
	return e.SupplierResponseDate != nil && e.SupplierResponse != "" &&
		!strings.Contains(e.SupplierResponse, AutoResponseMarker)
}
