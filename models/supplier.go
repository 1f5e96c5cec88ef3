package models

import (
	"time"
)

// SupplierPricing holds the pricing section of a supplier's service details.
type SupplierPricing struct {
	GroupSizeMin   int     `bson:"groupSizeMin" json:"groupSizeMin"`
	GroupSizeMax   int     `bson:"groupSizeMax" json:"groupSizeMax"`
	HourlyRate     float64 `bson:"hourlyRate" json:"hourlyRate"`
	MinimumBooking float64 `bson:"minimumBooking" json:"minimumBooking"`
	DepositPercent float64 `bson:"depositPercent" json:"depositPercent"`
}

// VenueAddress holds the address section for venue-type suppliers.
type VenueAddress struct {
	Line1    string `bson:"line1" json:"line1"`
	Line2    string `bson:"line2,omitempty" json:"line2,omitempty"`
	City     string `bson:"city" json:"city"`
	Postcode string `bson:"postcode" json:"postcode"`
}

// SupplierPackage is one bookable package a supplier offers.
type SupplierPackage struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	DurationMin int     `bson:"durationMin,omitempty" json:"durationMin,omitempty"` // duration in minutes
}

// ServiceArea describes how far a supplier travels from their base.
type ServiceArea struct {
	BasePostcode string  `bson:"basePostcode" json:"basePostcode"`
	RadiusMiles  float64 `bson:"radiusMiles" json:"radiusMiles"`
}

// ServiceDetails groups the independently editable profile sections. Each
// field corresponds to one section key in the profile editor and is saved
// on its own.
type ServiceDetails struct {
	Pricing      SupplierPricing   `bson:"pricing" json:"pricing"`
	VenueAddress VenueAddress      `bson:"venueAddress" json:"venueAddress"`
	Themes       []string          `bson:"themes" json:"themes"`
	About        string            `bson:"about" json:"about"`
	Packages     []SupplierPackage `bson:"packages" json:"packages"`
	ServiceArea  ServiceArea       `bson:"serviceArea" json:"serviceArea"`
}

// Supplier is a vendor on the marketplace.
type Supplier struct {
	ID             string           `bson:"id" json:"id"`
	Name           string           `bson:"name" json:"name"`
	Category       string           `bson:"category" json:"category"` // e.g. "venue", "entertainment"
	Email          string           `bson:"email" json:"email,omitempty"`
	PhoneNumber    string           `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Price          float64          `bson:"price" json:"price"`
	TotalPrice     float64          `bson:"totalPrice" json:"totalPrice"`
	PackageData    *SupplierPackage `bson:"packageData,omitempty" json:"packageData,omitempty"` // chosen package customization
	ServiceDetails ServiceDetails   `bson:"serviceDetails" json:"serviceDetails"`
	AutoAccept     bool             `bson:"autoAccept" json:"autoAccept"` // enquiries are accepted without human action
	Rating         float64          `bson:"rating" json:"rating,omitempty"`
	FCMToken       string           `bson:"fcmToken" json:"-"`
	CreatedAt      time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time        `bson:"updatedAt" json:"updatedAt"`
}
