package models

import "time"

// RegistryItem is one gift in a party's registry. Guests reserve items so
// presents are not duplicated.
type RegistryItem struct {
	ID         string     `bson:"id" json:"id"`
	Name       string     `bson:"name" json:"name"`
	URL        string     `bson:"url,omitempty" json:"url,omitempty"`
	Price      float64    `bson:"price,omitempty" json:"price,omitempty"`
	Notes      string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Reserved   bool       `bson:"reserved" json:"reserved"`
	ReservedBy string     `bson:"reservedBy,omitempty" json:"reservedBy,omitempty"`
	ReservedAt *time.Time `bson:"reservedAt,omitempty" json:"reservedAt,omitempty"`
}

// GiftRegistry is the gift list attached to a party plan.
type GiftRegistry struct {
	ID        string         `bson:"id" json:"id"`
	PartyID   string         `bson:"partyId" json:"partyId"`
	Title     string         `bson:"title" json:"title"`
	Items     []RegistryItem `bson:"items" json:"items"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}
