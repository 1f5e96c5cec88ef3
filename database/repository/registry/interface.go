package registryRepo

import (
	"partypilot/models"

	"go.mongodb.org/mongo-driver/bson"
)

// RegistryRepository defines methods for gift registry data access.
type RegistryRepository interface {
	// GetByID retrieves a registry by its unique ID.
	GetByID(id string) (*models.GiftRegistry, error)
	// GetByParty retrieves the registry attached to a party, or nil.
	GetByParty(partyID string) (*models.GiftRegistry, error)
	// Create inserts a new registry.
	Create(registry *models.GiftRegistry) error
	// Update replaces an existing registry.
	Update(registry *models.GiftRegistry) error
	// UpdateSetDocument patches a registry document with the specified fields.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// ReserveItem atomically marks an unreserved item as reserved by a guest.
	// It fails when the item is already reserved.
	ReserveItem(registryID, itemID, guestName string) error
	// ReleaseItem clears a reservation on an item.
	ReleaseItem(registryID, itemID string) error
}
