package partyRepo

import (
	"partypilot/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PartyRepository defines methods for party plan data access.
type PartyRepository interface {
	// GetByID retrieves a party plan by its unique ID.
	GetByID(id string) (*models.PartyPlan, error)
	// GetByCustomer retrieves all party plans owned by a customer.
	GetByCustomer(customerID string) ([]models.PartyPlan, error)
	// Create inserts a new party plan.
	Create(party *models.PartyPlan) error
	// Update replaces an existing party plan.
	Update(party *models.PartyPlan) error
	// UpdateSetDocument patches a party plan document with the specified fields.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a party plan by its ID.
	Delete(id string) error
}
