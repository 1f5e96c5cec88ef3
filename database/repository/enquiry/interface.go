package enquiryRepo

import (
	"partypilot/models"

	"go.mongodb.org/mongo-driver/bson"
)

// EnquiryRepository defines methods for enquiry data access.
type EnquiryRepository interface {
	// GetByID retrieves an enquiry by its unique ID.
	GetByID(id string) (*models.Enquiry, error)
	// GetByParty retrieves all enquiries for a party, newest first.
	GetByParty(partyID string) ([]models.Enquiry, error)
	// GetByPartyAndCategory retrieves the newest enquiry for one slot category.
	GetByPartyAndCategory(partyID, category string) (*models.Enquiry, error)
	// Create inserts a new enquiry record.
	Create(enquiry *models.Enquiry) error
	// UpdateSetDocument patches an enquiry document with the specified fields.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes an enquiry record by its ID.
	Delete(id string) error
}
