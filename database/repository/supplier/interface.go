package supplierRepo

import (
	"partypilot/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SupplierRepository defines methods for supplier data access.
type SupplierRepository interface {
	// GetByID retrieves a supplier by its unique ID.
	GetByID(id string) (*models.Supplier, error)
	// GetByIDWithProjection retrieves a supplier by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Supplier, error)
	// GetAll retrieves all suppliers.
	GetAll() ([]models.Supplier, error)
	// GetByCategory returns suppliers offering a specific slot category.
	GetByCategory(category string) ([]models.Supplier, error)
	// Create inserts a new supplier record.
	Create(supplier *models.Supplier) error
	// Update replaces an existing supplier record.
	Update(supplier *models.Supplier) error
	// UpdateSetDocument patches a supplier document with the specified fields.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a supplier record by its ID.
	Delete(id string) error
}
