package supplierRepo

import (
	"context"
	"fmt"
	"time"

	"partypilot/database"
	"partypilot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSupplierRepo implements SupplierRepository using MongoDB.
type MongoSupplierRepo struct {
	coll *mongo.Collection
}

// NewMongoSupplierRepo creates a new instance of SupplierRepository using MongoDB.
func NewMongoSupplierRepo() SupplierRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("suppliers")
	return &MongoSupplierRepo{coll: coll}
}

func (r *MongoSupplierRepo) GetByID(id string) (*models.Supplier, error) {
	return r.GetByIDWithProjection(id, nil)
}

func (r *MongoSupplierRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Supplier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	findOpts := options.FindOne()
	if projection != nil {
		findOpts.SetProjection(projection)
	}
	var supplier models.Supplier
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter, findOpts).Decode(&supplier); err != nil {
		return nil, fmt.Errorf("failed to fetch supplier with id %s: %w", id, err)
	}
	return &supplier, nil
}

func (r *MongoSupplierRepo) GetAll() ([]models.Supplier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve suppliers: %w", err)
	}
	defer cursor.Close(ctx)
	var suppliers []models.Supplier
	for cursor.Next(ctx) {
		var s models.Supplier
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, nil
}

func (r *MongoSupplierRepo) GetByCategory(category string) ([]models.Supplier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"category": category}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find suppliers for category %s: %w", category, err)
	}
	defer cursor.Close(ctx)
	var suppliers []models.Supplier
	for cursor.Next(ctx) {
		var s models.Supplier
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, nil
}

func (r *MongoSupplierRepo) Create(supplier *models.Supplier) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, supplier)
	if err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

func (r *MongoSupplierRepo) Update(supplier *models.Supplier) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": supplier.ID}
	update := bson.M{"$set": supplier}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update supplier with id %s: %w", supplier.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("supplier with id %s not found", supplier.ID)
	}
	return nil
}

func (r *MongoSupplierRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to patch supplier with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("supplier with id %s not found", id)
	}
	return nil
}

func (r *MongoSupplierRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete supplier with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("supplier with id %s not found", id)
	}
	return nil
}
