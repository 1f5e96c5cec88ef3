package registryRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partypilot/database"
	"partypilot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrItemAlreadyReserved is returned when a guest tries to reserve an item
// that another guest already claimed.
var ErrItemAlreadyReserved = errors.New("registry item already reserved")

// MongoRegistryRepo implements RegistryRepository using MongoDB.
type MongoRegistryRepo struct {
	coll *mongo.Collection
}

// NewMongoRegistryRepo creates a new instance of RegistryRepository using MongoDB.
func NewMongoRegistryRepo() RegistryRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("registries")
	return &MongoRegistryRepo{coll: coll}
}

func (r *MongoRegistryRepo) GetByID(id string) (*models.GiftRegistry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var registry models.GiftRegistry
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&registry); err != nil {
		return nil, fmt.Errorf("failed to fetch registry with id %s: %w", id, err)
	}
	return &registry, nil
}

func (r *MongoRegistryRepo) GetByParty(partyID string) (*models.GiftRegistry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var registry models.GiftRegistry
	filter := bson.M{"partyId": partyID}
	err := r.coll.FindOne(ctx, filter).Decode(&registry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registry for party %s: %w", partyID, err)
	}
	return &registry, nil
}

func (r *MongoRegistryRepo) Create(registry *models.GiftRegistry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, registry)
	if err != nil {
		return fmt.Errorf("failed to create registry: %w", err)
	}
	return nil
}

func (r *MongoRegistryRepo) Update(registry *models.GiftRegistry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": registry.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": registry})
	if err != nil {
		return fmt.Errorf("failed to update registry with id %s: %w", registry.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("registry with id %s not found", registry.ID)
	}
	return nil
}

func (r *MongoRegistryRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to patch registry with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("registry with id %s not found", id)
	}
	return nil
}

// ReserveItem matches only when the item is still unreserved, so two guests
// racing for the same gift cannot both win.
func (r *MongoRegistryRepo) ReserveItem(registryID, itemID, guestName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{
		"id":    registryID,
		"items": bson.M{"$elemMatch": bson.M{"id": itemID, "reserved": false}},
	}
	update := bson.M{"$set": bson.M{
		"items.$.reserved":   true,
		"items.$.reservedBy": guestName,
		"items.$.reservedAt": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve item %s in registry %s: %w", itemID, registryID, err)
	}
	if result.MatchedCount == 0 {
		return ErrItemAlreadyReserved
	}
	return nil
}

func (r *MongoRegistryRepo) ReleaseItem(registryID, itemID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{
		"id":    registryID,
		"items": bson.M{"$elemMatch": bson.M{"id": itemID}},
	}
	update := bson.M{"$set": bson.M{
		"items.$.reserved":   false,
		"items.$.reservedBy": "",
		"items.$.reservedAt": nil,
	}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release item %s in registry %s: %w", itemID, registryID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("item %s not found in registry %s", itemID, registryID)
	}
	return nil
}
