package partyRepo

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

// MongoPartyRepo implements PartyRepository using MongoDB.
type MongoPartyRepo struct {
	coll *mongo.Collection
}

// NewMongoPartyRepo creates a new instance of PartyRepository using MongoDB.
func NewMongoPartyRepo() PartyRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("parties")
	return &MongoPartyRepo{coll: coll}
}

func (r *MongoPartyRepo) GetByID(id string) (*models.PartyPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var party models.PartyPlan
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&party); err != nil {
		return nil, fmt.Errorf("failed to fetch party with id %s: %w", id, err)
	}
	return &party, nil
}

func (r *MongoPartyRepo) GetByCustomer(customerID string) ([]models.PartyPlan, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"customerId": customerID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve parties for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)
	var parties []models.PartyPlan
	for cursor.Next(ctx) {
		var p models.PartyPlan
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode party: %w", err)
		}
		parties = append(parties, p)
	}
	return parties, nil
}

func (r *MongoPartyRepo) Create(party *models.PartyPlan) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, party)
	if err != nil {
		return fmt.Errorf("failed to create party: %w", err)
	}
	return nil
}

func (r *MongoPartyRepo) Update(party *models.PartyPlan) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": party.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": party})
	if err != nil {
		return fmt.Errorf("failed to update party with id %s: %w", party.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("party with id %s not found", party.ID)
	}
	return nil
}

func (r *MongoPartyRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to patch party with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("party with id %s not found", id)
	}
	return nil
}

func (r *MongoPartyRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete party with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("party with id %s not found", id)
	}
	return nil
}
