package enquiryRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"partypilot/database"
	"partypilot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEnquiryRepo implements EnquiryRepository using MongoDB.
type MongoEnquiryRepo struct {
	coll *mongo.Collection
}

// NewMongoEnquiryRepo creates a new instance of EnquiryRepository using MongoDB.
func NewMongoEnquiryRepo() EnquiryRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("enquiries")
	return &MongoEnquiryRepo{coll: coll}
}

func (r *MongoEnquiryRepo) GetByID(id string) (*models.Enquiry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var enquiry models.Enquiry
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&enquiry); err != nil {
		return nil, fmt.Errorf("failed to fetch enquiry with id %s: %w", id, err)
	}
	return &enquiry, nil
}

func (r *MongoEnquiryRepo) GetByParty(partyID string) ([]models.Enquiry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"party_id": partyID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve enquiries for party %s: %w", partyID, err)
	}
	defer cursor.Close(ctx)
	var enquiries []models.Enquiry
	for cursor.Next(ctx) {
		var e models.Enquiry
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode enquiry: %w", err)
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, nil
}

func (r *MongoEnquiryRepo) GetByPartyAndCategory(partyID, category string) (*models.Enquiry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"party_id": partyID, "supplier_category": category}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var enquiry models.Enquiry
	err := r.coll.FindOne(ctx, filter, opts).Decode(&enquiry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enquiry for party %s category %s: %w", partyID, category, err)
	}
	return &enquiry, nil
}

func (r *MongoEnquiryRepo) Create(enquiry *models.Enquiry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, enquiry)
	if err != nil {
		return fmt.Errorf("failed to create enquiry: %w", err)
	}
	return nil
}

func (r *MongoEnquiryRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to patch enquiry with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("enquiry with id %s not found", id)
	}
	return nil
}

func (r *MongoEnquiryRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete enquiry with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("enquiry with id %s not found", id)
	}
	return nil
}
