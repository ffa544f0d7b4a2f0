package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureListingIndexes creates the indexes the listing queries and insight
// aggregations rely on.
func EnsureListingIndexes(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(ListingsCollection)
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "listingId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "borough", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "propertyType", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "price", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "beds", Value: 1}},
		},
	})
	return err
}
