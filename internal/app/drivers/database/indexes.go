package database

import (
	"context"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func registrationIndexes() []collectionIndexes {
	sparseUnique := options.Index().SetUnique(true).SetSparse(true)

	return []collectionIndexes{
		{
			collection: constvars.MongoDBCollectionUsers,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			},
		},
		{
			collection: constvars.MongoDBCollectionRegistrationCodes,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
				{Keys: bson.D{{Key: "verificationCode", Value: 1}}, Options: sparseUnique},
				{Keys: bson.D{{Key: "expiresAt", Value: 1}}},
			},
		},
		{
			collection: constvars.MongoDBCollectionPatients,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "verificationCode", Value: 1}}, Options: sparseUnique},
				{Keys: bson.D{{Key: "nextOfKinId", Value: 1}}},
			},
		},
	}
}

// EnsureIndexes creates the unique indexes the registration flow relies on.
// CreateMany is idempotent for identical specs.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, entry := range registrationIndexes() {
		_, err := db.Collection(entry.collection).Indexes().CreateMany(ctx, entry.models)
		if err != nil {
			return exceptions.ErrMongoDBCreateIndex(err)
		}
	}
	return nil
}
