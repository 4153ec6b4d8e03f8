package patients

import (
	"context"
	"registration-service/internal/app/contracts"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	nextOfKinMongoRepositoryInstance contracts.NextOfKinRepository
	onceNextOfKinMongoRepository     sync.Once
)

type nextOfKinMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewNextOfKinMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.NextOfKinRepository {
	onceNextOfKinMongoRepository.Do(func() {
		nextOfKinMongoRepositoryInstance = &nextOfKinMongoRepository{
			Collection: db.Collection(constvars.MongoDBCollectionNextOfKins),
			Log:        logger,
		}
	})
	return nextOfKinMongoRepositoryInstance
}

func (r *nextOfKinMongoRepository) Create(ctx context.Context, nextOfKin *models.NextOfKin) (string, error) {
	result, err := r.Collection.InsertOne(ctx, nextOfKin)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *nextOfKinMongoRepository) FindByID(ctx context.Context, nextOfKinID string) (*models.NextOfKin, error) {
	objectID, err := primitive.ObjectIDFromHex(nextOfKinID)
	if err != nil {
		return nil, nil
	}

	var nextOfKin models.NextOfKin
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&nextOfKin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &nextOfKin, nil
}
