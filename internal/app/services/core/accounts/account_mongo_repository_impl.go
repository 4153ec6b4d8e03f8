package accounts

import (
	"context"
	"registration-service/internal/app/contracts"
	"registration-service/internal/app/models"
	"registration-service/internal/pkg/constvars"
	"registration-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	accountMongoRepositoryInstance contracts.AccountRepository
	onceAccountMongoRepository     sync.Once
)

type accountMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewAccountMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.AccountRepository {
	onceAccountMongoRepository.Do(func() {
		accountMongoRepositoryInstance = &accountMongoRepository{
			Collection: db.Collection(constvars.MongoDBCollectionUsers),
			Log:        logger,
		}
	})
	return accountMongoRepositoryInstance
}

func (r *accountMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &account, nil
}

func (r *accountMongoRepository) FindByID(ctx context.Context, accountID string) (*models.Account, error) {
	objectID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, nil
	}

	var account models.Account
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &account, nil
}

func (r *accountMongoRepository) Create(ctx context.Context, account *models.Account) (string, error) {
	result, err := r.Collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrEmailAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *accountMongoRepository) UpdatePasswordHash(ctx context.Context, accountID, passwordHash string, updatedAt time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"passwordHash": passwordHash, "updatedAt": updatedAt}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
