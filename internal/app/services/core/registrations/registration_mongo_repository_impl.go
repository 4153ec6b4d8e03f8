package registrations

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
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	registrationMongoRepositoryInstance contracts.RegistrationRepository
	onceRegistrationMongoRepository     sync.Once
)

type registrationMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewRegistrationMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.RegistrationRepository {
	onceRegistrationMongoRepository.Do(func() {
		registrationMongoRepositoryInstance = &registrationMongoRepository{
			Collection: db.Collection(constvars.MongoDBCollectionRegistrationCodes),
			Log:        logger,
		}
	})
	return registrationMongoRepositoryInstance
}

func (r *registrationMongoRepository) Insert(ctx context.Context, ticket *models.RegistrationTicket) (string, error) {
	result, err := r.Collection.InsertOne(ctx, ticket)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrMongoDBDuplicateKey(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *registrationMongoRepository) FindValidByToken(ctx context.Context, token string, now time.Time) (*models.RegistrationTicket, error) {
	filter := bson.M{
		"token":     token,
		"isUsed":    false,
		"expiresAt": bson.M{"$gt": now},
	}
	return r.findOne(ctx, filter)
}

// ConsumeByToken flips isUsed in the same operation that checks it, so two
// concurrent submissions for one token cannot both succeed.
func (r *registrationMongoRepository) ConsumeByToken(ctx context.Context, request *models.ConsumeRequest) (*models.RegistrationTicket, error) {
	filter := bson.M{
		"token":     request.Token,
		"isUsed":    false,
		"expiresAt": bson.M{"$gt": request.Now},
	}
	update := bson.M{
		"$set": bson.M{
			"payload":          request.Payload,
			"isUsed":           true,
			"verificationCode": request.VerificationCode,
			"codeExpiresAt":    request.CodeExpiresAt,
			"updatedAt":        request.Now,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ticket models.RegistrationTicket
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&ticket)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrMongoDBDuplicateKey(err)
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &ticket, nil
}

func (r *registrationMongoRepository) FindByVerificationCode(ctx context.Context, code string, now time.Time) (*models.RegistrationTicket, error) {
	filter := bson.M{
		"verificationCode": code,
		"codeExpiresAt":    bson.M{"$gt": now},
	}
	return r.findOne(ctx, filter)
}

func (r *registrationMongoRepository) SetPatientID(ctx context.Context, ticketID, patientID string, now time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(ticketID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"patientId": patientID, "updatedAt": now}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// MarkCodeRedeemed stamps codeRedeemedAt on a live, not yet redeemed code.
// It returns nil, nil when no such ticket exists.
func (r *registrationMongoRepository) MarkCodeRedeemed(ctx context.Context, code string, now time.Time) (*models.RegistrationTicket, error) {
	filter := bson.M{
		"verificationCode": code,
		"codeExpiresAt":    bson.M{"$gt": now},
		"codeRedeemedAt":   bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{"codeRedeemedAt": now, "updatedAt": now}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var ticket models.RegistrationTicket
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&ticket)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &ticket, nil
}

// DeleteUnusedExpiredBefore removes tickets that were never submitted and whose
// link expired before cutoff. Consumed tickets are kept.
func (r *registrationMongoRepository) DeleteUnusedExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"isUsed":    false,
		"expiresAt": bson.M{"$lt": cutoff},
	}
	result, err := r.Collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (r *registrationMongoRepository) VerificationCodeExists(ctx context.Context, code string) (bool, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"verificationCode": code}, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocument(err)
	}
	return count > 0, nil
}

func (r *registrationMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.RegistrationTicket, error) {
	var ticket models.RegistrationTicket
	err := r.Collection.FindOne(ctx, filter).Decode(&ticket)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &ticket, nil
}
