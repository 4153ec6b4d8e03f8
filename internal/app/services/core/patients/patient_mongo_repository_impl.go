package patients

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
	patientMongoRepositoryInstance contracts.PatientRepository
	oncePatientMongoRepository     sync.Once
)

type patientMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewPatientMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.PatientRepository {
	oncePatientMongoRepository.Do(func() {
		patientMongoRepositoryInstance = &patientMongoRepository{
			Collection: db.Collection(constvars.MongoDBCollectionPatients),
			Log:        logger,
		}
	})
	return patientMongoRepositoryInstance
}

func (r *patientMongoRepository) Create(ctx context.Context, patient *models.Patient) (string, error) {
	result, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrMongoDBDuplicateKey(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *patientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, nil
	}

	var patient models.Patient
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

// Update $sets the given fields and returns the document after the update,
// or nil, nil when the patient does not exist.
func (r *patientMongoRepository) Update(ctx context.Context, patientID string, update models.PatientUpdate, updatedAt time.Time) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, nil
	}

	set := bson.M{"updatedAt": updatedAt}
	for key, value := range update {
		set[key] = value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var patient models.Patient
	err = r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &patient, nil
}

func (r *patientMongoRepository) VerificationCodeExists(ctx context.Context, code string) (bool, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"verificationCode": code}, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocument(err)
	}
	return count > 0, nil
}
