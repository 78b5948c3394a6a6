package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HSouheill/client_desk/config"
	"github.com/HSouheill/client_desk/models"
)

// ErrNotFound is returned when no document matches the lookup.
var ErrNotFound = errors.New("document not found")

// ErrStatusConflict is returned by a conditional status update when the
// record exists but is not in the expected state.
var ErrStatusConflict = errors.New("status precondition failed")

type ClientRepository struct {
	collection *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{
		collection: db.Collection(config.ClientsCollection),
	}
}

// Create inserts the record and fills in the generated id.
func (r *ClientRepository) Create(ctx context.Context, record *models.ClientRecord) error {
	res, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}
	return nil
}

// FindAll returns every record, newest first.
func (r *ClientRepository) FindAll(ctx context.Context) ([]models.ClientRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.ClientRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ClientRecord, error) {
	var record models.ClientRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// UpdateStatus overwrites the status and returns the updated record. When
// from is non-empty the write only applies if the stored status equals from;
// otherwise ErrStatusConflict is returned for an existing record.
func (r *ClientRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, from models.ClientStatus) (*models.ClientRecord, error) {
	filter := bson.M{"_id": id}
	if from != "" {
		filter["status"] = from
	}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var record models.ClientRecord
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record)
	if err == nil {
		return &record, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if from == "" {
		return nil, ErrNotFound
	}

	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, ErrStatusConflict
}
