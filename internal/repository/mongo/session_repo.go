package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clubmanager/internal/domain"
	"clubmanager/internal/repository"
)

const sessionCollectionName = "sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new Session repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// ListRecords retrieves every session whose date falls in [start, end) for
// one team, ordered by date then _id so downstream iteration is stable.
func (r *mongoSessionRepository) ListRecords(ctx context.Context, teamID primitive.ObjectID, start, end time.Time) ([]domain.Session, error) {
	filter := bson.M{
		"teamId": teamID,
		"date":   bson.M{"$gte": start, "$lt": end},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []domain.Session
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// CreateRecord inserts a new session.
func (r *mongoSessionRepository) CreateRecord(ctx context.Context, session *domain.Session) (primitive.ObjectID, error) {
	if session.TeamID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("session requires teamId")
	}
	session.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted session ID")
	}
	return insertedID, nil
}

// DeleteRecords bulk-deletes a team's sessions inside [start, end) and
// returns how many went away. This is the overwrite path of a week
// transfer; there is no per-record confirmation.
func (r *mongoSessionRepository) DeleteRecords(ctx context.Context, teamID primitive.ObjectID, start, end time.Time) (int64, error) {
	filter := bson.M{
		"teamId": teamID,
		"date":   bson.M{"$gte": start, "$lt": end},
	}
	result, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// GetByID retrieves a single session by its ID.
func (r *mongoSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Session, error) {
	var session domain.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// Update rewrites a session's mutable fields. TeamID and CreatedBy are
// deliberately not touched.
func (r *mongoSessionRepository) Update(ctx context.Context, session *domain.Session) error {
	if session.ID == primitive.NilObjectID {
		return errors.New("session ID is required for update")
	}
	updateDoc := bson.M{
		"$set": bson.M{
			"date":        session.Date,
			"type":        session.Type,
			"title":       session.Title,
			"description": session.Description,
			"updatedAt":   time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": session.ID}, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes one session, scoped to its team so a caller cannot reach
// into another tenant's planner.
func (r *mongoSessionRepository) Delete(ctx context.Context, id, teamID primitive.ObjectID) error {
	if id == primitive.NilObjectID || teamID == primitive.NilObjectID {
		return errors.New("session ID and team ID are required for deletion")
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "teamId": teamID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureSessionIndexes creates necessary indexes. Call during startup.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// the week-window query shape: team + date range
			Keys:    bson.D{{Key: "teamId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
