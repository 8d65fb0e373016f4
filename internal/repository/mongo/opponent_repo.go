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

const opponentCollectionName = "opponents"

// mongoOpponentRepository implements repository.OpponentRepository
type mongoOpponentRepository struct {
	collection *mongo.Collection
}

// NewMongoOpponentRepository creates a new Opponent repository.
func NewMongoOpponentRepository(db *mongo.Database) repository.OpponentRepository {
	return &mongoOpponentRepository{
		collection: db.Collection(opponentCollectionName),
	}
}

// Create inserts a new opponent into the club's registry.
func (r *mongoOpponentRepository) Create(ctx context.Context, opponent *domain.Opponent) (primitive.ObjectID, error) {
	if opponent.ClubID == primitive.NilObjectID || opponent.Name == "" {
		return primitive.NilObjectID, errors.New("opponent requires clubId and name")
	}
	opponent.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	opponent.CreatedAt = now
	opponent.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, opponent)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted opponent ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single opponent by its ID.
func (r *mongoOpponentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Opponent, error) {
	var opponent domain.Opponent
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&opponent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &opponent, nil
}

// ListByClubID retrieves a club's full registry sorted by name. The rival
// resolver relies on this ordering being stable between calls.
func (r *mongoOpponentRepository) ListByClubID(ctx context.Context, clubID primitive.ObjectID) ([]domain.Opponent, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"clubId": clubID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var opponents []domain.Opponent
	if err = cursor.All(ctx, &opponents); err != nil {
		return nil, err
	}
	return opponents, nil
}

// Update rewrites an opponent's name and crest fields.
func (r *mongoOpponentRepository) Update(ctx context.Context, opponent *domain.Opponent) error {
	if opponent.ID == primitive.NilObjectID {
		return errors.New("opponent ID is required for update")
	}
	updateDoc := bson.M{
		"$set": bson.M{
			"name":      opponent.Name,
			"crestUrl":  opponent.CrestURL,
			"crestKey":  opponent.CrestKey,
			"updatedAt": time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": opponent.ID}, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an opponent, scoped to its club.
func (r *mongoOpponentRepository) Delete(ctx context.Context, id, clubID primitive.ObjectID) error {
	if id == primitive.NilObjectID || clubID == primitive.NilObjectID {
		return errors.New("opponent ID and club ID are required for deletion")
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "clubId": clubID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureOpponentIndexes creates necessary indexes. Call during startup.
func EnsureOpponentIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "clubId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
