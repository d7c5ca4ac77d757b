package repository

import (
	"context"
	"errors"
	"fmt"

	"jobtrail/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PostingRepository defines operations for posting data. Every lookup and
// mutation filters on id AND owner in a single query, so a foreign-owned
// record is indistinguishable from a missing one.
type PostingRepository interface {
	Create(ctx context.Context, posting *model.Posting) error
	FindByIDAndOwner(ctx context.Context, id primitive.ObjectID, owner string) (*model.Posting, error)
	FindByOwner(ctx context.Context, owner string) ([]model.Posting, error)
	Replace(ctx context.Context, posting *model.Posting) error
	Delete(ctx context.Context, id primitive.ObjectID, owner string) error
}

type postingRepository struct {
	postings *mongo.Collection
}

// NewPostingRepository creates a new PostingRepository
func NewPostingRepository(db *mongo.Database) PostingRepository {
	return &postingRepository{postings: db.Collection("postings")}
}

// Create inserts a new posting into the database
func (r *postingRepository) Create(ctx context.Context, p *model.Posting) error {
	res, err := r.postings.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("failed to create posting: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// FindByIDAndOwner retrieves a posting by id, scoped to its owner
func (r *postingRepository) FindByIDAndOwner(ctx context.Context, id primitive.ObjectID, owner string) (*model.Posting, error) {
	p := &model.Posting{}
	err := r.postings.FindOne(ctx, bson.M{"_id": id, "userName": owner}).Decode(p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // Absent or foreign-owned; callers must not distinguish
		}
		return nil, fmt.Errorf("failed to find posting: %w", err)
	}
	return p, nil
}

// FindByOwner retrieves all postings belonging to owner, in storage order
func (r *postingRepository) FindByOwner(ctx context.Context, owner string) ([]model.Posting, error) {
	cursor, err := r.postings.Find(ctx, bson.M{"userName": owner})
	if err != nil {
		return nil, fmt.Errorf("failed to query postings by owner: %w", err)
	}
	postings := []model.Posting{}
	if err := cursor.All(ctx, &postings); err != nil {
		return nil, fmt.Errorf("failed to decode postings: %w", err)
	}
	return postings, nil
}

// Replace overwrites the stored posting, keeping the id+owner scope in the
// filter so a concurrent owner change cannot be exploited
func (r *postingRepository) Replace(ctx context.Context, p *model.Posting) error {
	res, err := r.postings.ReplaceOne(ctx, bson.M{"_id": p.ID, "userName": p.UserName}, p)
	if err != nil {
		return fmt.Errorf("failed to update posting: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a posting in one atomic find-and-delete on id+owner
func (r *postingRepository) Delete(ctx context.Context, id primitive.ObjectID, owner string) error {
	err := r.postings.FindOneAndDelete(ctx, bson.M{"_id": id, "userName": owner}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete posting: %w", err)
	}
	return nil
}
