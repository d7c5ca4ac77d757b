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

// ContactRepository defines operations for contact data, with the same
// id+owner scoping discipline as postings.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindByIDAndOwner(ctx context.Context, id primitive.ObjectID, owner string) (*model.Contact, error)
	FindByOwner(ctx context.Context, owner string) ([]model.Contact, error)
	Replace(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, id primitive.ObjectID, owner string) error
}

type contactRepository struct {
	contacts *mongo.Collection
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *mongo.Database) ContactRepository {
	return &contactRepository{contacts: db.Collection("contacts")}
}

func (r *contactRepository) Create(ctx context.Context, c *model.Contact) error {
	res, err := r.contacts.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

func (r *contactRepository) FindByIDAndOwner(ctx context.Context, id primitive.ObjectID, owner string) (*model.Contact, error) {
	c := &model.Contact{}
	err := r.contacts.FindOne(ctx, bson.M{"_id": id, "userName": owner}).Decode(c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	return c, nil
}

func (r *contactRepository) FindByOwner(ctx context.Context, owner string) ([]model.Contact, error) {
	cursor, err := r.contacts.Find(ctx, bson.M{"userName": owner})
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts by owner: %w", err)
	}
	contacts := []model.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}

func (r *contactRepository) Replace(ctx context.Context, c *model.Contact) error {
	res, err := r.contacts.ReplaceOne(ctx, bson.M{"_id": c.ID, "userName": c.UserName}, c)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id primitive.ObjectID, owner string) error {
	err := r.contacts.FindOneAndDelete(ctx, bson.M{"_id": id, "userName": owner}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
