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

// ErrDuplicateKey is returned when a unique index rejects an insert.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrNotFound is returned by mutating operations whose id+owner filter
// matched nothing.
var ErrNotFound = errors.New("document not found")

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByName(ctx context.Context, name string) (*model.User, error)
	FindByAccessToken(ctx context.Context, token string) (*model.User, error)
}

type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{users: db.Collection("users")}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindByName retrieves a user by their unique name
func (r *userRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	user := &model.User{}
	err := r.users.FindOne(ctx, bson.M{"name": name}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // User not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by name: %w", err)
	}
	return user, nil
}

// FindByAccessToken retrieves the user whose stored token exactly matches
func (r *userRepository) FindByAccessToken(ctx context.Context, token string) (*model.User, error) {
	user := &model.User{}
	err := r.users.FindOne(ctx, bson.M{"accessToken": token}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // Unresolvable token
		}
		return nil, fmt.Errorf("failed to find user by access token: %w", err)
	}
	return user, nil
}
