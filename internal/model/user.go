package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"passwordHash"` // Do not expose password hash in JSON responses
	AccessToken  string             `json:"accessToken" bson:"accessToken"`
	CreatedAt    time.Time          `json:"created_at" bson:"createdAt"`
}

// RegisterRequest is the signup payload for POST /users
type RegisterRequest struct {
	Name     string `json:"user" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest carries the password for POST /users/:userName
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login; the token is the one
// issued at signup, never re-minted.
type LoginResponse struct {
	UserName    string `json:"userName"`
	AccessToken string `json:"accessToken"`
}
