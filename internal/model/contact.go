package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Contact represents a networking contact
type Contact struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Company  string             `json:"company" bson:"company"`
	Notes    string             `json:"notes" bson:"notes"`
	UserName string             `json:"userName" bson:"userName"` // owner back-reference, same semantics as Posting
}

// CreateContactRequest is used for creating a new contact
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company" binding:"required"`
	Notes   string `json:"notes"`
}

type UpdateContactRequest struct {
	Name    *string `json:"name,omitempty"`
	Company *string `json:"company,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}
