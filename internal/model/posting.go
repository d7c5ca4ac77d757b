package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StageApplied   = "applied"
	StageInterview = "interview"
	StageOffer     = "offer"
	StageRejected  = "rejected"
)

// Posting represents a tracked job application
type Posting struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	JobTitle        string             `json:"jobTitle" bson:"jobTitle"`
	Company         string             `json:"company" bson:"company"`
	Stage           string             `json:"stage" bson:"stage"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	LastStageChange time.Time          `json:"lastStageChange" bson:"lastStageChange"`
	UserName        string             `json:"userName" bson:"userName"` // owner back-reference, used only for filtering
}

// CreatePostingRequest is used for creating a new posting. Any userName in
// the body is ignored; the owner is always the authenticated caller.
type CreatePostingRequest struct {
	JobTitle string `json:"jobTitle" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Stage    string `json:"stage" binding:"omitempty,oneof=applied interview offer rejected"`
}

type UpdatePostingRequest struct {
	JobTitle *string `json:"jobTitle,omitempty"` // Pointers to allow partial updates
	Company  *string `json:"company,omitempty"`
	Stage    *string `json:"stage,omitempty" binding:"omitempty,oneof=applied interview offer rejected"`
}
