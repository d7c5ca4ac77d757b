package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobtrail/internal/model"
	"jobtrail/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrPostingNotFound covers both a missing id and a record owned by another
// user; the two cases are deliberately indistinguishable.
var ErrPostingNotFound = errors.New("posting not found")

// PostingService defines operations for postings
type PostingService interface {
	CreatePosting(ctx context.Context, owner string, req model.CreatePostingRequest) (*model.Posting, error)
	GetUserPostings(ctx context.Context, owner string) ([]model.Posting, error)
	GetPostingByID(ctx context.Context, id, owner string) (*model.Posting, error)
	UpdatePosting(ctx context.Context, id, owner string, req model.UpdatePostingRequest) (*model.Posting, error)
	DeletePosting(ctx context.Context, id, owner string) error
}

type postingService struct {
	repo repository.PostingRepository
}

// NewPostingService creates a new PostingService
func NewPostingService(repo repository.PostingRepository) PostingService {
	return &postingService{repo: repo}
}

func (s *postingService) CreatePosting(ctx context.Context, owner string, req model.CreatePostingRequest) (*model.Posting, error) {
	stage := req.Stage
	if stage == "" {
		stage = model.StageApplied
	}

	now := time.Now()
	posting := &model.Posting{
		JobTitle:        req.JobTitle,
		Company:         req.Company,
		Stage:           stage,
		CreatedAt:       now,
		LastStageChange: now,
		UserName:        owner, // always the authenticated caller, never the request body
	}

	if err := s.repo.Create(ctx, posting); err != nil {
		return nil, fmt.Errorf("failed to create posting in repo: %w", err)
	}
	return posting, nil
}

func (s *postingService) GetUserPostings(ctx context.Context, owner string) ([]model.Posting, error) {
	postings, err := s.repo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get user postings from repo: %w", err)
	}
	return postings, nil
}

func (s *postingService) GetPostingByID(ctx context.Context, id, owner string) (*model.Posting, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrPostingNotFound // malformed ids are just ids that don't exist
	}
	posting, err := s.repo.FindByIDAndOwner(ctx, oid, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to find posting by ID: %w", err)
	}
	if posting == nil {
		return nil, ErrPostingNotFound
	}
	return posting, nil
}

// UpdatePosting applies a partial-field merge: only fields present in the
// request overwrite stored values. LastStageChange moves only when the
// incoming stage differs from the stored one.
func (s *postingService) UpdatePosting(ctx context.Context, id, owner string, req model.UpdatePostingRequest) (*model.Posting, error) {
	existing, err := s.GetPostingByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if req.JobTitle != nil {
		existing.JobTitle = *req.JobTitle
	}
	if req.Company != nil {
		existing.Company = *req.Company
	}
	if req.Stage != nil && *req.Stage != existing.Stage {
		existing.Stage = *req.Stage
		existing.LastStageChange = time.Now()
	}

	if err := s.repo.Replace(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, fmt.Errorf("failed to update posting in repo: %w", err)
	}
	return existing, nil
}

func (s *postingService) DeletePosting(ctx context.Context, id, owner string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrPostingNotFound
	}
	if err := s.repo.Delete(ctx, oid, owner); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostingNotFound
		}
		return fmt.Errorf("failed to delete posting in repo: %w", err)
	}
	return nil
}
