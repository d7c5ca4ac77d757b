package service

import (
	"context"
	"errors"
	"fmt"

	"jobtrail/internal/model"
	"jobtrail/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrContactNotFound has the same ambiguity contract as ErrPostingNotFound.
var ErrContactNotFound = errors.New("contact not found")

// ContactService defines operations for contacts
type ContactService interface {
	CreateContact(ctx context.Context, owner string, req model.CreateContactRequest) (*model.Contact, error)
	GetUserContacts(ctx context.Context, owner string) ([]model.Contact, error)
	GetContactByID(ctx context.Context, id, owner string) (*model.Contact, error)
	UpdateContact(ctx context.Context, id, owner string, req model.UpdateContactRequest) (*model.Contact, error)
	DeleteContact(ctx context.Context, id, owner string) error
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) CreateContact(ctx context.Context, owner string, req model.CreateContactRequest) (*model.Contact, error) {
	contact := &model.Contact{
		Name:     req.Name,
		Company:  req.Company,
		Notes:    req.Notes,
		UserName: owner,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact in repo: %w", err)
	}
	return contact, nil
}

func (s *contactService) GetUserContacts(ctx context.Context, owner string) ([]model.Contact, error) {
	contacts, err := s.repo.FindByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get user contacts from repo: %w", err)
	}
	return contacts, nil
}

func (s *contactService) GetContactByID(ctx context.Context, id, owner string) (*model.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrContactNotFound
	}
	contact, err := s.repo.FindByIDAndOwner(ctx, oid, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to find contact by ID: %w", err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// UpdateContact applies the same partial-field merge as postings: absent
// fields are retained.
func (s *contactService) UpdateContact(ctx context.Context, id, owner string, req model.UpdateContactRequest) (*model.Contact, error) {
	existing, err := s.GetContactByID(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Company != nil {
		existing.Company = *req.Company
	}
	if req.Notes != nil { // handles clearing notes with an explicit ""
		existing.Notes = *req.Notes
	}

	if err := s.repo.Replace(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to update contact in repo: %w", err)
	}
	return existing, nil
}

func (s *contactService) DeleteContact(ctx context.Context, id, owner string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrContactNotFound
	}
	if err := s.repo.Delete(ctx, oid, owner); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to delete contact in repo: %w", err)
	}
	return nil
}
