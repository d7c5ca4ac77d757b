package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobtrail/internal/model"
	"jobtrail/internal/repository"
	"jobtrail/internal/utils"
)

var (
	ErrUserAlreadyExists = errors.New("name or email already in use")
	// ErrInvalidCredentials covers both unknown name and wrong password so a
	// failed login never reveals whether the name exists.
	ErrInvalidCredentials = errors.New("invalid name or password")
	ErrInvalidToken       = errors.New("invalid access token")
)

// AuthService provides signup, login and token resolution
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, name, password string) (*model.User, error)
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates a new user account. The access token is minted here, once,
// and lives as long as the account does.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	existingUser, err := s.userRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := utils.NewAccessToken()
	if err != nil {
		return nil, fmt.Errorf("failed to mint access token: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		AccessToken:  token,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Unique-index race on name, or duplicate email. The underlying
		// driver error is not surfaced to the caller.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user by name and password and returns the stored
// account, including the token issued at signup. Login never rotates it.
func (s *authService) Login(ctx context.Context, name, password string) (*model.User, error) {
	user, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error finding user by name: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials // Password mismatch
	}

	return user, nil
}

// Authenticate resolves a bearer token to its user, or fails closed.
func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	user, err := s.userRepo.FindByAccessToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("error finding user by token: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}
