package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/authgate/authgate-go/internal/crypto"
	"github.com/authgate/authgate-go/internal/model"
	"github.com/authgate/authgate-go/internal/repository"
)

var (
	// ErrInvalidCredentials is returned both when the email is unknown and
	// when the password is wrong, so login failures never reveal whether an
	// account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters with an uppercase letter, a lowercase letter, and a digit", minPasswordLength)
	ErrPasswordTooLong    = fmt.Errorf("password must be at most %d bytes", maxPasswordBytes)
	ErrNameRequired       = errors.New("name is required")
	ErrNameTooLong        = fmt.Errorf("name must be at most %d characters", maxNameLength)
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore is the persistence contract the auth service depends on.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateName(ctx context.Context, id int64, name string) (*model.User, error)
}

// AuthService handles credential registration, verification, and token
// issuance. Its configuration (secret, TTL, cost) is fixed at construction
// and never mutated.
type AuthService struct {
	store      UserStore
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, ttl time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		store:      store,
		jwtSecret:  secret,
		tokenTTL:   ttl,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user account and returns its outward view. The
// caller logs in separately; registration never issues a token.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	if err := validateEmail(req.Email); err != nil {
		return model.UserResponse{}, err
	}
	if err := validatePassword(req.Password); err != nil {
		return model.UserResponse{}, err
	}
	if err := validateName(req.Name); err != nil {
		return model.UserResponse{}, err
	}

	// Friendly pre-check; the unique index on email is what actually
	// guarantees uniqueness under concurrent registrations.
	if _, err := s.store.GetByEmail(ctx, req.Email); err == nil {
		return model.UserResponse{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.UserResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return user.Response(), nil
}

// Login verifies credentials and returns a signed session token with the
// user's outward view.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User:  user.Response(),
	}, nil
}

// GetUser retrieves a user by ID and returns its outward view.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return user.Response(), nil
}

// UpdateProfile changes the user's display name and returns the refreshed
// outward view, updated_at included.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req model.UpdateProfileRequest) (model.UserResponse, error) {
	if err := validateName(req.Name); err != nil {
		return model.UserResponse{}, err
	}

	user, err := s.store.UpdateName(ctx, userID, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return user.Response(), nil
}
