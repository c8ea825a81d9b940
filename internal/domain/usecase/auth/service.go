package auth

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
	authport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/auth"
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-tracker/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// Service implements the auth business logic
type Service struct {
	userRepo     persistence.UserRepository
	tokens       authport.TokenManager
	passwords    authport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new auth service instance
func NewService(
	userRepo persistence.UserRepository,
	tokens authport.TokenManager,
	passwords authport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AuthUseCase {
	return &Service{
		userRepo:     userRepo,
		tokens:       tokens,
		passwords:    passwords,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates a new account and issues a token
func (s *Service) Register(ctx context.Context, name, email, password string) (*usecase.AuthResult, error) {
	if len(password) < entity.MinPasswordLength {
		return nil, errs.ErrWeakPassword
	}

	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	// Duplicate check before hashing; the unique index catches races.
	if _, err := s.userRepo.GetByEmail(ctx, normalized); err == nil {
		return nil, errs.ErrEmailTaken
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(name, normalized, hash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create user", map[string]any{
			"email": normalized,
			"error": err.Error(),
		})
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": user.ID.String(),
		"email":   user.Email,
	})

	return &usecase.AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token
func (s *Service) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		s.logger.Warn("Login attempt on disabled account", map[string]any{
			"user_id": user.ID.String(),
		})
		return nil, errs.ErrAccountDisabled
	}

	if !s.passwords.Compare(user.PasswordHash, password) {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID.String(),
	})

	return &usecase.AuthResult{User: user, Token: token}, nil
}

// GetProfile returns the user for an authenticated identity
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Authenticate resolves a bearer token to an active user
func (s *Service) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			// A valid signature over a vanished user is still an auth failure
			return nil, errs.ErrInvalidToken
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, errs.ErrAccountDisabled
	}

	return user, nil
}

func (s *Service) issueToken(user *entity.User) (string, error) {
	token, err := s.tokens.Generate(authport.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		s.logger.Error("Failed to sign token", map[string]any{
			"user_id": user.ID.String(),
			"error":   err.Error(),
		})
		return "", errs.ErrInternalServer
	}
	return token, nil
}
