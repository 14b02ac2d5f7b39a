package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/wallet_api/internal/apperrors"
	"github.com/SscSPs/wallet_api/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_api/internal/core/ports/services"
	"github.com/SscSPs/wallet_api/internal/dto"
	"github.com/SscSPs/wallet_api/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, now: time.Now}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", apperrors.ErrValidation)
	}

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: email in use", apperrors.ErrDuplicate)
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		AuditFields:  domain.NewAuditFields(userID, s.now().UTC()),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("email in use: %w", err)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", userID))
	return &user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: email or password is wrong", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: email or password is wrong", apperrors.ErrUnauthorized)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if err := validateOwnerID(userID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}
