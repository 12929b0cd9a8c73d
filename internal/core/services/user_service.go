package services

import (
	"context"
	"time"

	"github.com/fundledger/fundledger-backend/internal/core/domain"
	"github.com/fundledger/fundledger-backend/internal/core/ports"
	"github.com/fundledger/fundledger-backend/internal/dto"
)

// UserService manages users. It also serves as the user directory the ledger
// consults when opening accounts.
type UserService struct {
	userRepo ports.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo ports.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

var (
	_ ports.UserSvcFacade = (*UserService)(nil)
	_ ports.UserDirectory = (*UserService)(nil)
)

// CreateUser registers a new user.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	now := time.Now().UTC()
	user, err := s.userRepo.SaveUser(ctx, domain.User{
		Name:          req.Name,
		Email:         req.Email,
		CreatedAt:     now,
		LastUpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID resolves a user, satisfying the UserDirectory port.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// ListUsers returns a page of users.
func (s *UserService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx, limit, offset)
}

// UpdateUser applies a partial update to an existing user.
func (s *UserService) UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	user.LastUpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	return s.userRepo.DeleteUser(ctx, userID)
}
