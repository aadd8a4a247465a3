package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"libgo-server/internal/model"
	"libgo-server/internal/repository"
)

type UserService interface {
	// Register creates the user unless one with the same email already
	// exists; created reports which of the two happened.
	Register(ctx context.Context, user *model.User) (created bool, err error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetRole(ctx context.Context, email string) (string, error)
	UpdateProfile(ctx context.Context, email, displayName, photoURL string) (int64, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, user *model.User) (bool, error) {
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	user.ID = uuid.NewString()
	if user.Role == "" {
		user.Role = model.RoleCustomer
	}
	user.CreatedAt = time.Now()

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two registrations racing on the same email: the unique index on
		// email wins, treat ours as "already exists".
		if isDuplicate(err) {
			return false, nil
		}
		return false, fmt.Errorf("create user: %w", err)
	}

	return true, nil
}

func (s *userServiceImpl) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userServiceImpl) GetRole(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.RoleCustomer, nil
		}
		return "", fmt.Errorf("find user by email: %w", err)
	}
	if user.Role == "" {
		return model.RoleCustomer, nil
	}

	return user.Role, nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, email, displayName, photoURL string) (int64, error) {
	modified, err := s.userRepo.UpdateProfile(ctx, email, displayName, photoURL)
	if err != nil {
		return 0, fmt.Errorf("update profile: %w", err)
	}

	return modified, nil
}
