package services

import (
	"context"
	"errors"
	"time"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/repo"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/utils"
)

type UserService struct {
	users repo.UserRepository
}

func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns all regular users for the admin approval view.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListByRole(ctx, models.RoleUser)
	if err != nil {
		return nil, utils.InternalError("Failed to fetch users")
	}
	return users, nil
}

// UpdateStatusRole applies a partial status and/or role update.
func (s *UserService) UpdateStatusRole(ctx context.Context, id string, status *models.UserStatus, role *models.Role) (*models.User, error) {
	if status == nil && role == nil {
		return nil, utils.ValidationError("nothing to update")
	}
	if status != nil && !status.Valid() {
		return nil, utils.ValidationError("invalid status")
	}
	if role != nil && !role.Valid() {
		return nil, utils.ValidationError("invalid role")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NotFoundError("User not found")
		}
		return nil, utils.InternalError("Failed to update user status")
	}

	if status != nil {
		user.Status = *status
	}
	if role != nil {
		user.Role = *role
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NotFoundError("User not found")
		}
		return nil, utils.InternalError("Failed to update user status")
	}
	return user, nil
}
