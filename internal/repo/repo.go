package repo

import (
	"context"
	"errors"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	// Concurrent duplicate registrations are serialized by the store's
	// unique index, so this must surface from the write itself.
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.User, error)
	CountByIDs(ctx context.Context, ids []string) (int, error)
	Update(ctx context.Context, user *models.User) error
}

type ContestRepository interface {
	Create(ctx context.Context, contest *models.Contest) error
	List(ctx context.Context) ([]models.Contest, error)
	GetByID(ctx context.Context, id string) (*models.Contest, error)
	UpdateStatus(ctx context.Context, id string, status models.ContestStatus) (*models.Contest, error)
	UpdateAssignedUsers(ctx context.Context, id string, userIDs []string) (*models.Contest, error)
	ListAssigned(ctx context.Context, userID string, status models.ContestStatus) ([]models.Contest, error)
}

type QuestionRepository interface {
	Insert(ctx context.Context, question *models.Question) error
	CountByIDs(ctx context.Context, ids []string) (int, error)
}
