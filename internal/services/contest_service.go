package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/repo"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/utils"
)

type ContestService struct {
	contests  repo.ContestRepository
	questions repo.QuestionRepository
	users     repo.UserRepository
}

func NewContestService(contests repo.ContestRepository, questions repo.QuestionRepository, users repo.UserRepository) *ContestService {
	return &ContestService{contests: contests, questions: questions, users: users}
}

func (s *ContestService) Create(ctx context.Context, name string, questionIDs []string) (*models.Contest, error) {
	if name == "" || len(questionIDs) == 0 {
		return nil, utils.ValidationError("Please provide a contest name and select at least one question.")
	}

	count, err := s.questions.CountByIDs(ctx, questionIDs)
	if err != nil {
		return nil, utils.InternalError("Failed to create contest")
	}
	if count != len(questionIDs) {
		return nil, utils.ValidationError("One or more selected questions do not exist")
	}

	contest := &models.Contest{
		ID:            uuid.NewString(),
		Name:          name,
		Status:        models.ContestUpcoming,
		QuestionIDs:   questionIDs,
		AssignedUsers: []string{},
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.contests.Create(ctx, contest); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, utils.ConflictError("Contest already exists")
		}
		return nil, utils.InternalError("Failed to create contest")
	}
	return contest, nil
}

func (s *ContestService) ListAdmin(ctx context.Context) ([]models.Contest, error) {
	contests, err := s.contests.List(ctx)
	if err != nil {
		return nil, utils.InternalError("Failed to fetch contests")
	}
	return contests, nil
}

func (s *ContestService) UpdateStatus(ctx context.Context, id string, status models.ContestStatus) (*models.Contest, error) {
	if !status.Valid() {
		return nil, utils.ValidationError("invalid contest status")
	}

	contest, err := s.contests.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NotFoundError("Contest not found")
		}
		return nil, utils.InternalError("Failed to update contest status")
	}
	return contest, nil
}

// AssignUsers replaces the contest's assigned user list.
func (s *ContestService) AssignUsers(ctx context.Context, id string, userIDs []string) (*models.Contest, error) {
	if userIDs == nil {
		userIDs = []string{}
	}
	if len(userIDs) > 0 {
		count, err := s.users.CountByIDs(ctx, userIDs)
		if err != nil {
			return nil, utils.InternalError("Failed to assign users")
		}
		if count != len(userIDs) {
			return nil, utils.ValidationError("One or more selected users do not exist")
		}
	}

	contest, err := s.contests.UpdateAssignedUsers(ctx, id, userIDs)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NotFoundError("Contest not found")
		}
		return nil, utils.InternalError("Failed to assign users")
	}
	return contest, nil
}

// ListForUser returns the live contests assigned to the given user,
// trimmed to the fields the portal needs.
func (s *ContestService) ListForUser(ctx context.Context, userID string) ([]models.ContestView, error) {
	contests, err := s.contests.ListAssigned(ctx, userID, models.ContestLive)
	if err != nil {
		return nil, utils.InternalError("Failed to retrieve user contests")
	}

	views := make([]models.ContestView, 0, len(contests))
	for i := range contests {
		views = append(views, contests[i].View())
	}
	return views, nil
}
