// Package testutil provides in-memory repository implementations backing
// service and handler tests. They honor the same sentinel-error contract
// as the real store backends, including duplicate-key behavior.
package testutil

import (
	"context"
	"sync"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/repo"
)

type MemUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User

	// CreateErr, when set, is returned by Create to simulate store failures.
	CreateErr error
}

func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{users: make(map[string]models.User)}
}

func (r *MemUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repo.ErrDuplicate
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *MemUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	u := user
	return &u, nil
}

func (r *MemUserRepo) ListByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := []models.User{}
	for _, user := range r.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *MemUserRepo) CountByIDs(ctx context.Context, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, id := range ids {
		if _, ok := r.users[id]; ok {
			n++
		}
	}
	return n, nil
}

func (r *MemUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repo.ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}

// Delete removes a user directly, bypassing the service layer. Used to
// test token resolution against a since-deleted account.
func (r *MemUserRepo) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

// SetRole mutates a stored role directly, simulating an admin change made
// after a token was issued.
func (r *MemUserRepo) SetRole(id string, role models.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		user.Role = role
		r.users[id] = user
	}
}

type MemContestRepo struct {
	mu       sync.Mutex
	contests map[string]models.Contest
}

func NewMemContestRepo() *MemContestRepo {
	return &MemContestRepo{contests: make(map[string]models.Contest)}
}

func (r *MemContestRepo) Create(ctx context.Context, contest *models.Contest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.contests {
		if existing.Name == contest.Name {
			return repo.ErrDuplicate
		}
	}
	r.contests[contest.ID] = *contest
	return nil
}

func (r *MemContestRepo) List(ctx context.Context) ([]models.Contest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contests := []models.Contest{}
	for _, contest := range r.contests {
		contests = append(contests, contest)
	}
	return contests, nil
}

func (r *MemContestRepo) GetByID(ctx context.Context, id string) (*models.Contest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contest, ok := r.contests[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	c := contest
	return &c, nil
}

func (r *MemContestRepo) UpdateStatus(ctx context.Context, id string, status models.ContestStatus) (*models.Contest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contest, ok := r.contests[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	contest.Status = status
	r.contests[id] = contest
	return &contest, nil
}

func (r *MemContestRepo) UpdateAssignedUsers(ctx context.Context, id string, userIDs []string) (*models.Contest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contest, ok := r.contests[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	contest.AssignedUsers = userIDs
	r.contests[id] = contest
	return &contest, nil
}

func (r *MemContestRepo) ListAssigned(ctx context.Context, userID string, status models.ContestStatus) ([]models.Contest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contests := []models.Contest{}
	for _, contest := range r.contests {
		if contest.Status != status {
			continue
		}
		for _, assigned := range contest.AssignedUsers {
			if assigned == userID {
				contests = append(contests, contest)
				break
			}
		}
	}
	return contests, nil
}

type MemQuestionRepo struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewMemQuestionRepo(ids ...string) *MemQuestionRepo {
	r := &MemQuestionRepo{ids: make(map[string]struct{})}
	for _, id := range ids {
		r.ids[id] = struct{}{}
	}
	return r
}

func (r *MemQuestionRepo) Insert(ctx context.Context, question *models.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[question.ID]; ok {
		return repo.ErrDuplicate
	}
	r.ids[question.ID] = struct{}{}
	return nil
}

func (r *MemQuestionRepo) CountByIDs(ctx context.Context, ids []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, id := range ids {
		if _, ok := r.ids[id]; ok {
			n++
		}
	}
	return n, nil
}
