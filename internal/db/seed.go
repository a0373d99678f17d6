package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/auth"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/repo"
)

// EnsureAdmin creates the bootstrap admin account if it does not exist.
// Runs through the repository interface so both store backends are covered.
func EnsureAdmin(ctx context.Context, users repo.UserRepository, hasher *auth.PasswordHasher, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("check admin account: %w", err)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &models.User{
		ID:           uuid.NewString(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Status:       models.StatusApproved,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := users.Create(ctx, admin); err != nil {
		// Another instance may have seeded it first.
		if errors.Is(err, repo.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("create admin account: %w", err)
	}
	return nil
}

var seedQuestions = []models.Question{
	{
		ID:                 "seed-python-1",
		Module:             "Python",
		Text:               "What is the output of len([1, 2, 3])?",
		Options:            []string{"2", "3", "4", "an error"},
		CorrectOptionIndex: 1,
		Difficulty:         models.DifficultyEasy,
	},
	{
		ID:                 "seed-python-2",
		Module:             "Python",
		Text:               "Which keyword defines a generator function?",
		Options:            []string{"return", "async", "yield", "lambda"},
		CorrectOptionIndex: 2,
		Difficulty:         models.DifficultyMedium,
	},
	{
		ID:                 "seed-cyber-1",
		Module:             "Cybersecurity",
		Text:               "Which attack is mitigated by parameterized queries?",
		Options:            []string{"XSS", "SQL injection", "CSRF", "phishing"},
		CorrectOptionIndex: 1,
		Difficulty:         models.DifficultyEasy,
	},
	{
		ID:                 "seed-cyber-2",
		Module:             "Cybersecurity",
		Text:               "What does a salted hash protect against?",
		Options:            []string{"replay attacks", "rainbow tables", "port scans", "MITM"},
		CorrectOptionIndex: 1,
		Difficulty:         models.DifficultyHard,
	},
}

// EnsureQuestions seeds a starter question bank so contests can be built
// on a fresh install. Questions already present are left untouched.
func EnsureQuestions(ctx context.Context, questions repo.QuestionRepository) error {
	for i := range seedQuestions {
		q := seedQuestions[i]
		if err := questions.Insert(ctx, &q); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				continue
			}
			return fmt.Errorf("insert seed question %s: %w", q.ID, err)
		}
	}
	return nil
}
