package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/auth"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/config"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/repo"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/utils"
)

type AuthService struct {
	users  repo.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
	cfg    *config.Config
}

type LoginResult struct {
	User        *models.User
	Token       string
	RedirectURL string
}

func NewAuthService(users repo.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenIssuer, cfg *config.Config) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, cfg: cfg}
}

// Register creates a user with the default role. No token is issued on
// registration; the account starts pending admin approval.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if len(password) < s.cfg.PasswordMinLen {
		return nil, utils.ValidationError(fmt.Sprintf("password must be at least %d characters", s.cfg.PasswordMinLen))
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, utils.ConflictError("User already exists")
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, utils.InternalError("could not check existing users")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, utils.InternalError("could not secure password")
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The pre-check above races with concurrent registrations; the
		// store's unique index on email is the authoritative gate.
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, utils.ConflictError("User already exists")
		}
		return nil, utils.InternalError("could not create user")
	}

	return user, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password return the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	invalidCredentials := utils.AuthenticationError("Invalid email or password")

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, invalidCredentials
		}
		return nil, utils.InternalError("could not look up user")
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, utils.InternalError("could not verify password")
	}
	if !ok {
		return nil, invalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, utils.InternalError("could not generate token")
	}

	redirectURL := "/user-portal.html"
	if user.Role == models.RoleAdmin {
		redirectURL = "/admin-dashboard.html"
	}

	return &LoginResult{User: user, Token: token, RedirectURL: redirectURL}, nil
}
