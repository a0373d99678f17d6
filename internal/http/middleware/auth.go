package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/auth"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/repo"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/utils"
)

const identityKey = "identity"

// Identity is the sanitized caller attached to the request context after
// a token passes verification and resolves to a stored user.
type Identity struct {
	ID     string
	Name   string
	Email  string
	Role   models.Role
	Status models.UserStatus
}

// Authenticate extracts a Bearer token, verifies it, and re-resolves the
// user from the store. Gating on the stored role rather than the embedded
// claim means a demotion takes effect on the next request.
func Authenticate(tokens *auth.TokenIssuer, users repo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, utils.AuthenticationError("Not authorized, no token"))
			return
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abort(c, utils.AuthenticationError("Token expired"))
				return
			}
			abort(c, utils.AuthenticationError("Not authorized, token failed"))
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				abort(c, utils.AuthenticationError("User not found"))
				return
			}
			abort(c, utils.InternalError("could not resolve user"))
			return
		}

		c.Set(identityKey, &Identity{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
			Status: user.Status,
		})
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// CurrentUser returns the identity set by Authenticate.
func CurrentUser(c *gin.Context) (*Identity, bool) {
	val, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}

func abort(c *gin.Context, err error) {
	utils.RespondError(c, err)
	c.Abort()
}
