package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/auth"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGuardedRouter(tokens *auth.TokenIssuer, users *testutil.MemUserRepo) *gin.Engine {
	router := gin.New()
	protected := router.Group("", Authenticate(tokens, users))
	protected.GET("/whoami", func(c *gin.Context) {
		identity, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": identity.ID, "role": identity.Role})
	})
	protected.GET("/admin", RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func seedGuardUser(t *testing.T, users *testutil.MemUserRepo, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		ID:     "u1",
		Name:   "A",
		Email:  "a@x.com",
		Role:   role,
		Status: models.StatusApproved,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func doRequest(router *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_NoToken(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenIssuer("secret", time.Hour)
	router := newGuardedRouter(tokens, testutil.NewMemUserRepo())

	rec := doRequest(router, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenIssuer("secret", time.Hour)
	users := testutil.NewMemUserRepo()
	user := seedGuardUser(t, users, models.RoleUser)
	token, err := tokens.Issue(user.ID, user.Role)
	require.NoError(t, err)

	router := newGuardedRouter(tokens, users)
	rec := doRequest(router, "/whoami", "Basic "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenIssuer("secret", time.Hour)
	router := newGuardedRouter(tokens, testutil.NewMemUserRepo())

	rec := doRequest(router, "/whoami", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	t.Parallel()

	expired := auth.NewTokenIssuer("secret", -time.Second)
	users := testutil.NewMemUserRepo()
	user := seedGuardUser(t, users, models.RoleUser)
	token, err := expired.Issue(user.ID, user.Role)
	require.NoError(t, err)

	router := newGuardedRouter(auth.NewTokenIssuer("secret", time.Hour), users)
	rec := doRequest(router, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenIssuer("secret", time.Hour)
	users := testutil.NewMemUserRepo()
	user := seedGuardUser(t, users, models.RoleUser)
	token, err := tokens.Issue(user.ID, user.Role)
	require.NoError(t, err)

	users.Delete(user.ID)

	router := newGuardedRouter(tokens, users)
	rec := doRequest(router, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenIssuer("secret", time.Hour)
	users := testutil.NewMemUserRepo()
	user := seedGuardUser(t, users, models.RoleUser)
	token, err := tokens.Issue(user.ID, user.Role)
	require.NoError(t, err)

	router := newGuardedRouter(tokens, users)
	rec := doRequest(router, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"u1"`)
}

func TestRequireRole_Forbidden(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenIssuer("secret", time.Hour)
	users := testutil.NewMemUserRepo()
	user := seedGuardUser(t, users, models.RoleUser)
	token, err := tokens.Issue(user.ID, user.Role)
	require.NoError(t, err)

	router := newGuardedRouter(tokens, users)
	rec := doRequest(router, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// A role change after issuance is picked up on the next request because
// the guard gates on the stored role, not the token's embedded claim.
func TestRequireRole_ReResolvesStoredRole(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenIssuer("secret", time.Hour)
	users := testutil.NewMemUserRepo()
	user := seedGuardUser(t, users, models.RoleUser)
	token, err := tokens.Issue(user.ID, models.RoleUser)
	require.NoError(t, err)

	router := newGuardedRouter(tokens, users)
	rec := doRequest(router, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	users.SetRole(user.ID, models.RoleAdmin)
	rec = doRequest(router, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
