package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/testutil"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/utils"
)

func seedUser(t *testing.T, users *testutil.MemUserRepo, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		ID:     "id-" + email,
		Name:   "N",
		Email:  email,
		Role:   role,
		Status: models.StatusPending,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestUserList_OnlyRegularUsers(t *testing.T) {
	t.Parallel()

	users := testutil.NewMemUserRepo()
	seedUser(t, users, "a@x.com", models.RoleUser)
	seedUser(t, users, "b@x.com", models.RoleUser)
	seedUser(t, users, "root@x.com", models.RoleAdmin)

	svc := NewUserService(users)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, u := range list {
		assert.Equal(t, models.RoleUser, u.Role)
	}
}

func TestUpdateStatusRole_PartialStatus(t *testing.T) {
	t.Parallel()

	users := testutil.NewMemUserRepo()
	user := seedUser(t, users, "a@x.com", models.RoleUser)

	svc := NewUserService(users)
	approved := models.StatusApproved
	updated, err := svc.UpdateStatusRole(context.Background(), user.ID, &approved, nil)
	require.NoError(t, err)

	assert.Equal(t, models.StatusApproved, updated.Status)
	assert.Equal(t, models.RoleUser, updated.Role)
}

func TestUpdateStatusRole_PartialRole(t *testing.T) {
	t.Parallel()

	users := testutil.NewMemUserRepo()
	user := seedUser(t, users, "a@x.com", models.RoleUser)

	svc := NewUserService(users)
	admin := models.RoleAdmin
	updated, err := svc.UpdateStatusRole(context.Background(), user.ID, nil, &admin)
	require.NoError(t, err)

	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestUpdateStatusRole_InvalidValues(t *testing.T) {
	t.Parallel()

	users := testutil.NewMemUserRepo()
	user := seedUser(t, users, "a@x.com", models.RoleUser)
	svc := NewUserService(users)

	bogusStatus := models.UserStatus("frozen")
	_, err := svc.UpdateStatusRole(context.Background(), user.ID, &bogusStatus, nil)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)

	bogusRole := models.Role("superadmin")
	_, err = svc.UpdateStatusRole(context.Background(), user.ID, nil, &bogusRole)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)

	_, err = svc.UpdateStatusRole(context.Background(), user.ID, nil, nil)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestUpdateStatusRole_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewUserService(testutil.NewMemUserRepo())

	approved := models.StatusApproved
	_, err := svc.UpdateStatusRole(context.Background(), "missing", &approved, nil)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}
