package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/auth"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/testutil"
)

func TestEnsureAdmin_Idempotent(t *testing.T) {
	t.Parallel()

	users := testutil.NewMemUserRepo()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	require.NoError(t, EnsureAdmin(context.Background(), users, hasher, "root@x.com", "rootpw"))
	require.NoError(t, EnsureAdmin(context.Background(), users, hasher, "root@x.com", "rootpw"))

	admin, err := users.GetByEmail(context.Background(), "root@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, models.StatusApproved, admin.Status)
	assert.NotEqual(t, "rootpw", admin.PasswordHash)
}

func TestEnsureAdmin_SkippedWithoutCredentials(t *testing.T) {
	t.Parallel()

	users := testutil.NewMemUserRepo()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	require.NoError(t, EnsureAdmin(context.Background(), users, hasher, "", ""))

	_, err := users.GetByEmail(context.Background(), "root@x.com")
	require.Error(t, err)
}

func TestEnsureQuestions_Idempotent(t *testing.T) {
	t.Parallel()

	questions := testutil.NewMemQuestionRepo()

	require.NoError(t, EnsureQuestions(context.Background(), questions))
	require.NoError(t, EnsureQuestions(context.Background(), questions))

	ids := make([]string, 0, len(seedQuestions))
	for _, q := range seedQuestions {
		ids = append(ids, q.ID)
	}
	n, err := questions.CountByIDs(context.Background(), ids)
	require.NoError(t, err)
	assert.Equal(t, len(seedQuestions), n)
}
