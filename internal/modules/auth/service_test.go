package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/imdhruv9/uttam-printing/internal/apperr"
	"github.com/imdhruv9/uttam-printing/internal/modules/user"
)

type fakeUserRepo struct {
	users map[string]*user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	f.users[u.Username] = u
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func newTestService(t *testing.T) Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*user.User{
		"admin": {
			ID:           uuid.New(),
			Username:     "admin",
			PasswordHash: string(hash),
			Roles:        []string{user.RoleAdmin},
		},
	}}
	return NewService(repo, testTokenManager())
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), "admin", "correct-horse")
	require.NoError(t, err)

	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, []string{user.RoleAdmin}, resp.Roles)

	claims, err := testTokenManager().Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Contains(t, claims.Roles, user.RoleAdmin)
}

// Unknown usernames and wrong passwords must be indistinguishable.
func TestLoginGenericFailure(t *testing.T) {
	svc := newTestService(t)

	_, wrongPassword := svc.Login(context.Background(), "admin", "wrong")
	require.Error(t, wrongPassword)
	_, unknownUser := svc.Login(context.Background(), "nobody", "correct-horse")
	require.Error(t, unknownUser)

	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(wrongPassword))
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(unknownUser))
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}
