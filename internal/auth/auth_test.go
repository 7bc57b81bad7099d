package auth

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/enotalexnot/ztk-catalog/internal/store"
)

var testDBSeq int64

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:authtest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	s := store.New(db)
	require.NoError(t, s.Migrate())
	return s
}

func TestLoginAndValidate(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st)

	admin, err := svc.CreateAdmin("admin", "secret123")
	require.NoError(t, err)

	got, session, err := svc.Login("admin", "secret123")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
	assert.Len(t, session.Token, 64)

	resolved, err := svc.Validate(session.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, resolved.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st)

	_, err := svc.CreateAdmin("admin", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login("admin", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordsAreHashed(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st)

	_, err := svc.CreateAdmin("admin", "secret123")
	require.NoError(t, err)

	stored, err := st.GetAdminByUsername("admin")
	require.NoError(t, err)
	assert.NotContains(t, stored.PasswordHash, "secret123")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestSessionExpiryIsLazy(t *testing.T) {
	st := newTestStore(t)
	now := time.Now()
	svc := NewServiceAt(st, func() time.Time { return now })

	_, err := svc.CreateAdmin("admin", "secret123")
	require.NoError(t, err)

	_, session, err := svc.Login("admin", "secret123")
	require.NoError(t, err)

	_, err = svc.Validate(session.Token)
	require.NoError(t, err)

	// Past the absolute expiry the session is absent and the row is
	// cleaned up by the lookup itself.
	now = now.Add(SessionTTL + time.Minute)
	_, err = svc.Validate(session.Token)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = st.GetSession(session.Token)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLogoutDeletesSession(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st)

	_, err := svc.CreateAdmin("admin", "secret123")
	require.NoError(t, err)
	_, session, err := svc.Login("admin", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(session.Token))

	_, err = svc.Validate(session.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestTokensAreUnique(t *testing.T) {
	st := newTestStore(t)
	svc := NewService(st)

	_, err := svc.CreateAdmin("admin", "secret123")
	require.NoError(t, err)

	_, first, err := svc.Login("admin", "secret123")
	require.NoError(t, err)
	_, second, err := svc.Login("admin", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)
}
