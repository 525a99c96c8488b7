package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory credentials.Repository.
type memRepo struct {
	data    map[string][]byte
	delErr  error
	setErr  error
	deleted bool
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (m *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memRepo) Set(_ context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memRepo) Delete(_ context.Context, key string) error {
	m.deleted = true
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

func (m *memRepo) Clear(_ context.Context) error {
	m.data = map[string][]byte{}
	return nil
}

func TestLoad_EmptyStorage_Anonymous(t *testing.T) {
	s, err := Load(context.Background(), newMemRepo())
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestLoad_ExistingToken_Authenticated(t *testing.T) {
	r := newMemRepo()
	r.data[TokenKey] = []byte("tok123")

	s, err := Load(context.Background(), r)
	require.NoError(t, err)

	tok, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, "tok123", tok)
}

func TestSet_WritesThrough(t *testing.T) {
	r := newMemRepo()
	s, err := Load(context.Background(), r)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "tok123"))
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, []byte("tok123"), r.data[TokenKey])
}

func TestSet_StorageError_LeavesSessionUnchanged(t *testing.T) {
	r := newMemRepo()
	r.setErr = errors.New("disk full")
	s, err := Load(context.Background(), r)
	require.NoError(t, err)

	require.Error(t, s.Set(context.Background(), "tok123"))
	assert.False(t, s.IsAuthenticated())
}

func TestClear_RemovesTokenAndStorageKey(t *testing.T) {
	r := newMemRepo()
	s, err := Load(context.Background(), r)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "tok123"))

	require.NoError(t, s.Clear(context.Background()))
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, r.data[TokenKey])
}

func TestClear_MemoryDroppedEvenWhenStorageFails(t *testing.T) {
	r := newMemRepo()
	s, err := Load(context.Background(), r)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "tok123"))

	r.delErr = errors.New("locked")
	require.Error(t, s.Clear(context.Background()))
	assert.False(t, s.IsAuthenticated())
}

func TestClear_Idempotent(t *testing.T) {
	r := newMemRepo()
	s, err := Load(context.Background(), r)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "tok123"))

	require.NoError(t, s.Clear(context.Background()))
	require.NoError(t, s.Clear(context.Background()))
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, r.data[TokenKey])
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin-1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestExpiresWithin(t *testing.T) {
	r := newMemRepo()
	s, err := Load(context.Background(), r)
	require.NoError(t, err)

	// no token
	assert.False(t, s.ExpiresWithin(time.Hour))

	// opaque token
	require.NoError(t, s.Set(context.Background(), "opaque-token"))
	assert.False(t, s.ExpiresWithin(time.Hour))

	// expires soon
	require.NoError(t, s.Set(context.Background(), signedToken(t, time.Now().Add(time.Minute))))
	assert.True(t, s.ExpiresWithin(time.Hour))

	// expires later
	require.NoError(t, s.Set(context.Background(), signedToken(t, time.Now().Add(2*time.Hour))))
	assert.False(t, s.ExpiresWithin(time.Hour))
}
