package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/allodocta/backoffice/internal/client/api"
	"github.com/allodocta/backoffice/internal/client/session"
	"github.com/allodocta/backoffice/internal/common"
	"github.com/allodocta/backoffice/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory credentials.Repository for session wiring.
type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (m *memRepo) Get(_ context.Context, key string) ([]byte, error) { return m.data[key], nil }
func (m *memRepo) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}
func (m *memRepo) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *memRepo) Clear(_ context.Context) error {
	m.data = map[string][]byte{}
	return nil
}

type authFixture struct {
	auth AuthService
	sess *session.Session
	repo *memRepo
}

func newAuthFixture(t *testing.T, handler http.Handler) *authFixture {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	repo := newMemRepo()
	sess, err := session.Load(context.Background(), repo)
	require.NoError(t, err)

	log := newTestLogger()
	client := api.New(srv.URL, 5*time.Second, sess, log)
	return &authFixture{
		auth: NewAuthService(client, sess, log),
		sess: sess,
		repo: repo,
	}
}

func newTestLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLogin_Success_StoresTokenAndAttachesBearer(t *testing.T) {
	var meAuth atomic.Value

	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok123","user":{"id":"1","email":"a@b.com","name":"A"}}`))
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		meAuth.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":{"_id":"1","email":"a@b.com"}}`))
	})

	f := newAuthFixture(t, mux)
	ctx := context.Background()

	user, err := f.auth.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)

	assert.True(t, f.sess.IsAuthenticated())
	assert.Equal(t, []byte("tok123"), f.repo.data[session.TokenKey])

	_, err = f.auth.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", meAuth.Load())
}

func TestLogin_InvalidCredentials_SessionUnchanged(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"identifiants invalides"}`))
	})

	f := newAuthFixture(t, mux)

	_, err := f.auth.Login(context.Background(), "a@b.com", "wrong")

	var authErr *common.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "identifiants invalides", authErr.Message)
	assert.False(t, f.sess.IsAuthenticated())
	assert.Empty(t, f.repo.data)
}

func TestLogin_TransportError_FallbackMessage(t *testing.T) {
	f := newAuthFixture(t, http.NewServeMux())

	// no /login handler registered: 404 without an API message
	_, err := f.auth.Login(context.Background(), "a@b.com", "secret1")

	var authErr *common.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Connexion echouée", authErr.Message)
}

func TestLogout_ClearsSessionEvenWhenServerFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	f := newAuthFixture(t, mux)
	ctx := context.Background()
	require.NoError(t, f.sess.Set(ctx, "tok123"))

	f.auth.Logout(ctx)

	assert.False(t, f.sess.IsAuthenticated())
	assert.Empty(t, f.repo.data)
}

func TestLogout_Idempotent(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"success":true}`))
	})

	f := newAuthFixture(t, mux)
	ctx := context.Background()
	require.NoError(t, f.sess.Set(ctx, "tok123"))

	f.auth.Logout(ctx)
	f.auth.Logout(ctx)

	assert.False(t, f.sess.IsAuthenticated())
	assert.Empty(t, f.repo.data)
	// the second logout has no token, so the server is not notified again
	assert.Equal(t, int32(1), calls.Load())
}

func TestLoginThenLogout_EndsAnonymousWithEmptyStorage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok123","user":{"id":"1","email":"a@b.com","name":"A"}}`))
	})
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})

	f := newAuthFixture(t, mux)
	ctx := context.Background()

	_, err := f.auth.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	f.auth.Logout(ctx)

	assert.False(t, f.sess.IsAuthenticated())
	assert.Empty(t, f.repo.data)
}

func TestRefreshToken_Success_ReplacesSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer old-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"token":"new-token"}`))
	})

	f := newAuthFixture(t, mux)
	ctx := context.Background()
	require.NoError(t, f.sess.Set(ctx, "old-token"))

	require.NoError(t, f.auth.RefreshToken(ctx))

	tok, ok := f.sess.Current()
	assert.True(t, ok)
	assert.Equal(t, "new-token", tok)
	assert.Equal(t, []byte("new-token"), f.repo.data[session.TokenKey])
}

func TestRefreshToken_Failure_AlwaysEndsAnonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"token rejeté"}`))
	})

	f := newAuthFixture(t, mux)
	ctx := context.Background()
	require.NoError(t, f.sess.Set(ctx, "old-token"))

	err := f.auth.RefreshToken(ctx)

	var refreshErr *common.TokenRefreshError
	require.ErrorAs(t, err, &refreshErr)
	assert.False(t, f.sess.IsAuthenticated())
	assert.Empty(t, f.repo.data)
}

func TestCurrentUser_Unauthorized_ClearsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"session expirée"}`))
	})

	f := newAuthFixture(t, mux)
	ctx := context.Background()
	require.NoError(t, f.sess.Set(ctx, "stale-token"))

	_, err := f.auth.CurrentUser(ctx)

	var authErr *common.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.False(t, f.sess.IsAuthenticated())
	assert.Empty(t, f.repo.data)
}

func TestCurrentUser_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"_id":"a1","firstName":"Sana","lastName":"K","email":"s@k.com"}}`))
	})

	f := newAuthFixture(t, mux)
	require.NoError(t, f.sess.Set(context.Background(), "tok"))

	admin, err := f.auth.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a1", admin.ID)
	assert.Equal(t, "Sana", admin.FirstName)
}

func TestResetPassword_DoesNotTouchSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/reset-password", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})

	f := newAuthFixture(t, mux)
	ctx := context.Background()
	require.NoError(t, f.sess.Set(ctx, "tok123"))

	require.NoError(t, f.auth.ResetPassword(ctx, "a@b.com"))
	assert.True(t, f.sess.IsAuthenticated())
}

func TestResetPassword_RejectedEmail_CarriesMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/reset-password", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"email inconnu"}`))
	})

	f := newAuthFixture(t, mux)

	err := f.auth.ResetPassword(context.Background(), "nobody@b.com")

	var opErr *common.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "email inconnu", opErr.Message)
}
