// Package services contains the typed resource controllers of the
// back-office client. Each controller wraps a fixed set of REST endpoints,
// unwraps the response envelope through the api client, and converts
// failures into the shared error taxonomy. Controllers are stateless: the
// bearer token is read fresh from the session on every call.
package services

import (
	"context"
	"errors"

	"github.com/allodocta/backoffice/internal/client/api"
	"github.com/allodocta/backoffice/internal/client/models"
	"github.com/allodocta/backoffice/internal/client/session"
	"github.com/allodocta/backoffice/internal/common"
	"github.com/allodocta/backoffice/internal/logging"
)

// AuthService owns the session lifecycle.
//
// Contract:
//   - Login: authenticate and replace the session; on failure the session
//     is left unchanged.
//   - Logout: best-effort server notification, then unconditionally clear
//     the session. Never fails from the caller's perspective.
//   - RefreshToken: replace the session on success; clear it on any
//     failure, since the old token is no longer trustworthy.
//   - ResetPassword: fire-and-forget out-of-band reset; never touches the
//     session.
//   - CurrentUser: fetch the profile for the current token; a 401 clears
//     the session as a side effect.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AuthUser, error)
	Logout(ctx context.Context)
	RefreshToken(ctx context.Context) error
	ResetPassword(ctx context.Context, email string) error
	CurrentUser(ctx context.Context) (*models.Admin, error)
}

type authService struct {
	api     *api.Client
	session *session.Session
	log     logging.Logger
}

func NewAuthService(client *api.Client, sess *session.Session, log logging.Logger) AuthService {
	return &authService{api: client, session: sess, log: log.With("component", "auth")}
}

type loginResponse struct {
	Token string          `json:"token"`
	User  models.AuthUser `json:"user"`
}

type refreshResponse struct {
	Token string `json:"token"`
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.AuthUser, error) {
	body := map[string]string{"email": email, "password": password}

	var resp loginResponse
	if err := s.api.PostRaw(ctx, "/login", body, &resp); err != nil {
		return nil, &common.AuthenticationError{Message: messageOf(err, "Connexion echouée")}
	}

	if err := s.session.Set(ctx, resp.Token); err != nil {
		return nil, &common.AuthenticationError{Message: "Connexion echouée"}
	}

	s.log.Info(ctx, "logged in", "user", resp.User.Email)
	return &resp.User, nil
}

func (s *authService) Logout(ctx context.Context) {
	if _, ok := s.session.Current(); ok {
		if err := s.api.PostRaw(ctx, "/logout", struct{}{}, nil); err != nil {
			s.log.Warn(ctx, "logout notification failed", "err", err)
		}
	}

	if err := s.session.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear stored token", "err", err)
	}
}

func (s *authService) RefreshToken(ctx context.Context) error {
	var resp refreshResponse
	err := s.api.PostRaw(ctx, "/refresh-token", struct{}{}, &resp)
	if err == nil && resp.Token != "" {
		err = s.session.Set(ctx, resp.Token)
	} else if err == nil {
		err = errors.New("empty token")
	}

	if err != nil {
		if clearErr := s.session.Clear(ctx); clearErr != nil {
			s.log.Warn(ctx, "failed to clear stored token", "err", clearErr)
		}
		return &common.TokenRefreshError{Message: "Token refresh failed"}
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	if err := s.api.PostRaw(ctx, "/reset-password", body, nil); err != nil {
		return &common.OperationError{Message: messageOf(err, "Echec pendant le processus de réinitialisation")}
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context) (*models.Admin, error) {
	var admin models.Admin
	if _, err := s.api.Get(ctx, "/me", nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// messageOf picks the server-provided message out of err, substituting
// fallback when the failure was not API-shaped.
func messageOf(err error, fallback string) string {
	var opErr *common.OperationError
	if errors.As(err, &opErr) && opErr.Message != api.GenericErrorMessage {
		return opErr.Message
	}
	return fallback
}
