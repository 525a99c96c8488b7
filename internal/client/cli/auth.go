package cli

import (
	"context"
	"fmt"
)

// Login prompts for credentials and opens a session. On success the user
// lands on the home dashboard.
func (a *App) Login(ctx context.Context) {
	if a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Déjà connecté.")
		return
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		a.log.Error(ctx, "reading email", "error", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "reading password", "error", err)
		return
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	a.userName = user.Name
	fmt.Fprintf(a.out, "Bienvenue, %s.\n", user.Name)
	a.Open(ctx, RouteHome)
}

// Logout ends the session and returns to the login screen. The session is
// cleared even when the server cannot be reached.
func (a *App) Logout(ctx context.Context) {
	a.auth.Logout(ctx)
	a.userName = ""
	fmt.Fprintln(a.out, "Déconnecté.")
	a.Open(ctx, RouteLogin)
}

// Refresh renews the bearer token. On failure the session is gone and the
// user is sent back to the login screen.
func (a *App) Refresh(ctx context.Context) {
	if err := a.auth.RefreshToken(ctx); err != nil {
		fmt.Fprintln(a.out, err.Error())
		a.userName = ""
		a.Open(ctx, RouteLogin)
		return
	}
	fmt.Fprintln(a.out, "Token renouvelé.")
}

// ResetPassword triggers the out-of-band password reset flow.
func (a *App) ResetPassword(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email du compte", a.out)
	if err != nil {
		a.log.Error(ctx, "reading email", "error", err)
		return
	}
	if err := a.auth.ResetPassword(ctx, email); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "Un lien de réinitialisation a été envoyé si le compte existe.")
}
