package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// accountPage shows the signed-in staff member's profile.
func (a *App) accountPage(ctx context.Context) {
	admin, err := a.auth.CurrentUser(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		if !a.session.IsAuthenticated() {
			a.userName = ""
			a.Open(ctx, RouteLogin)
		}
		return
	}
	a.userName = admin.FirstName

	renderTable(a.out, []string{"CHAMP", "VALEUR"}, [][]string{
		{"Id", admin.ID},
		{"Nom", admin.FirstName + " " + admin.LastName},
		{"Email", admin.Email},
		{"Permissions", strings.Join(admin.Permissions, ", ")},
		{"Créé le", admin.CreatedAt},
	})
}

func (a *App) execAccount(ctx context.Context, cmd string) error {
	switch cmd {
	case "show":
		a.accountPage(ctx)
		return nil

	case "notifications":
		notifications, err := a.admin.MyNotifications(ctx)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(notifications))
		for _, n := range notifications {
			rows = append(rows, []string{truncate(n.Title, 30), truncate(n.Message, 50), n.CreatedAt})
		}
		renderTable(a.out, []string{"TITRE", "MESSAGE", "DATE"}, rows)
		return nil

	default:
		return errUnknownCommand
	}
}

// settingsPage shows the effective client configuration and the state of
// the current token.
func (a *App) settingsPage() {
	tokenState := "absent"
	if _, ok := a.session.Current(); ok {
		tokenState = "présent"
		if a.session.ExpiresWithin(5 * time.Minute) {
			tokenState = "expire bientôt (tapez 'refresh')"
		}
	}

	renderTable(a.out, []string{"PARAMÈTRE", "VALEUR"}, [][]string{
		{"API", a.config.BaseURL},
		{"Upload", a.config.UploadURL},
		{"Timeout", a.config.RequestTimeout.String()},
		{"Base locale", a.config.CredentialsDSN},
		{"Token", tokenState},
	})
}

func (a *App) execSettings(cmd string) error {
	switch cmd {
	case "show":
		a.settingsPage()
		return nil
	default:
		return errUnknownCommand
	}
}
