package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/allodocta/backoffice/internal/client/models"
)

// home renders the dashboard: the staff profile and the platform counters,
// fetched concurrently. One failed fetch fails the whole screen so a stale
// half-dashboard is never shown.
func (a *App) home(ctx context.Context) {
	var (
		admin *models.Admin
		stats *models.MainStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		admin, err = a.admin.Me(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = a.admin.MainStats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	a.userName = admin.FirstName

	fmt.Fprintf(a.out, "Tableau de bord | %s %s (%s)\n", admin.FirstName, admin.LastName, admin.Email)
	renderTable(a.out, []string{"INDICATEUR", "TOTAL"}, [][]string{
		{"Docteurs", fmt.Sprint(stats.Doctors)},
		{"Pharmacies", fmt.Sprint(stats.Pharmacies)},
		{"Médicaments", fmt.Sprint(stats.Medecines)},
		{"Spécialités", fmt.Sprint(stats.Specialities)},
		{"Régions", fmt.Sprint(stats.Regions)},
		{"Villes", fmt.Sprint(stats.Cities)},
		{"Articles", fmt.Sprint(stats.Articles)},
		{"Publicités", fmt.Sprint(stats.Ads)},
		{"Requêtes KYC", fmt.Sprint(stats.Kyc)},
	})
}

func (a *App) execHome(ctx context.Context, cmd string) error {
	switch cmd {
	case "stats":
		a.home(ctx)
		return nil
	default:
		return errUnknownCommand
	}
}
