package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/allodocta/backoffice/internal/client/api"
	"github.com/allodocta/backoffice/internal/client/config"
	"github.com/allodocta/backoffice/internal/client/repositories/credentials"
	"github.com/allodocta/backoffice/internal/client/services"
	"github.com/allodocta/backoffice/internal/client/session"
	"github.com/allodocta/backoffice/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired client and the current navigation state. One App
// serves one interactive session.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Session

	auth      services.AuthService
	admin     services.AdminService
	doctors   services.DoctorService
	location  services.LocationService
	medical   services.MedicalService
	resources services.ResourceService
	upload    services.UploadService

	reader *bufio.Reader
	out    io.Writer

	route    string
	userName string
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := credentials.Open(ctx, c.CredentialsDSN)
	if err != nil {
		return nil, fmt.Errorf("opening credentials store: %w", err)
	}

	sess, err := session.Load(ctx, credentials.NewSQLiteRepository(db))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	apiClient := api.New(c.BaseURL, c.RequestTimeout, sess, log)

	return &App{
		config:    c,
		log:       log,
		db:        db,
		session:   sess,
		auth:      services.NewAuthService(apiClient, sess, log),
		admin:     services.NewAdminService(apiClient),
		doctors:   services.NewDoctorService(apiClient),
		location:  services.NewLocationService(apiClient),
		medical:   services.NewMedicalService(apiClient),
		resources: services.NewResourceService(apiClient),
		upload:    services.NewUploadService(c.UploadURL, c.UploadPreset, c.RequestTimeout, log),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		route:     RouteHome,
	}, nil
}

// Run enters the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintln(a.out, "AlloDocta back-office (tapez 'help' pour les commandes)")
	a.Open(ctx, RouteHome)
	runREPL(ctx, a, bufio.NewScanner(os.Stdin), a.prompt)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) prompt() string {
	s := ""
	if a.userName != "" {
		s = "(" + a.userName + ") "
	}
	return fmt.Sprintf("adm %s%s> ", s, a.route)
}

// Open navigates to path, applying the route guard before rendering.
func (a *App) Open(ctx context.Context, path string) {
	if !KnownRoute(path) {
		fmt.Fprintln(a.out, "Route inconnue:", path)
		return
	}
	if target, redirect := DecideRedirect(a.session.IsAuthenticated(), path); redirect {
		path = target
	}
	a.route = path
	a.render(ctx)
}

// render draws the screen for the current route. Landing routes list their
// children; data routes fetch and show their default listing.
func (a *App) render(ctx context.Context) {
	switch a.route {
	case RouteHome:
		a.home(ctx)
	case RouteLogin:
		fmt.Fprintln(a.out, "Connexion requise. Tapez 'login' pour vous connecter, 'reset' si mot de passe oublié.")
	case RouteResetPassword:
		fmt.Fprintln(a.out, "Tapez 'reset' pour recevoir un lien de réinitialisation.")
	case "/doctors", "/location", "/medical-resources", "/internal-resources":
		a.showChildren()
	case "/account":
		a.accountPage(ctx)
	case "/settings":
		a.settingsPage()
	case "/notifications":
		a.listNotifications(ctx, 1)
	default:
		fmt.Fprintln(a.out, "Tapez 'list' pour afficher les données, 'help' pour les commandes.")
	}
}

func (a *App) showChildren() {
	prefix := a.route + "/"
	for _, r := range Routes {
		if len(r.Path) > len(prefix) && r.Path[:len(prefix)] == prefix {
			fmt.Fprintf(a.out, "  %-40s %s\n", r.Path, r.Label)
		}
	}
	fmt.Fprintln(a.out, "Tapez 'open <route>' pour y accéder.")
}

// ShowRoutes prints the full route table.
func (a *App) ShowRoutes() {
	rows := make([][]string, 0, len(Routes))
	for _, r := range Routes {
		rows = append(rows, []string{r.Path, r.Label})
	}
	renderTable(a.out, []string{"ROUTE", "ÉCRAN"}, rows)
}

// Help prints the commands available in the current context.
func (a *App) Help() {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Commandes: login, reset, help, exit")
		return
	}
	fmt.Fprintln(a.out, "Commandes globales: open <route>, routes, refresh, logout, help, exit")
	if cmds := pageCommands[a.route]; cmds != "" {
		fmt.Fprintln(a.out, "Commandes de l'écran:", cmds)
	}
}

// pageCommands is the per-screen help text.
var pageCommands = map[string]string{
	RouteHome:                       "stats",
	"/doctors/users-management":     "list [limite], page <n> [limite], find champ=valeur..., set <id> champ=valeur..., activate <id>, deactivate <id>, delete <id>",
	"/doctors/specialities":         "list [limite], add <nom>, rename <id> <nom>, delete <id>",
	"/doctors/requests-kyc":         "list [statut], approve <id>, reject <id>",
	"/doctors/requests-deletion":    "list [statut], approve <id>, reject <id>",
	"/location/districts":           "list, add <nom>, rename <id> <nom>",
	"/location/regions":             "list [nom], add, set <id> champ=valeur..., delete <id>",
	"/location/cities":              "list [nom], region <nom>, add, set <id> champ=valeur..., delete <id>",
	"/medical-resources/pharmacies": "list [champ=valeur...], add, set <id> champ=valeur..., guard <période> <code,...>, areas, sections, export [fichier], delete <id>",
	"/medical-resources/medecines":  "list [champ=valeur...], attributes, add, import <fichier.csv>, set <id> champ=valeur..., delete <id>",
	"/internal-resources/ads":       "list, add, set <id> champ=valeur..., delete <id>",
	"/internal-resources/articles":  "list, add, publish <id>, unpublish <id>, set <id> champ=valeur..., delete <id>",
	"/notifications":                "list [page], send, set <id> champ=valeur..., delete <id>",
	"/account":                      "show, notifications",
	"/settings":                     "show",
}

// Exec dispatches a page command for the current route. Unknown commands
// are reported with the screen's help line.
func (a *App) Exec(ctx context.Context, cmd string, args []string) {
	var err error
	switch a.route {
	case RouteHome:
		err = a.execHome(ctx, cmd)
	case "/doctors/users-management":
		err = a.execDoctors(ctx, cmd, args)
	case "/doctors/specialities":
		err = a.execSpecialities(ctx, cmd, args)
	case "/doctors/requests-kyc":
		err = a.execKycRequests(ctx, cmd, args)
	case "/doctors/requests-deletion":
		err = a.execDeletionRequests(ctx, cmd, args)
	case "/location/districts":
		err = a.execDistricts(ctx, cmd, args)
	case "/location/regions":
		err = a.execRegions(ctx, cmd, args)
	case "/location/cities":
		err = a.execCities(ctx, cmd, args)
	case "/medical-resources/pharmacies":
		err = a.execPharmacies(ctx, cmd, args)
	case "/medical-resources/medecines":
		err = a.execMedecines(ctx, cmd, args)
	case "/internal-resources/ads":
		err = a.execAds(ctx, cmd, args)
	case "/internal-resources/articles":
		err = a.execArticles(ctx, cmd, args)
	case "/notifications":
		err = a.execNotifications(ctx, cmd, args)
	case "/account":
		err = a.execAccount(ctx, cmd)
	case "/settings":
		err = a.execSettings(cmd)
	default:
		err = errUnknownCommand
	}

	switch {
	case err == errUnknownCommand:
		fmt.Fprintln(a.out, "Commande inconnue:", cmd)
		if cmds := pageCommands[a.route]; cmds != "" {
			fmt.Fprintln(a.out, "Commandes de l'écran:", cmds)
		}
	case err != nil:
		fmt.Fprintln(a.out, err.Error())
	}
}
