package cli

// Route paths mirror the web dashboard's route tree so staff can keep their
// muscle memory.
const (
	RouteHome          = "/"
	RouteLogin         = "/login"
	RouteResetPassword = "/reset-password"
)

// route describes one navigable screen.
type route struct {
	Path  string
	Label string
}

// Routes is the navigable route table. Landing routes group their children.
var Routes = []route{
	{Path: RouteHome, Label: "Accueil"},
	{Path: "/doctors", Label: "Gestion des docteurs"},
	{Path: "/doctors/users-management", Label: "Utilisateurs"},
	{Path: "/doctors/requests-kyc", Label: "Requetes KYC"},
	{Path: "/doctors/requests-deletion", Label: "Requetes Suppression"},
	{Path: "/doctors/specialities", Label: "Spécialités"},
	{Path: "/location", Label: "Gestion des localisations"},
	{Path: "/location/cities", Label: "Villes"},
	{Path: "/location/regions", Label: "Régions"},
	{Path: "/location/districts", Label: "Districts"},
	{Path: "/medical-resources", Label: "Resources médicales"},
	{Path: "/medical-resources/medecines", Label: "Médicaments"},
	{Path: "/medical-resources/pharmacies", Label: "Pharmacies"},
	{Path: "/internal-resources", Label: "Resources internes"},
	{Path: "/internal-resources/articles", Label: "Articles"},
	{Path: "/internal-resources/ads", Label: "Publicités"},
	{Path: "/account", Label: "Compte"},
	{Path: "/settings", Label: "Paramètres"},
	{Path: "/notifications", Label: "Notifications"},
	{Path: RouteLogin, Label: "Connexion"},
	{Path: RouteResetPassword, Label: "Mot de passe oublié"},
}

// KnownRoute reports whether path is in the route table.
func KnownRoute(path string) bool {
	for _, r := range Routes {
		if r.Path == path {
			return true
		}
	}
	return false
}

// isAuthRoute reports whether path is one of the public auth screens.
func isAuthRoute(path string) bool {
	return path == RouteLogin || path == RouteResetPassword
}

// DecideRedirect is the route guard: a pure function of (token presence,
// target path) evaluated synchronously on every route change. It trusts
// local token presence, not validity; no server round-trip is made.
//
// Rules:
//   - no token and the target is not an auth route  -> redirect to /login
//   - token present and the target is an auth route -> redirect to /
//   - otherwise no redirect
func DecideRedirect(hasToken bool, path string) (string, bool) {
	if !hasToken && !isAuthRoute(path) {
		return RouteLogin, true
	}
	if hasToken && isAuthRoute(path) {
		return RouteHome, true
	}
	return "", false
}
