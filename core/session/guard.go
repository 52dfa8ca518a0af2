package session

// Views
const (
	LoginView     = "login"
	RegisterView  = "register"
	DashboardView = "dashboard"
)

// publicViews may run without a session. Everything else is protected.
// Public-only views are not blocked for authenticated sessions; those views
// redirect away themselves.
var publicViews = map[string]bool{
	LoginView:    true,
	RegisterView: true,
}

// Protected reports whether a view requires an authenticated session.
func Protected(view string) bool {
	return !publicViews[view]
}

// Resolve is the route guard: given the requested view and the current
// authentication state, it returns the view that should actually run.
// It is stateless and consulted on every navigation.
func Resolve(view string, authenticated bool) string {
	if !authenticated && Protected(view) {
		return LoginView
	}
	return view
}
