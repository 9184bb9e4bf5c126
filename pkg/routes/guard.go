// Package routes decides which screen the client renders.
//
// Guards are pure functions of a session snapshot: given "is there a
// token" and "which role", each returns render-or-redirect. The Router
// owns the current location, re-evaluates it whenever the session store
// changes, and makes every redirect replace history so a guarded screen
// is never reachable through back-navigation.
package routes

import "github.com/Aswin-K5/nutriview/pkg/model"

// Well-known navigation targets.
const (
	LoginPath        = "/login"
	PatientHome      = "/dashboard"
	InvestigatorHome = "/investigator"
)

// Decision is a guard's verdict: render the route, or go elsewhere.
// Redirects always replace the history entry.
type Decision struct {
	Allow      bool
	RedirectTo string
}

func render() Decision                { return Decision{Allow: true} }
func redirect(target string) Decision { return Decision{RedirectTo: target} }

// Guard gates one route against the current session.
type Guard func(model.Session) Decision

// RequireAuth admits any logged-in user.
func RequireAuth(s model.Session) Decision {
	if !s.LoggedIn() {
		return redirect(LoginPath)
	}
	return render()
}

// RequirePatient admits patients; investigators go to their own home.
func RequirePatient(s model.Session) Decision {
	if !s.LoggedIn() {
		return redirect(LoginPath)
	}
	if s.Role() == model.RoleInvestigator {
		return redirect(InvestigatorHome)
	}
	return render()
}

// RequireInvestigator admits investigators; patients go to the dashboard.
func RequireInvestigator(s model.Session) Decision {
	if !s.LoggedIn() {
		return redirect(LoginPath)
	}
	if s.Role() != model.RoleInvestigator {
		return redirect(PatientHome)
	}
	return render()
}

// PublicOnly admits logged-out users; anyone with a session is sent home
// by role (login and register screens).
func PublicOnly(s model.Session) Decision {
	if !s.LoggedIn() {
		return render()
	}
	if s.Role() == model.RoleInvestigator {
		return redirect(InvestigatorHome)
	}
	return redirect(PatientHome)
}
