package routes

import (
	"log/slog"
	"sync"

	"github.com/Aswin-K5/nutriview/pkg/model"
	"github.com/Aswin-K5/nutriview/pkg/session"
)

// Route is one navigable screen.
type Route struct {
	Path  string
	Title string
	Guard Guard
}

// Table is the client's full route map.
func Table() []Route {
	return []Route{
		{Path: "/", Title: "Welcome", Guard: PublicOnly},
		{Path: "/login", Title: "Sign In", Guard: PublicOnly},
		{Path: "/register", Title: "Create Account", Guard: PublicOnly},

		{Path: "/dashboard", Title: "Dashboard", Guard: RequirePatient},
		{Path: "/profile", Title: "My Profile", Guard: RequirePatient},
		{Path: "/dietary-recall", Title: "24-Hour Recall", Guard: RequirePatient},
		{Path: "/diet-plan", Title: "Diet Plan", Guard: RequirePatient},
		{Path: "/ffq", Title: "Food Frequency Questionnaire", Guard: RequirePatient},
		{Path: "/progress", Title: "Progress", Guard: RequirePatient},
		{Path: "/recall-calendar", Title: "Recall Calendar", Guard: RequirePatient},
		{Path: "/plan-comparison", Title: "Plan Comparison", Guard: RequirePatient},
		{Path: "/goals", Title: "Health Goals", Guard: RequirePatient},

		{Path: "/investigator", Title: "Investigator Home", Guard: RequireInvestigator},
		{Path: "/investigator/patients", Title: "Patient Registry", Guard: RequireInvestigator},
		{Path: "/investigator/analytics", Title: "Analytics", Guard: RequireInvestigator},
	}
}

// maxRedirects bounds redirect chains; the table's guards settle in two
// hops, anything deeper is a table bug.
const maxRedirects = 8

// Router resolves navigation against the route table and the session
// store, and re-resolves the current location on every session change.
type Router struct {
	mu      sync.Mutex
	store   *session.Store
	byPath  map[string]Route
	current Route
	history []string

	// OnChange renders the resolved route; set once by the UI shell
	// before the first Navigate.
	OnChange func(Route, model.Session)
}

// NewRouter builds a Router over the default table and subscribes it to
// the session store.
func NewRouter(store *session.Store) *Router {
	byPath := make(map[string]Route)
	for _, rt := range Table() {
		byPath[rt.Path] = rt
	}
	r := &Router{store: store, byPath: byPath}

	store.Subscribe(func(s model.Session) { r.refresh(s) })
	return r
}

// Resolve walks path through the table and its guard chain, returning the
// route that should render. Unmatched paths redirect to "/".
func (r *Router) Resolve(path string, s model.Session) Route {
	for i := 0; i < maxRedirects; i++ {
		rt, ok := r.byPath[path]
		if !ok {
			path = "/"
			continue
		}
		d := rt.Guard(s)
		if d.Allow {
			return rt
		}
		path = d.RedirectTo
	}
	slog.Error("routes: redirect chain did not settle", "path", path)
	return r.byPath[LoginPath]
}

// Navigate moves to path, pushing a history entry when the target renders
// as requested; redirected navigations replace instead.
func (r *Router) Navigate(path string) {
	s := r.store.Current()
	rt := r.Resolve(path, s)

	r.mu.Lock()
	if rt.Path == path {
		if r.current.Path != "" && r.current.Path != rt.Path {
			r.history = append(r.history, r.current.Path)
		}
	}
	// A guard redirect replaces: no history entry, the guarded path stays
	// unreachable via Back.
	r.current = rt
	onChange := r.OnChange
	r.mu.Unlock()

	if onChange != nil {
		onChange(rt, s)
	}
}

// Replace moves to path without ever touching history.
func (r *Router) Replace(path string) {
	s := r.store.Current()
	rt := r.Resolve(path, s)

	r.mu.Lock()
	r.current = rt
	onChange := r.OnChange
	r.mu.Unlock()

	if onChange != nil {
		onChange(rt, s)
	}
}

// Back pops the previous location, re-guarded against the current session.
func (r *Router) Back() {
	r.mu.Lock()
	if len(r.history) == 0 {
		r.mu.Unlock()
		return
	}
	prev := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.mu.Unlock()

	r.Replace(prev)
}

// Current returns the route on screen.
func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// refresh re-evaluates the current location after a session change, so a
// login lands on the right home and a forced logout cannot leave a
// guarded screen up.
func (r *Router) refresh(s model.Session) {
	r.mu.Lock()
	cur := r.current.Path
	r.mu.Unlock()
	if cur == "" {
		return
	}

	rt := r.Resolve(cur, s)
	if rt.Path == cur {
		return
	}

	r.mu.Lock()
	r.current = rt
	onChange := r.OnChange
	r.mu.Unlock()

	if onChange != nil {
		onChange(rt, s)
	}
}
