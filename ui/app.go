// Package ui provides the Fyne shell for the NutriView client.
//
// The shell is deliberately thin: it renders whichever route the router
// resolves and forwards form submissions to the API package. Risk scores,
// plans and analytics are computed server-side and displayed as received.
package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/Aswin-K5/nutriview/pkg/api"
	"github.com/Aswin-K5/nutriview/pkg/config"
	"github.com/Aswin-K5/nutriview/pkg/model"
	"github.com/Aswin-K5/nutriview/pkg/routes"
	"github.com/Aswin-K5/nutriview/pkg/session"
	"github.com/Aswin-K5/nutriview/pkg/storage"
	"github.com/Aswin-K5/nutriview/pkg/version"
)

// App is the GUI application.
type App struct {
	fyneApp fyne.App
	window  fyne.Window

	cfg    *config.Config
	kv     storage.KeyValue
	store  *session.Store
	client *api.Client
	router *routes.Router

	statusLabel *widget.Label
}

// NewApp wires storage, session, API client and router together.
func NewApp(cfg *config.Config) (*App, error) {
	path, err := cfg.ResolveStoragePath()
	if err != nil {
		return nil, err
	}
	kv, err := storage.Open(path)
	if err != nil {
		return nil, err
	}

	store := session.New(kv)
	router := routes.NewRouter(store)

	client := api.New(api.Options{
		BaseURL: cfg.APIBaseURL,
		Tokens:  store,
		OnUnauthorized: func() {
			// Clear the session before navigating so the login screen's
			// guard observes a logged-out state.
			store.Logout()
			router.Replace(routes.LoginPath)
		},
	})

	a := &App{
		fyneApp: app.NewWithID("com.nutriview.client"),
		cfg:     cfg,
		kv:      kv,
		store:   store,
		client:  client,
		router:  router,
	}
	a.window = a.fyneApp.NewWindow("NutriView")
	a.window.Resize(fyne.NewSize(960, 680))
	a.window.SetMaster()
	return a, nil
}

// Run starts the GUI (blocks until the window closes).
func (a *App) Run() {
	a.statusLabel = widget.NewLabel("")
	a.statusLabel.TextStyle = fyne.TextStyle{Italic: true}

	a.router.OnChange = func(rt routes.Route, s model.Session) {
		fyne.Do(func() { a.render(rt, s) })
	}

	a.fyneApp.Lifecycle().SetOnStarted(func() {
		s := a.store.Current()
		switch {
		case !s.LoggedIn():
			a.router.Navigate(routes.LoginPath)
		case s.Role() == model.RoleInvestigator:
			a.router.Navigate(routes.InvestigatorHome)
		default:
			a.router.Navigate(routes.PatientHome)
		}
	})

	a.window.SetCloseIntercept(func() {
		if err := a.kv.Close(); err != nil {
			slog.Error("close storage", "err", err)
		}
		a.fyneApp.Quit()
	})
	a.window.ShowAndRun()
}

// render swaps the window content to the screen for rt. Must run on the
// UI thread.
func (a *App) render(rt routes.Route, s model.Session) {
	body := a.screen(rt, s)

	header := a.buildHeader(rt, s)
	statusBar := container.NewHBox(
		a.statusLabel,
		layout.NewSpacer(),
		widget.NewLabel(version.String()),
	)

	a.window.SetTitle("NutriView — " + rt.Title)
	a.window.SetContent(container.NewBorder(header, statusBar, nil, nil, body))
}

func (a *App) buildHeader(rt routes.Route, s model.Session) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(rt.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	if !s.LoggedIn() {
		return container.NewHBox(title, layout.NewSpacer())
	}

	var navItems []fyne.CanvasObject
	navItems = append(navItems, title, layout.NewSpacer())

	links := patientNav
	if s.Role() == model.RoleInvestigator {
		links = investigatorNav
	}
	for _, l := range links {
		path := l.path
		navItems = append(navItems, widget.NewButton(l.label, func() {
			a.router.Navigate(path)
		}))
	}

	navItems = append(navItems,
		widget.NewLabel(s.User.FullName),
		widget.NewButton("Sign Out", func() {
			a.store.Logout()
			a.router.Replace(routes.LoginPath)
		}),
	)
	return container.NewHBox(navItems...)
}

type navLink struct {
	label string
	path  string
}

var patientNav = []navLink{
	{"Dashboard", "/dashboard"},
	{"Profile", "/profile"},
	{"Recall", "/dietary-recall"},
	{"Plan", "/diet-plan"},
	{"Goals", "/goals"},
	{"Progress", "/progress"},
}

var investigatorNav = []navLink{
	{"Home", "/investigator"},
	{"Patients", "/investigator/patients"},
	{"Analytics", "/investigator/analytics"},
}

// screen builds the body for a route.
func (a *App) screen(rt routes.Route, s model.Session) fyne.CanvasObject {
	switch rt.Path {
	case "/", "/login":
		return a.loginScreen()
	case "/register":
		return a.registerScreen()
	case "/dashboard":
		return a.dashboardScreen()
	case "/profile":
		return a.profileScreen()
	case "/dietary-recall":
		return a.recallScreen()
	case "/diet-plan":
		return a.dietPlanScreen()
	case "/ffq":
		return a.ffqScreen()
	case "/progress":
		return a.progressScreen()
	case "/recall-calendar":
		return a.recallCalendarScreen()
	case "/plan-comparison":
		return a.planComparisonScreen()
	case "/goals":
		return a.goalsScreen()
	case "/investigator":
		return a.investigatorHomeScreen()
	case "/investigator/patients":
		return a.investigatorPatientsScreen()
	case "/investigator/analytics":
		return a.investigatorAnalyticsScreen()
	default:
		return widget.NewLabel("Screen not found")
	}
}

// setStatus shows a transient message in the status bar. Safe from any
// goroutine.
func (a *App) setStatus(msg string) {
	fyne.Do(func() { a.statusLabel.SetText(msg) })
}
