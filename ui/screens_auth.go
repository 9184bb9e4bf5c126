package ui

import (
	"context"
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Aswin-K5/nutriview/pkg/api"
	"github.com/Aswin-K5/nutriview/pkg/model"
	"github.com/Aswin-K5/nutriview/pkg/routes"
)

func (a *App) loginScreen() fyne.CanvasObject {
	email := widget.NewEntry()
	email.SetPlaceHolder("email")
	password := widget.NewPasswordEntry()
	errLabel := widget.NewLabel("")
	errLabel.Importance = widget.DangerImportance

	form := widget.NewForm(
		widget.NewFormItem("Email", email),
		widget.NewFormItem("Password", password),
	)
	form.SubmitText = "Sign In"
	form.OnSubmit = func() {
		go a.signIn(email.Text, password.Text, errLabel)
	}

	registerBtn := widget.NewButton("Create an account", func() {
		a.router.Navigate("/register")
	})

	return container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle("Sign in to NutriView", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		form,
		errLabel,
		registerBtn,
	))
}

// signIn runs the full login flow. The session is fully persisted before
// any navigation happens: a guard evaluated right after must already see
// the new session.
func (a *App) signIn(email, password string, errLabel *widget.Label) {
	ctx := context.Background()

	tok, err := a.client.Login(ctx, email, password)
	if err != nil {
		showErr(errLabel, err)
		return
	}
	user, err := a.client.Me(ctx, tok.AccessToken)
	if err != nil {
		showErr(errLabel, err)
		return
	}
	if err := a.store.SetAuth(tok.AccessToken, user); err != nil {
		showErr(errLabel, err)
		return
	}

	slog.Info("signed in", "user_id", user.ID, "role", user.Role)
	home := routes.PatientHome
	if user.Role == model.RoleInvestigator {
		home = routes.InvestigatorHome
	}
	a.router.Replace(home)
}

func (a *App) registerScreen() fyne.CanvasObject {
	email := widget.NewEntry()
	fullName := widget.NewEntry()
	password := widget.NewPasswordEntry()
	role := widget.NewSelect([]string{"patient", "investigator"}, nil)
	role.SetSelected("patient")
	errLabel := widget.NewLabel("")
	errLabel.Importance = widget.DangerImportance

	form := widget.NewForm(
		widget.NewFormItem("Email", email),
		widget.NewFormItem("Full name", fullName),
		widget.NewFormItem("Password", password),
		widget.NewFormItem("Role", role),
	)
	form.SubmitText = "Create Account"
	form.OnSubmit = func() {
		if err := validateRegistration(email.Text, password.Text, fullName.Text); err != nil {
			showErr(errLabel, err)
			return
		}
		go a.register(email.Text, password.Text, fullName.Text, model.ParseRole(role.Selected), errLabel)
	}

	backBtn := widget.NewButton("Back to sign in", func() {
		a.router.Navigate(routes.LoginPath)
	})

	return container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle("Create your account", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		form,
		errLabel,
		backBtn,
	))
}

func validateRegistration(email, password, fullName string) error {
	if err := model.ValidateEmail(email); err != nil {
		return err
	}
	if err := model.ValidatePassword(password); err != nil {
		return err
	}
	return model.ValidateFullName(fullName)
}

// register creates the account, then signs in with the fresh credentials.
// Me is called with the newly issued token explicitly; at that point the
// session store is still empty.
func (a *App) register(email, password, fullName string, role model.Role, errLabel *widget.Label) {
	ctx := context.Background()

	if _, err := a.client.Register(ctx, api.RegisterParams{
		Email: email, Password: password, FullName: fullName, Role: role,
	}); err != nil {
		showErr(errLabel, err)
		return
	}

	a.signIn(email, password, errLabel)
}

func showErr(label *widget.Label, err error) {
	msg := err.Error()
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		msg = apiErr.Detail
	}
	fyne.Do(func() { label.SetText(msg) })
}
