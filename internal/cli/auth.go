package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/alumnihub/internal/common"
)

func (a *App) register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	department, err := getSimpleText(a.reader, "Department", a.out)
	if err != nil {
		return err
	}
	year, err := getInt(a.reader, "Graduation year", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password: ", a.out)
	if err != nil {
		return err
	}

	u, err := a.users.Register(ctx, name, email, password, department, year)
	if err != nil {
		return err
	}

	// Auto login, like the registration page redirecting straight to the
	// dashboard.
	if err := a.session.SetCurrent(ctx, u); err != nil {
		return err
	}
	a.printf("Registration successful. Welcome, %s!\n", u.Name)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password: ", a.out)
	if err != nil {
		return err
	}

	u, err := a.session.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.printf("Logged in as %s (%s)\n", u.Name, u.Role)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	return nil
}

func (a *App) whoami(ctx context.Context) {
	u, err := a.session.Current(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.println("Not logged in.")
			return
		}
		a.printf("session error: %v\n", err)
		return
	}
	a.printf("%s <%s> — %s\n", u.Name, u.Email, u.Role)
}
