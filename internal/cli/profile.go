package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/export"
	"github.com/dmitrijs2005/alumnihub/internal/prefs"
	"github.com/dmitrijs2005/alumnihub/internal/users"
)

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func (a *App) showProfile(ctx context.Context) {
	// Refresh first so another context's edits show up.
	u, err := a.session.Refresh(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.println("Please log in first.")
			return
		}
		a.printf("profile error: %v\n", err)
		return
	}

	role := "Alumni"
	if u.IsAdmin() {
		role = "Administrator"
	}
	mentorship := "No"
	if u.Mentorship {
		mentorship = "Yes"
	}

	a.printf("Name:        %s\n", u.Name)
	a.printf("Email:       %s\n", u.Email)
	a.printf("Role:        %s\n", role)
	a.printf("Department:  %s, %d\n", u.Department, u.GraduationYear)
	a.printf("Company:     %s\n", orNotSpecified(u.Company))
	a.printf("Position:    %s\n", orNotSpecified(u.Position))
	a.printf("Skills:      %s\n", orNotSpecified(u.Skills))
	a.printf("LinkedIn:    %s\n", orNotSpecified(u.LinkedIn))
	a.printf("Mentorship:  %s\n", mentorship)
}

func (a *App) updateProfile(ctx context.Context) error {
	u := a.current(ctx)
	if u == nil {
		return nil
	}

	company, err := getSimpleText(a.reader, "Company", a.out)
	if err != nil {
		return err
	}
	position, err := getSimpleText(a.reader, "Position", a.out)
	if err != nil {
		return err
	}
	skills, err := getSimpleText(a.reader, "Skills (comma-separated)", a.out)
	if err != nil {
		return err
	}
	linkedin, err := getSimpleText(a.reader, "LinkedIn URL", a.out)
	if err != nil {
		return err
	}
	mentorship, err := getBool(a.reader, "Open to mentorship?", a.out)
	if err != nil {
		return err
	}

	fresh, err := a.users.UpdateProfile(ctx, u.ID, users.ProfileUpdate{
		Company:    company,
		Position:   position,
		Skills:     skills,
		LinkedIn:   linkedin,
		Mentorship: mentorship,
	})
	if err != nil {
		return err
	}
	if err := a.session.SetCurrent(ctx, fresh); err != nil {
		return err
	}
	a.println("Profile updated successfully!")
	return nil
}

func (a *App) deleteAccount(ctx context.Context) error {
	u := a.current(ctx)
	if u == nil {
		return nil
	}
	sure, err := getBool(a.reader, "Delete your account? This cannot be undone.", a.out)
	if err != nil {
		return err
	}
	if !sure {
		return nil
	}
	if err := a.users.DeleteAlumni(ctx, u.ID); err != nil {
		return err
	}
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.println("Your account has been deleted.")
	return nil
}

func (a *App) exportMine(ctx context.Context) error {
	u := a.current(ctx)
	if u == nil {
		return nil
	}
	doc, err := export.SingleUser(*u)
	if err != nil {
		return err
	}
	name := export.UserFileName(*u)
	if err := os.WriteFile(name, doc, 0o600); err != nil {
		return err
	}
	a.printf("Your data has been exported to %s\n", name)
	return nil
}

func (a *App) darkMode(ctx context.Context, args []string) error {
	if len(args) == 0 {
		on, err := prefs.DarkMode(ctx, a.store)
		if err != nil {
			return err
		}
		if on {
			a.println("Dark mode is enabled.")
		} else {
			a.println("Dark mode is disabled.")
		}
		return nil
	}
	switch args[0] {
	case "on":
		return prefs.SetDarkMode(ctx, a.store, true)
	case "off":
		return prefs.SetDarkMode(ctx, a.store, false)
	default:
		a.println("Usage: dark [on|off]")
		return nil
	}
}
