package cli

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/alumnihub/internal/export"
	"github.com/dmitrijs2005/alumnihub/internal/stats"
	"github.com/dmitrijs2005/alumnihub/internal/users"
)

// listAlumni renders the admin table: name-sorted, filtered, paginated.
// Args: an optional page number plus dept=, year= and q= filters, e.g.
// "list 2 dept=CSE q=google".
func (a *App) listAlumni(ctx context.Context, args []string) error {
	if a.currentAdmin(ctx) == nil {
		return nil
	}

	page := 1
	var f stats.Filter
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "dept="):
			f.Department = strings.TrimPrefix(arg, "dept=")
		case strings.HasPrefix(arg, "year="):
			y, err := strconv.Atoi(strings.TrimPrefix(arg, "year="))
			if err == nil {
				f.Year = y
			}
		case strings.HasPrefix(arg, "q="):
			f.Search = strings.TrimPrefix(arg, "q=")
		default:
			if n, err := strconv.Atoi(arg); err == nil {
				page = n
			}
		}
	}

	all, err := a.users.List(ctx)
	if err != nil {
		return err
	}
	filtered := stats.Apply(all, f)
	users.SortByName(filtered)
	p := stats.Paginate(filtered, page, a.config.PageSize)

	if p.Total == 0 {
		a.println("No alumni found.")
		return nil
	}
	for _, u := range p.Items {
		a.printf("[%d] %s <%s> %s %d", u.ID, u.Name, u.Email, u.Department, u.GraduationYear)
		if u.Company != "" {
			a.printf(" — %s", u.Company)
		}
		a.println()
	}
	a.printf("Showing %d-%d of %d (page %d/%d)\n", p.Start, p.End, p.Total, p.Number, p.Pages)
	return nil
}

func (a *App) addAlumni(ctx context.Context) error {
	if a.currentAdmin(ctx) == nil {
		return nil
	}

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
	company, err := getSimpleText(a.reader, "Company (optional)", a.out)
	if err != nil {
		return err
	}
	position, err := getSimpleText(a.reader, "Position (optional)", a.out)
	if err != nil {
		return err
	}

	u, err := a.users.AddAlumni(ctx, users.AlumniInput{
		Name:           name,
		Email:          email,
		Department:     department,
		GraduationYear: year,
		Company:        company,
		Position:       position,
	})
	if err != nil {
		return err
	}
	a.printf("Alumni added with id %d (temporary password assigned).\n", u.ID)
	return nil
}

func (a *App) deleteAlumni(ctx context.Context, args []string) error {
	if a.currentAdmin(ctx) == nil {
		return nil
	}
	if len(args) == 0 {
		a.println("Usage: del <id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		a.println("Usage: del <id>")
		return nil
	}
	if err := a.users.DeleteAlumni(ctx, id); err != nil {
		return err
	}
	a.println("Alumni deleted.")
	return nil
}

func (a *App) clearAlumni(ctx context.Context) error {
	if a.currentAdmin(ctx) == nil {
		return nil
	}
	sure, err := getBool(a.reader, "Delete ALL alumni records? This cannot be undone.", a.out)
	if err != nil {
		return err
	}
	if !sure {
		return nil
	}
	if err := a.users.ClearAlumni(ctx); err != nil {
		return err
	}
	a.println("All alumni records removed.")
	return nil
}

func (a *App) adminSettings(ctx context.Context) error {
	u := a.currentAdmin(ctx)
	if u == nil {
		return nil
	}

	name, err := getSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		return err
	}
	current, err := getPassword("Current password: ", a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("New password (empty to keep): ", a.out)
	if err != nil {
		return err
	}

	fresh, err := a.users.UpdateAdminSettings(ctx, name, current, newPassword)
	if err != nil {
		return err
	}
	if err := a.session.SetCurrent(ctx, fresh); err != nil {
		return err
	}
	a.println("Settings saved.")
	return nil
}

// showStats prints the role-specific dashboard cards: the admin overview,
// or the alumni pair of total and same-department counts.
func (a *App) showStats(ctx context.Context) error {
	u := a.current(ctx)
	if u == nil {
		return nil
	}
	all, err := a.users.List(ctx)
	if err != nil {
		return err
	}

	if u.IsAdmin() {
		ov := stats.BuildOverview(all)
		a.printf("Total alumni: %d\n", ov.TotalAlumni)
		a.printf("Departments:  %d\n", ov.Departments)
		a.printf("Mentors:      %d\n", ov.Mentors)
		return nil
	}

	a.printf("Total alumni:    %d\n", len(stats.Alumni(all)))
	a.printf("From %s: %d\n", u.Department, stats.SameDepartment(all, *u))
	return nil
}

func (a *App) showAnalytics(ctx context.Context) error {
	if a.currentAdmin(ctx) == nil {
		return nil
	}
	all, err := a.users.List(ctx)
	if err != nil {
		return err
	}

	a.println("Alumni by department:")
	for _, c := range stats.DepartmentCounts(all) {
		a.printf("  %-12s %d\n", c.Label, c.N)
	}

	a.println("Graduation year trend:")
	for _, c := range stats.YearTrend(all) {
		a.printf("  %s  %d\n", c.Label, c.N)
	}

	a.println("Top companies:")
	for _, c := range stats.TopCompanies(all, 10) {
		a.printf("  %-24s %d\n", c.Label, c.N)
	}

	a.println("Top skills:")
	for _, c := range stats.TopSkills(all, 15) {
		a.printf("  %-24s %d\n", c.Label, c.N)
	}
	return nil
}

func (a *App) showNetwork(ctx context.Context) error {
	u := a.current(ctx)
	if u == nil {
		return nil
	}
	all, err := a.users.List(ctx)
	if err != nil {
		return err
	}

	peers := stats.Network(all, *u, stats.NetworkLimit)
	if len(peers) == 0 {
		a.println("No other alumni yet.")
		return nil
	}
	for _, p := range peers {
		a.printf("%s (%s, %d)", p.Name, p.Department, p.GraduationYear)
		if p.Company != "" {
			a.printf(" — %s", p.Company)
		}
		if p.Mentorship {
			a.printf(" [mentor]")
		}
		a.println()
	}
	return nil
}

func (a *App) exportAll(ctx context.Context) error {
	if a.currentAdmin(ctx) == nil {
		return nil
	}
	all, err := a.users.List(ctx)
	if err != nil {
		return err
	}
	doc, err := export.Users(all)
	if err != nil {
		return err
	}
	name := export.AllFileName(time.Now())
	if err := os.WriteFile(name, doc, 0o600); err != nil {
		return err
	}
	a.printf("Exported %d records to %s\n", len(all), name)
	return nil
}

func (a *App) backup(ctx context.Context) error {
	if a.currentAdmin(ctx) == nil {
		return nil
	}
	key, err := export.Backup(ctx, a.store, time.Now())
	if err != nil {
		return err
	}
	a.printf("Backup stored under %s\n", key)
	return nil
}
