// Package stats computes the aggregates behind the admin and alumni
// dashboards: headline counts, per-department and per-year distributions,
// top companies and skills, the filtered admin table and the peer network
// grid. Pure functions over a user slice; callers fetch the collection.
package stats

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/alumnihub/internal/users"
)

// Departments is the fixed department list the admin views are built
// around. Records outside it count under Other.
var Departments = []string{"CSE", "ECE", "EEE", "Mechanical", "Civil", "MBA", "Diploma"}

const OtherDepartment = "Other"

// NetworkLimit caps the peer grid on the alumni dashboard.
const NetworkLimit = 12

// PageSize is the fixed admin-table page size.
const PageSize = 10

// Alumni filters the collection down to alumni records.
func Alumni(us []users.User) []users.User {
	out := make([]users.User, 0, len(us))
	for _, u := range us {
		if u.Role == users.RoleAlumni {
			out = append(out, u)
		}
	}
	return out
}

// Overview holds the headline numbers of the admin console.
type Overview struct {
	TotalAlumni int
	Departments int // distinct departments with at least one alumnus
	Mentors     int
}

func BuildOverview(us []users.User) Overview {
	al := Alumni(us)
	depts := make(map[string]struct{})
	mentors := 0
	for _, u := range al {
		depts[u.Department] = struct{}{}
		if u.Mentorship {
			mentors++
		}
	}
	return Overview{TotalAlumni: len(al), Departments: len(depts), Mentors: mentors}
}

// SameDepartment counts alumni sharing the viewer's department, the second
// stat card on the alumni dashboard.
func SameDepartment(us []users.User, viewer users.User) int {
	n := 0
	for _, u := range Alumni(us) {
		if u.Department == viewer.Department {
			n++
		}
	}
	return n
}

// Count is one labelled bucket of a distribution.
type Count struct {
	Label string
	N     int
}

// DepartmentCounts buckets alumni into the fixed department list (always
// present, zeros included) plus a trailing Other bucket when any record
// falls outside it.
func DepartmentCounts(us []users.User) []Count {
	byDept := make(map[string]int)
	other := 0
	fixed := make(map[string]struct{}, len(Departments))
	for _, d := range Departments {
		fixed[d] = struct{}{}
	}
	for _, u := range Alumni(us) {
		if _, ok := fixed[u.Department]; ok {
			byDept[u.Department]++
		} else {
			other++
		}
	}

	out := make([]Count, 0, len(Departments)+1)
	for _, d := range Departments {
		out = append(out, Count{Label: d, N: byDept[d]})
	}
	if other > 0 {
		out = append(out, Count{Label: OtherDepartment, N: other})
	}
	return out
}

// YearTrend returns alumni counts per graduation year, ascending.
func YearTrend(us []users.User) []Count {
	byYear := make(map[int]int)
	for _, u := range Alumni(us) {
		byYear[u.GraduationYear]++
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]Count, 0, len(years))
	for _, y := range years {
		out = append(out, Count{Label: strconv.Itoa(y), N: byYear[y]})
	}
	return out
}

// Years lists the distinct graduation years, most recent first — the year
// filter options.
func Years(us []users.User) []int {
	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, u := range Alumni(us) {
		if _, ok := seen[u.GraduationYear]; !ok {
			seen[u.GraduationYear] = struct{}{}
			out = append(out, u.GraduationYear)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// TopCompanies returns the n most common non-empty companies, ties broken
// alphabetically.
func TopCompanies(us []users.User, n int) []Count {
	counts := make(map[string]int)
	for _, u := range Alumni(us) {
		if c := strings.TrimSpace(u.Company); c != "" {
			counts[c]++
		}
	}
	return top(counts, n)
}

// TopSkills splits the comma-separated skills field, trims each entry, and
// returns the n most common, ties broken alphabetically.
func TopSkills(us []users.User, n int) []Count {
	counts := make(map[string]int)
	for _, u := range Alumni(us) {
		for _, s := range strings.Split(u.Skills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				counts[s]++
			}
		}
	}
	return top(counts, n)
}

func top(counts map[string]int, n int) []Count {
	out := make([]Count, 0, len(counts))
	for label, c := range counts {
		out = append(out, Count{Label: label, N: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Label < out[j].Label
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Filter selects alumni records for the admin table. Zero values mean "no
// constraint"; Search matches case-insensitively against name, email,
// company, position and skills.
type Filter struct {
	Department string
	Year       int
	Search     string
}

func Apply(us []users.User, f Filter) []users.User {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]users.User, 0)
	for _, u := range Alumni(us) {
		if f.Department != "" && u.Department != f.Department {
			continue
		}
		if f.Year != 0 && u.GraduationYear != f.Year {
			continue
		}
		if search != "" && !matches(u, search) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func matches(u users.User, search string) bool {
	for _, field := range []string{u.Name, u.Email, u.Company, u.Position, u.Skills} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// Network returns the peer grid for viewer: alumni only, excluding the
// viewer, most recent graduation year first, capped at limit.
func Network(us []users.User, viewer users.User, limit int) []users.User {
	out := make([]users.User, 0)
	for _, u := range Alumni(us) {
		if u.ID != viewer.ID {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].GraduationYear > out[j].GraduationYear
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Page is one admin-table page. Start/End are 1-based positions into the
// filtered set, for "showing X–Y of Z".
type Page struct {
	Items  []users.User
	Start  int
	End    int
	Total  int
	Number int
	Pages  int
}

// Paginate slices the (already sorted) set into 1-based pages of perPage
// records. Out-of-range page numbers clamp to the nearest valid page.
func Paginate(us []users.User, page, perPage int) Page {
	if perPage <= 0 {
		perPage = PageSize
	}
	total := len(us)
	pages := (total + perPage - 1) / perPage
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}

	p := Page{Items: us[start:end], Total: total, Number: page, Pages: pages}
	if total > 0 {
		p.Start = start + 1
		p.End = end
	}
	return p
}

