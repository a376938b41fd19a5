package users

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/alumnihub/internal/common"
	"github.com/dmitrijs2005/alumnihub/internal/hashx"
	"github.com/dmitrijs2005/alumnihub/internal/storage"
)

// Service implements the registry operations: creation paths, lookups,
// self-service and admin updates, deletion, and the admin-invariant repair
// and bootstrap passes.
type Service struct {
	repo  Repository
	store storage.Store
	now   func() time.Time
}

// NewService builds a Service. The store is used only for the one-time
// bootstrap override key; all collection access goes through repo.
func NewService(repo Repository, store storage.Store) *Service {
	return &Service{repo: repo, store: store, now: time.Now}
}

// CreateInput carries the fields accepted by the generic create path. Role
// is set by the calling operation, never by end-user input.
type CreateInput struct {
	Name           string
	Email          string
	Password       string
	Role           Role
	Department     string
	GraduationYear int
	Company        string
	Position       string
	Skills         string
	LinkedIn       string
	Mentorship     bool
}

// nextID allocates max(existing ids)+1. Ids of deleted records are never
// reused.
func nextID(us []User) int {
	max := 0
	for _, u := range us {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create appends a new record. A case-insensitive email collision rejects
// the call with ErrorDuplicateEmail and leaves the collection untouched.
func (s *Service) Create(ctx context.Context, in CreateInput) (*User, error) {
	us, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(in.Email)
	for _, u := range us {
		if strings.EqualFold(u.Email, email) {
			return nil, fmt.Errorf("%w: %s", common.ErrorDuplicateEmail, email)
		}
	}

	u := User{
		ID:             nextID(us),
		Name:           strings.TrimSpace(in.Name),
		Email:          email,
		PasswordHash:   hashx.Hash(in.Password),
		Role:           in.Role,
		Department:     in.Department,
		GraduationYear: in.GraduationYear,
		Company:        strings.TrimSpace(in.Company),
		Position:       strings.TrimSpace(in.Position),
		Skills:         strings.TrimSpace(in.Skills),
		LinkedIn:       strings.TrimSpace(in.LinkedIn),
		Mentorship:     in.Mentorship,
	}

	us = append(us, u)
	if err := s.repo.Replace(ctx, us); err != nil {
		return nil, err
	}
	return &u, nil
}

// Register is the self-service creation path. The role is always alumni;
// registration cannot create admin accounts.
func (s *Service) Register(ctx context.Context, name, email, password, department string, graduationYear int) (*User, error) {
	if len(password) < common.MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, common.MinPasswordLength)
	}
	return s.Create(ctx, CreateInput{
		Name:           name,
		Email:          email,
		Password:       password,
		Role:           RoleAlumni,
		Department:     department,
		GraduationYear: graduationYear,
	})
}

// AlumniInput carries the admin "add alumni" form fields.
type AlumniInput struct {
	Name           string
	Email          string
	Department     string
	GraduationYear int
	Company        string
	Position       string
	Skills         string
	LinkedIn       string
	Mentorship     bool
}

// AddAlumni is the admin-initiated creation path. The record gets the
// temporary default password and is always an alumni record.
func (s *Service) AddAlumni(ctx context.Context, in AlumniInput) (*User, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" ||
		in.Department == "" || in.GraduationYear == 0 {
		return nil, fmt.Errorf("%w: name, email, department and graduation year are required", common.ErrorValidation)
	}
	return s.Create(ctx, CreateInput{
		Name:           in.Name,
		Email:          in.Email,
		Password:       common.TempAlumniPassword,
		Role:           RoleAlumni,
		Department:     in.Department,
		GraduationYear: in.GraduationYear,
		Company:        in.Company,
		Position:       in.Position,
		Skills:         in.Skills,
		LinkedIn:       in.LinkedIn,
		Mentorship:     in.Mentorship,
	})
}

// FindByID returns the record with the given id, or ErrorNotFound.
func (s *Service) FindByID(ctx context.Context, id int) (*User, error) {
	us, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range us {
		if us[i].ID == id {
			u := us[i]
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

// FindByEmail returns the record with the given email (case-insensitive),
// or ErrorNotFound.
func (s *Service) FindByEmail(ctx context.Context, email string) (*User, error) {
	us, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range us {
		if strings.EqualFold(us[i].Email, email) {
			u := us[i]
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

// List returns the full collection.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// ProfileUpdate carries the fields an alumnus may change on their own
// record. Id, email and role are immutable through this path.
type ProfileUpdate struct {
	Company    string
	Position   string
	Skills     string
	LinkedIn   string
	Mentorship bool
}

// UpdateProfile merges the self-service fields into the record with the
// given id.
func (s *Service) UpdateProfile(ctx context.Context, id int, p ProfileUpdate) (*User, error) {
	us, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range us {
		if us[i].ID != id {
			continue
		}
		us[i].Company = strings.TrimSpace(p.Company)
		us[i].Position = strings.TrimSpace(p.Position)
		us[i].Skills = strings.TrimSpace(p.Skills)
		us[i].LinkedIn = strings.TrimSpace(p.LinkedIn)
		us[i].Mentorship = p.Mentorship
		if err := s.repo.Replace(ctx, us); err != nil {
			return nil, err
		}
		u := us[i]
		return &u, nil
	}
	return nil, common.ErrorNotFound
}

// UpdateAdminSettings renames the admin account and, when newPassword is
// non-empty, changes its password after verifying the current one (legacy
// clear-text passwords included).
func (s *Service) UpdateAdminSettings(ctx context.Context, name, currentPassword, newPassword string) (*User, error) {
	us, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range us {
		if us[i].IsAdmin() {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, common.ErrorNotFound
	}
	admin := &us[idx]

	if newPassword != "" {
		if len(newPassword) < common.MinPasswordLength {
			return nil, fmt.Errorf("%w: new password must be at least %d characters", common.ErrorValidation, common.MinPasswordLength)
		}
		switch {
		case admin.PasswordHash != "":
			if !hashx.Verify(admin.PasswordHash, currentPassword) {
				return nil, common.ErrorInvalidCredentials
			}
		case admin.LegacyPassword != "":
			if currentPassword != admin.LegacyPassword {
				return nil, common.ErrorInvalidCredentials
			}
		default:
			return nil, fmt.Errorf("%w: no password set for admin account", common.ErrorValidation)
		}
		admin.PasswordHash = hashx.Hash(newPassword)
		admin.LegacyPassword = ""
	}

	if n := strings.TrimSpace(name); n != "" {
		admin.Name = n
	}

	if err := s.repo.Replace(ctx, us); err != nil {
		return nil, err
	}
	u := *admin
	return &u, nil
}

// UpgradeLegacyPassword replaces a record's clear-text password with the
// given digest. Called by the session layer on a successful legacy login.
func (s *Service) UpgradeLegacyPassword(ctx context.Context, id int, digest string) (*User, error) {
	us, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range us {
		if us[i].ID != id {
			continue
		}
		us[i].PasswordHash = digest
		us[i].LegacyPassword = ""
		if err := s.repo.Replace(ctx, us); err != nil {
			return nil, err
		}
		u := us[i]
		return &u, nil
	}
	return nil, common.ErrorNotFound
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op; in that case the collection is not rewritten.
func (s *Service) Delete(ctx context.Context, id int) error {
	us, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := us[:0]
	for _, u := range us {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(us) {
		return nil
	}
	return s.repo.Replace(ctx, kept)
}

// DeleteAlumni removes an alumni record. Admin records are not deletable
// through this path.
func (s *Service) DeleteAlumni(ctx context.Context, id int) error {
	u, err := s.FindByID(ctx, id)
	if err != nil {
		if err == common.ErrorNotFound {
			return nil
		}
		return err
	}
	if u.IsAdmin() {
		return fmt.Errorf("%w: admin records cannot be deleted here", common.ErrorValidation)
	}
	return s.Delete(ctx, id)
}

// ClearAlumni removes every non-admin record. Admin console "clear all
// data".
func (s *Service) ClearAlumni(ctx context.Context) error {
	us, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	admins := us[:0]
	for _, u := range us {
		if u.IsAdmin() {
			admins = append(admins, u)
		}
	}
	return s.repo.Replace(ctx, admins)
}

// RepairAdminInvariant demotes extra admins so that at most one remains,
// keeping the one with the smallest id. Idempotent; must run after any seed
// or import that could have introduced duplicates.
func (s *Service) RepairAdminInvariant(ctx context.Context) error {
	us, err := s.repo.List(ctx)
	if err != nil {
		return err
	}

	keep := -1
	count := 0
	for _, u := range us {
		if !u.IsAdmin() {
			continue
		}
		count++
		if keep == -1 || u.ID < keep {
			keep = u.ID
		}
	}
	if count <= 1 {
		return nil
	}

	for i := range us {
		if us[i].IsAdmin() && us[i].ID != keep {
			us[i].Role = RoleAlumni
		}
	}
	return s.repo.Replace(ctx, us)
}

// Bootstrap describes the one-time admin override consumed by
// EnsureAdminExists. Its JSON shape matches the persisted initialAdmin key.
type Bootstrap struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Department     string `json:"department"`
	GraduationYear int    `json:"graduationYear"`
}

// EnsureAdminExists synthesizes one admin record when none exists. The
// override argument wins; otherwise the persisted initialAdmin key is
// consulted (malformed JSON there is ignored); otherwise dev defaults
// apply. Idempotent: a present admin makes this a no-op.
func (s *Service) EnsureAdminExists(ctx context.Context, override *Bootstrap) error {
	us, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range us {
		if u.IsAdmin() {
			return nil
		}
	}

	info := override
	if info == nil {
		if raw, ok, err := s.store.Get(ctx, common.InitialAdminKey); err == nil && ok {
			var b Bootstrap
			if err := json.Unmarshal(raw, &b); err == nil && b.Email != "" {
				info = &b
			}
		}
	}
	if info == nil {
		info = &Bootstrap{}
	}
	if info.Name == "" {
		info.Name = common.DefaultAdminName
	}
	if info.Email == "" {
		info.Email = common.DefaultAdminEmail
	}
	if info.Password == "" {
		info.Password = common.DefaultAdminPassword
	}
	if info.Department == "" {
		info.Department = common.DefaultAdminDept
	}
	if info.GraduationYear == 0 {
		info.GraduationYear = s.now().Year()
	}

	admin := User{
		ID:             nextID(us),
		Name:           info.Name,
		Email:          normalizeEmail(info.Email),
		PasswordHash:   hashx.Hash(info.Password),
		Role:           RoleAdmin,
		Department:     info.Department,
		GraduationYear: info.GraduationYear,
	}

	us = append(us, admin)
	return s.repo.Replace(ctx, us)
}

// SortByName orders records by display name, the admin table ordering.
func SortByName(us []User) {
	sort.SliceStable(us, func(i, j int) bool {
		return strings.ToLower(us[i].Name) < strings.ToLower(us[j].Name)
	})
}
