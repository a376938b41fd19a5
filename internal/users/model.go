package users

// Role distinguishes the single privileged administrator from regular
// alumni.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleAlumni Role = "alumni"
)

// User is one registry record. The JSON field names match the persisted
// collection written by earlier deployments, so they must not change.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
	// LegacyPassword holds the pre-migration clear-text password still
	// present on old records. The first successful login replaces it with a
	// digest.
	LegacyPassword string `json:"password,omitempty"`
	Role           Role   `json:"role"`
	Department     string `json:"department"`
	GraduationYear int    `json:"graduationYear"`
	Company        string `json:"company"`
	Position       string `json:"position"`
	Skills         string `json:"skills"`
	LinkedIn       string `json:"linkedin"`
	Mentorship     bool   `json:"mentorship"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
