package common

// Storage keys shared by every context operating on the same data set. The
// layout mirrors the browser-local-storage deployments still in the field, so renaming
// a key orphans existing data.
const (
	UsersKey        = "alumniUsers"
	MessagesKey     = "messages"
	SessionKey      = "currentUser"
	DarkModeKey     = "darkMode"
	InitialAdminKey = "initialAdmin"
	BackupKeyPrefix = "alumniBackup_"
)

// Bootstrap defaults applied when no admin record exists and no override was
// supplied. Dev/demo values only.
const (
	DefaultAdminName     = "Admin User"
	DefaultAdminEmail    = "admin@alumni.edu"
	DefaultAdminPassword = "putnew"
	DefaultAdminDept     = "CSE"
)

const (
	// DemoAlumniPassword is assigned to seeded demo records.
	DemoAlumniPassword = "alumni123"
	// TempAlumniPassword is assigned to admin-created records until the
	// alumnus changes it.
	TempAlumniPassword = "temp123"
)

// MinPasswordLength applies to registration and password changes. Existing
// records are never re-validated against it.
const MinPasswordLength = 6
