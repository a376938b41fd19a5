// Package config handles runtime configuration: defaults, JSON overlay, and
// command-line flags, later sources taking precedence.
package config

// Backend names accepted by the storage selection.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds runtime settings for the alumni CLI.
//
// Fields:
//   - DataDir: directory holding the file backend's per-key documents.
//   - Backend: storage backend name ("file", "sqlite" or "memory").
//   - SQLitePath: database file used by the sqlite backend.
//   - LogFile: when non-empty, JSON logs go to this rotated file instead of
//     stdout.
//   - LogMaxSizeMB / LogMaxBackups: rotation policy for LogFile.
//   - PageSize: admin table page size.
type Config struct {
	DataDir       string
	Backend       string
	SQLitePath    string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	PageSize      int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "alumni-data"
	c.Backend = BackendFile
	c.SQLitePath = "alumni.db"
	c.LogFile = ""
	c.LogMaxSizeMB = 10
	c.LogMaxBackups = 3
	c.PageSize = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
