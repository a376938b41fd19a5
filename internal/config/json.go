package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/alumnihub/internal/flagx"
)

// jsonConfig is the intermediate DTO for the optional JSON config file.
// Pointer fields distinguish "absent" from zero values so a partial file
// only overrides what it mentions.
type jsonConfig struct {
	DataDir       *string `json:"data_dir"`
	Backend       *string `json:"backend"`
	SQLitePath    *string `json:"sqlite_path"`
	LogFile       *string `json:"log_file"`
	LogMaxSizeMB  *int    `json:"log_max_size_mb"`
	LogMaxBackups *int    `json:"log_max_backups"`
	PageSize      *int    `json:"page_size"`
}

// parseJson loads configuration values from the JSON file named by the -c
// or -config flags. No flag, no file loaded. An unreadable or invalid file
// panics: a config file that was explicitly pointed at must be honored.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DataDir != nil {
		config.DataDir = *c.DataDir
	}
	if c.Backend != nil {
		config.Backend = *c.Backend
	}
	if c.SQLitePath != nil {
		config.SQLitePath = *c.SQLitePath
	}
	if c.LogFile != nil {
		config.LogFile = *c.LogFile
	}
	if c.LogMaxSizeMB != nil {
		config.LogMaxSizeMB = *c.LogMaxSizeMB
	}
	if c.LogMaxBackups != nil {
		config.LogMaxBackups = *c.LogMaxBackups
	}
	if c.PageSize != nil {
		config.PageSize = *c.PageSize
	}
}
