package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/alumnihub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory for the file backend
//	-b string   storage backend: file, sqlite or memory
//	-q string   sqlite database path
//	-l string   log file (enables rotation; empty logs to stdout)
//	-p int      admin table page size
//
// os.Args is filtered to just these flags first, so flags owned by other
// components (like -c/-config) pass through untouched.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-q", "-l", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DataDir, "d", config.DataDir, "data directory")
	fs.StringVar(&config.Backend, "b", config.Backend, "storage backend (file|sqlite|memory)")
	fs.StringVar(&config.SQLitePath, "q", config.SQLitePath, "sqlite database path")
	fs.StringVar(&config.LogFile, "l", config.LogFile, "log file path")
	fs.IntVar(&config.PageSize, "p", config.PageSize, "admin table page size")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
