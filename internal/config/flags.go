package config

import (
	"flag"
	"os"

	"github.com/dmaksimovs/chatrunner/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   store backend, "sqlite" or "postgres"
//	-f string   path to the SQLite database file
//	-d string   PostgreSQL DSN
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-f", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "store backend (sqlite or postgres)")
	fs.StringVar(&cfg.SQLitePath, "f", cfg.SQLitePath, "path to the sqlite database file")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "postgres dsn")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
