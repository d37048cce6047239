package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/govjobs/govjobs-backend/internal/config"
	"github.com/govjobs/govjobs-backend/internal/database"
	"github.com/govjobs/govjobs-backend/internal/logger"
)

const usage = `Usage: migrate [flags] <command> [arg]

Commands:
  up            apply every pending migration
  down [N]      roll back N migrations (default 1)
  reset         roll back every migration
  goto <V>      migrate up or down to version V
  version       print the current schema version
  force <V>     set the version without running SQL (clears the dirty flag)

Flags:
`

func main() {
	var migrationDir string
	flag.StringVar(&migrationDir, "path", "", "Path to migration files (default: migrations embedded in the binary)")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	log := logger.Component(logger.Setup(cfg.LogLevel, cfg.LogFormat), "migrate")

	m, err := database.NewMigrator(cfg.DatabaseURL, migrationDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize migrations")
	}
	defer m.Close()

	switch args[0] {
	case "up":
		err = m.Up()
	case "down":
		n := 1
		if len(args) > 1 {
			n = mustInt(args[1])
		}
		if n <= 0 {
			log.Fatal().Int("steps", n).Msg("down needs a positive step count")
		}
		err = m.Steps(-n)
	case "reset":
		err = m.Down()
	case "goto":
		if len(args) < 2 {
			log.Fatal().Msg("goto requires a version")
		}
		err = m.Migrate(uint(mustInt(args[1])))
	case "force":
		if len(args) < 2 {
			log.Fatal().Msg("force requires a version")
		}
		err = m.Force(mustInt(args[1]))
	case "version":
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatal().Err(err).Str("command", args[0]).Msg("Migration failed")
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		log.Info().Str("command", args[0]).Msg("No migrations applied")
	case err != nil:
		log.Fatal().Err(err).Msg("Failed to read schema version")
	default:
		log.Info().Str("command", args[0]).Uint("version", version).Bool("dirty", dirty).Msg("Done")
	}
}

func mustInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid number %q\n", s)
		os.Exit(2)
	}
	return n
}
