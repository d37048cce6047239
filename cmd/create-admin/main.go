package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/govjobs/govjobs-backend/internal/config"
	"github.com/govjobs/govjobs-backend/internal/database"
	"github.com/govjobs/govjobs-backend/internal/logger"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/govjobs/govjobs-backend/internal/service"
	"golang.org/x/term"
)

func main() {
	username := flag.String("username", "", "admin username (prompted when empty)")
	passwordStdin := flag.Bool("password-stdin", false, "read the password from the first line of stdin")
	flag.Parse()

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Component(logger.Setup(cfg.LogLevel, cfg.LogFormat), "create_admin")

	// ─── CLI Input ─────────────────────────────────────────────────────
	in := bufio.NewReader(os.Stdin)
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && !*passwordStdin

	if interactive {
		fmt.Println("=== Create New Admin User ===")
	}
	if *username == "" {
		*username = prompt(in, "Enter Username: ")
	}
	if *username == "" {
		fail("username is required")
	}

	var password string
	if interactive {
		password = readSecret("Enter Password: ")
		if confirm := readSecret("Confirm Password: "); confirm != password {
			fail("passwords do not match")
		}
	} else {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fail("read password: " + err.Error())
		}
		password = strings.TrimRight(line, "\r\n")
	}

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	ctx := context.Background()
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	adminService := service.NewAdminService(
		repository.NewAdminRepository(pool),
		service.NewAuthService(cfg),
		log,
	)

	// ─── Logic ─────────────────────────────────────────────────────────
	admin, err := adminService.Create(ctx, *username, password)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			for field, msg := range verr.Fields {
				fmt.Fprintf(os.Stderr, "Error: %s: %s\n", field, msg)
			}
			os.Exit(1)
		case errors.Is(err, service.ErrConflict):
			fail(fmt.Sprintf("admin '%s' already exists", *username))
		}
		log.Fatal().Err(err).Msg("Failed to create admin")
	}

	fmt.Printf("Success! Admin '%s' created with ID: %s\n", admin.Username, admin.ID)
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func readSecret(label string) string {
	fmt.Print(label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fail("read password: " + err.Error())
	}
	return string(b)
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, "Error: "+msg)
	os.Exit(1)
}
