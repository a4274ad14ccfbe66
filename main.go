package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"blogapi/app/config"
	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/routes"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/crypto/bcrypt"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch strings.ToLower(os.Args[1]) {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogapi version %s\n", cliVersion)
	case "serve":
		serve()
	case "seed-admin":
		seedAdmin()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogapi <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the blog API server.
  seed-admin <username> <password>
                                 Provision the single admin user.
`
	fmt.Println(helpText)
}

// serve opens the store and runs the HTTP server until it fails.
func serve() {
	cfg := config.Load()

	db := openDB(cfg)
	defer db.Close()

	router := routes.Setup(db, cfg)

	slog.Info("starting blog API server", "addr", cfg.Addr, "db", cfg.DBPath)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// seedAdmin hashes the given password and upserts the sole admin user.
// There is no registration endpoint; this is the only way to provision
// credentials.
func seedAdmin() {
	if len(os.Args) < 4 {
		fmt.Println("Error: username and password are required for seed-admin command")
		os.Exit(1)
	}
	username, password := os.Args[2], os.Args[3]

	cfg := config.Load()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	db := openDB(cfg)
	defer db.Close()

	users := repositories.NewBadgerUserRepository(db)
	if err := users.Upsert(&models.User{Username: username, Password: string(hash)}); err != nil {
		slog.Error("failed to seed admin user", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Admin user %q seeded.\n", username)
}

func openDB(cfg config.Config) *badger.DB {
	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		slog.Error("failed to open Badger DB", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	return db
}
