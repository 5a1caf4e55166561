package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/iocli"
	"github.com/iudanet/budgetkeeper/internal/server/storage/sqlite"
	"github.com/iudanet/budgetkeeper/internal/server/users"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	username := fs.String("username", "", "Username (will prompt if omitted)")
	email := fs.String("email", "", "Email (will prompt if omitted)")
	password := fs.String("password", "", "Password (optional, will prompt if omitted)")
	dbPath := fs.String("db", "budgetkeeper.db", "Path to database file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// путь из окружения, если флаг не задан явно
	if path := os.Getenv("BUDGET_DATABASE_PATH"); path != "" && !flagSet(fs, "db") {
		*dbPath = path
	}

	prompt := iocli.New(stdin, stdout)

	var err error
	if *username == "" {
		if *username, err = prompt.ReadInput("Username: "); err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}
	if *email == "" {
		if *email, err = prompt.ReadInput("Email: "); err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}
	if *password == "" {
		if *password, err = prompt.ReadPassword("Password: "); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	user, err := users.NewService(store, logger).Register(ctx, *username, *email, *password)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Kind != apperr.Internal {
			return errors.New(appErr.Message)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with UUID %s\n", user.Username, user.UUID)
	return nil
}

func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
