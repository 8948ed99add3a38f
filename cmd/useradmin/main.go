// Command useradmin manages operator accounts for the registration
// service. Accounts live in the Postgres account store; a localfile-only
// deployment has nothing to administer.
package main

import (
	"context"
	"fmt"
	"os"

	"rpromo/config"
	"rpromo/internal/domain/entity"
	"rpromo/internal/infra/auth"
	"rpromo/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func main() {
	app := &cli.App{
		Name:  "useradmin",
		Usage: "Manage operator accounts",
		Commands: []*cli.Command{
			createCommand,
			activateCommand,
			deactivateCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var createCommand = &cli.Command{
	Name:  "create",
	Usage: "Create an operator account",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true, Usage: "Login name"},
		&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, Usage: "Plaintext password, hashed before storage"},
		&cli.StringFlag{Name: "name", Usage: "Operator full name"},
		&cli.StringFlag{Name: "email", Usage: "Operator email"},
	},
	Action: func(c *cli.Context) error {
		cfg, db, err := connect()
		if err != nil {
			return err
		}
		defer closeDB(db)

		hash, err := auth.NewBcryptHasher(cfg).Hash(c.String("password"))
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		account := &entity.Account{
			Username:     c.String("username"),
			PasswordHash: hash,
			FullName:     c.String("name"),
			Email:        c.String("email"),
			Active:       true,
		}

		if err := postgres.NewAccountRepository(db).Create(context.Background(), account); err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		fmt.Printf("Account %q created\n", account.Username)

		return nil
	},
}

var activateCommand = &cli.Command{
	Name:      "activate",
	Usage:     "Re-enable an operator account",
	ArgsUsage: "<username>",
	Action:    setActiveAction(true),
}

var deactivateCommand = &cli.Command{
	Name:      "deactivate",
	Usage:     "Disable an operator account without deleting it",
	ArgsUsage: "<username>",
	Action:    setActiveAction(false),
}

func setActiveAction(active bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		username := c.Args().First()
		if username == "" {
			return fmt.Errorf("username argument is required")
		}

		_, db, err := connect()
		if err != nil {
			return err
		}
		defer closeDB(db)

		if err := postgres.NewAccountRepository(db).SetActive(context.Background(), username, active); err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}

		state := "deactivated"
		if active {
			state = "activated"
		}
		fmt.Printf("Account %q %s\n", username, state)

		return nil
	}
}

func connect() (*config.Config, *gorm.DB, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Postgres == nil {
		return nil, nil, fmt.Errorf("postgres is not configured; accounts require the remote store")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return cfg, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
