// Package store implements the card/fact persistence layer consumed by
// the scheduler engine, backed by SQLite.
package store

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jcalvez/srscore/internal/config"
	"github.com/jcalvez/srscore/pkg/resync"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	dbOnce       resync.Once
	dbSingleton  *DB
	dbClientOnce resync.Once
)

// DB lazily opens the SQLite file under the configuration's root
// directory and applies pending migrations on first use.
type DB struct {
	client *sql.DB
}

func CurrentDB() *DB {
	dbOnce.Do(func() {
		dbSingleton = &DB{}
	})
	return dbSingleton
}

// Reset clears the singleton so the next CurrentDB call reopens it.
// Intended for tests that point SRS_HOME at a fresh temp directory.
func Reset() {
	if dbSingleton != nil && dbSingleton.client != nil {
		dbSingleton.client.Close()
	}
	dbOnce.Reset()
	dbClientOnce.Reset()
	dbSingleton = nil
}

func (db *DB) Close() error {
	if db.client != nil {
		return db.client.Close()
	}
	return nil
}

func (db *DB) Client() *sql.DB {
	dbClientOnce.Do(func() {
		cfg := config.CurrentConfig()
		path := filepath.Join(cfg.RootDirectory, ".srs", "srs.db")
		client, err := sql.Open("sqlite3", path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
			os.Exit(1)
		}
		dbSingleton.client = client

		if err := applyMigrations(client); err != nil {
			fmt.Fprintf(os.Stderr, "Unable to apply migrations: %v\n", err)
			os.Exit(1)
		}
	})
	return dbSingleton.client
}

func applyMigrations(client *sql.DB) error {
	instance, err := sqlite3.WithInstance(client, &sqlite3.Config{})
	if err != nil {
		return err
	}
	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("reading embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", d, "sqlite3", instance)
	if err != nil {
		return fmt.Errorf("initializing migrations: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
