package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"brandcollab/db/migrations"
)

// Migrate brings the schema at addr to migrations.Version using the SQL
// files embedded in the migrations package.
func Migrate(addr string) error {
	return withMigrator(addr, func(mg *migrate.Migrate) error {
		_, dirty, err := mg.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return err
		}

		if dirty {
			return errors.New("database is in dirty state")
		}

		if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	})
}

// Rollback reverts every applied migration.
func Rollback(addr string) error {
	return withMigrator(addr, func(mg *migrate.Migrate) error {
		if err := mg.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		return nil
	})
}

// withMigrator opens a lib/pq connection for the migrate postgres driver and
// runs fn against the embedded migration source.
func withMigrator(addr string, fn func(*migrate.Migrate) error) error {
	sqlDB, err := sql.Open("postgres", addr)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer sqlDB.Close()

	dbDriver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return err
	}

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}
	defer source.Close()

	mg, err := migrate.NewWithInstance("iofs", source, "postgres", dbDriver)
	if err != nil {
		return err
	}
	defer mg.Close()

	return fn(mg)
}
