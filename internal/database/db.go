package database

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/exercise-tracker/assets"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	_defaultTimeout = 3 * time.Second
	_driverName     = "pgx"
)

type DB struct {
	*sqlx.DB
	Builder squirrel.StatementBuilderType
}

func New(dsn string, automigrate bool) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), _defaultTimeout)
	defer cancel()

	dsn, err := buildDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.ConnectContext(ctx, _driverName, dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	if automigrate {
		iofsDriver, err := iofs.New(assets.EmbeddedFiles, "migrations")
		if err != nil {
			return nil, err
		}

		migrator, err := migrate.NewWithSourceInstance("iofs", iofsDriver, dsn)
		if err != nil {
			return nil, err
		}

		err = migrator.Up()
		switch {
		case errors.Is(err, migrate.ErrNoChange):
			break
		case err != nil:
			return nil, err
		}
	}

	return &DB{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// buildDSN normalizes the configured DSN into a postgres URL. sslmode
// defaults to disable but an explicit value in the DSN wins, and existing
// query parameters survive the merge.
func buildDSN(dsn string) (string, error) {
	if !strings.Contains(dsn, "://") {
		dsn = "postgres://" + dsn
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return "", err
	}

	query := u.Query()
	if !query.Has("sslmode") {
		query.Set("sslmode", "disable")
		u.RawQuery = query.Encode()
	}

	return u.String(), nil
}
