package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/getbrick/brickhub.go/lib/service"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

// sqlstate for "database does not exist"
const invalidCatalogName = "3D000"

func Open(config *service.Config) (*bun.DB, error) {
	var db *bun.DB
	dsn := config.DatabaseUri
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.HasPrefix(dsn, "unix://"):
		if err := ensureDatabase(dsn, config); err != nil {
			return nil, err
		}
		dbConn := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		db = bun.NewDB(dbConn, pgdialect.New())
		db.SetMaxOpenConns(config.DatabaseMaxConns)
		db.SetMaxIdleConns(config.DatabaseMaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(config.DatabaseConnMaxLifetime) * time.Second)
	case strings.HasPrefix(dsn, "sqlite://"):
		dbConn, err := sql.Open(sqliteshim.ShimName, strings.TrimPrefix(dsn, "sqlite://"))
		if err != nil {
			return nil, err
		}
		db = bun.NewDB(dbConn, sqlitedialect.New())
		// sqlite handles a single writer; more connections would also break
		// in-memory databases, which live on one connection
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	default:
		return nil, fmt.Errorf("Invalid database connection string %s, only (postgres|postgresql|unix|sqlite):// is supported", dsn)
	}

	db.AddQueryHook(bundebug.NewQueryHook(
		// disable the hook
		bundebug.WithEnabled(false),
		// BUNDEBUG=1 logs failed queries
		// BUNDEBUG=2 logs all queries
		bundebug.FromEnv("BUNDEBUG"),
	))

	return db, nil
}

// ensureDatabase pings the configured postgres database and creates it when
// the server is reachable but the database itself is missing. The ping is
// retried with exponential backoff because the database container may still
// be coming up when the service starts.
func ensureDatabase(dsn string, config *service.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.DatabaseTimeout)*time.Second)
	defer cancel()

	probe := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	defer probe.Close()

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = time.Duration(config.DatabaseTimeout) * time.Second

	return backoff.Retry(func() error {
		err := probe.PingContext(ctx)
		if err == nil {
			return nil
		}
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == invalidCatalogName {
			if createErr := createDatabase(ctx, dsn); createErr != nil {
				return backoff.Permanent(createErr)
			}
			return nil
		}
		return err
	}, backoff.WithContext(bo, ctx))
}

func createDatabase(ctx context.Context, dsn string) error {
	u, err := url.Parse(dsn)
	if err != nil {
		return err
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return fmt.Errorf("no database name in connection string %s", dsn)
	}
	// connect to the maintenance database to issue the create
	u.Path = "/postgres"
	admin := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(u.String())))
	defer admin.Close()

	_, err = admin.ExecContext(ctx, fmt.Sprintf(`CREATE DATABASE %q`, name))
	if err != nil {
		var pgErr pgdriver.Error
		// another instance may have created it first
		if errors.As(err, &pgErr) && pgErr.Field('C') == "42P04" {
			return nil
		}
		return err
	}
	return nil
}
