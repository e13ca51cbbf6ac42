package service_test

import (
	"context"
	"testing"

	"github.com/getbrick/brickhub.go/db"
	"github.com/getbrick/brickhub.go/db/migrations"
	"github.com/getbrick/brickhub.go/lib/logging"
	"github.com/getbrick/brickhub.go/lib/service"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"
)

// newTestService spins up a migrated and seeded service on an in-memory
// sqlite database. The database lives on a single connection and is torn
// down with the test.
func newTestService(t *testing.T) *service.BrickhubService {
	t.Helper()

	cfg := &service.Config{
		DatabaseUri:     "sqlite://:memory:",
		DatabaseTimeout: 30,
	}
	dbConn, err := db.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { dbConn.Close() })

	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err = migrator.Migrate(ctx)
	require.NoError(t, err)

	svc := &service.BrickhubService{
		Config: cfg,
		DB:     dbConn,
		Logger: logging.Logger(""),
	}
	require.NoError(t, svc.Seed(ctx))
	return svc
}
