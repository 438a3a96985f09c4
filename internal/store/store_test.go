package store

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"jotter/m/internal/database"
	"jotter/m/internal/migrations"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = migrations.Run(context.Background(), db)
	require.NoError(t, err)
	return db
}

func strptr(s string) *string { return &s }

func mustRegister(t *testing.T, s *UserStore, username string) int64 {
	t.Helper()
	id, err := s.Register(context.Background(), RegisterParams{Username: username, Password: "pw-" + username})
	require.NoError(t, err)
	return id
}
