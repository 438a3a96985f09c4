package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jotter/m/internal/auth"
	"jotter/m/internal/database"
	"jotter/m/internal/logging"
	"jotter/m/internal/migrations"
	"jotter/m/internal/store"
)

const sample = `username,password,title,content,is_completed
alice,pw1,groceries,milk and eggs,false
alice,ignored,call mom,sunday,true
bob,pw2,bob note,hello,
bob,pw2,,missing title,false
short,row
`

func TestLoadNotes(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()
	_, err = migrations.Run(ctx, db)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "seed.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	users := store.NewUserStore(db)
	notes := store.NewNoteStore(db)

	n := LoadNotes(ctx, users, notes, path, logging.Discard())
	assert.Equal(t, 3, n)

	alice, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(alice.Password, "pw1"))

	list, err := notes.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	done := map[string]bool{}
	for _, note := range list {
		done[note.Title] = note.IsCompleted
	}
	assert.Equal(t, map[string]bool{"groceries": false, "call mom": true}, done)

	// Running again reuses the existing accounts.
	assert.Equal(t, 3, LoadNotes(ctx, users, notes, path, logging.Discard()))
	list, err = notes.List(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestLoadNotes_MissingFile(t *testing.T) {
	assert.Zero(t, LoadNotes(context.Background(), nil, nil, filepath.Join(t.TempDir(), "absent.csv"), logging.Discard()))
}
