package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jotter/m/domain"
	"jotter/m/internal/auth"
)

func TestUserStore_Register(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	ctx := context.Background()

	id, err := s.Register(ctx, RegisterParams{
		Username: "alice",
		Password: "pw1",
		Profile:  domain.Profile{Name: strptr("Alice"), UserType: strptr("student"), Mobile: strptr("")},
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	u, err := s.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.NotEqual(t, "pw1", u.Password)
	assert.True(t, auth.CheckPassword(u.Password, "pw1"))
	assert.Equal(t, "Alice", *u.Name)
	assert.Equal(t, "student", *u.UserType)
	assert.Nil(t, u.Mobile, "blank profile fields are stored as NULL")
	assert.Nil(t, u.DOB)
}

func TestUserStore_Register_Duplicate(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	ctx := context.Background()

	first, err := s.Register(ctx, RegisterParams{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Positive(t, first)

	_, err = s.Register(ctx, RegisterParams{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestUserStore_Register_MissingFields(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	ctx := context.Background()

	for name, p := range map[string]RegisterParams{
		"no username": {Password: "pw"},
		"blank":       {Username: "   ", Password: "pw"},
		"no password": {Username: "bob"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Register(ctx, p)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestUserStore_FindMissing(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	ctx := context.Background()

	_, err := s.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.FindByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserStore_UpdateProfile_OverwritesAll(t *testing.T) {
	s := NewUserStore(newTestDB(t))
	ctx := context.Background()

	id, err := s.Register(ctx, RegisterParams{
		Username: "alice",
		Password: "pw1",
		Profile:  domain.Profile{Name: strptr("Alice"), Address: strptr("1 Main St"), Pincode: strptr("560001")},
	})
	require.NoError(t, err)
	before, err := s.FindByID(ctx, id)
	require.NoError(t, err)

	require.NoError(t, s.UpdateProfile(ctx, id, domain.Profile{Name: strptr("Alice B"), Sex: strptr("F")}))

	u, err := s.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, before.Password, u.Password)
	assert.Equal(t, "Alice B", *u.Name)
	assert.Equal(t, "F", *u.Sex)
	assert.Nil(t, u.Address, "omitted fields are cleared")
	assert.Nil(t, u.Pincode)
}
