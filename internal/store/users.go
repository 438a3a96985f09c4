package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"jotter/m/domain"
	"jotter/m/internal/auth"
)

const userColumns = `id, username, password, name, dob, sex, mobile, address, pincode, user_type`

// RegisterParams is the input to UserStore.Register.
type RegisterParams struct {
	Username string
	Password string
	domain.Profile
}

// UserStore persists accounts in the users table.
type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// Register hashes the password and inserts a new user, returning its id.
func (s *UserStore) Register(ctx context.Context, p RegisterParams) (int64, error) {
	if strings.TrimSpace(p.Username) == "" || p.Password == "" {
		return 0, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	hashed, err := auth.HashPassword(p.Password)
	if err != nil {
		return 0, err
	}

	prof := compactProfile(p.Profile)
	var id int64
	err = s.db.QueryRowxContext(ctx, s.db.Rebind(`INSERT INTO users (username, password, name, dob, sex, mobile, address, pincode, user_type)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`),
		p.Username, hashed, prof.Name, prof.DOB, prof.Sex, prof.Mobile, prof.Address, prof.Pincode, prof.UserType).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicateUsername
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

func (s *UserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (s *UserStore) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	if err := s.db.GetContext(ctx, &u, s.db.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

// UpdateProfile overwrites every profile column of user id; nil fields are
// written as NULL. Username and password are left alone.
func (s *UserStore) UpdateProfile(ctx context.Context, id int64, p domain.Profile) error {
	_, err := s.db.ExecContext(ctx, s.db.Rebind(`UPDATE users SET name = ?, dob = ?, sex = ?, mobile = ?, address = ?, pincode = ?, user_type = ? WHERE id = ?`),
		p.Name, p.DOB, p.Sex, p.Mobile, p.Address, p.Pincode, p.UserType, id)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// compactProfile turns blank strings into nil so registration stores NULL.
func compactProfile(p domain.Profile) domain.Profile {
	return domain.Profile{
		Name:     nullIfEmpty(p.Name),
		DOB:      nullIfEmpty(p.DOB),
		Sex:      nullIfEmpty(p.Sex),
		Mobile:   nullIfEmpty(p.Mobile),
		Address:  nullIfEmpty(p.Address),
		Pincode:  nullIfEmpty(p.Pincode),
		UserType: nullIfEmpty(p.UserType),
	}
}

func nullIfEmpty(val *string) *string {
	if val == nil || *val == "" {
		return nil
	}
	return val
}
