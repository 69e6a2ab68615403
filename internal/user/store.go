package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Kr0n4k/blog-project/internal/db"

	"github.com/google/uuid"
)

var (
	ErrUserNameTaken = errors.New("username already exist")
	ErrEmailTaken    = errors.New("email already exist")
	ErrNotFound      = errors.New("user not found")
)

type Store struct {
	db *db.DB
}

func NewStore(db *db.DB) *Store {
	return &Store{db: db}
}

const userColumns = `
	id, user_name, email, password, first_name, last_name,
	avatar, bio, created_at, updated_at
`

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.UserName,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Avatar,
		&u.Bio,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByLoginOrEmail matches the identifier case-insensitively against
// username OR email. Returns (nil, nil) when no user matches.
func (s *Store) FindByLoginOrEmail(ctx context.Context, login string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE LOWER(user_name) = LOWER($1)
		   OR LOWER(email) = LOWER($1)
	`, login)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

type CreateParams struct {
	UserName  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func (s *Store) Create(ctx context.Context, p CreateParams) (*User, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE user_name = $1)
	`, p.UserName).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserNameTaken
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))
	`, p.Email).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(p.Password)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, user_name, email, password, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns+`
	`, uuid.NewString(), p.UserName, p.Email, hash, p.FirstName, p.LastName)

	return scanUser(row)
}

func (s *Store) FindByID(ctx context.Context, id string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) All(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

// Search matches the query case-insensitively against username, first
// name, last name and bio.
func (s *Store) Search(ctx context.Context, query string, limit, offset int) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE user_name ILIKE '%' || $1 || '%'
		   OR first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR bio ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (s *Store) UpdateProfile(ctx context.Context, id string, bio, avatar *string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE users
		SET bio = COALESCE($2, bio),
		    avatar = COALESCE($3, avatar),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns+`
	`, id, bio, avatar)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func collectUsers(rows *sql.Rows) ([]User, error) {
	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}
