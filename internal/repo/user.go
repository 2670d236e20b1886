package repo

import (
	"context"
	"database/sql"

	"github.com/crucial707/twitter-crud/internal/models"
)

// ==========================
// UserRepo
// ==========================
type UserRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// ==========================
// List Users
// ==========================
func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, username, created_at FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, classify("list users", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := models.ScanUser(rows)
		if err != nil {
			return nil, classify("scan user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list users", err)
	}

	return users, nil
}

// ==========================
// Get By Username
// ==========================
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	query := `
		SELECT id, username, created_at
		FROM users
		WHERE username = $1
	`

	user, err := models.ScanUser(r.DB.QueryRowContext(ctx, query, username))
	if err != nil {
		return models.User{}, classify("get user", err)
	}

	return user, nil
}

// ==========================
// Create User
// ==========================

// Create inserts u. A taken username yields ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u models.User) error {
	query := `
		INSERT INTO users (id, username, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.DB.ExecContext(ctx, query, u.ID, u.Username, u.CreatedAt)
	return classify("create user", err)
}

// ==========================
// Update Username
// ==========================

// UpdateUsername renames the user with the given id. It returns ErrNotUpdated
// when the id matches no row and ErrDuplicate when the new name is taken.
func (r *UserRepo) UpdateUsername(ctx context.Context, id, username string) error {
	query := `
		UPDATE users
		SET username = $1
		WHERE id = $2
	`

	result, err := r.DB.ExecContext(ctx, query, username, id)
	if err != nil {
		return classify("update user", err)
	}

	return affected("update user", result, ErrNotUpdated)
}

// ==========================
// Delete By Username
// ==========================
func (r *UserRepo) DeleteByUsername(ctx context.Context, username string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return classify("delete user", err)
	}

	return affected("delete user", result, ErrNotFound)
}
