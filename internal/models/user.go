package models

import "github.com/google/uuid"

// UsernameMaxLen is the longest accepted username, in bytes.
const UsernameMaxLen = 32

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt Timestamp `json:"created_at"`
}

// NewUser returns a user with a fresh random id, stamped with the current time.
func NewUser(username string) User {
	return User{
		ID:        uuid.NewString(),
		Username:  username,
		CreatedAt: Now(),
	}
}

// RowScanner is satisfied by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// ScanUser decodes a row selected as (id, username, created_at).
func ScanUser(row RowScanner) (User, error) {
	var (
		u         User
		createdAt string
	)
	if err := row.Scan(&u.ID, &u.Username, &createdAt); err != nil {
		return User{}, err
	}
	u.CreatedAt = MustParseTimestamp(createdAt)
	return u, nil
}
