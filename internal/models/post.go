package models

import "github.com/google/uuid"

// MessageMaxLen is the longest accepted post message, in bytes.
const MessageMaxLen = 256

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt Timestamp `json:"created_at"`
}

func NewPost(userID, message string) Post {
	return Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		CreatedAt: Now(),
	}
}

// ScanPost decodes a row selected as (id, user_id, message, created_at).
func ScanPost(row RowScanner) (Post, error) {
	var (
		p         Post
		createdAt string
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Message, &createdAt); err != nil {
		return Post{}, err
	}
	p.CreatedAt = MustParseTimestamp(createdAt)
	return p, nil
}
