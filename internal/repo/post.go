package repo

import (
	"context"
	"database/sql"

	"github.com/crucial707/twitter-crud/internal/models"
)

// ========================
// REPOSITORY STRUCT
// ========================

type PostRepo struct {
	DB *sql.DB
}

func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{DB: db}
}

// ========================
// LIST ALL POSTS
// ========================

func (r *PostRepo) List(ctx context.Context) ([]models.Post, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, user_id, message, created_at FROM posts ORDER BY created_at, id")
	if err != nil {
		return nil, classify("list posts", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := models.ScanPost(rows)
		if err != nil {
			return nil, classify("scan post", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list posts", err)
	}
	return posts, nil
}

// ========================
// GET POST BY ID
// ========================

func (r *PostRepo) GetByID(ctx context.Context, id string) (models.Post, error) {
	post, err := models.ScanPost(r.DB.QueryRowContext(ctx,
		`SELECT id, user_id, message, created_at
		 FROM posts
		 WHERE id = $1`,
		id,
	))
	if err != nil {
		return models.Post{}, classify("get post", err)
	}
	return post, nil
}

// ========================
// CREATE POST
// ========================

func (r *PostRepo) Create(ctx context.Context, p models.Post) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO posts (id, user_id, message, created_at)
		 VALUES ($1, $2, $3, $4)`,
		p.ID, p.UserID, p.Message, p.CreatedAt,
	)
	return classify("create post", err)
}

// ========================
// DELETE POST BY ID
// ========================

func (r *PostRepo) DeleteByID(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return classify("delete post", err)
	}
	return affected("delete post", result, ErrNotFound)
}
