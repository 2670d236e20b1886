package handlers

import (
	"net/http"

	"github.com/crucial707/twitter-crud/internal/metrics"
	"github.com/crucial707/twitter-crud/internal/models"
	"github.com/crucial707/twitter-crud/internal/repo"
)

type PostHandler struct {
	Repo  *repo.PostRepo
	Codes StatusCodes
}

//
// ==========================
// List Posts
// ==========================
//

func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Repo.List(r.Context())
	if err != nil {
		w.WriteHeader(storageStatus(r, h.Codes.orDefault(), "list_posts", err))
		return
	}

	writeJSON(w, posts, http.StatusOK)
}

//
// ==========================
// Get Post
// ==========================
//

func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	codes := h.Codes.orDefault()

	post, err := h.Repo.GetByID(r.Context(), urlParam(r, "id"))
	if err != nil {
		w.WriteHeader(storageStatus(r, codes, "get_post", err))
		return
	}

	writeJSON(w, post, codes.Found)
}

//
// ==========================
// Create Post
// ==========================
//

// CreatePost does not check that user_id names an existing user.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var input postInput
	if err := decodeJSON(r, &input); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// ===== Validate input =====
	if err := validate.Struct(input); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	post := models.NewPost(input.UserID, input.Message)
	if err := h.Repo.Create(r.Context(), post); err != nil {
		w.WriteHeader(storageStatus(r, h.Codes.orDefault(), "create_post", err))
		return
	}

	metrics.IncEntitiesCreated("post")
	writeJSON(w, post, http.StatusCreated)
}

//
// ==========================
// Delete Post
// ==========================
//

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteByID(r.Context(), urlParam(r, "id")); err != nil {
		w.WriteHeader(storageStatus(r, h.Codes.orDefault(), "delete_post", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
