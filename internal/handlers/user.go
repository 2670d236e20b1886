package handlers

import (
	"net/http"

	"github.com/crucial707/twitter-crud/internal/metrics"
	"github.com/crucial707/twitter-crud/internal/models"
	"github.com/crucial707/twitter-crud/internal/repo"
)

// ==========================
// UserHandler
// ==========================
type UserHandler struct {
	Repo  *repo.UserRepo
	Codes StatusCodes
}

// ==========================
// List Users
// ==========================
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.List(r.Context())
	if err != nil {
		w.WriteHeader(storageStatus(r, h.Codes.orDefault(), "list_users", err))
		return
	}

	writeJSON(w, users, http.StatusOK)
}

// ==========================
// Get User
// ==========================
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	codes := h.Codes.orDefault()
	username := urlParam(r, "username")

	user, err := h.Repo.GetByUsername(r.Context(), username)
	if err != nil {
		w.WriteHeader(storageStatus(r, codes, "get_user", err))
		return
	}

	writeJSON(w, user, codes.Found)
}

// ==========================
// Create User
// ==========================
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input usernameInput
	if err := decodeJSON(r, &input); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(input); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user := models.NewUser(input.Username)
	if err := h.Repo.Create(r.Context(), user); err != nil {
		w.WriteHeader(storageStatus(r, h.Codes.orDefault(), "create_user", err))
		return
	}

	metrics.IncEntitiesCreated("user")
	writeJSON(w, user, http.StatusCreated)
}

// ==========================
// Update User
// ==========================

// UpdateUser renames {username} to the username in the body. The lookup and
// the update are separate statements; a rename racing a delete surfaces as
// the storage-failure status.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	codes := h.Codes.orDefault()

	var input usernameInput
	if err := decodeJSON(r, &input); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Struct(input); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, err := h.Repo.GetByUsername(r.Context(), urlParam(r, "username"))
	if err != nil {
		w.WriteHeader(storageStatus(r, codes, "get_user", err))
		return
	}

	if err := h.Repo.UpdateUsername(r.Context(), user.ID, input.Username); err != nil {
		w.WriteHeader(storageStatus(r, codes, "update_user", err))
		return
	}

	user.Username = input.Username
	writeJSON(w, user, http.StatusAccepted)
}

// ==========================
// Delete User
// ==========================
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var input usernameInput
	if err := decodeJSON(r, &input); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteByUsername(r.Context(), input.Username); err != nil {
		w.WriteHeader(storageStatus(r, h.Codes.orDefault(), "delete_user", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
