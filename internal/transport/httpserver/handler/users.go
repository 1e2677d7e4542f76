package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	userdomain "carpooling-go/internal/domain/user"
)

type userResponse struct {
	ID         uint   `json:"id"`
	Forename   string `json:"forename"`
	Surname    string `json:"surname"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

type usersEnvelope struct {
	Users []userResponse `json:"users"`
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		h.log.InternalError("users.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]userResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, usersEnvelope{Users: response})
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid user id")
		return
	}

	found, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			h.log.BusinessError("users.get: user not found", err, "user_id", id)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
			return
		}
		h.log.InternalError("users.get: get failed", err, "user_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*found))
}

// Register accepts the form posted by the index page and renders the
// success page. A duplicate email is a distinct conflict outcome, never a
// silent no-op.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_form", "invalid form body")
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	forename := strings.TrimSpace(r.PostFormValue("forename"))
	surname := strings.TrimSpace(r.PostFormValue("surname"))
	if email == "" || forename == "" || surname == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email, forename and surname are required")
		return
	}

	created, err := h.Users.Register(r.Context(), email, forename, surname, r.PostFormValue("department"))
	if err != nil {
		if errors.Is(err, userdomain.ErrEmailTaken) {
			h.log.BusinessError("users.register: email taken", err, "email", email)
			writeError(w, http.StatusConflict, "email_taken", "email already registered")
			return
		}
		h.log.InternalError("users.register: register failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.pages.success.Execute(w, created); err != nil {
		h.log.InternalError("users.register: render success failed", err, "user_id", created.ID)
	}
}

func toUserResponse(u userdomain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Forename:   u.Forename,
		Surname:    u.Surname,
		Department: u.Department,
		Email:      u.Email,
	}
}
