package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/examprep/backend/internal/domain/user"
)

// ── Request / Response types ────────────────────────────────────────────────

type LoginRequest struct {
	Name string `json:"name" example:"alice"`
}

func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type UserResponse struct {
	ID        string    `json:"id" example:"65f1c2a4e4b0a1b2c3d4e5f6"`
	Name      string    `json:"name" example:"alice"`
	Role      string    `json:"role" example:"student"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	User    UserResponse `json:"user"`
	Created bool         `json:"created" example:"true"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// login signs a user in by name.
// @Summary      Log in by name
// @Description  Returns the user with the given name. A first login creates the user and a private wrong-answer bank.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "User name"
// @Success      200   {object}  LoginResponse
// @Success      201   {object}  LoginResponse  "user created"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/users/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, created, err := h.accounts.Login(r.Context(), req.Name)
	if h.respondServiceError(w, r, err, "user") {
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, status, LoginResponse{User: toUserResponse(u), Created: created})
}

// listUsers lists every user. Admin only.
// @Summary      List users
// @Tags         Users
// @Produce      json
// @Param        user-id  header    string  true  "Caller ID"
// @Success      200      {array}   UserResponse
// @Failure      401      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Router       /api/users [get]
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accounts.ListUsers(r.Context())
	if h.respondServiceError(w, r, err, "user") {
		return
	}

	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = toUserResponse(u)
	}
	respondJSON(w, http.StatusOK, response)
}
