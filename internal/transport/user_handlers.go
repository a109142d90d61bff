package transport

import (
	"net/http"

	"ramba-be/internal/user"

	"github.com/gorilla/mux"
)

func publicUser(u *user.User) map[string]any {
	return map[string]any{
		"id":           u.ID,
		"name":         u.Name,
		"email":        u.Email,
		"role":         u.Role,
		"company_name": u.CompanyName,
		"country":      u.Country,
		"created_at":   u.CreatedAt,
	}
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	users, err := h.UserSvc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	out := make([]map[string]any, 0, len(users))
	for i := range users {
		out = append(out, publicUser(&users[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	var input user.NewUserInput
	if !decodeJSON(w, r, &input) {
		return
	}

	u, err := h.UserSvc.CreateUser(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, publicUser(u))
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	u, err := h.UserSvc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, publicUser(u))
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	var input user.UpdateUserInput
	if !decodeJSON(w, r, &input) {
		return
	}

	u, err := h.UserSvc.UpdateUser(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, publicUser(u))
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	if err := h.UserSvc.DeleteUser(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
