package transport

import (
	"net/http"

	"ramba-be/internal/user"
	"ramba-be/internal/utils"
)

type authResponse struct {
	Message string      `json:"message"`
	User    userSummary `json:"user"`
}

type userSummary struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
}

func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   h.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var input user.SignupInput
	if !decodeJSON(w, r, &input) {
		return
	}

	token, u, err := h.UserSvc.Signup(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, authResponse{
		Message: "User created successfully",
		User:    userSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	token, u, err := h.UserSvc.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, authResponse{
		Message: "Login successful",
		User:    userSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
	})
}

// Me resolves the session to a fresh user projection. An absent or invalid
// session yields {"user": null}, not an error.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}

	u, err := h.UserSvc.GetByID(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{
		"id":           u.ID,
		"name":         u.Name,
		"email":        u.Email,
		"role":         u.Role,
		"company_name": u.CompanyName,
	}})
}
