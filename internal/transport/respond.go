package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"ramba-be/internal/logger"
	"ramba-be/internal/order"
	"ramba-be/internal/product"
	"ramba-be/internal/user"
	"ramba-be/internal/utils"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// respondError translates service errors into status codes. Anything
// unrecognized is an opaque 500; storage internals never reach the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *utils.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, http.StatusBadRequest, vErr.Error())
		return
	}

	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, user.ErrEmailExists):
		writeError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, user.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, "Invalid role")
	case errors.Is(err, user.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, product.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, product.ErrInvalidType):
		writeError(w, http.StatusBadRequest, "Invalid product type")
	case errors.Is(err, order.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, order.ErrOrderNotPending):
		writeError(w, http.StatusConflict, "Order is not pending")
	case errors.Is(err, order.ErrEmptyOrder):
		writeError(w, http.StatusBadRequest, "No items provided")
	case errors.Is(err, order.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
