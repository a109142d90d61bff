package transport

import (
	"net/http"

	"ramba-be/internal/logger"
	"ramba-be/internal/middleware"
	"ramba-be/internal/order"
	"ramba-be/internal/product"
	"ramba-be/internal/user"
	"ramba-be/internal/utils"

	"github.com/gorilla/mux"
)

type Handlers struct {
	UserSvc    user.Service
	ProductSvc product.Service
	OrderSvc   order.Service

	// Env controls the Secure flag on the session cookie.
	Env string
}

func NewRouter(h *Handlers) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/signup", h.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)

	api.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products", h.CreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", h.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.UpdateProduct).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", h.DeleteProduct).Methods(http.MethodDelete)

	api.HandleFunc("/catalog", h.GetCatalog).Methods(http.MethodGet)

	api.HandleFunc("/orders", h.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/orders/buyer", h.BuyerOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/admin", h.AdminOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/admin/{id}", h.AdminOrderDetail).Methods(http.MethodGet)
	api.HandleFunc("/orders/admin/{id}", h.UpdateOrder).Methods(http.MethodPut)
	api.HandleFunc("/orders/admin/{id}", h.DeleteOrder).Methods(http.MethodDelete)
	api.HandleFunc("/orders/{id}/approve", h.ApproveOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/reject", h.RejectOrder).Methods(http.MethodPost)

	api.HandleFunc("/admin/stats", h.AdminStats).Methods(http.MethodGet)

	api.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", h.DeleteUser).Methods(http.MethodDelete)

	var handler http.Handler = r
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.AuthMiddleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)
	return handler
}

// requireRole gates a handler on an authenticated identity with the given
// role. A 401/403 reveals nothing about whether the target resource exists.
func (h *Handlers) requireRole(w http.ResponseWriter, r *http.Request, role user.Role) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return "", false
	}

	if utils.GetUserRoleFromContext(r.Context()) != string(role) {
		switch role {
		case user.RoleAdmin:
			writeError(w, http.StatusForbidden, "Unauthorized: Admin access required")
		default:
			writeError(w, http.StatusForbidden, "Unauthorized: Buyer access required")
		}
		return "", false
	}

	return userID, true
}
