package transport

import (
	"net/http"

	"ramba-be/internal/order"
	"ramba-be/internal/user"

	"github.com/gorilla/mux"
)

type checkoutRequest struct {
	Items []order.CheckoutItem `json:"items"`
}

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := h.requireRole(w, r, user.RoleBuyer)
	if !ok {
		return
	}

	var req checkoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	o, err := h.OrderSvc.Checkout(r.Context(), buyerID, req.Items)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Successfully created Order #" + o.OrderNumber,
		"order":   o,
	})
}

func (h *Handlers) BuyerOrders(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := h.requireRole(w, r, user.RoleBuyer)
	if !ok {
		return
	}

	orders, err := h.OrderSvc.ListForBuyer(r.Context(), buyerID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *Handlers) AdminOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	orders, err := h.OrderSvc.ListAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *Handlers) AdminOrderDetail(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	o, err := h.OrderSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *Handlers) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	var input order.ApproveInput
	if !decodeJSON(w, r, &input) {
		return
	}

	o, err := h.OrderSvc.Approve(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *Handlers) RejectOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	var input struct {
		AdminNotes *string `json:"admin_notes,omitempty"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	o, err := h.OrderSvc.Reject(r.Context(), mux.Vars(r)["id"], input.AdminNotes)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *Handlers) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	var input order.UpdateInput
	if !decodeJSON(w, r, &input) {
		return
	}

	o, err := h.OrderSvc.Update(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *Handlers) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	if err := h.OrderSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

func (h *Handlers) AdminStats(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	stats, err := h.OrderSvc.Stats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
