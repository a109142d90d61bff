package transport

import (
	"net/http"
	"strconv"
	"strings"

	"ramba-be/internal/catalog"
	"ramba-be/internal/product"
	"ramba-be/internal/user"

	"github.com/gorilla/mux"
)

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := product.ListOptions{}

	if t := q.Get("type"); t != "" {
		pt := product.ProductType(t)
		opts.Type = &pt
	}
	if sc := q.Get("sub_category"); sc != "" {
		opts.SubCategory = &sc
	}
	if mats, ok := q["material"]; ok && len(mats) > 0 {
		opts.Materials = mats
	}
	if search := q.Get("search"); search != "" {
		opts.Search = &search
	}
	if ids := q.Get("ids"); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			if id != "" {
				opts.IDs = append(opts.IDs, id)
			}
		}
	}

	opts.Page, _ = strconv.Atoi(q.Get("page"))
	opts.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.ProductSvc.List(r.Context(), opts)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProductSvc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	var input product.NewProduct
	if !decodeJSON(w, r, &input) {
		return
	}

	p, err := h.ProductSvc.Create(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	var input product.NewProduct
	if !decodeJSON(w, r, &input) {
		return
	}

	p, err := h.ProductSvc.Update(r.Context(), mux.Vars(r)["id"], input)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, user.RoleAdmin); !ok {
		return
	}

	if err := h.ProductSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

func (h *Handlers) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Get())
}
