package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"Northwind/internal/model"
	"Northwind/internal/service"
)

// ProductHandler обрабатывает CRUD по товарам.
type ProductHandler struct {
	Service *service.ProductService
	Logger  *zap.SugaredLogger
}

func NewProductHandler(s *service.ProductService, logger *zap.SugaredLogger) *ProductHandler {
	return &ProductHandler{Service: s, Logger: logger}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.Logger.Warnw("CreateProduct: invalid body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.Service.Create(r.Context(), &p)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("CreateProduct: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"product_id": id})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "productID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, found, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("GetProduct: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, ok := pagingParams(r)
	if !ok {
		http.Error(w, "invalid paging", http.StatusBadRequest)
		return
	}

	list, err := h.Service.List(r.Context(), offset, limit)
	if err != nil {
		h.Logger.Errorw("ListProducts: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "productID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var p model.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if id != p.ProductID {
		http.Error(w, "id mismatch", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.Update(r.Context(), id, &p)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("UpdateProduct: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "productID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("DeleteProduct: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
