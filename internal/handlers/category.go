package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"Northwind/internal/model"
	"Northwind/internal/service"
)

// CategoryHandler обрабатывает CRUD по категориям и саб-ресурс картинки.
type CategoryHandler struct {
	Service *service.CategoryService
	Logger  *zap.SugaredLogger
}

func NewCategoryHandler(s *service.CategoryService, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{Service: s, Logger: logger}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c model.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		h.Logger.Warnw("CreateCategory: invalid body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.Service.Create(r.Context(), &c)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("CreateCategory: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"category_id": id})
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "categoryID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, found, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("GetCategory: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, ok := pagingParams(r)
	if !ok {
		http.Error(w, "invalid paging", http.StatusBadRequest)
		return
	}

	list, err := h.Service.List(r.Context(), offset, limit)
	if err != nil {
		h.Logger.Errorw("ListCategories: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// ListProducts отдаёт товары категории; сервис товаров пробрасывается
// при сборке роутера.
func (h *CategoryHandler) ListProducts(products *service.ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "categoryID")
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		list, err := products.ListByCategory(r.Context(), id)
		if err != nil {
			h.Logger.Errorw("ListCategoryProducts: service error", "id", id, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "categoryID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var c model.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if id != c.CategoryID {
		http.Error(w, "id mismatch", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.Update(r.Context(), id, &c)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("UpdateCategory: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "categoryID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("DeleteCategory: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) GetPicture(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "categoryID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	picture, found, err := h.Service.GetPicture(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("GetPicture: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(picture)
}

// PutPicture принимает multipart-поле picture либо сырое тело запроса.
func (h *CategoryHandler) PutPicture(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "categoryID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	body := blobBody(r, "picture")
	if body == nil {
		http.Error(w, "missing picture", http.StatusBadRequest)
		return
	}
	defer body.Close()

	updated, err := h.Service.PutPicture(r.Context(), id, body)
	if err != nil {
		h.Logger.Errorw("PutPicture: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) DeletePicture(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "categoryID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	deleted, err := h.Service.DeletePicture(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("DeletePicture: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
