package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"Northwind/internal/model"
	"Northwind/internal/service"
)

// EmployeeHandler обрабатывает CRUD по сотрудникам и саб-ресурс фотографии.
type EmployeeHandler struct {
	Service *service.EmployeeService
	Logger  *zap.SugaredLogger
}

func NewEmployeeHandler(s *service.EmployeeService, logger *zap.SugaredLogger) *EmployeeHandler {
	return &EmployeeHandler{Service: s, Logger: logger}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var e model.Employee
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		h.Logger.Warnw("CreateEmployee: invalid body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.Service.Create(r.Context(), &e)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("CreateEmployee: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"employee_id": id})
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "employeeID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, found, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("GetEmployee: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, e)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit, ok := pagingParams(r)
	if !ok {
		http.Error(w, "invalid paging", http.StatusBadRequest)
		return
	}

	list, err := h.Service.List(r.Context(), offset, limit)
	if err != nil {
		h.Logger.Errorw("ListEmployees: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "employeeID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var e model.Employee
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	// id из пути и из тела должны совпадать
	if id != e.EmployeeID {
		http.Error(w, "id mismatch", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.Update(r.Context(), id, &e)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("UpdateEmployee: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "employeeID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("DeleteEmployee: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "employeeID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	photo, found, err := h.Service.GetPhoto(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("GetPhoto: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(photo)
}

// PutPhoto принимает multipart-поле photo либо сырое тело запроса.
func (h *EmployeeHandler) PutPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "employeeID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	body := blobBody(r, "photo")
	if body == nil {
		http.Error(w, "missing photo", http.StatusBadRequest)
		return
	}
	defer body.Close()

	updated, err := h.Service.PutPhoto(r.Context(), id, body)
	if err != nil {
		h.Logger.Errorw("PutPhoto: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "employeeID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	deleted, err := h.Service.DeletePhoto(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("DeletePhoto: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
