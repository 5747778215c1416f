package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// idParam достаёт числовой id из пути. Нечисловое или неположительное
// значение — ошибка caller'а, хендлеры отвечают 400.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// blobBody отдаёт содержимое блоба: multipart-поле field, если запрос
// multipart/form-data, иначе сырое тело запроса. nil — когда содержимого нет.
func blobBody(r *http.Request, field string) io.ReadCloser {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			return nil
		}
		f, _, err := r.FormFile(field)
		if err != nil {
			return nil
		}
		return f
	}
	if r.Body == nil {
		return nil
	}
	return r.Body
}

// pagingParams разбирает offset/limit с умолчаниями 0/10.
// offset — нижняя граница ключа, не количество пропущенных строк.
func pagingParams(r *http.Request) (offset int64, limit int, ok bool) {
	offset, limit = 0, 10

	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return 0, 0, false
		}
		offset = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, 0, false
		}
		limit = n
	}
	return offset, limit, true
}
