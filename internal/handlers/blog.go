package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"Northwind/internal/model"
	"Northwind/internal/service"
)

// BlogHandler обрабатывает статьи, связки с товарами и комментарии.
// Автор статьи проверяется через сервис сотрудников.
type BlogHandler struct {
	Blogging  *service.BloggingService
	Employees *service.EmployeeService
	Logger    *zap.SugaredLogger
}

func NewBlogHandler(blogging *service.BloggingService, employees *service.EmployeeService, logger *zap.SugaredLogger) *BlogHandler {
	return &BlogHandler{Blogging: blogging, Employees: employees, Logger: logger}
}

// ArticleCreateRequest — входная модель создания статьи.
type ArticleCreateRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	EmployeeID int64  `json:"employee_id"`
}

// ArticleUpdateRequest — входная модель обновления: только заголовок и текст.
type ArticleUpdateRequest struct {
	BlogArticleID int64  `json:"blog_article_id"`
	Title         string `json:"title"`
	Body          string `json:"body"`
}

// ArticleListItem — строка списка статей, без тела.
type ArticleListItem struct {
	BlogArticleID   int64     `json:"blog_article_id"`
	Title           string    `json:"title"`
	PublicationDate time.Time `json:"publication_date"`
	EmployeeID      int64     `json:"employee_id"`
	AuthorName      string    `json:"author_name"`
}

// ArticleResponse — полная статья с именем автора.
type ArticleResponse struct {
	ArticleListItem
	Body string `json:"body"`
}

// newArticle - явный маппинг входной модели в сущность; дата публикации
// назначается сервером в момент создания.
func newArticle(req ArticleCreateRequest) *model.BlogArticle {
	return &model.BlogArticle{
		Title:           req.Title,
		Body:            req.Body,
		PublicationDate: time.Now().UTC(),
		EmployeeID:      req.EmployeeID,
	}
}

func articleListItem(a model.BlogArticle, author *model.Employee) ArticleListItem {
	item := ArticleListItem{
		BlogArticleID:   a.BlogArticleID,
		Title:           a.Title,
		PublicationDate: a.PublicationDate,
		EmployeeID:      a.EmployeeID,
	}
	if author != nil {
		item.AuthorName = author.FirstName + " " + author.LastName
	}
	return item
}

func (h *BlogHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req ArticleCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("CreateArticle: invalid body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.EmployeeID <= 0 {
		http.Error(w, "invalid employee id", http.StatusBadRequest)
		return
	}

	// автор должен существовать
	_, found, err := h.Employees.Get(r.Context(), req.EmployeeID)
	if err != nil {
		h.Logger.Errorw("CreateArticle: employee lookup failed", "employee_id", req.EmployeeID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "unknown employee", http.StatusBadRequest)
		return
	}

	id, err := h.Blogging.CreateArticle(r.Context(), newArticle(req))
	if err != nil {
		h.Logger.Errorw("CreateArticle: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"blog_article_id": id})
}

func (h *BlogHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "articleID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, found, err := h.Blogging.GetArticle(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("GetArticle: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	author, _, err := h.Employees.Get(r.Context(), a.EmployeeID)
	if err != nil {
		h.Logger.Errorw("GetArticle: employee lookup failed", "employee_id", a.EmployeeID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ArticleResponse{
		ArticleListItem: articleListItem(*a, author),
		Body:            a.Body,
	})
}

func (h *BlogHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	offset, limit, ok := pagingParams(r)
	if !ok {
		http.Error(w, "invalid paging", http.StatusBadRequest)
		return
	}

	articles, err := h.Blogging.ListArticles(r.Context(), offset, limit)
	if err != nil {
		h.Logger.Errorw("ListArticles: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]ArticleListItem, 0, len(articles))
	for _, a := range articles {
		author, _, err := h.Employees.Get(r.Context(), a.EmployeeID)
		if err != nil {
			h.Logger.Errorw("ListArticles: employee lookup failed", "employee_id", a.EmployeeID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		out = append(out, articleListItem(a, author))
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *BlogHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "articleID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req ArticleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if id != req.BlogArticleID {
		http.Error(w, "id mismatch", http.StatusBadRequest)
		return
	}

	updated, err := h.Blogging.UpdateArticle(r.Context(), id, &model.BlogArticle{
		BlogArticleID: req.BlogArticleID,
		Title:         req.Title,
		Body:          req.Body,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("UpdateArticle: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BlogHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "articleID")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	deleted, err := h.Blogging.DeleteArticle(r.Context(), id)
	if err != nil {
		h.Logger.Errorw("DeleteArticle: service error", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BlogHandler) CreateProductLink(w http.ResponseWriter, r *http.Request) {
	articleID, ok := idParam(r, "articleID")
	if !ok {
		http.Error(w, "invalid article id", http.StatusBadRequest)
		return
	}
	productID, ok := idParam(r, "productID")
	if !ok {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	id, err := h.Blogging.CreateProductLink(r.Context(), articleID, productID)
	if err != nil {
		h.Logger.Errorw("CreateProductLink: service error", "article_id", articleID, "product_id", productID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if id == service.AlreadyLinked {
		http.Error(w, "already linked", http.StatusConflict)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"blog_article_product_id": id})
}

func (h *BlogHandler) ListProductLinks(w http.ResponseWriter, r *http.Request) {
	articleID, ok := idParam(r, "articleID")
	if !ok {
		http.Error(w, "invalid article id", http.StatusBadRequest)
		return
	}

	links, err := h.Blogging.ListProductLinks(r.Context(), articleID)
	if err != nil {
		h.Logger.Errorw("ListProductLinks: service error", "article_id", articleID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, links)
}

func (h *BlogHandler) DeleteProductLink(w http.ResponseWriter, r *http.Request) {
	linkID, ok := idParam(r, "linkID")
	if !ok {
		http.Error(w, "invalid link id", http.StatusBadRequest)
		return
	}

	deleted, err := h.Blogging.DeleteProductLink(r.Context(), linkID)
	if err != nil {
		h.Logger.Errorw("DeleteProductLink: service error", "link_id", linkID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CommentRequest — входная модель комментария.
type CommentRequest struct {
	CustomerID int64  `json:"customer_id"`
	Text       string `json:"text"`
}

func (h *BlogHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	articleID, ok := idParam(r, "articleID")
	if !ok {
		http.Error(w, "invalid article id", http.StatusBadRequest)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.Blogging.CreateComment(r.Context(), &model.BlogComment{
		ArticleID:  articleID,
		CustomerID: req.CustomerID,
		Text:       req.Text,
	})
	if err != nil {
		h.Logger.Errorw("CreateComment: service error", "article_id", articleID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if id == service.NoSuchArticle {
		http.Error(w, "article not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"blog_comment_id": id})
}

func (h *BlogHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	articleID, ok := idParam(r, "articleID")
	if !ok {
		http.Error(w, "invalid article id", http.StatusBadRequest)
		return
	}

	comments, err := h.Blogging.ListComments(r.Context(), articleID)
	if err != nil {
		h.Logger.Errorw("ListComments: service error", "article_id", articleID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *BlogHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	articleID, ok := idParam(r, "articleID")
	if !ok {
		http.Error(w, "invalid article id", http.StatusBadRequest)
		return
	}
	commentID, ok := idParam(r, "commentID")
	if !ok {
		http.Error(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	updated, err := h.Blogging.UpdateComment(r.Context(), articleID, commentID, &model.BlogComment{Text: req.Text})
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("UpdateComment: service error", "comment_id", commentID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BlogHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if _, ok := idParam(r, "articleID"); !ok {
		http.Error(w, "invalid article id", http.StatusBadRequest)
		return
	}
	commentID, ok := idParam(r, "commentID")
	if !ok {
		http.Error(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	deleted, err := h.Blogging.DeleteComment(r.Context(), commentID)
	if err != nil {
		h.Logger.Errorw("DeleteComment: service error", "comment_id", commentID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
