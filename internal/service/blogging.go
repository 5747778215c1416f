package service

import (
	"context"
	"errors"

	"Northwind/internal/model"
	"Northwind/internal/repo"
)

// Сентинелы вместо ключа: вставка не выполнялась, но это не ошибка вызова.
const (
	// AlreadyLinked — пара (статья, товар) уже связана.
	AlreadyLinked int64 = -1
	// NoSuchArticle — комментарий к несуществующей статье.
	NoSuchArticle int64 = -1
)

// BloggingService — статьи блога, связки с товарами и комментарии.
type BloggingService struct {
	repo repo.BlogRepository
}

func NewBloggingService(r repo.BlogRepository) *BloggingService {
	return &BloggingService{repo: r}
}

func (s *BloggingService) CreateArticle(ctx context.Context, a *model.BlogArticle) (int64, error) {
	if a == nil {
		return 0, ErrInvalidArgument
	}
	a.BlogArticleID = 0
	return s.repo.InsertArticle(ctx, a)
}

func (s *BloggingService) GetArticle(ctx context.Context, id int64) (*model.BlogArticle, bool, error) {
	if id <= 0 {
		return nil, false, ErrInvalidArgument
	}
	a, err := s.repo.FindArticleByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return a, true, nil
}

func (s *BloggingService) ListArticles(ctx context.Context, offset int64, limit int) ([]model.BlogArticle, error) {
	return s.repo.ListArticlesFrom(ctx, offset, limit)
}

// UpdateArticle меняет только заголовок и текст. Дата публикации и автор
// остаются теми, что уже сохранены.
func (s *BloggingService) UpdateArticle(ctx context.Context, id int64, a *model.BlogArticle) (bool, error) {
	if a == nil || id <= 0 {
		return false, ErrInvalidArgument
	}
	if id != a.BlogArticleID {
		return false, nil
	}

	stored, err := s.repo.FindArticleByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	stored.Title = a.Title
	stored.Body = a.Body

	if err := s.repo.SaveArticle(ctx, stored); err != nil {
		return false, err
	}
	return true, nil
}

func (s *BloggingService) DeleteArticle(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrInvalidArgument
	}
	err := s.repo.DeleteArticle(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateProductLink связывает статью с товаром. Если пара уже связана,
// возвращает AlreadyLinked без ошибки — повторная вставка не выполняется.
func (s *BloggingService) CreateProductLink(ctx context.Context, articleID, productID int64) (int64, error) {
	if articleID <= 0 || productID <= 0 {
		return 0, ErrInvalidArgument
	}
	exists, err := s.repo.LinkExists(ctx, articleID, productID)
	if err != nil {
		return 0, err
	}
	if exists {
		return AlreadyLinked, nil
	}
	return s.repo.InsertLink(ctx, &model.BlogArticleProduct{ArticleID: articleID, ProductID: productID})
}

func (s *BloggingService) ListProductLinks(ctx context.Context, articleID int64) ([]model.BlogArticleProduct, error) {
	if articleID <= 0 {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListLinks(ctx, articleID)
}

func (s *BloggingService) DeleteProductLink(ctx context.Context, linkID int64) (bool, error) {
	if linkID <= 0 {
		return false, ErrInvalidArgument
	}
	err := s.repo.DeleteLink(ctx, linkID)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateComment вставляет комментарий, если статья существует,
// иначе возвращает NoSuchArticle без ошибки.
func (s *BloggingService) CreateComment(ctx context.Context, c *model.BlogComment) (int64, error) {
	if c == nil {
		return 0, ErrInvalidArgument
	}
	_, err := s.repo.FindArticleByID(ctx, c.ArticleID)
	if errors.Is(err, repo.ErrNotFound) {
		return NoSuchArticle, nil
	}
	if err != nil {
		return 0, err
	}
	c.BlogCommentID = 0
	return s.repo.InsertComment(ctx, c)
}

func (s *BloggingService) ListComments(ctx context.Context, articleID int64) ([]model.BlogComment, error) {
	if articleID <= 0 {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListComments(ctx, articleID)
}

// UpdateComment меняет только текст комментария.
func (s *BloggingService) UpdateComment(ctx context.Context, articleID, commentID int64, c *model.BlogComment) (bool, error) {
	if c == nil || articleID <= 0 || commentID <= 0 {
		return false, ErrInvalidArgument
	}

	stored, err := s.repo.FindComment(ctx, articleID, commentID)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	stored.Text = c.Text

	if err := s.repo.SaveComment(ctx, stored); err != nil {
		return false, err
	}
	return true, nil
}

func (s *BloggingService) DeleteComment(ctx context.Context, commentID int64) (bool, error) {
	if commentID <= 0 {
		return false, ErrInvalidArgument
	}
	err := s.repo.DeleteComment(ctx, commentID)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
