package memory

import (
	"context"
	"sort"
	"sync"

	"Northwind/internal/model"
	"Northwind/internal/repo"
)

// BlogStore держит статьи, связки и комментарии под одним мьютексом:
// операции над связками проверяют статью в том же захвате.
type BlogStore struct {
	mu       sync.RWMutex
	articles map[int64]model.BlogArticle
	links    map[int64]model.BlogArticleProduct
	comments map[int64]model.BlogComment
}

func NewBlogStore() *BlogStore {
	return &BlogStore{
		articles: make(map[int64]model.BlogArticle),
		links:    make(map[int64]model.BlogArticleProduct),
		comments: make(map[int64]model.BlogComment),
	}
}

var _ repo.BlogRepository = (*BlogStore)(nil)

func (s *BlogStore) InsertArticle(_ context.Context, a *model.BlogArticle) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.BlogArticleID = nextID(s.articles)
	s.articles[a.BlogArticleID] = *a
	return a.BlogArticleID, nil
}

func (s *BlogStore) FindArticleByID(_ context.Context, id int64) (*model.BlogArticle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.articles[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &a, nil
}

func (s *BlogStore) ListArticlesFrom(_ context.Context, fromID int64, limit int) ([]model.BlogArticle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.BlogArticle, 0, limit)
	for id, a := range s.articles {
		if id >= fromID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BlogArticleID < out[j].BlogArticleID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *BlogStore) SaveArticle(_ context.Context, a *model.BlogArticle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.articles[a.BlogArticleID]; !ok {
		return repo.ErrNotFound
	}
	s.articles[a.BlogArticleID] = *a
	return nil
}

func (s *BlogStore) DeleteArticle(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.articles[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.articles, id)
	return nil
}

func (s *BlogStore) LinkExists(_ context.Context, articleID, productID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.links {
		if l.ArticleID == articleID && l.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (s *BlogStore) InsertLink(_ context.Context, l *model.BlogArticleProduct) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.BlogArticleProductID = nextID(s.links)
	s.links[l.BlogArticleProductID] = *l
	return l.BlogArticleProductID, nil
}

func (s *BlogStore) ListLinks(_ context.Context, articleID int64) ([]model.BlogArticleProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.BlogArticleProduct
	for _, l := range s.links {
		if l.ArticleID == articleID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BlogArticleProductID < out[j].BlogArticleProductID })
	return out, nil
}

func (s *BlogStore) DeleteLink(_ context.Context, linkID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.links[linkID]; !ok {
		return repo.ErrNotFound
	}
	delete(s.links, linkID)
	return nil
}

func (s *BlogStore) InsertComment(_ context.Context, c *model.BlogComment) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.BlogCommentID = nextID(s.comments)
	s.comments[c.BlogCommentID] = *c
	return c.BlogCommentID, nil
}

func (s *BlogStore) FindComment(_ context.Context, articleID, commentID int64) (*model.BlogComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[commentID]
	if !ok || c.ArticleID != articleID {
		return nil, repo.ErrNotFound
	}
	return &c, nil
}

func (s *BlogStore) ListComments(_ context.Context, articleID int64) ([]model.BlogComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.BlogComment
	for _, c := range s.comments {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BlogCommentID < out[j].BlogCommentID })
	return out, nil
}

func (s *BlogStore) SaveComment(_ context.Context, c *model.BlogComment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[c.BlogCommentID]; !ok {
		return repo.ErrNotFound
	}
	s.comments[c.BlogCommentID] = *c
	return nil
}

func (s *BlogStore) DeleteComment(_ context.Context, commentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[commentID]; !ok {
		return repo.ErrNotFound
	}
	delete(s.comments, commentID)
	return nil
}
