package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Northwind/internal/model"
	"Northwind/internal/repo/memory"
)

func newBlogging(t *testing.T) *BloggingService {
	t.Helper()
	return NewBloggingService(memory.NewBlogStore())
}

func seedArticle(t *testing.T, svc *BloggingService) int64 {
	t.Helper()
	id, err := svc.CreateArticle(context.Background(), &model.BlogArticle{
		Title:           "Chai review",
		Body:            "still good",
		PublicationDate: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		EmployeeID:      7,
	})
	require.NoError(t, err)
	return id
}

// дата публикации и автор после правки остаются исходными
func TestBloggingService_UpdateArticleKeepsMetadata(t *testing.T) {
	svc := newBlogging(t)
	ctx := context.Background()
	id := seedArticle(t, svc)

	ok, err := svc.UpdateArticle(ctx, id, &model.BlogArticle{
		BlogArticleID:   id,
		Title:           "Chai re-review",
		Body:            "even better",
		PublicationDate: time.Now(),
		EmployeeID:      999,
	})
	require.NoError(t, err)
	require.True(t, ok)

	a, found, err := svc.GetArticle(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Chai re-review", a.Title)
	assert.Equal(t, "even better", a.Body)
	assert.Equal(t, int64(7), a.EmployeeID)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), a.PublicationDate)
}

func TestBloggingService_UpdateArticleIDMismatch(t *testing.T) {
	svc := newBlogging(t)
	id := seedArticle(t, svc)

	ok, err := svc.UpdateArticle(context.Background(), id, &model.BlogArticle{BlogArticleID: id + 1})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBloggingService_DuplicateLink(t *testing.T) {
	svc := newBlogging(t)
	ctx := context.Background()
	id := seedArticle(t, svc)

	linkID, err := svc.CreateProductLink(ctx, id, 3)
	require.NoError(t, err)
	require.Positive(t, linkID)

	// повтор той же пары — сентинел, не ошибка
	again, err := svc.CreateProductLink(ctx, id, 3)
	require.NoError(t, err)
	assert.Equal(t, AlreadyLinked, again)

	links, err := svc.ListProductLinks(ctx, id)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	// после удаления пару можно связать заново
	ok, err := svc.DeleteProductLink(ctx, linkID)
	require.NoError(t, err)
	require.True(t, ok)

	fresh, err := svc.CreateProductLink(ctx, id, 3)
	require.NoError(t, err)
	assert.Positive(t, fresh)
}

func TestBloggingService_CommentOnMissingArticle(t *testing.T) {
	svc := newBlogging(t)

	id, err := svc.CreateComment(context.Background(), &model.BlogComment{
		ArticleID:  123,
		CustomerID: 17,
		Text:       "where is the article?",
	})
	require.NoError(t, err)
	assert.Equal(t, NoSuchArticle, id)
}

func TestBloggingService_CommentLifecycle(t *testing.T) {
	svc := newBlogging(t)
	ctx := context.Background()
	articleID := seedArticle(t, svc)

	commentID, err := svc.CreateComment(ctx, &model.BlogComment{
		ArticleID:  articleID,
		CustomerID: 17,
		Text:       "nice",
	})
	require.NoError(t, err)
	require.Positive(t, commentID)

	// правка меняет только текст
	ok, err := svc.UpdateComment(ctx, articleID, commentID, &model.BlogComment{
		CustomerID: 42,
		Text:       "very nice",
	})
	require.NoError(t, err)
	require.True(t, ok)

	comments, err := svc.ListComments(ctx, articleID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "very nice", comments[0].Text)
	assert.Equal(t, int64(17), comments[0].CustomerID)

	// комментарий чужой статьи недоступен для правки
	ok, err = svc.UpdateComment(ctx, articleID+1, commentID, &model.BlogComment{Text: "x"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.DeleteComment(ctx, commentID)
	require.NoError(t, err)
	assert.True(t, ok)
}
