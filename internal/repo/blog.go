package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Northwind/internal/model"
)

// BlogRepository — контракт доступа к статьям, связкам с товарами и комментариям.
type BlogRepository interface {
	InsertArticle(ctx context.Context, a *model.BlogArticle) (int64, error)
	FindArticleByID(ctx context.Context, id int64) (*model.BlogArticle, error)
	ListArticlesFrom(ctx context.Context, fromID int64, limit int) ([]model.BlogArticle, error)
	SaveArticle(ctx context.Context, a *model.BlogArticle) error
	DeleteArticle(ctx context.Context, id int64) error

	// LinkExists сообщает, есть ли уже связка (articleID, productID).
	LinkExists(ctx context.Context, articleID, productID int64) (bool, error)
	InsertLink(ctx context.Context, l *model.BlogArticleProduct) (int64, error)
	ListLinks(ctx context.Context, articleID int64) ([]model.BlogArticleProduct, error)
	DeleteLink(ctx context.Context, linkID int64) error

	InsertComment(ctx context.Context, c *model.BlogComment) (int64, error)
	FindComment(ctx context.Context, articleID, commentID int64) (*model.BlogComment, error)
	ListComments(ctx context.Context, articleID int64) ([]model.BlogComment, error)
	SaveComment(ctx context.Context, c *model.BlogComment) error
	DeleteComment(ctx context.Context, commentID int64) error
}

type blogRepo struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepo{db: db}
}

func (r *blogRepo) InsertArticle(ctx context.Context, a *model.BlogArticle) (int64, error) {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return 0, err
	}
	return a.BlogArticleID, nil
}

func (r *blogRepo) FindArticleByID(ctx context.Context, id int64) (*model.BlogArticle, error) {
	var a model.BlogArticle
	err := r.db.WithContext(ctx).First(&a, "blog_article_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *blogRepo) ListArticlesFrom(ctx context.Context, fromID int64, limit int) ([]model.BlogArticle, error) {
	var out []model.BlogArticle
	err := r.db.WithContext(ctx).
		Where("blog_article_id >= ?", fromID).
		Order("blog_article_id").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *blogRepo) SaveArticle(ctx context.Context, a *model.BlogArticle) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *blogRepo) DeleteArticle(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.BlogArticle{}, "blog_article_id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *blogRepo) LinkExists(ctx context.Context, articleID, productID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.BlogArticleProduct{}).
		Where("article_id = ? AND product_id = ?", articleID, productID).
		Count(&n).Error
	return n > 0, err
}

func (r *blogRepo) InsertLink(ctx context.Context, l *model.BlogArticleProduct) (int64, error) {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return 0, err
	}
	return l.BlogArticleProductID, nil
}

func (r *blogRepo) ListLinks(ctx context.Context, articleID int64) ([]model.BlogArticleProduct, error) {
	var out []model.BlogArticleProduct
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("blog_article_product_id").
		Find(&out).Error
	return out, err
}

func (r *blogRepo) DeleteLink(ctx context.Context, linkID int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.BlogArticleProduct{}, "blog_article_product_id = ?", linkID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *blogRepo) InsertComment(ctx context.Context, c *model.BlogComment) (int64, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return 0, err
	}
	return c.BlogCommentID, nil
}

func (r *blogRepo) FindComment(ctx context.Context, articleID, commentID int64) (*model.BlogComment, error) {
	var c model.BlogComment
	err := r.db.WithContext(ctx).
		First(&c, "article_id = ? AND blog_comment_id = ?", articleID, commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *blogRepo) ListComments(ctx context.Context, articleID int64) ([]model.BlogComment, error) {
	var out []model.BlogComment
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("blog_comment_id").
		Find(&out).Error
	return out, err
}

func (r *blogRepo) SaveComment(ctx context.Context, c *model.BlogComment) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *blogRepo) DeleteComment(ctx context.Context, commentID int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.BlogComment{}, "blog_comment_id = ?", commentID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
