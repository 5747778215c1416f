package model

import "time"

// BlogArticle — статья блога, всегда ссылается на существующего сотрудника.
type BlogArticle struct {
	BlogArticleID int64 `gorm:"primaryKey;autoIncrement" json:"blog_article_id"`

	Title           string    `gorm:"not null" json:"title"`
	Body            string    `json:"body"`
	PublicationDate time.Time `gorm:"not null" json:"publication_date"`
	EmployeeID      int64     `gorm:"not null;index" json:"employee_id"`
}

// BlogArticleProduct — связка статья-товар, не больше одной на пару
// (ArticleID, ProductID); уникальность обеспечивается проверкой перед вставкой.
type BlogArticleProduct struct {
	BlogArticleProductID int64 `gorm:"primaryKey;autoIncrement" json:"blog_article_product_id"`

	ArticleID int64 `gorm:"not null;index" json:"article_id"`
	ProductID int64 `gorm:"not null" json:"product_id"`
}

// BlogComment — комментарий покупателя к статье.
type BlogComment struct {
	BlogCommentID int64 `gorm:"primaryKey;autoIncrement" json:"blog_comment_id"`

	ArticleID  int64  `gorm:"not null;index" json:"article_id"`
	CustomerID int64  `gorm:"not null" json:"customer_id"`
	Text       string `gorm:"not null" json:"text"`
}
