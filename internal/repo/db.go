package repo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Northwind/internal/model"
)

// InitDB открывает соединение и прогоняет automigrate по всем моделям.
// DSN с префиксом postgres:// уходит в драйвер postgres, всё остальное
// трактуется как путь к файлу SQLite.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if len(dsn) >= 8 && dsn[:8] == "postgres" {
		dial = postgres.Open(dsn)
	} else {
		dial = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Employee{},
		&model.Product{},
		&model.Category{},
		&model.BlogArticle{},
		&model.BlogArticleProduct{},
		&model.BlogComment{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return db, nil
}
