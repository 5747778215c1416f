package main

import (
	"net/http"

	"go.uber.org/zap"

	"Northwind/internal/config"
	"Northwind/internal/handlers"
	"Northwind/internal/middleware"
	"Northwind/internal/repo"
	"Northwind/internal/repo/memory"
	"Northwind/internal/service"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	// Репозитории: БД при заданном DSN, иначе in-memory
	var (
		employeeRepo repo.EmployeeRepository
		productRepo  repo.ProductRepository
		categoryRepo repo.CategoryRepository
		blogRepo     repo.BlogRepository
	)
	if cfg.DatabaseDSN != "" {
		gormDB, err := repo.InitDB(cfg.DatabaseDSN)
		if err != nil {
			sugar.Fatalw("failed to initialize database", "error", err)
		}
		employeeRepo = repo.NewEmployeeRepository(gormDB)
		productRepo = repo.NewProductRepository(gormDB)
		categoryRepo = repo.NewCategoryRepository(gormDB)
		blogRepo = repo.NewBlogRepository(gormDB)
	} else {
		sugar.Infow("DATABASE_URI is empty, using in-memory stores")
		employeeRepo = memory.NewEmployeeStore()
		productRepo = memory.NewProductStore()
		categoryRepo = memory.NewCategoryStore()
		blogRepo = memory.NewBlogStore()
	}

	employeeService := service.NewEmployeeService(employeeRepo)
	productService := service.NewProductService(productRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	bloggingService := service.NewBloggingService(blogRepo)

	h := handlers.NewHandler(employeeService, productService, categoryService, bloggingService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
