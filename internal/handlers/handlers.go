package handlers

import (
	"Northwind/internal/config"
	"Northwind/internal/middleware"
	"Northwind/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	employeeService *service.EmployeeService,
	productService *service.ProductService,
	categoryService *service.CategoryService,
	bloggingService *service.BloggingService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	employeeHandler := NewEmployeeHandler(employeeService, logger)
	productHandler := NewProductHandler(productService, logger)
	categoryHandler := NewCategoryHandler(categoryService, logger)
	blogHandler := NewBlogHandler(bloggingService, employeeService, logger)

	r.Route("/api", func(r chi.Router) {
		// Employees
		r.Post("/employees", employeeHandler.Create)
		r.Get("/employees", employeeHandler.List)
		r.Get("/employees/{employeeID}", employeeHandler.Get)
		r.Put("/employees/{employeeID}", employeeHandler.Update)
		r.Delete("/employees/{employeeID}", employeeHandler.Delete)
		r.Get("/employees/{employeeID}/photo", employeeHandler.GetPhoto)
		r.Put("/employees/{employeeID}/photo", employeeHandler.PutPhoto)
		r.Delete("/employees/{employeeID}/photo", employeeHandler.DeletePhoto)

		// Products
		r.Post("/products", productHandler.Create)
		r.Get("/products", productHandler.List)
		r.Get("/products/{productID}", productHandler.Get)
		r.Put("/products/{productID}", productHandler.Update)
		r.Delete("/products/{productID}", productHandler.Delete)

		// Categories
		r.Post("/categories", categoryHandler.Create)
		r.Get("/categories", categoryHandler.List)
		r.Get("/categories/{categoryID}", categoryHandler.Get)
		r.Put("/categories/{categoryID}", categoryHandler.Update)
		r.Delete("/categories/{categoryID}", categoryHandler.Delete)
		r.Get("/categories/{categoryID}/products", categoryHandler.ListProducts(productService))
		r.Get("/categories/{categoryID}/picture", categoryHandler.GetPicture)
		r.Put("/categories/{categoryID}/picture", categoryHandler.PutPicture)
		r.Delete("/categories/{categoryID}/picture", categoryHandler.DeletePicture)

		// Blog articles
		r.Post("/articles", blogHandler.CreateArticle)
		r.Get("/articles", blogHandler.ListArticles)
		r.Get("/articles/{articleID}", blogHandler.GetArticle)
		r.Put("/articles/{articleID}", blogHandler.UpdateArticle)
		r.Delete("/articles/{articleID}", blogHandler.DeleteArticle)

		// Article-product links
		r.Post("/articles/{articleID}/products/{productID}", blogHandler.CreateProductLink)
		r.Get("/articles/{articleID}/products", blogHandler.ListProductLinks)
		r.Delete("/articles/{articleID}/products/{linkID}", blogHandler.DeleteProductLink)

		// Comments
		r.Post("/articles/{articleID}/comments", blogHandler.CreateComment)
		r.Get("/articles/{articleID}/comments", blogHandler.ListComments)
		r.Put("/articles/{articleID}/comments/{commentID}", blogHandler.UpdateComment)
		r.Delete("/articles/{articleID}/comments/{commentID}", blogHandler.DeleteComment)
	})

	return &Handler{Router: r}
}
