// Package router builds the echo instance: global middleware, the error
// handler and every route group.
package router

import (
	"net/http"

	"github.com/deppfellow/geology-api/internal/handler"
	"github.com/deppfellow/geology-api/internal/middleware"
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/deppfellow/geology-api/internal/server"
	"github.com/deppfellow/geology-api/internal/service"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s, services.Auth)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Clients may call /v1/products/ or /v1/products.
	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middlewares.Global.BodyLimit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)

	limited := middlewares.RateLimit.Limit()
	router.POST("/orders", createOrder(h), limited)

	v1 := router.Group("/v1")
	registerV1Routes(v1, h, middlewares.Auth.Staff(), limited)

	return router
}

func createOrder(h *handler.Handlers) echo.HandlerFunc {
	return handler.Handle(h.Order.Handler, h.Order.Create, http.StatusCreated, &model.CreateOrderRequest{})
}

// registerV1Routes mounts the public API. Reads are public; catalog writes
// need a staff session; contact and orders are public but rate limited.
func registerV1Routes(v1 *echo.Group, h *handler.Handlers, staff []echo.MiddlewareFunc, limited echo.MiddlewareFunc) {
	v1.POST("/contact", handler.Handle(h.Contact.Handler, h.Contact.Create, http.StatusCreated, &model.CreateContactMessageRequest{}), limited)
	v1.POST("/orders", createOrder(h), limited)

	categories := v1.Group("/categories")
	categories.GET("", handler.Handle(h.Category.Handler, h.Category.List, http.StatusOK, &model.ListCategoriesRequest{}))
	categories.GET("/:id", handler.Handle(h.Category.Handler, h.Category.Get, http.StatusOK, &model.CategoryRequest{}))
	categories.GET("/:id/products", handler.Handle(h.Category.Handler, h.Category.Products, http.StatusOK, &model.CategoryRequest{}))
	categories.GET("/:id/filters", handler.Handle(h.Category.Handler, h.Category.Filters, http.StatusOK, &model.CategoryFiltersRequest{}))
	categories.POST("", handler.Handle(h.Category.Handler, h.Category.Create, http.StatusCreated, &model.CreateCategoryRequest{}), staff...)
	updateCategory := handler.Handle(h.Category.Handler, h.Category.Update, http.StatusOK, &model.UpdateCategoryRequest{})
	categories.PUT("/:id", updateCategory, staff...)
	categories.PATCH("/:id", updateCategory, staff...)
	categories.DELETE("/:id", handler.HandleNoContent(h.Category.Handler, h.Category.Delete, http.StatusNoContent, &model.CategoryRequest{}), staff...)

	products := v1.Group("/products")
	products.GET("", handler.Handle(h.Product.Handler, h.Product.List, http.StatusOK, &model.ListProductsRequest{}))
	products.GET("/filters", handler.Handle(h.Product.Handler, h.Product.Filters, http.StatusOK, &model.ProductFiltersRequest{}))
	products.GET("/:id", handler.Handle(h.Product.Handler, h.Product.Get, http.StatusOK, &model.ProductRequest{}))
	products.POST("", handler.Handle(h.Product.Handler, h.Product.Create, http.StatusCreated, &model.CreateProductRequest{}), staff...)
	updateProduct := handler.Handle(h.Product.Handler, h.Product.Update, http.StatusOK, &model.UpdateProductRequest{})
	products.PUT("/:id", updateProduct, staff...)
	products.PATCH("/:id", updateProduct, staff...)
	products.DELETE("/:id", handler.HandleNoContent(h.Product.Handler, h.Product.Delete, http.StatusNoContent, &model.ProductRequest{}), staff...)

	productImages := v1.Group("/product-images")
	productImages.GET("", handler.Handle(h.ProductImage.Handler, h.ProductImage.List, http.StatusOK, &model.ListProductImagesRequest{}))
	productImages.GET("/:id", handler.Handle(h.ProductImage.Handler, h.ProductImage.Get, http.StatusOK, &model.ImageRequest{}))
	productImages.POST("", handler.Handle(h.ProductImage.Handler, h.ProductImage.Create, http.StatusCreated, &model.CreateProductImageRequest{}), staff...)
	updateProductImage := handler.Handle(h.ProductImage.Handler, h.ProductImage.Update, http.StatusOK, &model.UpdateProductImageRequest{})
	productImages.PUT("/:id", updateProductImage, staff...)
	productImages.PATCH("/:id", updateProductImage, staff...)
	productImages.DELETE("/:id", handler.HandleNoContent(h.ProductImage.Handler, h.ProductImage.Delete, http.StatusNoContent, &model.ImageRequest{}), staff...)

	sales := v1.Group("/sale-items")
	sales.GET("", handler.Handle(h.Sale.Handler, h.Sale.List, http.StatusOK, &model.ListSaleItemsRequest{}))
	sales.GET("/:slug", handler.Handle(h.Sale.Handler, h.Sale.Get, http.StatusOK, &model.SaleItemRequest{}))
	sales.POST("", handler.Handle(h.Sale.Handler, h.Sale.Create, http.StatusCreated, &model.CreateSaleItemRequest{}), staff...)
	updateSale := handler.Handle(h.Sale.Handler, h.Sale.Update, http.StatusOK, &model.UpdateSaleItemRequest{})
	sales.PUT("/:slug", updateSale, staff...)
	sales.PATCH("/:slug", updateSale, staff...)
	sales.DELETE("/:slug", handler.HandleNoContent(h.Sale.Handler, h.Sale.Delete, http.StatusNoContent, &model.SaleItemRequest{}), staff...)

	saleImages := v1.Group("/sale-item-images")
	saleImages.GET("", handler.Handle(h.SaleItemImage.Handler, h.SaleItemImage.List, http.StatusOK, &model.ListSaleItemImagesRequest{}))
	saleImages.GET("/:id", handler.Handle(h.SaleItemImage.Handler, h.SaleItemImage.Get, http.StatusOK, &model.ImageRequest{}))
	saleImages.POST("", handler.Handle(h.SaleItemImage.Handler, h.SaleItemImage.Create, http.StatusCreated, &model.CreateSaleItemImageRequest{}), staff...)
	updateSaleImage := handler.Handle(h.SaleItemImage.Handler, h.SaleItemImage.Update, http.StatusOK, &model.UpdateSaleItemImageRequest{})
	saleImages.PUT("/:id", updateSaleImage, staff...)
	saleImages.PATCH("/:id", updateSaleImage, staff...)
	saleImages.DELETE("/:id", handler.HandleNoContent(h.SaleItemImage.Handler, h.SaleItemImage.Delete, http.StatusNoContent, &model.ImageRequest{}), staff...)

	employees := v1.Group("/employees")
	employees.GET("", handler.Handle(h.Employee.Handler, h.Employee.List, http.StatusOK, &model.ListEmployeesRequest{}))
	employees.GET("/:id", handler.Handle(h.Employee.Handler, h.Employee.Get, http.StatusOK, &model.EmployeeRequest{}))
	employees.POST("", handler.Handle(h.Employee.Handler, h.Employee.Create, http.StatusCreated, &model.CreateEmployeeRequest{}), staff...)
	updateEmployee := handler.Handle(h.Employee.Handler, h.Employee.Update, http.StatusOK, &model.UpdateEmployeeRequest{})
	employees.PUT("/:id", updateEmployee, staff...)
	employees.PATCH("/:id", updateEmployee, staff...)
	employees.DELETE("/:id", handler.HandleNoContent(h.Employee.Handler, h.Employee.Delete, http.StatusNoContent, &model.EmployeeRequest{}), staff...)
}
