package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mercado-api/internal/application/auth"
	"github.com/jhoicas/Mercado-api/internal/application/password"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
	"github.com/jhoicas/Mercado-api/internal/application/verification"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	VerificationUC *verification.UseCase
	PasswordUC     *password.UseCase
	AccountUC      *usecase.AccountUseCase
	ProductUC      *usecase.ProductUseCase
	CategoryUC     *usecase.CategoryUseCase
	CartUC         *usecase.CartUseCase
	OrderUC        *usecase.OrderUseCase
	ReviewUC       *usecase.ReviewUseCase

	JWTSecret    string
	CookieMaxAge time.Duration
	Sessions     repository.SessionRepository
	Accounts     repository.AccountRepository
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")
	authRequired := AuthMiddleware(deps.JWTSecret, deps.Sessions, deps.Accounts)

	authHandler := NewAuthHandler(deps.AuthUC, deps.VerificationUC, deps.CookieMaxAge)
	passwordHandler := NewPasswordHandler(deps.PasswordUC)
	accountHandler := NewAccountHandler(deps.AccountUC)
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	cartHandler := NewCartHandler(deps.CartUC)
	orderHandler := NewOrderHandler(deps.OrderUC)
	reviewHandler := NewReviewHandler(deps.ReviewUC)

	// Users: registro, sesión y recuperación de contraseña (público)
	users := api.Group("/users")
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)
	users.Post("/refresh-token", authHandler.Refresh)
	users.Get("/:id/verify/:token", authHandler.Verify)
	users.Post("/resend-verification/:id", authHandler.ResendVerification)
	users.Post("/forgot-password", passwordHandler.Forgot)
	users.Post("/verify-otp", passwordHandler.VerifyOTP)
	users.Post("/reset-password", passwordHandler.Reset)

	// Users: cuenta autenticada. Las rutas fijas van antes que /:id.
	users.Get("/suppliers", authRequired, RequireAdmin(), accountHandler.ListSuppliers)
	users.Patch("/suppliers/:id/approve", authRequired, RequireAdmin(), accountHandler.ApproveSupplier)
	users.Get("/suppliers/:id", authRequired, RequireAdmin(), accountHandler.GetByID)
	users.Get("/", authRequired, RequireAdmin(), accountHandler.List)
	users.Get("/logout/:id", authRequired, RequireSelf("id"), authHandler.Logout)
	users.Get("/:id", authRequired, RequireSelf("id"), accountHandler.GetByID)
	users.Put("/:id", authRequired, RequireSelf("id"), accountHandler.Update)
	users.Patch("/:id/password", authRequired, RequireSelf("id"), passwordHandler.Update)
	users.Delete("/:id", authRequired, RequireSelf("id"), accountHandler.Delete)

	// Products: lectura pública, escritura para proveedores (y admin)
	products := api.Group("/products")
	products.Get("/slug/:slug", productHandler.GetBySlug)
	products.Get("/:productId/reviews", reviewHandler.ListByProduct)
	products.Get("/", productHandler.List)
	products.Post("/", authRequired, RequireRole(entity.RoleSupplier, entity.RoleAdmin), productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", authRequired, RequireRole(entity.RoleSupplier, entity.RoleAdmin), productHandler.Update)
	products.Delete("/:id", authRequired, RequireRole(entity.RoleSupplier, entity.RoleAdmin), productHandler.Delete)

	// Categories: lectura pública, escritura admin
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", authRequired, RequireAdmin(), categoryHandler.Create)
	categories.Get("/:slug", categoryHandler.GetBySlug)
	categories.Put("/:slug", authRequired, RequireAdmin(), categoryHandler.Update)
	categories.Delete("/:slug", authRequired, RequireAdmin(), categoryHandler.Delete)

	// Cart: cada cuenta opera solo sobre su carrito
	cart := api.Group("/cart", authRequired)
	cart.Post("/:userId", RequireSelf("userId"), cartHandler.Save)
	cart.Put("/:userId", RequireSelf("userId"), cartHandler.Save)
	cart.Get("/:userId", RequireSelf("userId"), cartHandler.Get)
	cart.Delete("/:userId", RequireSelf("userId"), cartHandler.Delete)

	// Orders: creación y consulta autenticadas; administración admin
	orders := api.Group("/orders", authRequired)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", RequireAdmin(), orderHandler.List)
	orders.Put("/history/:historyId", RequireAdmin(), orderHandler.UpdateHistory)
	orders.Delete("/history/:historyId", RequireAdmin(), orderHandler.DeleteHistory)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/pay", orderHandler.Pay)
	orders.Put("/:id/deliver", RequireAdmin(), orderHandler.Deliver)
	orders.Delete("/:id", RequireAdmin(), orderHandler.Delete)
	orders.Post("/:id/history", RequireAdmin(), orderHandler.AddHistory)
	orders.Get("/:id/history", orderHandler.ListHistory)

	// Reviews: lectura pública; escritura autenticada
	reviews := api.Group("/reviews")
	reviews.Get("/", reviewHandler.List)
	reviews.Post("/", authRequired, reviewHandler.Create)
	reviews.Put("/comments/:commentId", authRequired, reviewHandler.UpdateComment)
	reviews.Delete("/comments/:commentId", authRequired, reviewHandler.DeleteComment)
	reviews.Post("/comments/:commentId/replies", authRequired, reviewHandler.AddReply)
	reviews.Get("/:id", reviewHandler.GetByID)
	reviews.Put("/:id", authRequired, reviewHandler.Update)
	reviews.Delete("/:id", authRequired, reviewHandler.Delete)
	reviews.Post("/:id/comments", authRequired, reviewHandler.AddComment)
	reviews.Get("/:id/comments", reviewHandler.ListComments)
}
