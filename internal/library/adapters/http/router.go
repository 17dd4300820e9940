// Package http содержит маршрутизацию HTTP сервера библиотеки.
package http

import (
	"github.com/gofiber/fiber/v3"

	"libris/internal/library/adapters/http/auth"
	"libris/internal/library/adapters/http/books"
	"libris/internal/library/adapters/http/loans"
	"libris/internal/library/adapters/http/middleware"
	"libris/internal/library/adapters/http/reports"
	"libris/internal/library/adapters/http/reservations"
	"libris/internal/library/adapters/http/search"
	"libris/internal/library/adapters/http/users"
	"libris/internal/library/ports/api"
)

// UseCases объединяет сценарии, обслуживаемые HTTP сервером.
type UseCases struct {
	Auth        api.AuthUseCase
	Book        api.BookUseCase
	User        api.UserUseCase
	Loan        api.LoanUseCase
	Reservation api.ReservationUseCase
	Search      api.SearchUseCase
	Report      api.ReportUseCase
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, useCases UseCases) {
	authHandler := auth.NewHandler(useCases.Auth)
	bookHandler := books.NewHandler(useCases.Book)
	userHandler := users.NewHandler(useCases.User)
	loanHandler := loans.NewHandler(useCases.Loan)
	reservationHandler := reservations.NewHandler(useCases.Reservation)
	searchHandler := search.NewHandler(useCases.Search)
	reportHandler := reports.NewHandler(useCases.Report)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes: вход публичный, остальное - под токеном.
	authGuard := middleware.NewAuthMiddleware(useCases.Auth)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout, authGuard)
	authRoutes.Get("/me", authHandler.Me, authGuard)

	bookRoutes := apiV1.Group("/books")
	bookRoutes.Post("", bookHandler.Register)
	bookRoutes.Get("/search", searchHandler.Search)
	bookRoutes.Get("/:id", bookHandler.Get)
	bookRoutes.Post("/:id/copies", bookHandler.AddCopy)
	bookRoutes.Get("/:id/copies", bookHandler.ListCopies)

	userRoutes := apiV1.Group("/users")
	userRoutes.Post("", userHandler.Create)
	userRoutes.Get("", userHandler.Search)
	userRoutes.Get("/:id", userHandler.Get)
	userRoutes.Put("/:id", userHandler.Update)
	userRoutes.Delete("/:id", userHandler.Delete)
	userRoutes.Get("/:id/loans", userHandler.GetWithLoans)

	loanRoutes := apiV1.Group("/loans")
	loanRoutes.Post("", loanHandler.Create)
	loanRoutes.Post("/:id/return", loanHandler.Return)

	reservationRoutes := apiV1.Group("/reservations")
	reservationRoutes.Post("", reservationHandler.Create)
	reservationRoutes.Delete("/:id", reservationHandler.Cancel)

	// Отчеты доступны только сотрудникам.
	reportRoutes := apiV1.Group("/reports", authGuard)
	reportRoutes.Get("/summary", reportHandler.Summary)
	reportRoutes.Get("/popular", reportHandler.PopularBooks)
	reportRoutes.Get("/category", reportHandler.Categories)
	reportRoutes.Get("/overdue", reportHandler.Overdue)
	reportRoutes.Get("/export", reportHandler.Export)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
