package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/habitflow/habitflow-api/internal/handlers"
	"github.com/habitflow/habitflow-api/internal/middleware"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)
	protected.Post("/auth/signout", handlers.SignOut)

	habits := protected.Group("/habits")
	habits.Get("/", handlers.GetHabits)
	habits.Post("/", handlers.CreateHabit)
	habits.Delete("/:id", handlers.DeleteHabit)
	habits.Post("/:id/toggle", handlers.ToggleCompletion)
	habits.Put("/:id/completion", handlers.SetCompletion)

	protected.Get("/logs/today", handlers.GetTodayLogs)
	protected.Get("/stats/today", handlers.GetTodayStats)
}
