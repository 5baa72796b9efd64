package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/habitflow/habitflow-api/internal/ledger"
	"github.com/habitflow/habitflow-api/internal/middleware"
	"github.com/habitflow/habitflow-api/internal/models"
)

// ledgerError maps ledger errors onto HTTP responses. Backend failures
// pass their message through verbatim.
func ledgerError(c *fiber.Ctx, err error) error {
	var ve *ledger.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ve.Message,
		})
	case errors.Is(err, ledger.ErrNotAuthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Not authenticated",
		})
	case errors.Is(err, ledger.ErrHabitNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Habit not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}

func GetHabits(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	habits, err := ledger.ListActiveHabits(userID)
	if err != nil {
		return ledgerError(c, err)
	}
	if habits == nil {
		habits = []models.Habit{}
	}
	return c.JSON(habits)
}

func CreateHabit(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateHabitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	habit, err := ledger.CreateHabit(userID, req)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func DeleteHabit(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid habit ID",
		})
	}

	if err := ledger.DeleteHabit(habitID, userID); err != nil {
		return ledgerError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleCompletion flips today's check-in for a habit. The client sends
// the state it currently sees; the ledger performs the opposite action.
func ToggleCompletion(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid habit ID",
		})
	}

	var req models.ToggleCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ledger.ToggleCompletion(habitID, userID, req.IsCompletedToday); err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(fiber.Map{
		"completed": !req.IsCompletedToday,
	})
}

// SetCompletion sets today's check-in to an explicit value, idempotently.
func SetCompletion(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	habitID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid habit ID",
		})
	}

	var req models.SetCompletionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ledger.SetCompletion(habitID, userID, req.Completed); err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(fiber.Map{
		"completed": req.Completed,
	})
}

func GetTodayLogs(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	logs, err := ledger.ListTodayLogs(userID)
	if err != nil {
		return ledgerError(c, err)
	}
	if logs == nil {
		logs = []models.HabitLog{}
	}
	return c.JSON(logs)
}

// GetTodayStats returns the dashboard aggregate: habits completed
// today, total active habits, and the completion percentage.
func GetTodayStats(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	habits, err := ledger.ListActiveHabits(userID)
	if err != nil {
		return ledgerError(c, err)
	}
	logs, err := ledger.ListTodayLogs(userID)
	if err != nil {
		return ledgerError(c, err)
	}

	return c.JSON(ledger.DeriveStats(len(habits), len(logs)))
}
