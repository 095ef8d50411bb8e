package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-reviewer/internal/models"
)

const WelcomeMessage = "Welcome to CV Reviewer API"

// HandleRoot handles GET /
func HandleRoot(c *fiber.Ctx) error {
	return c.JSON(models.WelcomeResponse{Message: WelcomeMessage})
}

// HandleHealth handles GET /health
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// ErrorHandler renders every error returned by a handler as {"error", "code"}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}

// RegisterRoutes mounts the API on app.
func RegisterRoutes(app *fiber.App, analyzeHandler *AnalyzeHandler) {
	app.Get("/", HandleRoot)
	app.Get("/health", HandleHealth)
	app.Post("/analyze-cv", analyzeHandler.HandleAnalyze)
}
