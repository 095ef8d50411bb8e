package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-reviewer/internal/models"
	"alfredoptarigan/cv-reviewer/internal/services"
)

// requestIDLocal is where fiber's requestid middleware stores the ID.
const requestIDLocal = "requestid"

type AnalyzeHandler struct {
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(analyzer services.AnalyzerService, maxFileSize int64) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze-cv
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file part")
	}

	if fileHeader.Filename == "" {
		return fiber.NewError(fiber.StatusBadRequest, "No selected file")
	}

	if fileHeader.Size > h.maxFileSize {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to open uploaded file: %v", err))
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("failed to read uploaded file: %v", err))
	}

	requestID, _ := c.Locals(requestIDLocal).(string)
	ctx := services.WithRequestID(c.UserContext(), requestID)

	result, err := h.analyzer.Analyze(ctx, models.UploadedDocument{
		Filename: fileHeader.Filename,
		Content:  content,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(models.NewAnalyzeResponse(fileHeader.Filename, result))
}

// toHTTPError maps analysis failures to client (400) or server (500) errors.
func toHTTPError(err error) *fiber.Error {
	var extractionErr *services.ExtractionError

	switch {
	case errors.Is(err, services.ErrNoFile),
		errors.Is(err, services.ErrUnsupportedFormat),
		errors.Is(err, services.ErrEmptyText):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.As(err, &extractionErr):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("❌ Analysis failed: %v\n", err)
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
