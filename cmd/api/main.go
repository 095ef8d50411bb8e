package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/cv-reviewer/internal/config"
	"alfredoptarigan/cv-reviewer/internal/handlers"
	"alfredoptarigan/cv-reviewer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize LLM
	llmService, err := services.NewLLMService(cfg.LLM)
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s client: %v", cfg.LLM.Provider, err)
	}
	log.Printf("✅ %s client initialized (model %s)\n", cfg.LLM.Provider, cfg.LLM.Model)

	// Initialize services
	extractor := services.NewDocumentExtractor(
		services.NewPDFParserService(),
		services.NewDOCXParserService(),
	)
	analyzerService := services.NewAnalyzerService(
		extractor,
		llmService,
		cfg.Analysis.Concurrency,
	)
	log.Println("✅ Services initialized successfully")

	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, cfg.Upload.MaxFileSize)

	// Leave room for the multipart envelope around a max-size file
	bodyLimit := int(cfg.Upload.MaxFileSize) + 1<<20

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CV Reviewer API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    bodyLimit,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.New().String()
		},
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	handlers.RegisterRoutes(app, analyzeHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
