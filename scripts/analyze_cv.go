package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/cv-reviewer/internal/config"
	"alfredoptarigan/cv-reviewer/internal/models"
	"alfredoptarigan/cv-reviewer/internal/services"
)

// Analyzes local CV files without the HTTP server:
//
//	go run scripts/analyze_cv.go resume.pdf other.docx
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <cv file>...", filepath.Base(os.Args[0]))
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	llmService, err := services.NewLLMService(cfg.LLM)
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s client: %v", cfg.LLM.Provider, err)
	}

	analyzer := services.NewAnalyzerService(
		services.NewDocumentExtractor(services.NewPDFParserService(), services.NewDOCXParserService()),
		llmService,
		cfg.Analysis.Concurrency,
	)

	ctx := context.Background()
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	successCount := 0
	failCount := 0

	for _, path := range os.Args[1:] {
		log.Printf("\n📄 Processing: %s", path)

		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ❌ Failed to read file: %v", err)
			failCount++
			continue
		}

		filename := filepath.Base(path)
		result, err := analyzer.Analyze(ctx, models.UploadedDocument{
			Filename: filename,
			Content:  content,
		})
		if err != nil {
			log.Printf("   ❌ Failed to analyze: %v", err)
			failCount++
			continue
		}

		if err := encoder.Encode(models.NewAnalyzeResponse(filename, result)); err != nil {
			log.Printf("   ❌ Failed to write result: %v", err)
			failCount++
			continue
		}

		successCount++
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Analysis Summary:")
	log.Printf("   ✅ Successful: %d files", successCount)
	log.Printf("   ❌ Failed: %d files", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}
