package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/cv-reviewer/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, doc models.UploadedDocument) (*models.AnalysisResult, error)
}

type analyzerService struct {
	extractor     DocumentExtractor
	llmService    LLMService
	promptBuilder *PromptBuilder
	concurrency   int
}

func NewAnalyzerService(
	extractor DocumentExtractor,
	llmService LLMService,
	concurrency int,
) AnalyzerService {
	if concurrency <= 0 {
		concurrency = 1
	}

	return &analyzerService{
		extractor:     extractor,
		llmService:    llmService,
		promptBuilder: NewPromptBuilder(),
		concurrency:   concurrency,
	}
}

func (a *analyzerService) Analyze(ctx context.Context, doc models.UploadedDocument) (*models.AnalysisResult, error) {
	if doc.Filename == "" {
		return nil, ErrNoFile
	}

	analysisID, ok := RequestIDFromContext(ctx)
	if !ok {
		analysisID = uuid.New().String()
	}
	log.Printf("🔄 Starting analysis %s for %q (%d bytes)\n", analysisID, doc.Filename, len(doc.Content))

	// Step 1: Extract text
	cvText, err := a.extractor.Extract(doc.Content, doc.Filename)
	if err != nil {
		log.Printf("❌ Analysis %s: extraction failed: %v\n", analysisID, err)
		return nil, err
	}
	if strings.TrimSpace(cvText) == "" {
		log.Printf("⚠️  Analysis %s: no text extracted\n", analysisID)
		return nil, ErrEmptyText
	}
	log.Printf("📄 Analysis %s: extracted %d characters\n", analysisID, len(cvText))

	// Step 2: Run completions
	completions, err := a.complete(ctx, cvText)
	if err != nil {
		log.Printf("❌ Analysis %s: %v\n", analysisID, err)
		return nil, err
	}

	// Step 3: Assemble
	result := &models.AnalysisResult{
		CandidateName: strings.TrimSpace(completions[TaskName]),
		Summary:       completions[TaskSummary],
		Skills:        completions[TaskSkills],
		Feedback:      completions[TaskFeedback],
		Scores:        ParseScores(completions[TaskScores]),
	}

	log.Printf("✅ Analysis %s completed\n", analysisID)
	return result, nil
}

// complete fans the five prompts out and returns their completions keyed by
// task. The first failure cancels the rest and is the only error reported.
func (a *analyzerService) complete(ctx context.Context, cvText string) (map[Task]string, error) {
	tasks := Tasks()
	outputs := make([]string, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, task := range tasks {
		g.Go(func() error {
			text, err := a.llmService.Complete(gctx, a.promptBuilder.Build(task, cvText))
			if err != nil {
				return &CompletionError{Task: task, Err: err}
			}
			outputs[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	completions := make(map[Task]string, len(tasks))
	for i, task := range tasks {
		completions[task] = outputs[i]
	}
	return completions, nil
}
