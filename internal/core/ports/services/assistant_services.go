package services

import (
	"context"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// AssistantSvc offers advisory content suggestions. Results never feed authorization.
// Every operation degrades to a local heuristic when the model is unavailable.
type AssistantSvc interface {
	GenerateTitle(ctx context.Context, content, existingTitle string, tone domain.Tone) (string, error)
	GenerateSummary(ctx context.Context, content string, tone domain.Tone) (string, error)
	CheckGrammar(ctx context.Context, content string) (*domain.GrammarCheck, error)
	GenerateTags(ctx context.Context, content, title string) ([]string, error)

	// SuggestCategory picks one of the active categories, or nil when none exist.
	SuggestCategory(ctx context.Context, title, content string) (*domain.CategorySuggestion, error)
	ModerateContent(ctx context.Context, content string) (*domain.Moderation, error)

	// AnalyzeContent runs the requested features concurrently.
	AnalyzeContent(ctx context.Context, req domain.AnalysisRequest) (*domain.Analysis, error)

	// Insights summarises content created in r. Admin only.
	Insights(ctx context.Context, actor domain.Actor, r domain.ReportRange) (*domain.Insights, error)
}
