package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/news_management_app/internal/assistant"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
)

const (
	insightsTopTags = 10

	analysisSucceeded = "Content analysis completed successfully."
	analysisFailed    = "Error during content analysis."
)

// Completer is the language model behind the assistant.
type Completer interface {
	Enabled() bool
	Complete(ctx context.Context, prompt string, wantJSON bool) (string, error)
}

// assistantService implements portssvc.AssistantSvc
type assistantService struct {
	BaseService
	llm           Completer
	categories    portssvc.CategorySvcFacade
	reportingRepo portsrepo.ReportingRepository
	now           func() time.Time
}

// AssistantOption configures the assistant service.
type AssistantOption func(*assistantService)

// WithAssistantClock overrides the clock used for default insight ranges.
func WithAssistantClock(clock func() time.Time) AssistantOption {
	return func(s *assistantService) {
		s.now = clock
	}
}

// NewAssistantService creates the content assistant. categories supplies the
// active categories for suggestions; reportingRepo backs Insights.
func NewAssistantService(llm Completer, categories portssvc.CategorySvcFacade, reportingRepo portsrepo.ReportingRepository, opts ...AssistantOption) portssvc.AssistantSvc {
	s := &assistantService{
		llm:           llm,
		categories:    categories,
		reportingRepo: reportingRepo,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.AssistantSvc = (*assistantService)(nil)

// ask returns the model answer, or "" when the model is disabled or failed.
func (s *assistantService) ask(ctx context.Context, feature, prompt string, wantJSON bool) string {
	if s.llm == nil || !s.llm.Enabled() {
		return ""
	}
	answer, err := s.llm.Complete(ctx, prompt, wantJSON)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.LogWarn(ctx, "Assistant request failed, using fallback", slog.String("feature", feature), slog.String("error", err.Error()))
		}
		return ""
	}
	return answer
}

func (s *assistantService) GenerateTitle(ctx context.Context, content, existingTitle string, tone domain.Tone) (string, error) {
	if answer := s.ask(ctx, "title", assistant.TitlePrompt(content, existingTitle, tone), false); answer != "" {
		return answer, nil
	}
	return assistant.FallbackTitle(content), nil
}

func (s *assistantService) GenerateSummary(ctx context.Context, content string, tone domain.Tone) (string, error) {
	if answer := s.ask(ctx, "summary", assistant.SummaryPrompt(content, tone), false); answer != "" {
		return answer, nil
	}
	return assistant.FallbackSummary(content), nil
}

// CheckGrammar reports 0.5 confidence without a model answer and 0.7 when the answer could not be parsed.
func (s *assistantService) CheckGrammar(ctx context.Context, content string) (*domain.GrammarCheck, error) {
	answer := s.ask(ctx, "grammar", assistant.GrammarPrompt(content), true)
	if answer == "" {
		return assistant.UncheckedGrammar(content, 0.5), nil
	}
	if check, ok := assistant.ParseGrammar(answer, content); ok {
		return check, nil
	}
	s.LogWarn(ctx, "Unparseable grammar report", slog.String("answer", answer))
	return assistant.UncheckedGrammar(content, 0.7), nil
}

func (s *assistantService) GenerateTags(ctx context.Context, content, title string) ([]string, error) {
	if tags := assistant.ParseTags(s.ask(ctx, "tags", assistant.TagsPrompt(content, title), false)); len(tags) > 0 {
		return tags, nil
	}
	return assistant.Keywords(content, title), nil
}

func (s *assistantService) SuggestCategory(ctx context.Context, title, content string) (*domain.CategorySuggestion, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, nil
	}

	answer := s.ask(ctx, "category", assistant.CategoryPrompt(title, content, categories), false)
	if picked := assistant.PickCategory(answer, categories); picked != nil {
		return picked, nil
	}
	return assistant.MatchCategory(title, content, categories), nil
}

func (s *assistantService) ModerateContent(ctx context.Context, content string) (*domain.Moderation, error) {
	if s.llm == nil || !s.llm.Enabled() {
		return &domain.Moderation{Flags: []string{}, Summary: "Moderation not available."}, nil
	}
	result := assistant.ParseModeration(s.ask(ctx, "moderation", assistant.ModerationPrompt(content), false))
	return &result, nil
}

// AnalyzeContent runs the requested features concurrently. A failing feature
// leaves its field empty and turns the feedback into an error note.
func (s *assistantService) AnalyzeContent(ctx context.Context, req domain.AnalysisRequest) (*domain.Analysis, error) {
	analysis := &domain.Analysis{SuggestedTags: []string{}}
	tone := domain.NormalizeTone(string(req.Tone))

	g, gctx := errgroup.WithContext(ctx)
	if req.GenerateTitle {
		g.Go(func() (err error) {
			analysis.SuggestedTitle, err = s.GenerateTitle(gctx, req.Content, req.ExistingTitle, tone)
			return err
		})
	}
	if req.GenerateSummary {
		g.Go(func() (err error) {
			analysis.SuggestedSummary, err = s.GenerateSummary(gctx, req.Content, tone)
			return err
		})
	}
	if req.CheckGrammar {
		g.Go(func() (err error) {
			analysis.GrammarCheck, err = s.CheckGrammar(gctx, req.Content)
			return err
		})
	}
	if req.AutoTagging {
		g.Go(func() error {
			tags, err := s.GenerateTags(gctx, req.Content, req.ExistingTitle)
			if err == nil {
				analysis.SuggestedTags = tags
			}
			return err
		})
	}
	if req.SuggestCategory {
		g.Go(func() (err error) {
			analysis.SuggestedCategory, err = s.SuggestCategory(gctx, req.ExistingTitle, req.Content)
			return err
		})
	}

	analysis.Feedback = analysisSucceeded
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Content analysis failed")
		analysis.Feedback = analysisFailed
	}
	return analysis, nil
}

// Insights summarises content created in r, defaulting to the last month.
func (s *assistantService) Insights(ctx context.Context, actor domain.Actor, r domain.ReportRange) (*domain.Insights, error) {
	if err := requireAdmin(actor, "view insights"); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	to := lo.FromPtrOr(r.To, now)
	from := lo.FromPtrOr(r.From, to.AddDate(0, -1, 0))
	window := domain.ReportRange{From: &from, To: &to}

	var (
		counts     domain.StatusCounts
		categories []domain.CategoryReportRow
		tags       []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = s.reportingRepo.CountByStatus(gctx, domain.KindArticle, nil, window)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.reportingRepo.ArticlesByCategory(gctx, window)
		return err
	})
	g.Go(func() (err error) {
		tags, err = s.reportingRepo.TopTagNames(gctx, window, insightsTopTags)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to gather insights")
		return nil, fmt.Errorf("failed to gather insights: %w", err)
	}

	insights := &domain.Insights{
		From:     from,
		To:       to,
		ByStatus: lo.Ternary(counts == nil, domain.StatusCounts{}, counts),
		ByCategory: lo.SliceToMap(
			lo.Filter(categories, func(row domain.CategoryReportRow, _ int) bool { return row.CategoryName != "" }),
			func(row domain.CategoryReportRow) (string, int) { return row.CategoryName, row.Total },
		),
		TopKeywords: lo.Ternary(tags == nil, []string{}, tags),
	}

	total := insights.ByStatus.Total()
	byName := lo.MapKeys(insights.ByStatus, func(_ int, status domain.Status) string { return status.String() })
	insights.Summary = s.ask(ctx, "insights", assistant.InsightsPrompt(total, byName), false)
	if insights.Summary == "" {
		insights.Summary = fmt.Sprintf("%d articles created between %s and %s.", total, from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	return insights, nil
}
