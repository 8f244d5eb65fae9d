package dto

import (
	"time"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// ContentRequest carries the text an assistant feature works on.
type ContentRequest struct {
	Content string `json:"content" binding:"required,max=50000"`
	Title   string `json:"title" binding:"max=400"`
	Tone    string `json:"tone" binding:"omitempty,tone"`
}

// AnalyzeRequest selects the assistant features to run.
type AnalyzeRequest struct {
	ContentRequest
	GenerateTitle   bool `json:"generateTitle"`
	GenerateSummary bool `json:"generateSummary"`
	CheckGrammar    bool `json:"checkGrammar"`
	AutoTagging     bool `json:"autoTagging"`
	SuggestCategory bool `json:"suggestCategory"`
}

// ToDomain converts the request.
func (r AnalyzeRequest) ToDomain() domain.AnalysisRequest {
	return domain.AnalysisRequest{
		Content:         r.Content,
		ExistingTitle:   r.Title,
		GenerateTitle:   r.GenerateTitle,
		GenerateSummary: r.GenerateSummary,
		CheckGrammar:    r.CheckGrammar,
		AutoTagging:     r.AutoTagging,
		SuggestCategory: r.SuggestCategory,
		Tone:            domain.NormalizeTone(r.Tone),
	}
}

// TextResponse wraps a generated text.
type TextResponse struct {
	Text string `json:"text"`
}

// TagsResponse wraps generated tags.
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// InsightsResponse is the assistant overview of recent content.
type InsightsResponse struct {
	From        time.Time            `json:"from"`
	To          time.Time            `json:"to"`
	ByStatus    StatusCountsResponse `json:"byStatus"`
	ByCategory  map[string]int       `json:"byCategory"`
	TopKeywords []string             `json:"topKeywords"`
	Summary     string               `json:"summary"`
}

// ToInsightsResponse converts insights.
func ToInsightsResponse(i *domain.Insights) InsightsResponse {
	return InsightsResponse{
		From:        i.From,
		To:          i.To,
		ByStatus:    ToStatusCountsResponse(i.ByStatus),
		ByCategory:  i.ByCategory,
		TopKeywords: i.TopKeywords,
		Summary:     i.Summary,
	}
}

// ImageUploadResponse returns the public URL of a stored image.
type ImageUploadResponse struct {
	URL string `json:"url"`
}
