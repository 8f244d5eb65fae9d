package domain

// Tone steers generated text. Unknown tones fall back to ToneFormal.
type Tone string

const (
	ToneFormal   Tone = "formal"
	ToneAcademic Tone = "academic"
	ToneCasual   Tone = "casual"
)

// NormalizeTone maps free input onto a supported tone.
func NormalizeTone(raw string) Tone {
	switch Tone(raw) {
	case ToneFormal, ToneAcademic, ToneCasual:
		return Tone(raw)
	}
	return ToneFormal
}

// GrammarIssue is a single finding of a grammar check.
type GrammarIssue struct {
	Position   int    `json:"position"`
	IssueType  string `json:"issueType"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// GrammarCheck is the outcome of a grammar check.
type GrammarCheck struct {
	HasIssues        bool           `json:"hasIssues"`
	Issues           []GrammarIssue `json:"issues"`
	CorrectedContent string         `json:"correctedContent"`
	ConfidenceScore  float64        `json:"confidenceScore"`
}

// CategorySuggestion proposes one of the active categories.
type CategorySuggestion struct {
	CategoryID      int     `json:"categoryID"`
	CategoryName    string  `json:"categoryName"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

// Moderation is an advisory content screening result.
type Moderation struct {
	IsFlagged bool     `json:"isFlagged"`
	RiskScore float64  `json:"riskScore"`
	Flags     []string `json:"flags"`
	Summary   string   `json:"summary"`
}

// AnalysisRequest selects the assistant features to run over one text.
type AnalysisRequest struct {
	Content         string
	ExistingTitle   string
	GenerateTitle   bool
	GenerateSummary bool
	CheckGrammar    bool
	AutoTagging     bool
	SuggestCategory bool
	Tone            Tone
}

// Analysis aggregates the outcome of every requested feature.
type Analysis struct {
	SuggestedTitle    string              `json:"suggestedTitle,omitempty"`
	SuggestedSummary  string              `json:"suggestedSummary,omitempty"`
	GrammarCheck      *GrammarCheck       `json:"grammarCheck,omitempty"`
	SuggestedTags     []string            `json:"suggestedTags"`
	SuggestedCategory *CategorySuggestion `json:"suggestedCategory,omitempty"`
	Feedback          string              `json:"feedback"`
}
