package assistant_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/news_management_app/internal/assistant"
	"github.com/SscSPs/news_management_app/internal/core/domain"
)

func TestFallbackTitle(t *testing.T) {
	content := "one two three four five six seven eight nine ten eleven twelve"
	assert.Equal(t, "one two three four five six seven eight nine ten...", assistant.FallbackTitle(content))
	assert.Equal(t, "short text...", assistant.FallbackTitle("short text"))
	assert.Empty(t, assistant.FallbackTitle("   "))
}

func TestFallbackSummary(t *testing.T) {
	content := "First sentence. Second sentence.  Third sentence."
	assert.Equal(t, "First sentence. Second sentence.", assistant.FallbackSummary(content))
	assert.Equal(t, "Only one.", assistant.FallbackSummary("Only one"))
	assert.Empty(t, assistant.FallbackSummary(" . . "))
}

func TestKeywords(t *testing.T) {
	got := assistant.Keywords("The economy grows while markets rally, markets cheer. Analysts were being careful.", "Economy update")

	assert.Equal(t, []string{"economy", "update", "grows", "while", "markets", "rally", "cheer"}, got)
	for _, w := range got {
		assert.Greater(t, len(w), 4)
		assert.Equal(t, strings.ToLower(w), w)
	}
	assert.NotContains(t, got, "being")
}

func TestKeywords_AtMostSeven(t *testing.T) {
	got := assistant.Keywords("alpha1 alpha2 alpha3 alpha4 alpha5 alpha6 alpha7 alpha8 alpha9", "")
	assert.Len(t, got, 7)
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"politics", "election", "vote"}, assistant.ParseTags(` politics, "election",, #vote `))
	assert.Len(t, assistant.ParseTags("a,b,c,d,e,f,g,h,i"), 7)
	assert.Empty(t, assistant.ParseTags(" , "))
}

func TestMatchCategory(t *testing.T) {
	categories := []domain.Category{
		{CategoryID: 1, Name: "World"},
		{CategoryID: 2, Name: "Sports"},
	}

	got := assistant.MatchCategory("Cup final", "A thrilling night for sports fans", categories)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.CategoryID)
	assert.Equal(t, 0.6, got.ConfidenceScore)

	got = assistant.MatchCategory("Weather", "Rain tomorrow", categories)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.CategoryID)
	assert.Equal(t, 0.3, got.ConfidenceScore)

	assert.Nil(t, assistant.MatchCategory("x", "y", nil))
}

func TestPickCategory(t *testing.T) {
	categories := []domain.Category{{CategoryID: 4, Name: "Tech"}}

	got := assistant.PickCategory(" 4. ", categories)
	require.NotNil(t, got)
	assert.Equal(t, "Tech", got.CategoryName)
	assert.Equal(t, 0.85, got.ConfidenceScore)

	assert.Nil(t, assistant.PickCategory("9", categories))
	assert.Nil(t, assistant.PickCategory("Tech", categories))
}

func TestParseModeration(t *testing.T) {
	flagged := assistant.ParseModeration("FLAGGED: spam links")
	assert.True(t, flagged.IsFlagged)
	assert.Equal(t, 0.7, flagged.RiskScore)

	safe := assistant.ParseModeration("SAFE - news report")
	assert.False(t, safe.IsFlagged)
	assert.Equal(t, 0.1, safe.RiskScore)

	empty := assistant.ParseModeration("  ")
	assert.Equal(t, "Unable to analyze.", empty.Summary)
	assert.Zero(t, empty.RiskScore)
}

func TestParseGrammar(t *testing.T) {
	answer := `Here you go: {"hasIssues": false, "correctedContent": "Fixed text", "issues": [{"position": 3, "issueType": "spelling", "message": "typo", "suggestion": "the"}]}`

	check, ok := assistant.ParseGrammar(answer, "Original")
	require.True(t, ok)
	assert.True(t, check.HasIssues)
	assert.Equal(t, "Fixed text", check.CorrectedContent)
	require.Len(t, check.Issues, 1)
	assert.Equal(t, 3, check.Issues[0].Position)
	assert.Equal(t, "spelling", check.Issues[0].IssueType)
	assert.Equal(t, 0.9, check.ConfidenceScore)

	_, ok = assistant.ParseGrammar("looks fine to me", "Original")
	assert.False(t, ok)

	check, ok = assistant.ParseGrammar(`{"hasIssues": false}`, "Original")
	require.True(t, ok)
	assert.Equal(t, "Original", check.CorrectedContent)
	assert.Empty(t, check.Issues)
}

func TestPrompts(t *testing.T) {
	long := strings.Repeat("x", 2000)

	assert.Contains(t, assistant.TitlePrompt(long, "Old", domain.ToneCasual), "casual news article title")
	assert.Contains(t, assistant.TitlePrompt(long, "Old", domain.ToneCasual), "Current title: Old.")
	assert.NotContains(t, assistant.TitlePrompt("c", "", domain.ToneFormal), "Current title")
	assert.Less(t, len(assistant.SummaryPrompt(long, domain.ToneFormal)), 1400)

	prompt := assistant.CategoryPrompt("t", "c", []domain.Category{{CategoryID: 1, Name: "World"}, {CategoryID: 2, Name: "Tech"}})
	assert.Contains(t, prompt, "1:World, 2:Tech")

	insights := assistant.InsightsPrompt(3, map[string]int{"Published": 2, "Draft": 1})
	assert.Equal(t, "Summarize these insights: 3 articles, statuses: Draft=1, Published=2", insights)
}
