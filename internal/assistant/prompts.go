package assistant

import (
	"fmt"
	"strings"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// TitlePrompt asks for a single title in tone.
func TitlePrompt(content, existingTitle string, tone domain.Tone) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s news article title based on this content. ", tone)
	if existingTitle != "" {
		fmt.Fprintf(&b, "Current title: %s. ", existingTitle)
	}
	fmt.Fprintf(&b, "Content: %s. ", truncate(content, 1000))
	b.WriteString("Respond with only the title, no additional text.")
	return b.String()
}

// SummaryPrompt asks for a two to three sentence summary.
func SummaryPrompt(content string, tone domain.Tone) string {
	return fmt.Sprintf("Generate a %s summary (2-3 sentences) for this news article: %s. "+
		"Respond with only the summary, no additional text.", tone, truncate(content, 1200))
}

// GrammarPrompt asks for a JSON grammar report.
func GrammarPrompt(content string) string {
	return "Check grammar and spelling in this text. If there are errors, provide corrections. " +
		fmt.Sprintf("Text: %s. ", truncate(content, 1000)) +
		`Respond with JSON format: {"hasIssues": true/false, "correctedContent": "...", ` +
		`"issues": [{"position": 0, "issueType": "spelling", "message": "...", "suggestion": "..."}]}`
}

// TagsPrompt asks for comma separated tags.
func TagsPrompt(content, title string) string {
	var b strings.Builder
	b.WriteString("Generate 5-7 relevant tags (keywords) for this news article. ")
	if title != "" {
		fmt.Fprintf(&b, "Title: %s. ", title)
	}
	fmt.Fprintf(&b, "Content: %s. ", truncate(content, 800))
	b.WriteString("Respond with only the tags separated by commas, no additional text.")
	return b.String()
}

// CategoryPrompt asks for one category id out of categories.
func CategoryPrompt(title, content string, categories []domain.Category) string {
	options := make([]string, len(categories))
	for i, c := range categories {
		options[i] = fmt.Sprintf("%d:%s", c.CategoryID, c.Name)
	}
	return fmt.Sprintf("Based on this news article, suggest the most appropriate category ID from this list: %s. "+
		"Title: %s. Content: %s. Respond with only the category ID number.",
		strings.Join(options, ", "), title, truncate(content, 500))
}

// ModerationPrompt asks for a SAFE or FLAGGED verdict.
func ModerationPrompt(content string) string {
	return "Analyze this content for inappropriate language, spam, or harmful content. " +
		"Respond with 'SAFE' or 'FLAGGED' followed by a brief reason: " + truncate(content, 800)
}

// InsightsPrompt asks for a one paragraph summary of the workflow counts.
func InsightsPrompt(total int, byStatus map[string]int) string {
	parts := make([]string, 0, len(byStatus))
	for _, status := range []domain.Status{
		domain.StatusDraft, domain.StatusPending, domain.StatusApproved, domain.StatusPublished, domain.StatusArchived,
	} {
		if n, ok := byStatus[status.String()]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", status, n))
		}
	}
	return fmt.Sprintf("Summarize these insights: %d articles, statuses: %s", total, strings.Join(parts, ", "))
}
