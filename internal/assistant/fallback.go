package assistant

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/SscSPs/news_management_app/internal/core/domain"
)

const (
	maxTags         = 7
	titleWords      = 10
	summarySentence = 2
)

var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "from": {}, "as": {}, "is": {}, "was": {},
	"are": {}, "were": {}, "be": {}, "been": {}, "being": {},
}

// FallbackTitle is the first ten words of content followed by an ellipsis.
func FallbackTitle(content string) string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return ""
	}
	if len(words) > titleWords {
		words = words[:titleWords]
	}
	return strings.Join(words, " ") + "..."
}

// FallbackSummary is the first two sentences of content.
func FallbackSummary(content string) string {
	sentences := lo.FilterMap(strings.Split(content, "."), func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
	if len(sentences) == 0 {
		return ""
	}
	if len(sentences) > summarySentence {
		sentences = sentences[:summarySentence]
	}
	return strings.Join(sentences, ". ") + "."
}

// Keywords picks distinct lowercase words longer than four characters that are not stopwords.
func Keywords(content, title string) []string {
	text := strings.ToLower(strings.TrimSpace(title + " " + content))
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !(r == '-' || r == '\'' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r > 127)
	})
	candidates := lo.Filter(words, func(w string, _ int) bool {
		_, stop := stopwords[w]
		return len([]rune(w)) > 4 && !stop
	})
	return lo.Slice(lo.Uniq(candidates), 0, maxTags)
}

// ParseTags splits a comma separated model answer, keeping at most seven tags.
func ParseTags(answer string) []string {
	tags := lo.FilterMap(strings.Split(answer, ","), func(t string, _ int) (string, bool) {
		t = strings.Trim(strings.TrimSpace(t), `"'#`)
		return t, t != ""
	})
	return lo.Slice(tags, 0, maxTags)
}

// MatchCategory suggests a category without the model: the first whose name
// occurs in title or content scores 0.6, otherwise the first category scores 0.3.
func MatchCategory(title, content string, categories []domain.Category) *domain.CategorySuggestion {
	if len(categories) == 0 {
		return nil
	}
	text := strings.ToLower(title + " " + content)
	match, found := lo.Find(categories, func(c domain.Category) bool {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		return name != "" && strings.Contains(text, name)
	})
	if found {
		return &domain.CategorySuggestion{CategoryID: match.CategoryID, CategoryName: match.Name, ConfidenceScore: 0.6}
	}
	first := categories[0]
	return &domain.CategorySuggestion{CategoryID: first.CategoryID, CategoryName: first.Name, ConfidenceScore: 0.3}
}

// PickCategory resolves a model answer holding a category id.
func PickCategory(answer string, categories []domain.Category) *domain.CategorySuggestion {
	id, err := strconv.Atoi(strings.TrimSpace(strings.Trim(strings.TrimSpace(answer), ".")))
	if err != nil {
		return nil
	}
	match, found := lo.Find(categories, func(c domain.Category) bool { return c.CategoryID == id })
	if !found {
		return nil
	}
	return &domain.CategorySuggestion{CategoryID: match.CategoryID, CategoryName: match.Name, ConfidenceScore: 0.85}
}

// ParseModeration turns a SAFE/FLAGGED verdict into a Moderation.
func ParseModeration(answer string) domain.Moderation {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return domain.Moderation{Flags: []string{}, Summary: "Unable to analyze."}
	}
	if strings.Contains(strings.ToUpper(answer), "FLAGGED") {
		return domain.Moderation{IsFlagged: true, RiskScore: 0.7, Flags: []string{"flagged"}, Summary: answer}
	}
	return domain.Moderation{RiskScore: 0.1, Flags: []string{}, Summary: answer}
}

// parsedGrammarConfidence is reported when the model omits a confidence score.
const parsedGrammarConfidence = 0.9

// ParseGrammar reads a JSON grammar report. ok is false when answer holds no usable object.
func ParseGrammar(answer, content string) (*domain.GrammarCheck, bool) {
	raw := ExtractJSON(answer)
	if raw == "" {
		return nil, false
	}
	doc := gjson.Parse(raw)
	if !doc.Get("hasIssues").Exists() && !doc.Get("correctedContent").Exists() {
		return nil, false
	}

	check := &domain.GrammarCheck{
		HasIssues:        doc.Get("hasIssues").Bool(),
		Issues:           []domain.GrammarIssue{},
		CorrectedContent: doc.Get("correctedContent").String(),
		ConfidenceScore:  parsedGrammarConfidence,
	}
	if score := doc.Get("confidenceScore"); score.Exists() {
		check.ConfidenceScore = score.Float()
	}
	if check.CorrectedContent == "" {
		check.CorrectedContent = content
	}
	doc.Get("issues").ForEach(func(_, issue gjson.Result) bool {
		check.Issues = append(check.Issues, domain.GrammarIssue{
			Position:   int(issue.Get("position").Int()),
			IssueType:  issue.Get("issueType").String(),
			Message:    issue.Get("message").String(),
			Suggestion: issue.Get("suggestion").String(),
		})
		return true
	})
	if len(check.Issues) > 0 {
		check.HasIssues = true
	}
	return check, true
}

// UncheckedGrammar reports content unchanged with the given confidence.
func UncheckedGrammar(content string, confidence float64) *domain.GrammarCheck {
	return &domain.GrammarCheck{Issues: []domain.GrammarIssue{}, CorrectedContent: content, ConfidenceScore: confidence}
}
