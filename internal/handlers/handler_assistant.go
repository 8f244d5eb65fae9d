package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/dto"
	"github.com/SscSPs/news_management_app/internal/middleware"
)

// assistantHandler exposes the advisory content assistant to authors and moderators.
type assistantHandler struct {
	assistant portssvc.AssistantSvc
}

func registerAssistantRoutes(rg *gin.RouterGroup, assistant portssvc.AssistantSvc, limit gin.HandlerFunc) {
	h := &assistantHandler{assistant: assistant}

	ai := rg.Group("/assistant", middleware.RequireRole(domain.RoleAdmin, domain.RoleStaff), limit)
	{
		ai.POST("/title", h.generateTitle)
		ai.POST("/summary", h.generateSummary)
		ai.POST("/grammar", h.checkGrammar)
		ai.POST("/tags", h.generateTags)
		ai.POST("/category", h.suggestCategory)
		ai.POST("/moderate", h.moderate)
		ai.POST("/analyze", h.analyze)
		ai.GET("/insights", h.insights)
	}
}

func bindContent(c *gin.Context) (dto.ContentRequest, bool) {
	var req dto.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return req, false
	}
	return req, true
}

// generateTitle godoc
// @Summary Suggest a title
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body dto.ContentRequest true "Content"
// @Success 200 {object} dto.TextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Security BearerAuth
// @Router /assistant/title [post]
func (h *assistantHandler) generateTitle(c *gin.Context) {
	req, ok := bindContent(c)
	if !ok {
		return
	}
	title, err := h.assistant.GenerateTitle(c.Request.Context(), req.Content, req.Title, domain.NormalizeTone(req.Tone))
	if err != nil {
		respondError(c, err, "Failed to generate title")
		return
	}
	c.JSON(http.StatusOK, dto.TextResponse{Text: title})
}

// generateSummary godoc
// @Summary Suggest a summary
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body dto.ContentRequest true "Content"
// @Success 200 {object} dto.TextResponse
// @Security BearerAuth
// @Router /assistant/summary [post]
func (h *assistantHandler) generateSummary(c *gin.Context) {
	req, ok := bindContent(c)
	if !ok {
		return
	}
	summary, err := h.assistant.GenerateSummary(c.Request.Context(), req.Content, domain.NormalizeTone(req.Tone))
	if err != nil {
		respondError(c, err, "Failed to generate summary")
		return
	}
	c.JSON(http.StatusOK, dto.TextResponse{Text: summary})
}

// checkGrammar godoc
// @Summary Check grammar
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body dto.ContentRequest true "Content"
// @Success 200 {object} domain.GrammarCheck
// @Security BearerAuth
// @Router /assistant/grammar [post]
func (h *assistantHandler) checkGrammar(c *gin.Context) {
	req, ok := bindContent(c)
	if !ok {
		return
	}
	check, err := h.assistant.CheckGrammar(c.Request.Context(), req.Content)
	if err != nil {
		respondError(c, err, "Failed to check grammar")
		return
	}
	c.JSON(http.StatusOK, check)
}

// generateTags godoc
// @Summary Suggest tags
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body dto.ContentRequest true "Content"
// @Success 200 {object} dto.TagsResponse
// @Security BearerAuth
// @Router /assistant/tags [post]
func (h *assistantHandler) generateTags(c *gin.Context) {
	req, ok := bindContent(c)
	if !ok {
		return
	}
	tags, err := h.assistant.GenerateTags(c.Request.Context(), req.Content, req.Title)
	if err != nil {
		respondError(c, err, "Failed to generate tags")
		return
	}
	c.JSON(http.StatusOK, dto.TagsResponse{Tags: tags})
}

// suggestCategory godoc
// @Summary Suggest one of the active categories
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body dto.ContentRequest true "Content"
// @Success 200 {object} domain.CategorySuggestion
// @Success 204 "No active categories"
// @Security BearerAuth
// @Router /assistant/category [post]
func (h *assistantHandler) suggestCategory(c *gin.Context) {
	req, ok := bindContent(c)
	if !ok {
		return
	}
	suggestion, err := h.assistant.SuggestCategory(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		respondError(c, err, "Failed to suggest category")
		return
	}
	if suggestion == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// moderate godoc
// @Summary Screen content for policy issues
// @Description Advisory only; the result never blocks a workflow action.
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body dto.ContentRequest true "Content"
// @Success 200 {object} domain.Moderation
// @Security BearerAuth
// @Router /assistant/moderate [post]
func (h *assistantHandler) moderate(c *gin.Context) {
	req, ok := bindContent(c)
	if !ok {
		return
	}
	result, err := h.assistant.ModerateContent(c.Request.Context(), req.Content)
	if err != nil {
		respondError(c, err, "Failed to moderate content")
		return
	}
	c.JSON(http.StatusOK, result)
}

// analyze godoc
// @Summary Run several assistant features at once
// @Tags assistant
// @Accept json
// @Produce json
// @Param body body dto.AnalyzeRequest true "Content and selected features"
// @Success 200 {object} domain.Analysis
// @Security BearerAuth
// @Router /assistant/analyze [post]
func (h *assistantHandler) analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	analysis, err := h.assistant.AnalyzeContent(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to analyze content")
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// insights godoc
// @Summary Content insights
// @Description Summarises content created in the range, the last month by default. Admin only.
// @Tags assistant
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.InsightsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /assistant/insights [get]
func (h *assistantHandler) insights(c *gin.Context) {
	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid date range. Use YYYY-MM-DD", err)
		return
	}
	insights, err := h.assistant.Insights(c.Request.Context(), middleware.ActorFromContext(c), params.ToRange())
	if err != nil {
		respondError(c, err, "Failed to build insights")
		return
	}
	c.JSON(http.StatusOK, dto.ToInsightsResponse(insights))
}
