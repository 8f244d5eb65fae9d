package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/dto"
)

// articleHandler handles HTTP requests related to articles.
type articleHandler struct {
	*workflowHandler[domain.Article, string, domain.ArticlePayload, dto.ArticleResponse]
}

func newArticleHandler(svc portssvc.ArticleSvcFacade) *articleHandler {
	return &articleHandler{&workflowHandler[domain.Article, string, domain.ArticlePayload, dto.ArticleResponse]{
		kind:        domain.KindArticle,
		svc:         svc,
		parseID:     parseStringID,
		bindPayload: payloadBinder[dto.ArticleRequest, domain.ArticlePayload](),
		toResponse:  dto.ToArticleResponse,
	}}
}

// registerArticleRoutes registers article reads on readGroup and mutations on writeGroup.
func registerArticleRoutes(readGroup, writeGroup *gin.RouterGroup, svc portssvc.ArticleSvcFacade) {
	h := newArticleHandler(svc)

	reads := readGroup.Group("/articles")
	{
		reads.GET("", h.listArticles)
		reads.GET("/public", h.listPublicArticles)
		reads.GET("/active", h.listActiveArticles)
		reads.GET("/:id", h.getArticle)
	}

	writes := writeGroup.Group("/articles")
	{
		writes.POST("", h.createArticle)
		writes.PUT("/:id", h.updateArticle)
		writes.POST("/:id/:action", h.transitionArticle)
		writes.DELETE("/:id", h.deleteArticle)
	}
}

// listArticles godoc
// @Summary List articles
// @Description Lists the articles visible to the caller. Guests see published articles, staff also see their own drafts.
// @Tags articles
// @Produce json
// @Param q query string false "Search in title and content"
// @Param categoryId query int false "Category filter"
// @Param tagId query int false "Tag filter"
// @Param status query int false "Status code (1-5)"
// @Param createdBy query int false "Author account id"
// @Param from query string false "Created on or after (YYYY-MM-DD)"
// @Param to query string false "Created on or before (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Param pageToken query string false "Token from a previous nextToken"
// @Success 200 {object} dto.ListResponse[dto.ArticleResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /articles [get]
func (h *articleHandler) listArticles(c *gin.Context) { h.list(c) }

// listPublicArticles godoc
// @Summary List published articles
// @Tags articles
// @Produce json
// @Param q query string false "Search in title and content"
// @Param categoryId query int false "Category filter"
// @Param tagId query int false "Tag filter"
// @Success 200 {object} dto.ListResponse[dto.ArticleResponse]
// @Failure 400 {object} ErrorResponse
// @Router /articles/public [get]
func (h *articleHandler) listPublicArticles(c *gin.Context) { h.listPublic(c) }

// listActiveArticles godoc
// @Summary List active articles
// @Tags articles
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.ArticleResponse]
// @Router /articles/active [get]
func (h *articleHandler) listActiveArticles(c *gin.Context) { h.listActive(c) }

// getArticle godoc
// @Summary Get an article by ID
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} ErrorResponse "Article not found or not visible"
// @Router /articles/{id} [get]
func (h *articleHandler) getArticle(c *gin.Context) { h.get(c) }

// createArticle godoc
// @Summary Create an article
// @Description Staff create drafts or submit directly. The id is generated unless supplied.
// @Tags articles
// @Accept json
// @Produce json
// @Param article body dto.ArticleRequest true "Article"
// @Success 201 {object} dto.ArticleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles [post]
func (h *articleHandler) createArticle(c *gin.Context) { h.create(c) }

// updateArticle godoc
// @Summary Update an article
// @Description Staff edit their own drafts and pending articles. Admins only change status.
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param article body dto.ArticleRequest true "Fields to change"
// @Success 200 {object} dto.ArticleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Modified concurrently"
// @Failure 422 {object} ErrorResponse "Illegal status transition"
// @Security BearerAuth
// @Router /articles/{id} [put]
func (h *articleHandler) updateArticle(c *gin.Context) { h.update(c) }

// transitionArticle godoc
// @Summary Apply a moderation action to an article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param action path string true "submit, approve, reject, publish, archive or unpublish"
// @Param body body dto.TransitionRequest false "Optional reason"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles/{id}/{action} [post]
func (h *articleHandler) transitionArticle(c *gin.Context) { h.transition(c) }

// deleteArticle godoc
// @Summary Delete an article
// @Tags articles
// @Param id path string true "Article ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles/{id} [delete]
func (h *articleHandler) deleteArticle(c *gin.Context) { h.delete(c) }
