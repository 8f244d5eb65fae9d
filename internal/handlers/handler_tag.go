package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/dto"
)

type tagHandler struct {
	*workflowHandler[domain.Tag, int, domain.TagPayload, dto.TagResponse]
}

func newTagHandler(svc portssvc.TagSvcFacade) *tagHandler {
	return &tagHandler{&workflowHandler[domain.Tag, int, domain.TagPayload, dto.TagResponse]{
		kind:        domain.KindTag,
		svc:         svc,
		parseID:     parseIntID,
		bindPayload: payloadBinder[dto.TagRequest, domain.TagPayload](),
		toResponse:  dto.ToTagResponse,
	}}
}

func registerTagRoutes(readGroup, writeGroup *gin.RouterGroup, svc portssvc.TagSvcFacade) {
	h := newTagHandler(svc)

	reads := readGroup.Group("/tags")
	{
		reads.GET("", h.listTags)
		reads.GET("/public", h.listPublicTags)
		reads.GET("/active", h.listActiveTags)
		reads.GET("/:id", h.getTag)
	}

	writes := writeGroup.Group("/tags")
	{
		writes.POST("", h.createTag)
		writes.PUT("/:id", h.updateTag)
		writes.POST("/:id/:action", h.transitionTag)
		writes.DELETE("/:id", h.deleteTag)
	}
}

// listTags godoc
// @Summary List tags
// @Tags tags
// @Produce json
// @Param q query string false "Search in name and note"
// @Param status query int false "Status code (1-4)"
// @Success 200 {object} dto.ListResponse[dto.TagResponse]
// @Router /tags [get]
func (h *tagHandler) listTags(c *gin.Context) { h.list(c) }

// listPublicTags godoc
// @Summary List published tags
// @Tags tags
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.TagResponse]
// @Router /tags/public [get]
func (h *tagHandler) listPublicTags(c *gin.Context) { h.listPublic(c) }

// listActiveTags godoc
// @Summary List tags that articles may reference
// @Tags tags
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.TagResponse]
// @Router /tags/active [get]
func (h *tagHandler) listActiveTags(c *gin.Context) { h.listActive(c) }

// getTag godoc
// @Summary Get a tag by ID
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} dto.TagResponse
// @Failure 404 {object} ErrorResponse
// @Router /tags/{id} [get]
func (h *tagHandler) getTag(c *gin.Context) { h.get(c) }

// createTag godoc
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body dto.TagRequest true "Tag"
// @Success 201 {object} dto.TagResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /tags [post]
func (h *tagHandler) createTag(c *gin.Context) { h.create(c) }

// updateTag godoc
// @Summary Update a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param tag body dto.TagRequest true "Fields to change"
// @Success 200 {object} dto.TagResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /tags/{id} [put]
func (h *tagHandler) updateTag(c *gin.Context) { h.update(c) }

// transitionTag godoc
// @Summary Apply a moderation action to a tag
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Param action path string true "submit, approve, reject, publish or unpublish"
// @Success 200 {object} dto.TransitionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /tags/{id}/{action} [post]
func (h *tagHandler) transitionTag(c *gin.Context) { h.transition(c) }

// deleteTag godoc
// @Summary Delete a tag
// @Tags tags
// @Param id path int true "Tag ID"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /tags/{id} [delete]
func (h *tagHandler) deleteTag(c *gin.Context) { h.delete(c) }
