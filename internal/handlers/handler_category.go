package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/dto"
)

type categoryHandler struct {
	*workflowHandler[domain.Category, int, domain.CategoryPayload, dto.CategoryResponse]
}

func newCategoryHandler(svc portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{&workflowHandler[domain.Category, int, domain.CategoryPayload, dto.CategoryResponse]{
		kind:        domain.KindCategory,
		svc:         svc,
		parseID:     parseIntID,
		bindPayload: payloadBinder[dto.CategoryRequest, domain.CategoryPayload](),
		toResponse:  dto.ToCategoryResponse,
	}}
}

func registerCategoryRoutes(readGroup, writeGroup *gin.RouterGroup, svc portssvc.CategorySvcFacade) {
	h := newCategoryHandler(svc)

	reads := readGroup.Group("/categories")
	{
		reads.GET("", h.listCategories)
		reads.GET("/public", h.listPublicCategories)
		reads.GET("/active", h.listActiveCategories)
		reads.GET("/:id", h.getCategory)
	}

	writes := writeGroup.Group("/categories")
	{
		writes.POST("", h.createCategory)
		writes.PUT("/:id", h.updateCategory)
		writes.POST("/:id/:action", h.transitionCategory)
		writes.DELETE("/:id", h.deleteCategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param q query string false "Search in name and description"
// @Param status query int false "Status code (1-4)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Param pageToken query string false "Token from a previous nextToken"
// @Success 200 {object} dto.ListResponse[dto.CategoryResponse]
// @Failure 400 {object} ErrorResponse
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) { h.list(c) }

// listPublicCategories godoc
// @Summary List published categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.CategoryResponse]
// @Router /categories/public [get]
func (h *categoryHandler) listPublicCategories(c *gin.Context) { h.listPublic(c) }

// listActiveCategories godoc
// @Summary List categories that articles may reference
// @Tags categories
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.CategoryResponse]
// @Router /categories/active [get]
func (h *categoryHandler) listActiveCategories(c *gin.Context) { h.listActive(c) }

// getCategory godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [get]
func (h *categoryHandler) getCategory(c *gin.Context) { h.get(c) }

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) { h.create(c) }

// updateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body dto.CategoryRequest true "Fields to change"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) { h.update(c) }

// transitionCategory godoc
// @Summary Apply a moderation action to a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param action path string true "submit, approve, reject, publish or unpublish"
// @Success 200 {object} dto.TransitionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id}/{action} [post]
func (h *categoryHandler) transitionCategory(c *gin.Context) { h.transition(c) }

// deleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) { h.delete(c) }
