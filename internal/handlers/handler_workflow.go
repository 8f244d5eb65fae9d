package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/core/workflow"
	"github.com/SscSPs/news_management_app/internal/dto"
	"github.com/SscSPs/news_management_app/internal/middleware"
	"github.com/SscSPs/news_management_app/internal/utils/pagination"
)

// workflowHandler serves the routes shared by articles, categories and tags.
type workflowHandler[T any, ID comparable, P any, R any] struct {
	kind        domain.Kind
	svc         portssvc.WorkflowSvc[T, ID, P]
	parseID     func(string) (ID, error)
	bindPayload func(*gin.Context) (P, error)
	toResponse  func(*T) R
}

// payloadBinder binds a request body of type Req and converts it to its domain payload.
func payloadBinder[Req interface{ ToPayload() P }, P any]() func(*gin.Context) (P, error) {
	return func(c *gin.Context) (P, error) {
		var req Req
		if err := c.ShouldBindJSON(&req); err != nil {
			var zero P
			return zero, err
		}
		return req.ToPayload(), nil
	}
}

func parseStringID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", errors.New("id must not be empty")
	}
	return id, nil
}

func parseIntID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer, got %q", raw)
	}
	return id, nil
}

func (h *workflowHandler[T, ID, P, R]) logger(c *gin.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(h.kind)))
}

func (h *workflowHandler[T, ID, P, R]) bindListParams(c *gin.Context) (domain.ListFilter, bool) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return domain.ListFilter{}, false
	}
	if params.Status != nil && !workflow.IsLegalStatus(h.kind, domain.Status(*params.Status)) {
		badRequest(c, "Invalid query parameters", apperrors.ErrUnknownStatus)
		return domain.ListFilter{}, false
	}
	if params.PageToken != "" {
		offset, limit, err := pagination.DecodeOffsetToken(params.PageToken)
		if err != nil {
			badRequest(c, "Invalid query parameters", err)
			return domain.ListFilter{}, false
		}
		params.Offset, params.Limit = offset, min(limit, dto.MaxPageSize)
	}
	return params.ToFilter(), true
}

// listResponse converts items and links the next page when filter was bounded.
func (h *workflowHandler[T, ID, P, R]) listResponse(items []T, filter domain.ListFilter) dto.ListResponse[R] {
	resp := dto.NewListResponse(items, h.toResponse)
	resp.NextToken = pagination.NextToken(filter.Offset, filter.Limit, len(items))
	return resp
}

func (h *workflowHandler[T, ID, P, R]) pathID(c *gin.Context) (ID, bool) {
	id, err := h.parseID(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid "+string(h.kind)+" id", err)
		return id, false
	}
	return id, true
}

func (h *workflowHandler[T, ID, P, R]) list(c *gin.Context) {
	filter, ok := h.bindListParams(c)
	if !ok {
		return
	}
	actor := middleware.ActorFromContext(c)

	items, err := h.svc.List(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, err, "Failed to list "+string(h.kind)+"s")
		return
	}
	h.logger(c).Info("Listed entities", slog.Int("count", len(items)), slog.String("role", string(actor.Role)))
	c.JSON(http.StatusOK, h.listResponse(items, filter))
}

func (h *workflowHandler[T, ID, P, R]) listPublic(c *gin.Context) {
	filter, ok := h.bindListParams(c)
	if !ok {
		return
	}
	items, err := h.svc.ListPublic(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to list published "+string(h.kind)+"s")
		return
	}
	c.JSON(http.StatusOK, h.listResponse(items, filter))
}

func (h *workflowHandler[T, ID, P, R]) listActive(c *gin.Context) {
	items, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list active "+string(h.kind)+"s")
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(items, h.toResponse))
}

func (h *workflowHandler[T, ID, P, R]) get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	entity, err := h.svc.Get(c.Request.Context(), middleware.ActorFromContext(c), id)
	if err != nil {
		respondError(c, err, "Failed to retrieve "+string(h.kind))
		return
	}
	c.JSON(http.StatusOK, h.toResponse(entity))
}

func (h *workflowHandler[T, ID, P, R]) create(c *gin.Context) {
	payload, err := h.bindPayload(c)
	if err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	entity, err := h.svc.Create(c.Request.Context(), middleware.ActorFromContext(c), payload)
	if err != nil {
		respondError(c, err, "Failed to create "+string(h.kind))
		return
	}
	h.logger(c).Info("Entity created")
	c.JSON(http.StatusCreated, h.toResponse(entity))
}

func (h *workflowHandler[T, ID, P, R]) update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	payload, err := h.bindPayload(c)
	if err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	entity, err := h.svc.Update(c.Request.Context(), middleware.ActorFromContext(c), id, payload)
	if err != nil {
		respondError(c, err, "Failed to update "+string(h.kind))
		return
	}
	h.logger(c).Info("Entity updated", slog.Any("id", id))
	c.JSON(http.StatusOK, h.toResponse(entity))
}

func (h *workflowHandler[T, ID, P, R]) transition(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	action, err := workflow.ParseAction(c.Param("action"))
	if err != nil {
		respondError(c, err, "Unknown action")
		return
	}

	// The body is optional; only a reason may be sent.
	var req dto.TransitionRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			badRequest(c, "Invalid request format", err)
			return
		}
	}

	status, err := h.svc.Transition(c.Request.Context(), middleware.ActorFromContext(c), id, action, req.Reason)
	if err != nil {
		respondError(c, err, "Failed to "+string(action)+" "+string(h.kind))
		return
	}
	h.logger(c).Info("Entity transitioned", slog.Any("id", id), slog.String("action", string(action)), slog.String("status", status.String()))
	c.JSON(http.StatusOK, dto.NewTransitionResponse(status))
}

func (h *workflowHandler[T, ID, P, R]) delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		respondError(c, err, "Failed to delete "+string(h.kind))
		return
	}
	h.logger(c).Info("Entity deleted", slog.Any("id", id))
	c.Status(http.StatusNoContent)
}
