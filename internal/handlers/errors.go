package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/middleware"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrIllegalTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrIDGenerationExhausted):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// newErrorResponse renders err for the caller. Internal failures only expose fallback.
func newErrorResponse(err error, fallback string) (int, ErrorResponse) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		return status, ErrorResponse{Error: fallback}
	}

	resp := ErrorResponse{Error: err.Error()}

	var denial *apperrors.DenialError
	if errors.As(err, &denial) {
		resp.Error = denial.Message
		resp.Reason = string(denial.Reason)
	}

	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		resp.Details = validationErr.Details
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && denial == nil {
		resp.Error = appErr.Message
	}

	switch {
	case resp.Reason != "":
	case errors.Is(err, apperrors.ErrIDGenerationExhausted):
		resp.Reason = "id_generation_exhausted"
	case errors.Is(err, apperrors.ErrConflict):
		resp.Reason = "conflict"
	}
	return status, resp
}

// respondError logs err at a level matching its class and writes the error body.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, resp := newErrorResponse(err, fallback)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.AbortWithStatusJSON(status, resp)
}

// badRequest reports a malformed request.
func badRequest(c *gin.Context, message string, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err != nil {
		logger.Warn(message, slog.String("error", err.Error()))
		message = message + ": " + err.Error()
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
