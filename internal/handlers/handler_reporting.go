package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/news_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/dto"
	"github.com/SscSPs/news_management_app/internal/middleware"
)

// reportingHandler handles HTTP requests related to content reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the admin reports and the dashboard.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports", middleware.RequireRole(domain.RoleAdmin))
	{
		reportingGroup.GET("/articles.csv", h.exportArticles)
		reportingGroup.GET("/statistics", h.getStatistics)
		reportingGroup.GET("/by-category", h.getByCategory)
		reportingGroup.GET("/by-author", h.getByAuthor)
		reportingGroup.GET("/timeseries", h.getTimeSeries)
	}

	rg.GET("/dashboard", h.getDashboard)
}

func (h *reportingHandler) bindRange(c *gin.Context) (domain.ReportRange, bool) {
	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid date range. Use YYYY-MM-DD", err)
		return domain.ReportRange{}, false
	}
	return params.ToRange(), true
}

// exportArticles godoc
// @Summary Export articles as CSV
// @Description Streams the filtered articles, newest first, as a CSV attachment.
// @Tags reports
// @Produce text/csv
// @Param q query string false "Search in title and content"
// @Param categoryId query int false "Category filter"
// @Param status query int false "Status code"
// @Param from query string false "Created on or after (YYYY-MM-DD)"
// @Param to query string false "Created on or before (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/articles.csv [get]
func (h *reportingHandler) exportArticles(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	var buf bytes.Buffer
	if err := h.reportingService.ExportArticlesCSV(c.Request.Context(), middleware.ActorFromContext(c), params.ToFilter(), &buf); err != nil {
		respondError(c, err, "Failed to export articles")
		return
	}

	filename := "articles-" + time.Now().UTC().Format("20060102") + ".csv"
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Articles exported", slog.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// getStatistics godoc
// @Summary Content statistics
// @Description Totals per status with category, author and monthly breakdowns.
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.StatisticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/statistics [get]
func (h *reportingHandler) getStatistics(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}
	stats, err := h.reportingService.Statistics(c.Request.Context(), middleware.ActorFromContext(c), r)
	if err != nil {
		respondError(c, err, "Failed to generate statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}

// getByCategory godoc
// @Summary Articles per category
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.CategoryReportRowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/by-category [get]
func (h *reportingHandler) getByCategory(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}
	rows, err := h.reportingService.ByCategory(c.Request.Context(), middleware.ActorFromContext(c), r)
	if err != nil {
		respondError(c, err, "Failed to generate category report")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryReportResponse(rows))
}

// getByAuthor godoc
// @Summary Articles per author
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.AuthorReportRowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/by-author [get]
func (h *reportingHandler) getByAuthor(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}
	rows, err := h.reportingService.ByAuthor(c.Request.Context(), middleware.ActorFromContext(c), r)
	if err != nil {
		respondError(c, err, "Failed to generate author report")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuthorReportResponse(rows))
}

// getTimeSeries godoc
// @Summary Articles created over time
// @Tags reports
// @Produce json
// @Param groupBy query string false "day, week or month" default(month)
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.TimeBucketResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/timeseries [get]
func (h *reportingHandler) getTimeSeries(c *gin.Context) {
	var params dto.TimeSeriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	buckets, err := h.reportingService.TimeSeries(c.Request.Context(), middleware.ActorFromContext(c),
		domain.Granularity(params.GroupBy), params.ToRange())
	if err != nil {
		respondError(c, err, "Failed to generate time series")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeSeriesResponse(buckets))
}

// getDashboard godoc
// @Summary Workflow dashboard
// @Description Admins see global counts and the moderation queue, staff see their own content.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), middleware.ActorFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}
