package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adreenastore/pos_backend/internal/apperrors"
	"github.com/adreenastore/pos_backend/internal/core/ports"
	"github.com/adreenastore/pos_backend/internal/dto"
	"github.com/adreenastore/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the dashboard aggregates.
type reportingHandler struct {
	reportingService ports.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(reportingService ports.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes sets up the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService ports.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getMonthlySummary)
	}
}

// getMonthlySummary returns total sales, total profit and the transaction
// count for one calendar month (defaults to the current one).
func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, ok := yearMonthParams(c)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "year and month query parameters must be valid integers"})
		return
	}

	summary, err := h.reportingService.GetMonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to compute monthly summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute monthly summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(summary))
}
