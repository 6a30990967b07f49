package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/dto"
)

// reportingHandler handles HTTP requests for the derived statements.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the statement routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/journal", h.getJournal)
		reports.GET("/balance-sheet", h.getBalanceSheet)
		reports.GET("/trial-balance", h.getTrialBalance)
	}
}

func (h *reportingHandler) getJournal(c *gin.Context) {
	lines, err := h.reportingService.JournalReport(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute journal report")
		return
	}
	c.JSON(http.StatusOK, dto.JournalReportResponse{Lines: lines})
}

func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	report, err := h.reportingService.BalanceSheet(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report, time.Now()))
}

func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	rows, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, time.Now()))
}
