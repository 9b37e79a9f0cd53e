package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/dto"
	"github.com/glsvc/ledger-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for aggregate reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/trial-balance/export", h.trialBalanceExport)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/profit-and-loss", h.profitAndLoss)
	}
}

// trialBalance godoc
// @Summary Trial balance
// @Description Per-account opening, period movement and closing balances over a date range
// @Tags reports
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, ok := resolveTenantID(c)
	if !ok {
		return
	}
	from, to := reportRange(c)

	report, err := h.reportingService.TrialBalance(c.Request.Context(), tenantID, from, to)
	if err != nil {
		logger.Error("Failed to build trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// trialBalanceExport godoc
// @Summary Trial balance CSV export
// @Description Streams the trial balance as a CSV file with a UTF-8 BOM for spreadsheet compatibility
// @Tags reports
// @Produce  text/csv
// @Param   tenant_id path string true "Tenant ID"
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {string} string "CSV content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/trial-balance/export [get]
func (h *reportingHandler) trialBalanceExport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, ok := resolveTenantID(c)
	if !ok {
		return
	}
	from, to := reportRange(c)

	data, err := h.reportingService.TrialBalanceCSV(c.Request.Context(), tenantID, from, to)
	if err != nil {
		logger.Error("Failed to export trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	filename := fmt.Sprintf("trial-balance_%s_%s.csv", from.Format(dto.DateFormat), to.Format(dto.DateFormat))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// balanceSheet godoc
// @Summary Balance sheet
// @Description Assets, liabilities and equity as of one date, with P&L accounts folded into retained earnings
// @Tags reports
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   asOf query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, ok := resolveTenantID(c)
	if !ok {
		return
	}
	_, defTo := dto.DefaultReportRange(time.Now())
	asOf := dto.ParseDateOr(c.Query("asOf"), defTo)

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), tenantID, asOf)
	if err != nil {
		logger.Error("Failed to build balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// profitAndLoss godoc
// @Summary Profit and loss
// @Description Revenue and expense accounts over a period with totals and a dense daily net series
// @Tags reports
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Param   includeAll query bool false "Include all accounts, not just revenue and expense"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/reports/profit-and-loss [get]
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, ok := resolveTenantID(c)
	if !ok {
		return
	}
	from, to := reportRange(c)
	includeAll, _ := strconv.ParseBool(c.Query("includeAll"))

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), tenantID, from, to, includeAll)
	if err != nil {
		logger.Error("Failed to build profit and loss", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}
