package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/glsvc/ledger-backend/internal/apperrors"
	"github.com/glsvc/ledger-backend/internal/core/domain"
	portssvc "github.com/glsvc/ledger-backend/internal/core/ports/services"
	"github.com/glsvc/ledger-backend/internal/dto"
	"github.com/glsvc/ledger-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for the account ledger drill-down.
type ledgerHandler struct {
	ledgerService portssvc.LedgerService
}

func newLedgerHandler(ls portssvc.LedgerService) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes related to the ledger.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerService) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/accounts", h.listLedgerAccounts)
		ledger.GET("", h.readAccountLedger)
	}
}

// listLedgerAccounts godoc
// @Summary List ledger accounts
// @Description Lists the accounts available for ledger drill-down under the resolved storage generation
// @Tags ledger
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} dto.ListLedgerAccountsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list ledger accounts"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/ledger/accounts [get]
func (h *ledgerHandler) listLedgerAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, ok := resolveTenantID(c)
	if !ok {
		return
	}

	schema, accounts, err := h.ledgerService.ListLedgerAccounts(c.Request.Context(), tenantID)
	if err != nil {
		logger.Error("Failed to list ledger accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ledger accounts"})
		return
	}

	resp := dto.ListLedgerAccountsResponse{
		Schema:   string(schema),
		Accounts: make([]dto.LedgerAccountResponse, len(accounts)),
	}
	for i, acc := range accounts {
		resp.Accounts[i] = dto.ToLedgerAccountResponse(acc)
	}
	c.JSON(http.StatusOK, resp)
}

// readAccountLedger godoc
// @Summary Read an account's ledger
// @Description Opening balance, chronological movements and running balance for one account over a date range. Without an account parameter the first ledger account is used; without dates the current month.
// @Tags ledger
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   accountID query string false "Account ID (normalized storage)"
// @Param   accountCode query string false "Account code (legacy storage)"
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountLedgerResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to read ledger"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/ledger [get]
func (h *ledgerHandler) readAccountLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, ok := resolveTenantID(c)
	if !ok {
		return
	}

	ref := domain.AccountRef{
		AccountID: c.Query("accountID"),
		Code:      c.Query("accountCode"),
	}
	from, to := reportRange(c)

	ledger, err := h.ledgerService.ReadAccountLedger(c.Request.Context(), tenantID, ref, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to read account ledger", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read ledger"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountLedgerResponse(ledger))
}

// reportRange parses the from/to query parameters, defaulting to the current
// month through today. Bad values fall back to the defaults rather than
// erroring; reports prefer a sane range over a rejection.
func reportRange(c *gin.Context) (from, to time.Time) {
	defFrom, defTo := dto.DefaultReportRange(time.Now())
	from = dto.ParseDateOr(c.Query("from"), defFrom)
	to = dto.ParseDateOr(c.Query("to"), defTo)
	if to.Before(from) {
		from, to = to, from
	}
	return from, to
}
