package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/movdin/movdin-backend/internal/apperrors"
	portssvc "github.com/movdin/movdin-backend/internal/core/ports/services"
	"github.com/movdin/movdin-backend/internal/dto"
	"github.com/movdin/movdin-backend/internal/middleware"
)

// balanceHandler handles HTTP requests for balance queries.
type balanceHandler struct {
	balanceService portssvc.BalanceSvc
}

// newBalanceHandler creates a new balanceHandler.
func newBalanceHandler(svc portssvc.BalanceSvc) *balanceHandler {
	return &balanceHandler{balanceService: svc}
}

// registerBalanceRoutes registers the balance and statement routes. They hang
// off /accounts; the static /accounts/balances path wins over /accounts/:id.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc) {
	h := newBalanceHandler(balanceService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/balances", h.listBalances)
		accounts.GET("/:id/balance", h.getAccountBalance)
		accounts.GET("/:id/transactions", h.getAccountStatement)
	}
}

// listBalances godoc
// @Summary Balances of all active accounts
// @Description Computes opening balance plus transaction amounts dated up to the optional as-of date for every active account, ordered by name
// @Tags balances
// @Produce json
// @Param as_of query string false "Inclusive as-of date (YYYY-MM-DD); absent means unbounded"
// @Success 200 {array} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Router /accounts/balances [get]
func (h *balanceHandler) listBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.BalanceQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.balanceService.AllBalances(c.Request.Context(), parseDateParam(params.AsOf))
	if err != nil {
		logger.Error("Failed to compute account balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountBalanceResponses(rows))
}

// getAccountBalance godoc
// @Summary Balance of one account
// @Description Computes the account's opening balance plus transaction amounts dated up to the optional as-of date
// @Tags balances
// @Produce json
// @Param id path int true "Account ID"
// @Param as_of query string false "Inclusive as-of date (YYYY-MM-DD); absent means unbounded"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /accounts/{id}/balance [get]
func (h *balanceHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params dto.BalanceQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	balance, err := h.balanceService.AccountBalance(c.Request.Context(), accountID, parseDateParam(params.AsOf))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to compute account balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// getAccountStatement godoc
// @Summary Transaction history with running balance
// @Description Returns the account's transactions in (date, id) ascending order within the optional inclusive range, each row carrying the cumulative sum of amounts over the window
// @Tags balances
// @Produce json
// @Param id path int true "Account ID"
// @Param date_from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Success 200 {array} dto.TransactionWithBalanceResponse
// @Failure 400 {object} map[string]string "Invalid parameters or malformed range"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Router /accounts/{id}/transactions [get]
func (h *balanceHandler) getAccountStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var params dto.StatementQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.balanceService.AccountStatement(c.Request.Context(), accountID,
		parseDateParam(params.DateFrom), parseDateParam(params.DateTo))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else if errors.Is(err, apperrors.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build account statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(rows))
}
