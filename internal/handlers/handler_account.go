package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fundledger/fundledger-backend/internal/apperrors"
	"github.com/fundledger/fundledger-backend/internal/core/ports"
	"github.com/fundledger/fundledger-backend/internal/dto"
	"github.com/fundledger/fundledger-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests for accounts and funds.
type accountHandler struct {
	ledgerService ports.LedgerSvcFacade
}

func newAccountHandler(ls ports.LedgerSvcFacade) *accountHandler {
	return &accountHandler{ledgerService: ls}
}

// registerAccountRoutes registers the account and fund operations. The
// operations are POSTs with body payloads, mirroring the upstream API shape.
func registerAccountRoutes(rg *gin.RouterGroup, ledgerService ports.LedgerSvcFacade) {
	h := newAccountHandler(ledgerService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("/create-account", h.createAccount)
		accounts.POST("/account-balance", h.getAccountBalance)
		accounts.POST("/incoming-fund", h.incomingFund)
		accounts.POST("/get-fund", h.getFund)
	}
}

// createAccount godoc
// @Summary Create an account
// @Description Opens a new account with a zero balance for an existing user
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts/create-account [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("user_id", req.UserID))
	logger.Info("Received request to create account")

	account, err := h.ledgerService.CreateAccount(c.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("User not found for account creation")
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			logger.Error("Failed to create account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	logger.Info("Account created successfully", slog.Int64("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccountBalance godoc
// @Summary Get account balance
// @Description Returns the current balance for an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.AccountBalanceRequest true "Account identifier"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Router /accounts/account-balance [post]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AccountBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for getAccountBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("account_id", req.AccountID))

	account, err := h.ledgerService.GetAccountBalance(c.Request.Context(), req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account balance from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountBalanceResponse(account))
}

// incomingFund godoc
// @Summary Record an incoming fund
// @Description Records a deposit against an account and returns a receipt with the new balance
// @Tags accounts
// @Accept json
// @Produce json
// @Param fund body dto.IncomingFundRequest true "Deposit details"
// @Success 200 {object} dto.IncomingFundResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to process fund"
// @Router /accounts/incoming-fund [post]
func (h *accountHandler) incomingFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.IncomingFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for incomingFund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("account_id", req.AccountID), slog.String("amount", req.Amount.String()))
	logger.Info("Received request to record incoming fund")

	receipt, err := h.ledgerService.IncomingFund(c.Request.Context(), req.AccountID, req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for incoming fund")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to process incoming fund in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process fund"})
		}
		return
	}

	logger.Info("Incoming fund recorded", slog.Int64("fund_id", receipt.FundID), slog.String("balance", receipt.Balance.String()))
	c.JSON(http.StatusOK, dto.ToIncomingFundResponse(receipt))
}

// getFund godoc
// @Summary Get fund by ID
// @Description Retrieves a single fund record by its identifier
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.GetFundRequest true "Fund identifier"
// @Success 200 {object} dto.FundResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Fund not found"
// @Failure 500 {object} map[string]string "Failed to retrieve fund"
// @Router /accounts/get-fund [post]
func (h *accountHandler) getFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GetFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for getFund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("fund_id", req.FundID))

	record, err := h.ledgerService.GetFund(c.Request.Context(), req.FundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Fund not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Fund not found"})
		} else {
			logger.Error("Failed to get fund from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve fund"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFundResponse(record))
}
