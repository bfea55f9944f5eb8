package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/construct_erp/internal/dto"
	"github.com/SscSPs/construct_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerTransactionRoutes registers routes related to the ledger.
func registerTransactionRoutes(rg *gin.RouterGroup) {
	txns := rg.Group("/transactions")
	{
		txns.GET("", listTransactions)
		txns.POST("", createTransaction)
		txns.PUT("/:id", updateTransaction)
		txns.DELETE("/:id", deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest first, optionally filtered by type.
// @Tags transactions
// @Produce json
// @Param type query string false "INCOME or EXPENSE"
// @Success 200 {object} dto.ListResponse{data=[]domain.Transaction}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func listTransactions(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{Data: ws.Transactions(params.Type)})
}

// createTransaction godoc
// @Summary Record a transaction
// @Description A paid expense linked to a project grows the project's spent.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.TransactionRequest true "Transaction details"
// @Success 201 {object} dto.MutationResponse{data=domain.Transaction}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func createTransaction(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	var req dto.TransactionRequest
	if !bindJSON(c, &req, "CreateTransaction") {
		return
	}
	txn, res := ws.AddTransaction(c.Request.Context(), req.ToDomain(""))
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction recorded",
		slog.String("transaction_id", res.ID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	respondMutation(c, true, txn, res)
}

// updateTransaction godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.TransactionRequest true "Transaction details"
// @Success 200 {object} dto.MutationResponse{data=domain.Transaction}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func updateTransaction(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	var req dto.TransactionRequest
	if !bindJSON(c, &req, "UpdateTransaction") {
		return
	}
	txn, res := ws.UpdateTransaction(c.Request.Context(), req.ToDomain(c.Param("id")))
	respondMutation(c, false, txn, res)
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Project spent is not reduced.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func deleteTransaction(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	respondMutation(c, false, nil, ws.RemoveTransaction(c.Request.Context(), c.Param("id")))
}
