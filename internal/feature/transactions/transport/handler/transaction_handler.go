// Package handler はtransactionsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/transactions/domain/entity"
	jwtmw "finance_backend/internal/platform/jwt"
)

// TransactionUsecase は取引操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type TransactionUsecase interface {
	Add(ctx context.Context, userID uint, typ, categoryType, currencyType string, amount float64, date string) (*entity.Transaction, error)
	List(ctx context.Context, userID uint) ([]entity.Transaction, error)
}

// TransactionHandler は取引のHTTPリクエストを処理します。
type TransactionHandler struct {
	uc TransactionUsecase
}

// NewTransactionHandler は指定されたusecaseでTransactionHandlerの新しいインスタンスを生成します。
func NewTransactionHandler(uc TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create は取引を記録するAPIです。
//
// POST /transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	tx, err := h.uc.Add(c.Request.Context(), userID, req.Type, req.CategoryType, req.CurrencyType, req.Amount, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toResponse(*tx))
}

// List はユーザーの取引一覧を日付の新しい順で返すAPIです。
//
// GET /transactions
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	txs, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list transactions"})
		return
	}

	out := make([]api.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toResponse(tx))
	}
	c.JSON(http.StatusOK, out)
}

// toResponse はエンティティをレスポンスDTOに変換します。
func toResponse(tx entity.Transaction) api.TransactionResponse {
	return api.TransactionResponse{
		ID:           tx.ID,
		Type:         tx.Type,
		CategoryType: tx.CategoryType,
		CurrencyType: tx.CurrencyType,
		Amount:       tx.Amount,
		Date:         tx.Date.UTC().Format("2006-01-02"),
	}
}
