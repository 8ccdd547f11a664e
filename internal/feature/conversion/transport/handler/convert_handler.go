// Package handler は通貨換算のHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/conversion/usecase"
)

// ConvertUsecase は通貨換算のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ConvertUsecase interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

// ConvertHandler は通貨換算のHTTPリクエストを処理します。
type ConvertHandler struct {
	uc ConvertUsecase
}

// NewConvertHandler は指定されたusecaseでConvertHandlerの新しいインスタンスを生成します。
func NewConvertHandler(uc ConvertUsecase) *ConvertHandler {
	return &ConvertHandler{uc: uc}
}

// Convert は金額を通貨間で換算するAPIです。
//
// エンドポイント例:
// GET /convert?from=USD&to=HKD&amount=100
//
// レートが見つからない場合は404を返します。
func (h *ConvertHandler) Convert(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	amountStr := c.Query("amount")

	if from == "" || to == "" || amountStr == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "from, to and amount are required"})
		return
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "amount must be a number"})
		return
	}

	converted, err := h.uc.Convert(c.Request.Context(), amount, from, to)
	if err != nil {
		if errors.Is(err, usecase.ErrRateNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "conversion rate not found"})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.ConvertResponse{
		From:            from,
		To:              to,
		Amount:          amount,
		ConvertedAmount: converted,
	})
}
