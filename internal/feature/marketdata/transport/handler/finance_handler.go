// Package handler はmarketdataフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/marketdata/domain/entity"
)

// FinanceUsecase は金融データスナップショットのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FinanceUsecase interface {
	GetSnapshot(ctx context.Context, currencies, stocks, cryptos []string) (*entity.Snapshot, error)
}

// FinanceHandler は金融データのHTTPリクエストを処理します。
type FinanceHandler struct {
	uc FinanceUsecase
}

// NewFinanceHandler は指定されたusecaseでFinanceHandlerの新しいインスタンスを生成します。
func NewFinanceHandler(uc FinanceUsecase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// GetFinanceData は現在の金融データスナップショットを返すAPIです。
//
// エンドポイント例:
// GET /finance?currency=USD,HKD&stock=AAPL&crypto=BTC
//
// クエリパラメータ未指定のバスケットはデフォルトセットが使用されます。
func (h *FinanceHandler) GetFinanceData(c *gin.Context) {
	snap, err := h.uc.GetSnapshot(c.Request.Context(),
		splitList(c.Query("currency")),
		splitList(c.Query("stock")),
		splitList(c.Query("crypto")),
	)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, snap)
}

// splitList はカンマ区切りのクエリ値をシンボルのスライスに変換します。
// 空文字列はnil（デフォルトバスケット）になります。
func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
