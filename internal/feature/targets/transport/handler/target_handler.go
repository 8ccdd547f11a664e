// Package handler はtargetsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
	convusecase "finance_backend/internal/feature/conversion/usecase"
	"finance_backend/internal/feature/targets/domain/entity"
	"finance_backend/internal/feature/targets/usecase"
	jwtmw "finance_backend/internal/platform/jwt"
)

// TargetUsecase は目標操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type TargetUsecase interface {
	Set(ctx context.Context, userID uint, targetType string, amount float64, currency string) error
	List(ctx context.Context, userID uint) ([]entity.Target, error)
	ListConverted(ctx context.Context, userID uint, to string) ([]usecase.ConvertedTarget, error)
	Clear(ctx context.Context, userID uint) (int64, error)
}

// TargetHandler は目標のHTTPリクエストを処理します。
type TargetHandler struct {
	uc TargetUsecase
}

// NewTargetHandler は指定されたusecaseでTargetHandlerの新しいインスタンスを生成します。
func NewTargetHandler(uc TargetUsecase) *TargetHandler {
	return &TargetHandler{uc: uc}
}

// Set は目標を設定するAPIです。同じtarget_typeの既存目標は置き換えられます。
//
// POST /targets
func (h *TargetHandler) Set(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.TargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.uc.Set(c.Request.Context(), userID, req.TargetType, req.Amount, req.Currency); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to set target"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// List はユーザーの目標一覧を返すAPIです。
// ?currency=HKD が指定された場合は各目標にその通貨での換算額を付与します。
//
// GET /targets
// GET /targets?currency=HKD
func (h *TargetHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	to := c.Query("currency")
	if to == "" {
		targets, err := h.uc.List(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, usecase.ErrTargetNotFound) {
				c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no targets found"})
				return
			}
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list targets"})
			return
		}
		out := make([]api.TargetResponse, 0, len(targets))
		for _, t := range targets {
			out = append(out, api.TargetResponse{
				TargetType: t.TargetType,
				Amount:     t.Amount,
				Currency:   t.Currency,
				UpdatedAt:  t.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
			})
		}
		c.JSON(http.StatusOK, out)
		return
	}

	converted, err := h.uc.ListConverted(c.Request.Context(), userID, to)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTargetNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no targets found"})
		case errors.Is(err, convusecase.ErrRateNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "conversion rate not found"})
		default:
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to convert targets"})
		}
		return
	}
	out := make([]api.TargetResponse, 0, len(converted))
	for _, t := range converted {
		amount := t.ConvertedAmount
		out = append(out, api.TargetResponse{
			TargetType:        t.TargetType,
			Amount:            t.Amount,
			Currency:          t.Currency,
			ConvertedAmount:   &amount,
			ConvertedCurrency: t.ConvertedCurrency,
			UpdatedAt:         t.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	c.JSON(http.StatusOK, out)
}

// Clear はユーザーの全目標を削除するAPIです。
//
// DELETE /targets
func (h *TargetHandler) Clear(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	if _, err := h.uc.Clear(c.Request.Context(), userID); err != nil {
		if errors.Is(err, usecase.ErrTargetNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no targets found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete targets"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}
