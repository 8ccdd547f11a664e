// Package handler はassetsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/assets/domain/entity"
	"finance_backend/internal/feature/assets/usecase"
	convusecase "finance_backend/internal/feature/conversion/usecase"
	jwtmw "finance_backend/internal/platform/jwt"
)

// AssetUsecase は資産操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AssetUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Asset, error)
	ListValued(ctx context.Context, userID uint, target string) ([]usecase.ValuedAsset, error)
	Add(ctx context.Context, userID uint, category, typ string, amount float64) (*entity.Asset, error)
	Update(ctx context.Context, userID, assetID uint, category, typ *string, amount *float64) error
	Remove(ctx context.Context, userID, assetID uint) error
}

// AssetHandler は資産のHTTPリクエストを処理します。
type AssetHandler struct {
	uc AssetUsecase
}

// NewAssetHandler は指定されたusecaseでAssetHandlerの新しいインスタンスを生成します。
func NewAssetHandler(uc AssetUsecase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// List はユーザーの資産一覧を返すAPIです。
// ?currency=HKD が指定された場合は各資産にその通貨での評価額を付与します。
//
// GET /assets
// GET /assets?currency=HKD
func (h *AssetHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	target := c.Query("currency")
	if target == "" {
		assets, err := h.uc.List(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list assets"})
			return
		}
		out := make([]api.AssetResponse, 0, len(assets))
		for _, a := range assets {
			out = append(out, api.AssetResponse{ID: a.ID, Category: a.Category, Type: a.Type, Amount: a.Amount})
		}
		c.JSON(http.StatusOK, out)
		return
	}

	valued, err := h.uc.ListValued(c.Request.Context(), userID, target)
	if err != nil {
		if errors.Is(err, convusecase.ErrRateNotFound) || errors.Is(err, usecase.ErrPriceUnavailable) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "failed to value assets"})
		return
	}
	out := make([]api.AssetResponse, 0, len(valued))
	for _, v := range valued {
		converted := v.ConvertedAmount
		out = append(out, api.AssetResponse{
			ID:                v.ID,
			Category:          v.Category,
			Type:              v.Type,
			Amount:            v.Amount,
			ConvertedAmount:   &converted,
			ConvertedCurrency: v.ConvertedCurrency,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Create は資産を登録するAPIです。
//
// POST /assets
func (h *AssetHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.AssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	asset, err := h.uc.Add(c.Request.Context(), userID, req.Category, req.Type, req.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create asset"})
		return
	}
	c.JSON(http.StatusCreated, api.AssetResponse{
		ID:       asset.ID,
		Category: asset.Category,
		Type:     asset.Type,
		Amount:   asset.Amount,
	})
}

// Update は資産を部分更新するAPIです。
//
// PUT /assets
func (h *AssetHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req api.AssetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.uc.Update(c.Request.Context(), userID, req.ID, req.Category, req.Type, req.Amount); err != nil {
		if errors.Is(err, usecase.ErrAssetNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "asset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update asset"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// Delete は資産を削除するAPIです。
//
// DELETE /assets/:id
func (h *AssetHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid asset id"})
		return
	}

	if err := h.uc.Remove(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, usecase.ErrAssetNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "asset not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete asset"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}
