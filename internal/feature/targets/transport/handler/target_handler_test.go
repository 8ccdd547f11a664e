package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"finance_backend/internal/feature/targets/domain/entity"
	"finance_backend/internal/feature/targets/usecase"
	jwtmw "finance_backend/internal/platform/jwt"
)

// mockTargetUsecase はTargetUsecaseインターフェースのモック実装です。
type mockTargetUsecase struct {
	SetFunc           func(ctx context.Context, userID uint, targetType string, amount float64, currency string) error
	ListFunc          func(ctx context.Context, userID uint) ([]entity.Target, error)
	ListConvertedFunc func(ctx context.Context, userID uint, to string) ([]usecase.ConvertedTarget, error)
	ClearFunc         func(ctx context.Context, userID uint) (int64, error)
}

func (m *mockTargetUsecase) Set(ctx context.Context, userID uint, targetType string, amount float64, currency string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, userID, targetType, amount, currency)
	}
	return nil
}

func (m *mockTargetUsecase) List(ctx context.Context, userID uint) ([]entity.Target, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, usecase.ErrTargetNotFound
}

func (m *mockTargetUsecase) ListConverted(ctx context.Context, userID uint, to string) ([]usecase.ConvertedTarget, error) {
	if m.ListConvertedFunc != nil {
		return m.ListConvertedFunc(ctx, userID, to)
	}
	return nil, usecase.ErrTargetNotFound
}

func (m *mockTargetUsecase) Clear(ctx context.Context, userID uint) (int64, error) {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, userID)
	}
	return 0, usecase.ErrTargetNotFound
}

func newRouter(uc *mockTargetUsecase, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTargetHandler(uc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != 0 {
			c.Set(jwtmw.ContextUserID, userID)
		}
	})
	r.POST("/targets", h.Set)
	r.GET("/targets", h.List)
	r.DELETE("/targets", h.Clear)
	return r
}

func TestTargetSet(t *testing.T) {
	var gotType string
	uc := &mockTargetUsecase{
		SetFunc: func(ctx context.Context, userID uint, targetType string, amount float64, currency string) error {
			gotType = targetType
			return nil
		},
	}

	body := `{"target_type":"savings","amount":5000,"currency":"USD"}`
	req := httptest.NewRequest(http.MethodPost, "/targets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newRouter(uc, 1).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "savings", gotType)
}

func TestTargetList(t *testing.T) {
	uc := &mockTargetUsecase{
		ListFunc: func(ctx context.Context, userID uint) ([]entity.Target, error) {
			return []entity.Target{{TargetType: "savings", Amount: 5000, Currency: "USD"}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/targets", nil)
	w := httptest.NewRecorder()
	newRouter(uc, 1).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"target_type":"savings"`)
	assert.NotContains(t, w.Body.String(), "converted_amount")
}

func TestTargetList_Converted(t *testing.T) {
	uc := &mockTargetUsecase{
		ListConvertedFunc: func(ctx context.Context, userID uint, to string) ([]usecase.ConvertedTarget, error) {
			assert.Equal(t, "HKD", to)
			return []usecase.ConvertedTarget{{
				Target:            entity.Target{TargetType: "savings", Amount: 5000, Currency: "USD"},
				ConvertedAmount:   39000,
				ConvertedCurrency: "HKD",
			}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/targets?currency=HKD", nil)
	w := httptest.NewRecorder()
	newRouter(uc, 1).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"converted_amount":39000`)
}

func TestTargetList_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/targets", nil)
	w := httptest.NewRecorder()
	newRouter(&mockTargetUsecase{}, 1).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTargetClear(t *testing.T) {
	uc := &mockTargetUsecase{
		ClearFunc: func(ctx context.Context, userID uint) (int64, error) { return 2, nil },
	}

	req := httptest.NewRequest(http.MethodDelete, "/targets", nil)
	w := httptest.NewRecorder()
	newRouter(uc, 1).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTargetClear_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/targets", nil)
	w := httptest.NewRecorder()
	newRouter(&mockTargetUsecase{}, 1).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
