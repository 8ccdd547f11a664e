package router

import (
	"github.com/gin-gonic/gin"

	assethandler "finance_backend/internal/feature/assets/transport/handler"
	authhandler "finance_backend/internal/feature/auth/transport/handler"
	converthandler "finance_backend/internal/feature/conversion/transport/handler"
	financehandler "finance_backend/internal/feature/marketdata/transport/handler"
	targethandler "finance_backend/internal/feature/targets/transport/handler"
	txhandler "finance_backend/internal/feature/transactions/transport/handler"
	"finance_backend/internal/platform/http/handler"
	jwtmw "finance_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with all API routes.
func NewRouter(
	auth *authhandler.AuthHandler,
	finance *financehandler.FinanceHandler,
	convert *converthandler.ConvertHandler,
	assets *assethandler.AssetHandler,
	transactions *txhandler.TransactionHandler,
	targets *targethandler.TargetHandler,
) *gin.Engine {
	r := gin.Default()

	// 認証不要
	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// 認証必須のルート（リクエストヘッダーにJWTが必要）
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.GET("/finance", finance.GetFinanceData)
		authed.GET("/convert", convert.Convert)

		authed.GET("/assets", assets.List)
		authed.POST("/assets", assets.Create)
		authed.PUT("/assets", assets.Update)
		authed.DELETE("/assets/:id", assets.Delete)

		authed.GET("/transactions", transactions.List)
		authed.POST("/transactions", transactions.Create)

		authed.GET("/targets", targets.List)
		authed.POST("/targets", targets.Set)
		authed.DELETE("/targets", targets.Clear)
	}

	return r
}
