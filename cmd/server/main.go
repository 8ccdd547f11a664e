package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"finance_backend/internal/app/di"
	"finance_backend/internal/app/router"
	assetadapters "finance_backend/internal/feature/assets/adapters"
	assethandler "finance_backend/internal/feature/assets/transport/handler"
	assetusecase "finance_backend/internal/feature/assets/usecase"
	authadapters "finance_backend/internal/feature/auth/adapters"
	authhandler "finance_backend/internal/feature/auth/transport/handler"
	authusecase "finance_backend/internal/feature/auth/usecase"
	converthandler "finance_backend/internal/feature/conversion/transport/handler"
	convusecase "finance_backend/internal/feature/conversion/usecase"
	financehandler "finance_backend/internal/feature/marketdata/transport/handler"
	marketusecase "finance_backend/internal/feature/marketdata/usecase"
	targetadapters "finance_backend/internal/feature/targets/adapters"
	targethandler "finance_backend/internal/feature/targets/transport/handler"
	targetusecase "finance_backend/internal/feature/targets/usecase"
	txadapters "finance_backend/internal/feature/transactions/adapters"
	txhandler "finance_backend/internal/feature/transactions/transport/handler"
	txusecase "finance_backend/internal/feature/transactions/usecase"
	infradb "finance_backend/internal/platform/db"
	jwtmw "finance_backend/internal/platform/jwt"
	infraredis "finance_backend/internal/platform/redis"
)

func main() {
	// .env（あれば）を読み込む
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file loaded")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to file snapshot cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	assetRepo := assetadapters.NewAssetRepository(db)
	txRepo := txadapters.NewTransactionRepository(db)
	targetRepo := targetadapters.NewTargetRepository(db)

	// 市場データソースとスナップショットキャッシュ
	market := di.NewMarket()
	store := di.NewSnapshotStore(rdb)

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	snapshotUC := marketusecase.NewSnapshotUsecase(market, store, marketusecase.DefaultBaskets())
	convertUC := convusecase.NewConvertUsecase(snapshotUC)
	assetUC := assetusecase.NewAssetUsecase(assetRepo, snapshotUC, convertUC)
	txUC := txusecase.NewTransactionUsecase(txRepo)
	targetUC := targetusecase.NewTargetUsecase(targetRepo, convertUC)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	financeH := financehandler.NewFinanceHandler(snapshotUC)
	convertH := converthandler.NewConvertHandler(convertUC)
	assetH := assethandler.NewAssetHandler(assetUC)
	txH := txhandler.NewTransactionHandler(txUC)
	targetH := targethandler.NewTargetHandler(targetUC)

	// ルータ生成
	r := router.NewRouter(authH, financeH, convertH, assetH, txH, targetH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
