package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	assetentity "finance_backend/internal/feature/assets/domain/entity"
	authentity "finance_backend/internal/feature/auth/domain/entity"
	targetentity "finance_backend/internal/feature/targets/domain/entity"
	txentity "finance_backend/internal/feature/transactions/domain/entity"
)

// OpenDB はデータベース接続を確立します。DB_HOSTが設定されていればPostgreSQL、
// 未設定ならローカル開発用のSQLiteファイルに接続します。
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")

	var dial gorm.Dialector
	if host != "" {
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host,
			os.Getenv("DB_PORT"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"))
		dial = gpostgres.Open(dsn)
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "./finance.db"
		}
		dial = gsqlite.Open(path)
	}

	var (
		db  *gorm.DB
		err error
	)

	// コンテナ起動順の揺らぎを吸収するため、一定時間リトライする
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dial, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&assetentity.Asset{},
			&txentity.Transaction{},
			&targetentity.Target{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
