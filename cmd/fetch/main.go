// Command fetch forces one market-data snapshot fetch and prints it as JSON.
// Useful for inspecting what the provider returns without running the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"finance_backend/internal/app/di"
	"finance_backend/internal/feature/marketdata/usecase"
	"finance_backend/internal/platform/cache"
)

func main() {
	currencies := flag.String("currency", "", "comma-separated currency codes (default basket if empty)")
	stocks := flag.String("stock", "", "comma-separated stock symbols (default basket if empty)")
	cryptos := flag.String("crypto", "", "comma-separated crypto codes (default basket if empty)")
	cachePath := flag.String("cache", "", "snapshot cache file path")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file loaded")
	}

	market := di.NewMarket()
	store := cache.NewSnapshotFile(*cachePath)
	uc := usecase.NewSnapshotUsecase(market, store, usecase.DefaultBaskets())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	snap, err := uc.GetSnapshot(ctx, splitList(*currencies), splitList(*stocks), splitList(*cryptos))
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		log.Fatal(err)
	}
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}
