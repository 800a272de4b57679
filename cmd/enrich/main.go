package main

import (
	"context"
	"log"
	"time"

	"watchlist_backend/internal/feature/watchlist/adapters"
	"watchlist_backend/internal/feature/watchlist/adapters/yahoo"
	"watchlist_backend/internal/feature/watchlist/usecase"
	infradb "watchlist_backend/internal/infrastructure/db"
	infrahttp "watchlist_backend/internal/infrastructure/http"
	"watchlist_backend/internal/shared/ratelimiter"
)

// ウォッチリスト全銘柄の統計値を取り直すバッチ。
// サーバー稼働中にエンリッチメントが失敗したまま残った行の救済用。
func main() {
	db := infradb.OpenDB()
	stockRepo := adapters.NewStockRepository(db)

	cfg := yahoo.LoadConfig()
	marketRepo := yahoo.NewYahooMarket(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	limiter := ratelimiter.NewRateLimiter(60, time.Minute)

	uc := usecase.NewEnrichUsecase(stockRepo, marketRepo, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := uc.EnrichAll(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("enrich ok")
}
