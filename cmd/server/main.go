package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"watchlist_backend/internal/app/router"
	"watchlist_backend/internal/feature/watchlist/adapters"
	"watchlist_backend/internal/feature/watchlist/adapters/yahoo"
	stockhandler "watchlist_backend/internal/feature/watchlist/transport/handler"
	"watchlist_backend/internal/feature/watchlist/usecase"
	infradb "watchlist_backend/internal/infrastructure/db"
	infrahttp "watchlist_backend/internal/infrastructure/http"
	"watchlist_backend/internal/shared/ratelimiter"
	"watchlist_backend/internal/shared/taskqueue"
)

// enrichScheduler はユースケースのEnrichSchedulerをタスクキューへ橋渡しします。
type enrichScheduler struct {
	queue *taskqueue.Queue
	uc    *usecase.EnrichUsecase
}

func (s *enrichScheduler) ScheduleEnrich(id uint) {
	s.queue.Submit(fmt.Sprintf("enrich stock %d", id), func(ctx context.Context) error {
		return s.uc.Enrich(ctx, id)
	})
}

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Repository
	stockRepo := adapters.NewStockRepository(db)
	marketCfg := yahoo.LoadConfig()
	marketRepo := yahoo.NewYahooMarket(marketCfg, infrahttp.NewHTTPClient(marketCfg.Timeout))

	// バックグラウンドのエンリッチメント基盤
	limiter := ratelimiter.NewRateLimiter(60, time.Minute)
	enrichUC := usecase.NewEnrichUsecase(stockRepo, marketRepo, limiter)
	queue := taskqueue.New(4, 64)
	defer queue.Shutdown()

	// Usecase
	watchUC := usecase.NewWatchlistUsecase(stockRepo, &enrichScheduler{queue: queue, uc: enrichUC})

	// Handler
	stockH := stockhandler.NewStockHandler(watchUC)

	// ルータ生成
	router := router.NewRouter(stockH, "templates/*.html")

	// APIキー未設定の注意喚起（開発中）
	if os.Getenv("YAHOO_API_KEY") == "" {
		log.Println("[WARN] YAHOO_API_KEY is not set. Enrichment calls will likely fail.")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
