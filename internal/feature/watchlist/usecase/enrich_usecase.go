package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"watchlist_backend/internal/feature/watchlist/domain"
	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/shared/ratelimiter"
)

// enrichTimeout は1回のエンリッチメント実行全体の上限時間です。
// 外部プロバイダー呼び出しが無期限に滞留しないように必ず打ち切ります。
const enrichTimeout = 30 * time.Second

// MarketRepository は銘柄の主要統計値を取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	GetKeyStatistics(ctx context.Context, symbol string) (entity.KeyStatistics, error)
}

// EnrichUsecase は外部プロバイダーから統計値を取得し、保存済みの行へ書き戻すユースケースです。
type EnrichUsecase struct {
	stocks      StockRepository
	market      MarketRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewEnrichUsecase は新しいEnrichUsecaseを作成します。
func NewEnrichUsecase(stocks StockRepository, market MarketRepository, rateLimiter ratelimiter.RateLimiterInterface) *EnrichUsecase {
	return &EnrichUsecase{stocks: stocks, market: market, rateLimiter: rateLimiter}
}

// Enrich は指定idの銘柄の統計値6項目を取得し、行を丸ごと上書きします。
//
// リクエスト/レスポンスサイクルの外で実行される前提です。行が既に存在しない
// 場合はエラーにせず黙って終了します。プロバイダー呼び出しの失敗は呼び出し元
// （タスクランナー）へ返してログに残しますが、HTTPクライアントには届きません。
// リトライは行いません。
func (eu *EnrichUsecase) Enrich(ctx context.Context, id uint) error {
	eu.rateLimiter.WaitIfNeeded()

	ctx, cancel := context.WithTimeout(ctx, enrichTimeout)
	defer cancel()

	stock, err := eu.stocks.FindByID(ctx, id)
	if errors.Is(err, domain.ErrStockNotFound) {
		// 対象がもう無ければやることは無い
		slog.Info("enrich target missing, skipping", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load stock %d: %w", id, err)
	}

	stats, err := eu.market.GetKeyStatistics(ctx, stock.Symbol)
	if err != nil {
		return fmt.Errorf("fetch statistics for %s: %w", stock.Symbol, err)
	}

	stock.ApplyStatistics(stats)
	if err := eu.stocks.Update(ctx, stock); err != nil {
		return fmt.Errorf("store statistics for %s: %w", stock.Symbol, err)
	}
	return nil
}

// EnrichAll は保存されている全銘柄の統計値を順番に取り直します。
// 1つの銘柄でエラーが発生しても処理を止めずにログに出力し、次の処理を続けます。
func (eu *EnrichUsecase) EnrichAll(ctx context.Context) error {
	stocks, err := eu.stocks.Search(ctx, StockFilter{})
	if err != nil {
		return err
	}

	for _, s := range stocks {
		if err := eu.Enrich(ctx, s.ID); err != nil {
			slog.Error("failed to enrich stock", "symbol", s.Symbol, "id", s.ID, "error", err)
			continue // 次のsymbolへ
		}
	}
	return nil
}
