// Package usecase はウォッチリスト操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"watchlist_backend/internal/feature/watchlist/domain"
	"watchlist_backend/internal/feature/watchlist/domain/entity"
)

// StockFilter は一覧取得に適用する絞り込み条件です。
// nilまたはfalseの条件は適用されません。複数指定した場合はAND結合されます。
// 統計値がNULLの行は、その比較条件では常に除外されます。
type StockFilter struct {
	ForwardPEBelow     *float64 // forward_pe < 閾値
	DividendYieldAbove *float64 // dividend_yield > 閾値
	PriceAboveMA50     bool     // price > ma50
	PriceAboveMA200    bool     // price > ma200
}

// StockRepository abstracts the persistence layer for watchlist stock rows.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type StockRepository interface {
	// Insert creates a new row with the given symbol and all statistic
	// fields NULL, and returns the row including its assigned id.
	Insert(ctx context.Context, symbol string) (entity.Stock, error)
	// FindByID はidで1行を取得します。存在しない場合はdomain.ErrStockNotFoundを返します。
	FindByID(ctx context.Context, id uint) (entity.Stock, error)
	// Update は該当行の全可変フィールドを丸ごと上書きします。
	// 行が存在しない場合は何もしません（no-op）。
	Update(ctx context.Context, stock entity.Stock) error
	// Search はフィルタ条件に一致する行を挿入順で返します。
	Search(ctx context.Context, filter StockFilter) ([]entity.Stock, error)
}

// EnrichScheduler schedules a background enrichment run for a stock id.
// Submission is fire-and-forget: there is no return channel, and the
// submitter's response never depends on the task outcome.
type EnrichScheduler interface {
	ScheduleEnrich(id uint)
}

// WatchlistUsecase はウォッチリストの登録・一覧取得のユースケースを定義します。
type WatchlistUsecase struct {
	stocks    StockRepository
	scheduler EnrichScheduler
}

// NewWatchlistUsecase は新しいWatchlistUsecaseを作成します。
func NewWatchlistUsecase(stocks StockRepository, scheduler EnrichScheduler) *WatchlistUsecase {
	return &WatchlistUsecase{stocks: stocks, scheduler: scheduler}
}

// AddStock は銘柄をウォッチリストに登録し、バックグラウンドの統計値取得を予約します。
// レスポンスはエンリッチメントの完了を待ちません。
// 空白のみのシンボルはdomain.ErrEmptySymbolで拒否します。
// 重複シンボルは許容されます（一意制約なし、元の挙動を維持）。
func (u *WatchlistUsecase) AddStock(ctx context.Context, symbol string) (entity.Stock, error) {
	if strings.TrimSpace(symbol) == "" {
		return entity.Stock{}, domain.ErrEmptySymbol
	}

	stock, err := u.stocks.Insert(ctx, symbol)
	if err != nil {
		return entity.Stock{}, err
	}

	u.scheduler.ScheduleEnrich(stock.ID)
	return stock, nil
}

// ListStocks はフィルタ条件に一致する銘柄の一覧を返します。
// 同時に実行中のエンリッチメントとの順序は保証されず、未エンリッチの行が
// 見えることがあります。これは仕様どおりの挙動です。
func (u *WatchlistUsecase) ListStocks(ctx context.Context, filter StockFilter) ([]entity.Stock, error) {
	return u.stocks.Search(ctx, filter)
}
