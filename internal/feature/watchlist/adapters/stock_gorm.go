// Package adapters はwatchlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"watchlist_backend/internal/feature/watchlist/domain"
	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/feature/watchlist/usecase"

	"gorm.io/gorm"
)

// stockGorm はStockRepositoryインターフェースのGORM実装です。
type stockGorm struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockGorm)(nil)

// NewStockRepository は指定されたDB接続でstockGormリポジトリの新しいインスタンスを生成します。
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// StockModel はstocksテーブルの行を表す永続化モデルです。
// 統計値カラムはエンリッチメント成功まですべてNULLです。
// symbolに一意制約は無く、同じ銘柄を複数回登録できます。
type StockModel struct {
	ID     uint   `gorm:"primaryKey"`
	Symbol string `gorm:"size:32;not null;index"`

	Price         *float64
	ForwardPE     *float64 `gorm:"column:forward_pe"`
	ForwardEPS    *float64 `gorm:"column:forward_eps"`
	DividendYield *float64
	MA50          *float64 `gorm:"column:ma50"`
	MA200         *float64 `gorm:"column:ma200"`
}

func (StockModel) TableName() string {
	return "stocks"
}

func toEntity(m StockModel) entity.Stock {
	return entity.Stock{
		ID:            m.ID,
		Symbol:        m.Symbol,
		Price:         m.Price,
		ForwardPE:     m.ForwardPE,
		ForwardEPS:    m.ForwardEPS,
		DividendYield: m.DividendYield,
		MA50:          m.MA50,
		MA200:         m.MA200,
	}
}

// Insert は統計値が全てNULLの新しい行を作成し、採番済みidを含む行を返します。
func (r *stockGorm) Insert(ctx context.Context, symbol string) (entity.Stock, error) {
	m := StockModel{Symbol: symbol}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entity.Stock{}, err
	}
	return toEntity(m), nil
}

// FindByID はidで1行を取得します。存在しない場合はdomain.ErrStockNotFoundを返します。
func (r *stockGorm) FindByID(ctx context.Context, id uint) (entity.Stock, error) {
	var m StockModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Stock{}, domain.ErrStockNotFound
		}
		return entity.Stock{}, err
	}
	return toEntity(m), nil
}

// Update は該当行の全可変フィールドを丸ごと上書きします。
// マップで更新するのはnilの統計値もNULLとして書き込むためです（部分マージ禁止）。
// 行が存在しない場合はエラーにせず何もしません。
func (r *stockGorm) Update(ctx context.Context, stock entity.Stock) error {
	return r.db.WithContext(ctx).
		Model(&StockModel{}).
		Where("id = ?", stock.ID).
		Updates(map[string]interface{}{
			"symbol":         stock.Symbol,
			"price":          stock.Price,
			"forward_pe":     stock.ForwardPE,
			"forward_eps":    stock.ForwardEPS,
			"dividend_yield": stock.DividendYield,
			"ma50":           stock.MA50,
			"ma200":          stock.MA200,
		}).Error
}

// Search はフィルタ条件に一致する行をid順（挿入順）で返します。
// 条件はAND結合で、NULLカラムとの比較はSQLの三値論理によって行を除外します。
func (r *stockGorm) Search(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error) {
	q := r.db.WithContext(ctx).Model(&StockModel{})

	if filter.ForwardPEBelow != nil {
		q = q.Where("forward_pe < ?", *filter.ForwardPEBelow)
	}
	if filter.DividendYieldAbove != nil {
		q = q.Where("dividend_yield > ?", *filter.DividendYieldAbove)
	}
	if filter.PriceAboveMA50 {
		q = q.Where("price > ma50")
	}
	if filter.PriceAboveMA200 {
		q = q.Where("price > ma200")
	}

	var rows []StockModel
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Stock, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
