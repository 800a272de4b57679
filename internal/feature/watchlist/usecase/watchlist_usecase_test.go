package usecase_test

import (
	"context"
	"errors"
	"testing"

	"watchlist_backend/internal/feature/watchlist/domain"
	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/feature/watchlist/usecase"

	"github.com/stretchr/testify/assert"
)

// mockStockRepository はStockRepositoryインターフェースのモック実装です。
type mockStockRepository struct {
	InsertFunc   func(ctx context.Context, symbol string) (entity.Stock, error)
	FindByIDFunc func(ctx context.Context, id uint) (entity.Stock, error)
	UpdateFunc   func(ctx context.Context, stock entity.Stock) error
	SearchFunc   func(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error)
}

func (m *mockStockRepository) Insert(ctx context.Context, symbol string) (entity.Stock, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, symbol)
	}
	return entity.Stock{}, nil
}

func (m *mockStockRepository) FindByID(ctx context.Context, id uint) (entity.Stock, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return entity.Stock{}, nil
}

func (m *mockStockRepository) Update(ctx context.Context, stock entity.Stock) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, stock)
	}
	return nil
}

func (m *mockStockRepository) Search(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return nil, nil
}

// mockScheduler はEnrichSchedulerインターフェースのモック実装です。
// 予約されたidを記録します。
type mockScheduler struct {
	scheduled []uint
}

func (m *mockScheduler) ScheduleEnrich(id uint) {
	m.scheduled = append(m.scheduled, id)
}

// TestWatchlistUsecase_AddStock はAddStockの各種シナリオをテーブル駆動テストで検証します。
func TestWatchlistUsecase_AddStock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		symbol        string
		mockInsert    func(ctx context.Context, symbol string) (entity.Stock, error)
		wantErr       error
		wantScheduled []uint
	}{
		{
			name:   "success: inserts and schedules enrichment for the new id",
			symbol: "ABC",
			mockInsert: func(ctx context.Context, symbol string) (entity.Stock, error) {
				return entity.Stock{ID: 42, Symbol: symbol}, nil
			},
			wantScheduled: []uint{42},
		},
		{
			name:          "failure: empty symbol is rejected before any insert",
			symbol:        "",
			wantErr:       domain.ErrEmptySymbol,
			wantScheduled: nil,
		},
		{
			name:          "failure: whitespace-only symbol is rejected",
			symbol:        "   ",
			wantErr:       domain.ErrEmptySymbol,
			wantScheduled: nil,
		},
		{
			name:   "failure: store error surfaces and nothing is scheduled",
			symbol: "ABC",
			mockInsert: func(ctx context.Context, symbol string) (entity.Stock, error) {
				return entity.Stock{}, errors.New("database is locked")
			},
			wantErr:       errors.New("database is locked"),
			wantScheduled: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inserted := false
			repo := &mockStockRepository{
				InsertFunc: func(ctx context.Context, symbol string) (entity.Stock, error) {
					inserted = true
					if tt.mockInsert != nil {
						return tt.mockInsert(ctx, symbol)
					}
					return entity.Stock{}, nil
				},
			}
			scheduler := &mockScheduler{}
			uc := usecase.NewWatchlistUsecase(repo, scheduler)

			stock, err := uc.AddStock(context.Background(), tt.symbol)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantScheduled[0], stock.ID)
			}
			assert.Equal(t, tt.wantScheduled, scheduler.scheduled)
			if errors.Is(tt.wantErr, domain.ErrEmptySymbol) {
				assert.False(t, inserted, "validation failure must not touch the store")
			}
		})
	}
}

// TestWatchlistUsecase_AddStock_ReturnsBeforeEnrichment は登録レスポンスが
// エンリッチメントの結果に依存しないことを検証します（予約のみで完了を待たない）。
func TestWatchlistUsecase_AddStock_ReturnsBeforeEnrichment(t *testing.T) {
	t.Parallel()

	repo := &mockStockRepository{
		InsertFunc: func(ctx context.Context, symbol string) (entity.Stock, error) {
			return entity.Stock{ID: 7, Symbol: symbol}, nil
		},
	}
	scheduler := &mockScheduler{}
	uc := usecase.NewWatchlistUsecase(repo, scheduler)

	stock, err := uc.AddStock(context.Background(), "ABC")

	assert.NoError(t, err)
	// 返された行は未エンリッチのまま
	assert.Nil(t, stock.Price)
	assert.Nil(t, stock.ForwardPE)
	assert.Equal(t, []uint{7}, scheduler.scheduled)
}

// TestWatchlistUsecase_ListStocks はフィルタがそのままリポジトリへ渡ることを検証します。
func TestWatchlistUsecase_ListStocks(t *testing.T) {
	t.Parallel()

	threshold := 20.0
	var gotFilter usecase.StockFilter
	want := []entity.Stock{{ID: 1, Symbol: "ABC"}}

	repo := &mockStockRepository{
		SearchFunc: func(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error) {
			gotFilter = filter
			return want, nil
		},
	}
	uc := usecase.NewWatchlistUsecase(repo, &mockScheduler{})

	stocks, err := uc.ListStocks(context.Background(), usecase.StockFilter{
		ForwardPEBelow: &threshold,
		PriceAboveMA50: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, want, stocks)
	assert.Equal(t, &threshold, gotFilter.ForwardPEBelow)
	assert.True(t, gotFilter.PriceAboveMA50)
	assert.False(t, gotFilter.PriceAboveMA200)
	assert.Nil(t, gotFilter.DividendYieldAbove)
}

// TestWatchlistUsecase_ListStocks_Error はリポジトリのエラーがそのまま返ることを検証します。
func TestWatchlistUsecase_ListStocks_Error(t *testing.T) {
	t.Parallel()

	repo := &mockStockRepository{
		SearchFunc: func(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error) {
			return nil, errors.New("database connection failed")
		},
	}
	uc := usecase.NewWatchlistUsecase(repo, &mockScheduler{})

	stocks, err := uc.ListStocks(context.Background(), usecase.StockFilter{})

	assert.Nil(t, stocks)
	assert.EqualError(t, err, "database connection failed")
}
