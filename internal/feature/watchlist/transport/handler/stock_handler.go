// Package handler はwatchlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"watchlist_backend/internal/feature/watchlist/domain"
	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/feature/watchlist/transport/http/dto"
	"watchlist_backend/internal/feature/watchlist/usecase"

	"github.com/gin-gonic/gin"
)

// WatchlistUsecase はウォッチリスト操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type WatchlistUsecase interface {
	AddStock(ctx context.Context, symbol string) (entity.Stock, error)
	ListStocks(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error)
}

// StockHandler はウォッチリストのHTTPリクエストを処理します。
type StockHandler struct {
	uc WatchlistUsecase
}

// NewStockHandler は指定されたusecaseでStockHandlerの新しいインスタンスを生成します。
func NewStockHandler(uc WatchlistUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// filterEcho はテンプレートへエコーバックするフィルタ文字列です。
type filterEcho struct {
	ForwardPE     string
	DividendYield string
	MA50          bool
	MA200         bool
}

// parseFilter はクエリパラメータからStockFilterを組み立てます。
//
// forward_pe / dividend_yield は数値の閾値として解釈し、空文字列は未指定として
// 無視します（元の挙動と同じ）。数値として解釈できない場合はエラーを返します。
// ma50 / ma200 は値にかかわらず、パラメータの存在だけで有効になります。
func parseFilter(c *gin.Context) (usecase.StockFilter, filterEcho, error) {
	var f usecase.StockFilter
	var echo filterEcho

	if raw := c.Query("forward_pe"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, echo, errors.New("forward_pe must be a number")
		}
		f.ForwardPEBelow = &v
		echo.ForwardPE = raw
	}
	if raw := c.Query("dividend_yield"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, echo, errors.New("dividend_yield must be a number")
		}
		f.DividendYieldAbove = &v
		echo.DividendYield = raw
	}
	// 値は無視し、存在のみを見る
	if _, ok := c.GetQuery("ma50"); ok {
		f.PriceAboveMA50 = true
		echo.MA50 = true
	}
	if _, ok := c.GetQuery("ma200"); ok {
		f.PriceAboveMA200 = true
		echo.MA200 = true
	}
	return f, echo, nil
}

func toItems(stocks []entity.Stock) []dto.StockItem {
	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.StockItem{
			ID:            s.ID,
			Symbol:        s.Symbol,
			Price:         s.Price,
			ForwardPE:     s.ForwardPE,
			ForwardEPS:    s.ForwardEPS,
			DividendYield: s.DividendYield,
			MA50:          s.MA50,
			MA200:         s.MA200,
		})
	}
	return out
}

// Home はフィルタ適用済みのウォッチリストをHTMLで表示します。
//
// エンドポイント例:
// GET /?forward_pe=20&dividend_yield=0.02&ma50&ma200
func (h *StockHandler) Home(c *gin.Context) {
	filter, echo, err := parseFilter(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	stocks, err := h.uc.ListStocks(c.Request.Context(), filter)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"stocks":         toItems(stocks),
		"forward_pe":     echo.ForwardPE,
		"dividend_yield": echo.DividendYield,
		"ma50":           echo.MA50,
		"ma200":          echo.MA200,
	})
}

// List はフィルタ適用済みのウォッチリストをJSONで返します。
//
// エンドポイント例:
// GET /api/stocks?forward_pe=20&ma50
func (h *StockHandler) List(c *gin.Context) {
	filter, _, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stocks, err := h.uc.ListStocks(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toItems(stocks))
}

// Create は銘柄をウォッチリストに登録するAPIです。
// 登録成功は即座に返し、統計値の取得はバックグラウンドで行われます。
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.AddStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	if _, err := h.uc.AddStock(c.Request.Context(), req.Symbol); err != nil {
		if errors.Is(err, domain.ErrEmptySymbol) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.AddStockResp{
		Code:    "success",
		Message: "stock was added to the database",
	})
}
