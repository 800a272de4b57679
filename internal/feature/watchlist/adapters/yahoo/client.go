package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"watchlist_backend/internal/feature/watchlist/adapters/yahoo/dto"
	"watchlist_backend/internal/feature/watchlist/domain"
	"watchlist_backend/internal/feature/watchlist/domain/entity"
)

// YahooMarket は主要統計値APIを呼び出すMarketRepository実装です。
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// NewYahooMarket は新しいYahooMarketを作成します。
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// GetKeyStatistics は銘柄の主要統計値6項目を取得して返します。
// 6項目のうち1つでもレスポンスに欠けていればバンドル全体を不完全として
// domain.ErrIncompleteStatisticsを返します。部分的な結果は返しません。
func (y *YahooMarket) GetKeyStatistics(ctx context.Context, symbol string) (entity.KeyStatistics, error) {
	q := url.Values{}
	// クエリの追加
	q.Set("symbol", symbol)
	q.Set("apikey", y.cfg.APIKey)

	// URLの生成
	u := fmt.Sprintf("%s/key_statistics?%s", y.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return entity.KeyStatistics{}, err
	}

	res, err := y.client.Do(req)
	if err != nil {
		return entity.KeyStatistics{}, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return entity.KeyStatistics{}, fmt.Errorf("key_statistics http %d", res.StatusCode)
	}

	var body dto.KeyStatisticsResponse
	// JSONを構造体にデコード
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entity.KeyStatistics{}, err
	}
	if body.Status == "error" {
		return entity.KeyStatistics{}, fmt.Errorf("key_statistics: %s", body.Message)
	}

	// 欠落フィールドの検出
	fields := map[string]*float64{
		"twoHundredDayAverage": body.TwoHundredDayAverage,
		"fiftyDayAverage":      body.FiftyDayAverage,
		"previousClose":        body.PreviousClose,
		"forwardPE":            body.ForwardPE,
		"forwardEps":           body.ForwardEps,
		"dividendYield":        body.DividendYield,
	}
	for name, v := range fields {
		if v == nil {
			return entity.KeyStatistics{}, fmt.Errorf("%w: missing %s", domain.ErrIncompleteStatistics, name)
		}
	}

	// domainに変換
	return entity.KeyStatistics{
		MA200:         *body.TwoHundredDayAverage,
		MA50:          *body.FiftyDayAverage,
		PreviousClose: *body.PreviousClose,
		ForwardPE:     *body.ForwardPE,
		ForwardEPS:    *body.ForwardEps,
		DividendYield: *body.DividendYield,
	}, nil
}
