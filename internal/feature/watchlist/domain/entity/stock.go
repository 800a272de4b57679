// Package entity defines the domain models for the watchlist feature.
package entity

// Stock represents a tracked ticker symbol in the watchlist.
// The statistic fields are nil until the first successful enrichment run
// and are overwritten as a whole on every run after that. A Stock with all
// statistic fields nil is simply "unenriched"; there is no separate state.
type Stock struct {
	ID            uint
	Symbol        string   // Stock ticker symbol (e.g., "AAPL", "7203.T")
	Price         *float64 // Previous closing price
	ForwardPE     *float64 // Forward price/earnings ratio
	ForwardEPS    *float64 // Forward earnings per share
	DividendYield *float64 // Annual dividend / share price
	MA50          *float64 // 50-day moving average
	MA200         *float64 // 200-day moving average
}

// KeyStatistics は外部プロバイダーから1回のルックアップで取得する統計値の束です。
// 6つのフィールドは常に同じレスポンスから揃って設定されます。
type KeyStatistics struct {
	MA200         float64
	MA50          float64
	PreviousClose float64
	ForwardPE     float64
	ForwardEPS    float64
	DividendYield float64
}

// ApplyStatistics は取得した統計値で全フィールドを丸ごと上書きします。
// 部分的なマージは行いません。
func (s *Stock) ApplyStatistics(ks KeyStatistics) {
	s.MA200 = ptr(ks.MA200)
	s.MA50 = ptr(ks.MA50)
	s.Price = ptr(ks.PreviousClose)
	s.ForwardPE = ptr(ks.ForwardPE)
	s.ForwardEPS = ptr(ks.ForwardEPS)
	s.DividendYield = ptr(ks.DividendYield)
}

func ptr(v float64) *float64 { return &v }
