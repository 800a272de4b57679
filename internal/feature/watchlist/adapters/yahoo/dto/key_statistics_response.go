// Package dto は主要統計値APIレスポンスのデータ転送オブジェクトを定義します。
package dto

// KeyStatisticsResponse はkey_statisticsエンドポイントからのJSONレスポンスを表します。
// 統計値フィールドはポインタで受け、欠落をnilとして検出できるようにします。
type KeyStatisticsResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Symbol  string `json:"symbol"`

	TwoHundredDayAverage *float64 `json:"twoHundredDayAverage"`
	FiftyDayAverage      *float64 `json:"fiftyDayAverage"`
	PreviousClose        *float64 `json:"previousClose"`
	ForwardPE            *float64 `json:"forwardPE"`
	ForwardEps           *float64 `json:"forwardEps"`
	DividendYield        *float64 `json:"dividendYield"`
}
