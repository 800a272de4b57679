package dto

// AddStockResp はPOST /stockの成功レスポンスです。
// エンリッチメントの完了を待たずに返されます。
type AddStockResp struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StockItem はウォッチリスト1行のレスポンスDTOです。
// 統計値は未エンリッチの間nullになります。
type StockItem struct {
	ID            uint     `json:"id"`
	Symbol        string   `json:"symbol"`
	Price         *float64 `json:"price"`          // 前日終値
	ForwardPE     *float64 `json:"forward_pe"`     // 予想PER
	ForwardEPS    *float64 `json:"forward_eps"`    // 予想EPS
	DividendYield *float64 `json:"dividend_yield"` // 配当利回り
	MA50          *float64 `json:"ma50"`           // 50日移動平均
	MA200         *float64 `json:"ma200"`          // 200日移動平均
}
