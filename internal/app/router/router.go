package router

import (
	stockhandler "watchlist_backend/internal/feature/watchlist/transport/handler"
	"watchlist_backend/internal/interface/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter はウォッチリストAPIのルータを生成します。
// templatesGlob が空でなければHTMLテンプレートを読み込みます。
func NewRouter(stock *stockhandler.StockHandler, templatesGlob string) *gin.Engine {
	r := gin.Default()

	// ブラウザから直接叩かれるのでCORSを許可
	r.Use(cors.Default())

	if templatesGlob != "" {
		r.LoadHTMLGlob(templatesGlob)
	}

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// ウォッチリスト画面（フィルタ付き）
	r.GET("/", stock.Home)
	// ウォッチリストJSON API
	r.GET("/api/stocks", stock.List)
	// 銘柄登録（統計値の取得はバックグラウンド）
	r.POST("/stock", stock.Create)

	return r
}
