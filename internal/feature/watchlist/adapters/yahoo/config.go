// Package yahoo はYahoo Finance互換の主要統計値APIのクライアントを提供します。
package yahoo

import (
	"os"
	"time"
)

// DefaultBaseURL は環境変数未設定時に使用するAPIのベースURLです。
const DefaultBaseURL = "https://yfapi.net/v6/finance"

// Config は主要統計値APIクライアントの設定を保持します。
type Config struct {
	APIKey  string        // 認証用APIキー
	BaseURL string        // APIのベースURL
	Timeout time.Duration // HTTPリクエストタイムアウト
}

// LoadConfig は環境変数からクライアント設定を読み込みます。
func LoadConfig() Config {
	base := os.Getenv("YAHOO_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("YAHOO_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
