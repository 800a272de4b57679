// Package db はGORMによるデータベース接続の初期化を提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"watchlist_backend/internal/feature/watchlist/adapters"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDB は環境変数に従ってデータベースを開き、マイグレーション済みの接続を返します。
//
// DB_DRIVER:
//   - "sqlite"（デフォルト）: DB_PATH（デフォルト ./stocks.db）のファイルDB
//   - "mysql": DB_USER/DB_PASSWORD/DB_HOST/DB_PORT/DB_NAME から DSN を組み立て。
//     INSTANCE_CONNECTION_NAME があれば Cloud SQL の unix ソケットを使用
//   - "postgres": 同じ環境変数から host=... 形式の DSN を組み立て
//
// 接続は60秒までリトライします。マイグレーションは常に実行します
// （新規のSQLiteファイルをそのまま使えるようにするため）。
func OpenDB() *gorm.DB {
	dial := openDialector()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dial, &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	// マイグレーション（stocksテーブル）
	if err := db.AutoMigrate(&adapters.StockModel{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func openDialector() gorm.Dialector {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")

	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		instance := os.Getenv("INSTANCE_CONNECTION_NAME")
		var dsn string
		if instance != "" {
			dsn = fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				user, pass, instance, name)
		} else {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				user, pass, host, port, name)
		}
		return gmysql.Open(dsn)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, user, pass, name, port)
		return gpostgres.Open(dsn)
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "./stocks.db"
		}
		return gsqlite.Open(path)
	}
}
