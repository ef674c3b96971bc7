// Package config はアプリケーション設定を管理します。
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// データディレクトリのパス
	DataDir string

	// HTTPサーバーのポート
	Port string

	// サインアップ時に管理者になるメールアドレス
	AdminEmails []string

	// 通知をバックグラウンドで配信するかどうか
	NotifyAsync bool

	// セッションの有効期間
	SessionTTL time.Duration
}

// NewConfig は環境変数から設定を読み込み、Configインスタンスを生成します。
// カレントディレクトリに .env があれば先に読み込みます。既に設定済みの環境変数は上書きしません。
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	// データディレクトリの設定
	dataDir := os.Getenv("TASKTRACK_DATA_DIR")
	if dataDir == "" {
		dataDir = filepath.Join(".", "data")
	}

	// ポートの設定
	port := os.Getenv("TASKTRACK_SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	var adminEmails []string
	for _, e := range strings.Split(os.Getenv("TASKTRACK_ADMIN_EMAILS"), ",") {
		if e = strings.TrimSpace(e); e != "" {
			adminEmails = append(adminEmails, e)
		}
	}

	notifyAsync := false
	if v := os.Getenv("TASKTRACK_NOTIFY_ASYNC"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TASKTRACK_NOTIFY_ASYNC: %w", err)
		}
		notifyAsync = b
	}

	// 0 は既定値 (30日) を意味する
	var sessionTTL time.Duration
	if v := os.Getenv("TASKTRACK_SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TASKTRACK_SESSION_TTL: %w", err)
		}
		sessionTTL = d
	}

	return &Config{
		DataDir:     dataDir,
		Port:        port,
		AdminEmails: adminEmails,
		NotifyAsync: notifyAsync,
		SessionTTL:  sessionTTL,
	}, nil
}
