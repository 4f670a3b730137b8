package models

// Config 構造体はサーバーの起動設定を保持します。
// Values come from environment variables, each with a fallback default.
type Config struct {
	Port         string // PORT, default "3000"
	DBPath       string // FLY switches to the mounted volume path
	AuthUsername string // AUTH_USERNAME, default "admin"
	AuthPassword string // AUTH_PASSWORD, default "password123"
}
