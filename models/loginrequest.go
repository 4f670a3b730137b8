package models

// LoginRequest はクライアントからのログインリクエストを表します。
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionRequest is the body of POST /api/sessions.
// Pointers distinguish a missing numeric field from an explicit zero.
type SessionRequest struct {
	Date     string   `json:"date"`
	Distance *float64 `json:"distance"`
	Duration *float64 `json:"duration"`
}
