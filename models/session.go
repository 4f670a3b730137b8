package models

import "time"

// Session モデルの定義。1回のトレッドミル走行記録です。
// Records are insert/delete only; there is no update path.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"not null" json:"date"` // YYYY-MM-DD, local calendar date
	Distance  float64   `gorm:"not null" json:"distance"`
	Duration  float64   `gorm:"not null" json:"duration"` // minutes
	CreatedAt time.Time `json:"created_at"`
}

func (Session) TableName() string {
	return "sessions"
}
