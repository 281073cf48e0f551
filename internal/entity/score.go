package entity

import "time"

// ScoreRecord - one finished game, append only
type ScoreRecord struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Date       time.Time `gorm:"not null;index" json:"date"`
	Topic      string    `gorm:"size:32;not null;index" json:"topic"`
	Score      int       `gorm:"not null" json:"score"`
	Difficulty string    `gorm:"size:20" json:"difficulty"`
	SessionID  string    `gorm:"size:64;index" json:"session_id,omitempty"` // empty when posted directly
	Answered   int       `gorm:"default:0" json:"answered"`
	Correct    int       `gorm:"default:0" json:"correct"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ScoreRecord) TableName() string {
	return "scores"
}
