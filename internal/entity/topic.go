package entity

import "time"

// TopicRecord - topic catalog entry, ID is the topic slug (e.g. "addition")
type TopicRecord struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Position    int       `gorm:"not null;default:0" json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (TopicRecord) TableName() string {
	return "topics"
}
