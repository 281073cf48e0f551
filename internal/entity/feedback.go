package entity

import "time"

// FeedbackRecord - general feedback form filled in by grown-ups
type FeedbackRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Date      time.Time `gorm:"not null" json:"date"`
	Type      string    `gorm:"size:50;default:general" json:"type"`
	Message   string    `gorm:"type:text" json:"message"`
	Rating    string    `gorm:"size:50" json:"rating"` // very_happy, happy, okay, confused, not_happy
	CreatedAt time.Time `json:"created_at"`
}

func (FeedbackRecord) TableName() string {
	return "feedback"
}

// CartoonFeedbackRecord - feedback form filled in by the child
type CartoonFeedbackRecord struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	Date               time.Time `gorm:"not null" json:"date"`
	ChildName          string    `gorm:"size:100;not null" json:"child_name"`
	Age                string    `gorm:"size:10;not null" json:"age"`
	Learning           string    `gorm:"size:20" json:"learning"`    // Focus, Memory, Both
	EasyToUse          string    `gorm:"size:10" json:"easy_to_use"` // Yes, No
	LikedVisuals       bool      `json:"liked_visuals"`
	LikedCards         bool      `json:"liked_cards"`
	LikedCelebrations  bool      `json:"liked_celebrations"`
	AdditionalFeedback string    `gorm:"type:text" json:"additional_feedback"`
	CreatedAt          time.Time `json:"created_at"`
}

func (CartoonFeedbackRecord) TableName() string {
	return "cartoon_feedback"
}
