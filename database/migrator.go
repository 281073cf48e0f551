package database

import (
	"github.com/evandrarf/mathplay-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.TopicRecord{},
		&entity.ScoreRecord{},
		&entity.FeedbackRecord{},
		&entity.CartoonFeedbackRecord{},
	)
	return err
}
