package repository

import (
	"github.com/evandrarf/mathplay-be/internal/entity"
	"gorm.io/gorm"
)

type (
	FeedbackRepository interface {
		CreateFeedback(db *gorm.DB, feedback *entity.FeedbackRecord) error
		CreateCartoonFeedback(db *gorm.DB, feedback *entity.CartoonFeedbackRecord) error
		FindAllFeedback(db *gorm.DB) ([]entity.FeedbackRecord, error)
		FindAllCartoonFeedback(db *gorm.DB) ([]entity.CartoonFeedbackRecord, error)
	}

	feedbackRepository struct {
		db *gorm.DB
	}
)

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateFeedback(db *gorm.DB, feedback *entity.FeedbackRecord) error {
	if db == nil {
		db = r.db
	}
	return db.Create(feedback).Error
}

func (r *feedbackRepository) CreateCartoonFeedback(db *gorm.DB, feedback *entity.CartoonFeedbackRecord) error {
	if db == nil {
		db = r.db
	}
	return db.Create(feedback).Error
}

func (r *feedbackRepository) FindAllFeedback(db *gorm.DB) ([]entity.FeedbackRecord, error) {
	if db == nil {
		db = r.db
	}
	var feedback []entity.FeedbackRecord
	err := db.Order("id ASC").Find(&feedback).Error
	return feedback, err
}

func (r *feedbackRepository) FindAllCartoonFeedback(db *gorm.DB) ([]entity.CartoonFeedbackRecord, error) {
	if db == nil {
		db = r.db
	}
	var feedback []entity.CartoonFeedbackRecord
	err := db.Order("id ASC").Find(&feedback).Error
	return feedback, err
}
