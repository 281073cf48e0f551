package repository

import (
	"github.com/evandrarf/mathplay-be/internal/entity"
	"gorm.io/gorm"
)

type (
	ScoreRepository interface {
		Create(db *gorm.DB, score *entity.ScoreRecord) error
		FindAll(db *gorm.DB, topic string) ([]entity.ScoreRecord, error)
	}

	scoreRepository struct {
		db *gorm.DB
	}
)

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

// Create is a single INSERT, so concurrent saves never clobber each other.
func (r *scoreRepository) Create(db *gorm.DB, score *entity.ScoreRecord) error {
	if db == nil {
		db = r.db
	}
	return db.Create(score).Error
}

// FindAll returns scores oldest first; an empty topic means every topic.
func (r *scoreRepository) FindAll(db *gorm.DB, topic string) ([]entity.ScoreRecord, error) {
	if db == nil {
		db = r.db
	}
	var scores []entity.ScoreRecord
	query := db.Order("date ASC").Order("id ASC")
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}
	err := query.Find(&scores).Error
	return scores, err
}
