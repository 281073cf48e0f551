package repository

import (
	"github.com/evandrarf/mathplay-be/internal/entity"
	"gorm.io/gorm"
)

type (
	TopicRepository interface {
		FindAll(db *gorm.DB) ([]entity.TopicRecord, error)
		FindByID(db *gorm.DB, id string) (*entity.TopicRecord, error)
	}

	topicRepository struct {
		db *gorm.DB
	}
)

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) FindAll(db *gorm.DB) ([]entity.TopicRecord, error) {
	if db == nil {
		db = r.db
	}
	var topics []entity.TopicRecord
	err := db.Order("position ASC").Find(&topics).Error
	return topics, err
}

func (r *topicRepository) FindByID(db *gorm.DB, id string) (*entity.TopicRecord, error) {
	if db == nil {
		db = r.db
	}
	var topic entity.TopicRecord
	err := db.Where("id = ?", id).First(&topic).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}
