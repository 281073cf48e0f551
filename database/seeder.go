package database

import (
	"fmt"

	"github.com/evandrarf/mathplay-be/internal/entity"
	"github.com/evandrarf/mathplay-be/internal/game"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TopicCatalog is the menu shown on the topics page, in display order.
var TopicCatalog = []entity.TopicRecord{
	{ID: string(game.TopicCounting), Title: "Counting", Description: "Count the apples, balloons and stars. Tap each one as you go!"},
	{ID: string(game.TopicAddition), Title: "Addition", Description: "Put two groups together and find out how many there are."},
	{ID: string(game.TopicSubtraction), Title: "Subtraction", Description: "Cross out some lines and count what is left."},
	{ID: string(game.TopicMultiplication), Title: "Multiplication", Description: "Count groups of lines to learn times tables."},
	{ID: string(game.TopicDivision), Title: "Division", Description: "Share things out equally. Every answer is a whole number."},
	{ID: string(game.TopicSequence), Title: "Sequence", Description: "Spot the pattern and pick the number that comes next."},
	{ID: string(game.TopicComparison), Title: "Comparisons", Description: "Bigger, smaller or the same? Choose >, < or =."},
}

func SeedTopics(db *gorm.DB, log *logrus.Logger) error {
	var count int64
	if err := db.Model(&entity.TopicRecord{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count topics: %w", err)
	}
	if count > 0 {
		log.Info("Topic catalog already seeded, skipping...")
		return nil
	}

	for i, tpl := range TopicCatalog {
		topic := tpl
		topic.Position = i + 1
		if err := db.Create(&topic).Error; err != nil {
			return fmt.Errorf("failed to seed topic %s: %w", topic.ID, err)
		}
	}

	log.WithField("count", len(TopicCatalog)).Info("Seeded topic catalog")
	return nil
}
