package repository

import (
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/evandrarf/mathplay-be/database"
	"github.com/evandrarf/mathplay-be/internal/entity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	log := logrus.New()
	log.SetOutput(io.Discard)
	require.NoError(t, database.SeedTopics(db, log))
	return db
}

func TestScoreRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewScoreRepository(db)
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	for i, topic := range []string{"addition", "division", "addition"} {
		record := &entity.ScoreRecord{Date: base.Add(time.Duration(i) * time.Minute), Topic: topic, Score: (i + 1) * 10, Difficulty: "easy"}
		require.NoError(t, repo.Create(nil, record))
		assert.NotZero(t, record.ID)
	}

	all, err := repo.FindAll(nil, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int{10, 20, 30}, []int{all[0].Score, all[1].Score, all[2].Score})

	addition, err := repo.FindAll(db, "addition")
	require.NoError(t, err)
	require.Len(t, addition, 2)
	assert.Equal(t, 30, addition[1].Score)
}

func TestScoreRepositoryConcurrentCreates(t *testing.T) {
	repo := NewScoreRepository(newTestDB(t))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Create(nil, &entity.ScoreRecord{Date: time.Now(), Topic: fmt.Sprintf("t%d", i%3), Score: 10}))
		}(i)
	}
	wg.Wait()

	all, err := repo.FindAll(nil, "")
	require.NoError(t, err)
	assert.Len(t, all, 20)
}

func TestTopicRepository(t *testing.T) {
	repo := NewTopicRepository(newTestDB(t))

	topics, err := repo.FindAll(nil)
	require.NoError(t, err)
	require.Len(t, topics, 7)
	assert.Equal(t, "counting", topics[0].ID)
	assert.Equal(t, "comparison", topics[6].ID)

	topic, err := repo.FindByID(nil, "sequence")
	require.NoError(t, err)
	assert.Equal(t, "Sequence", topic.Title)

	_, err = repo.FindByID(nil, "geometry")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFeedbackRepository(t *testing.T) {
	repo := NewFeedbackRepository(newTestDB(t))

	require.NoError(t, repo.CreateFeedback(nil, &entity.FeedbackRecord{Date: time.Now(), Type: "general", Message: "Fun!", Rating: "happy"}))
	require.NoError(t, repo.CreateCartoonFeedback(nil, &entity.CartoonFeedbackRecord{Date: time.Now(), ChildName: "Ana", Age: "6", LikedCards: true}))

	feedback, err := repo.FindAllFeedback(nil)
	require.NoError(t, err)
	require.Len(t, feedback, 1)
	assert.Equal(t, "happy", feedback[0].Rating)

	cartoon, err := repo.FindAllCartoonFeedback(nil)
	require.NoError(t, err)
	require.Len(t, cartoon, 1)
	assert.True(t, cartoon[0].LikedCards)
}
