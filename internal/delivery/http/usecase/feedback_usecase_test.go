package usecase

import (
	"context"
	"testing"

	httpEntity "github.com/evandrarf/mathplay-be/internal/delivery/http/entity"
	"github.com/evandrarf/mathplay-be/internal/delivery/http/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackUsecase(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewFeedbackRepository(db)
	u := NewFeedbackUsecase(FeedbackConfig{DB: db, Repository: repo, Log: quietLogger()})
	ctx := context.Background()

	fb, err := u.SaveFeedback(ctx, httpEntity.FeedbackRequest{Message: " Loved the stars ", Rating: "very_happy"})
	require.NoError(t, err)
	assert.Equal(t, "general", fb.Type)
	assert.Equal(t, "Loved the stars", fb.Message)

	cartoon, err := u.SaveCartoonFeedback(ctx, httpEntity.CartoonFeedbackRequest{
		ChildName:     " Mia ",
		Age:           "5",
		Learning:      "Both",
		EasyToUse:     "Yes",
		LikedFeatures: httpEntity.LikedFeatures{Visuals: true, Celebrations: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mia", cartoon.ChildName)

	stored, err := repo.FindAllCartoonFeedback(nil)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].LikedVisuals)
	assert.False(t, stored[0].LikedCards)
	assert.True(t, stored[0].LikedCelebrations)
}
