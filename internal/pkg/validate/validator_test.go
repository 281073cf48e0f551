package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Topic      string `json:"topic" validate:"required"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Score      *int   `json:"score" validate:"required,min=0"`
}

func TestValidateTranslatesFieldErrors(t *testing.T) {
	v := NewValidator()
	negative := -5

	err := v.Validate(&sampleRequest{Difficulty: "expert", Score: &negative})

	var fields *FieldsError
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "topic is a required field", fields.Fields["topic"])
	assert.Equal(t, "difficulty must be one of [easy medium hard]", fields.Fields["difficulty"])
	assert.Equal(t, "score must be 0 or greater", fields.Fields["score"])
	assert.Equal(t, "Fields error: difficulty, score, topic", err.Error())
}

func TestValidateRequiredPointer(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{Topic: "addition"})

	var fields *FieldsError
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields.Fields, "score")
	assert.Len(t, fields.Fields, 1)
}

func TestValidateZeroScoreIsAllowed(t *testing.T) {
	v := NewValidator()
	zero := 0

	assert.NoError(t, v.Validate(&sampleRequest{Topic: "addition", Score: &zero}))
}
