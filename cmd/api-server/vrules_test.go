package main

import (
	"testing"
	"time"

	"github.com/protomem/exercise-tracker/internal/database"
	"github.com/protomem/exercise-tracker/internal/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantOK   bool
	}{
		{name: "long enough", username: "gopher", wantOK: true},
		{name: "exactly four characters", username: "anna", wantOK: true},
		{name: "too short", username: "bob", wantOK: false},
		{name: "blank", username: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v validator.Validator
			validateUsername(&v, tt.username)
			assert.Equal(t, tt.wantOK, !v.HasErrors())
		})
	}
}

func TestValidateNewExercise(t *testing.T) {
	valid := requestAddExercise{Description: "jogging", Duration: 30, Date: "2024-01-15"}

	t.Run("valid", func(t *testing.T) {
		var v validator.Validator
		validateNewExercise(&v, valid)
		assert.False(t, v.HasErrors())
	})

	t.Run("date optional", func(t *testing.T) {
		input := valid
		input.Date = ""

		var v validator.Validator
		validateNewExercise(&v, input)
		assert.False(t, v.HasErrors())
	})

	t.Run("short description", func(t *testing.T) {
		input := valid
		input.Description = "run"

		var v validator.Validator
		validateNewExercise(&v, input)
		assert.Contains(t, v.FieldErrors, "description")
	})

	t.Run("duration out of bounds", func(t *testing.T) {
		for _, duration := range []int{0, 9, 101} {
			input := valid
			input.Duration = duration

			var v validator.Validator
			validateNewExercise(&v, input)
			assert.Contains(t, v.FieldErrors, "duration")
		}
	})

	t.Run("bad date", func(t *testing.T) {
		input := valid
		input.Date = "Jan 15 2024"

		var v validator.Validator
		validateNewExercise(&v, input)
		assert.Contains(t, v.FieldErrors, "date")
	})
}

func TestValidateLogFilter(t *testing.T) {
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty filter", func(t *testing.T) {
		var v validator.Validator
		validateLogFilter(&v, database.LogFilter{})
		assert.False(t, v.HasErrors())
	})

	t.Run("non-positive limit", func(t *testing.T) {
		limit := 0

		var v validator.Validator
		validateLogFilter(&v, database.LogFilter{Limit: &limit})
		assert.Contains(t, v.FieldErrors, "limit")
	})

	t.Run("inverted range", func(t *testing.T) {
		var v validator.Validator
		validateLogFilter(&v, database.LogFilter{From: &from, To: &to})
		assert.Contains(t, v.FieldErrors, "from")
	})
}
