package main

import (
	"time"

	"github.com/protomem/exercise-tracker/internal/database"
	"github.com/protomem/exercise-tracker/internal/validator"
)

// Validation rules

const (
	_minUsernameLength    = 4
	_minDescriptionLength = 4
	_minDuration          = 10
	_maxDuration          = 100
)

func validateUsername(v *validator.Validator, username string) {
	v.CheckField(validator.NotBlank(username), "username", "cannot be blank")
	v.CheckField(validator.MinRunes(username, _minUsernameLength), "username", "must be at least 4 characters long")
}

func validateNewExercise(v *validator.Validator, request requestAddExercise) {
	v.CheckField(validator.NotBlank(request.Description), "description", "cannot be blank")
	v.CheckField(validator.MinRunes(request.Description, _minDescriptionLength), "description", "must be at least 4 characters long")

	v.CheckField(
		validator.Between(request.Duration, _minDuration, _maxDuration),
		"duration",
		"must be between 10 and 100 minutes",
	)

	if request.Date != "" {
		_, err := time.Parse(time.DateOnly, request.Date)
		v.CheckField(err == nil, "date", "must be a valid YYYY-MM-DD date")
	}
}

func validateLogFilter(v *validator.Validator, filter database.LogFilter) {
	if filter.Limit != nil {
		v.CheckField(*filter.Limit > 0, "limit", "must be a positive number")
	}
	if filter.From != nil && filter.To != nil {
		v.CheckField(!filter.From.After(*filter.To), "from", "must not be after to")
	}
}
