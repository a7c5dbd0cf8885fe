package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMarshalJSON(t *testing.T) {
	user := User{
		ID:        uuid.MustParse("9b4ac1f3-2f5d-4d5e-9c34-0a4f5a6f9a01"),
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC),
		Username:  "gopher",
		Count:     1,
		Log: []Exercise{
			{
				ID:          uuid.MustParse("51a1b8f0-68a7-4f11-8a4e-3d1a63c2b702"),
				Description: "jogging",
				Duration:    30,
				Date:        NewDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
				User:        uuid.MustParse("9b4ac1f3-2f5d-4d5e-9c34-0a4f5a6f9a01"),
			},
		},
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	// Internal timestamps never serialize; ids render as plain strings; an
	// exercise hides its own id and user back-reference.
	assert.JSONEq(t, `{
		"_id": "9b4ac1f3-2f5d-4d5e-9c34-0a4f5a6f9a01",
		"username": "gopher",
		"count": 1,
		"log": [
			{
				"description": "jogging",
				"duration": 30,
				"date": "Mon Jan 15 2024"
			}
		]
	}`, string(data))
}

func TestExerciseMarshalJSON(t *testing.T) {
	exercise := Exercise{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		Description: "swimming",
		Duration:    45,
		Date:        NewDate(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		User:        uuid.New(),
	}

	data, err := json.Marshal(exercise)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"description": "swimming",
		"duration": 45,
		"date": "Thu Feb 01 2024"
	}`, string(data))
}

func TestDateRoundTrip(t *testing.T) {
	date := NewDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"Mon Jan 01 2024"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(date.Time))
}

func TestDateScan(t *testing.T) {
	var date Date

	require.NoError(t, date.Scan(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Mon Jan 15 2024", date.String())

	require.NoError(t, date.Scan("2024-02-01"))
	assert.Equal(t, "Thu Feb 01 2024", date.String())

	assert.Error(t, date.Scan(42))
}

func TestNewError(t *testing.T) {
	err := NewError("User", ErrNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "user: not found", err.Error())
}
