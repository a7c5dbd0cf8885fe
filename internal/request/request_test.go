package request

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testInput struct {
	Username string `json:"username"`
}

func TestDecodeJSONStrict(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"username": "gopher"}`))
		w := httptest.NewRecorder()

		var input testInput
		require.NoError(t, DecodeJSONStrict(w, r, &input))
		assert.Equal(t, "gopher", input.Username)
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(""))
		w := httptest.NewRecorder()

		var input testInput
		err := DecodeJSONStrict(w, r, &input)
		assert.EqualError(t, err, "body must not be empty")
	})

	t.Run("malformed body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":`))
		w := httptest.NewRecorder()

		var input testInput
		assert.Error(t, DecodeJSONStrict(w, r, &input))
	})

	t.Run("unknown field", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"username": "gopher", "role": "admin"}`))
		w := httptest.NewRecorder()

		var input testInput
		err := DecodeJSONStrict(w, r, &input)
		assert.EqualError(t, err, `body contains unknown key "role"`)
	})

	t.Run("wrong field type", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"username": 42}`))
		w := httptest.NewRecorder()

		var input testInput
		err := DecodeJSONStrict(w, r, &input)
		assert.EqualError(t, err, `body contains incorrect JSON type for field "username"`)
	})

	t.Run("trailing values", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"username": "gopher"}{"again": true}`))
		w := httptest.NewRecorder()

		var input testInput
		err := DecodeJSONStrict(w, r, &input)
		assert.EqualError(t, err, "body must only contain a single JSON value")
	})
}

func TestDecodeJSONAllowsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"username": "gopher", "role": "admin"}`))
	w := httptest.NewRecorder()

	var input testInput
	require.NoError(t, DecodeJSON(w, r, &input))
	assert.Equal(t, "gopher", input.Username)
}
