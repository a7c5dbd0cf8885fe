package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()

	err := JSON(w, http.StatusCreated, JSONObject{"status": "OK"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status": "OK"}`, w.Body.String())
}

func TestJSONWithHeaders(t *testing.T) {
	w := httptest.NewRecorder()

	headers := http.Header{}
	headers.Set("X-Request-Id", "abc-123")

	err := JSONWithHeaders(w, http.StatusOK, JSONObject{"ok": true}, headers)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-Id"))
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}

func TestText(t *testing.T) {
	w := httptest.NewRecorder()

	err := Text(w, http.StatusOK, "deleted %d users and %d exercises", 2, 5)
	require.NoError(t, err)

	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "deleted 2 users and 5 exercises\n", w.Body.String())
}

func TestMetricsResponseWriter(t *testing.T) {
	t.Run("explicit status", func(t *testing.T) {
		w := httptest.NewRecorder()
		mw := NewMetricsResponseWriter(w)

		mw.WriteHeader(http.StatusNotFound)
		mw.Write([]byte("nope"))

		assert.Equal(t, http.StatusNotFound, mw.StatusCode)
		assert.Equal(t, 4, mw.BytesCount)
	})

	t.Run("implicit 200", func(t *testing.T) {
		w := httptest.NewRecorder()
		mw := NewMetricsResponseWriter(w)

		mw.Write([]byte("hello"))

		assert.Equal(t, http.StatusOK, mw.StatusCode)
		assert.Equal(t, 5, mw.BytesCount)
	})

	t.Run("only first status sticks", func(t *testing.T) {
		w := httptest.NewRecorder()
		mw := NewMetricsResponseWriter(w)

		mw.WriteHeader(http.StatusTeapot)
		mw.WriteHeader(http.StatusOK)

		assert.Equal(t, http.StatusTeapot, mw.StatusCode)
	})
}
