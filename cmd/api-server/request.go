package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/protomem/exercise-tracker/internal/model"
)

// Query-param dates are plain calendar days.
const _dateQueryLayout = time.DateOnly

func userIDFromRequest(r *http.Request) (model.ID, error) {
	return uuid.Parse(chi.URLParam(r, "userId"))
}

func dateQueryParam(r *http.Request, key string) (time.Time, bool, error) {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(_dateQueryLayout, val)
	return t, true, err
}

func optionalIntQueryParams(r *http.Request, key string) (*int, error) {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return nil, nil
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return nil, err
	}
	return &intVal, nil
}
