package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/protomem/exercise-tracker/assets"
	"github.com/protomem/exercise-tracker/internal/ctxstore"
	"github.com/protomem/exercise-tracker/internal/database"
	"github.com/protomem/exercise-tracker/internal/model"
	"github.com/protomem/exercise-tracker/internal/request"
	"github.com/protomem/exercise-tracker/internal/response"
	"github.com/protomem/exercise-tracker/internal/validator"
	"github.com/protomem/exercise-tracker/internal/version"
)

func (app *application) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := assets.EmbeddedFiles.ReadFile("public/index.html")
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	data := response.JSONObject{
		"status":  "OK",
		"version": version.Get(),
	}

	if err := response.JSON(w, http.StatusOK, data); err != nil {
		app.serverError(w, r, err)
	}
}

type requestAddUser struct {
	Username string `json:"username"`
}

func (app *application) handleAddUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	var input requestAddUser
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateUsername(&v, input.Username)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := app.users(logger)

	userID, err := dao.Insert(ctx, database.InsertUserDTO{Username: input.Username})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.errorMessage(w, r, http.StatusConflict, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	user, err := dao.Get(ctx, userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	user.Log = []model.Exercise{}

	if err := response.JSON(w, http.StatusCreated, user); err != nil {
		app.serverError(w, r, err)
	}
}

type userSummary struct {
	ID       model.ID `json:"_id"`
	Username string   `json:"username"`
}

func (app *application) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := app.users(logger)

	users, err := dao.FindAll(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	summaries := make([]userSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, userSummary{ID: user.ID, Username: user.Username})
	}

	if err := response.JSON(w, http.StatusOK, summaries); err != nil {
		app.serverError(w, r, err)
	}
}

type requestAddExercise struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type responseAddExercise struct {
	Username    string     `json:"username"`
	Duration    int        `json:"duration"`
	Description string     `json:"description"`
	Date        model.Date `json:"date"`
	ID          model.ID   `json:"_id"`
}

func (app *application) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	userID, err := userIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var input requestAddExercise
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateNewExercise(&v, input)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	date := time.Now().UTC()
	if input.Date != "" {
		// Already validated against the layout above.
		date, _ = time.Parse(time.DateOnly, input.Date)
	}

	userDAO := app.users(logger)

	user, err := userDAO.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	exerciseDAO := app.exercises(logger)

	exercise, err := exerciseDAO.Insert(ctx, database.InsertExerciseDTO{
		Description: input.Description,
		Duration:    input.Duration,
		Date:        date,
		User:        user.ID,
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	resp := responseAddExercise{
		Username:    user.Username,
		Duration:    exercise.Duration,
		Description: exercise.Description,
		Date:        exercise.Date,
		ID:          user.ID,
	}

	if err := response.JSON(w, http.StatusCreated, resp); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleUserLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	userID, err := userIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator

	limit, limitErr := optionalIntQueryParams(r, "limit")
	v.CheckField(limitErr == nil, "limit", "must be a positive number")

	filter := database.LogFilter{Limit: limit}

	if from, ok, err := dateQueryParam(r, "from"); ok {
		v.CheckField(err == nil, "from", "must be a valid YYYY-MM-DD date")
		filter.From = &from
	}
	if to, ok, err := dateQueryParam(r, "to"); ok {
		v.CheckField(err == nil, "to", "must be a valid YYYY-MM-DD date")
		filter.To = &to
	}

	validateLogFilter(&v, filter)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	userDAO := app.users(logger)

	user, err := userDAO.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	exerciseDAO := app.exercises(logger)

	exercises, err := exerciseDAO.FindByUser(ctx, user.ID, filter)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	user.Log = exercises

	if err := response.JSON(w, http.StatusOK, user); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleClearData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	exerciseDAO := app.exercises(logger)
	userDAO := app.users(logger)

	deletedExercises, err := exerciseDAO.DeleteAll(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	deletedUsers, err := userDAO.DeleteAll(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	logger.Info("data cleared", "deletedUsers", deletedUsers, "deletedExercises", deletedExercises)

	if err := response.Text(w, http.StatusOK, "deleted %d users and %d exercises", deletedUsers, deletedExercises); err != nil {
		app.serverError(w, r, err)
	}
}
