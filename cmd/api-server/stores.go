package main

import (
	"context"

	"github.com/protomem/exercise-tracker/internal/database"
	"github.com/protomem/exercise-tracker/internal/model"
)

// Storage surfaces the handlers depend on. Satisfied by the database DAOs;
// tests substitute in-memory fakes.

type userStore interface {
	FindAll(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id model.ID) (model.User, error)
	Insert(ctx context.Context, dto database.InsertUserDTO) (model.ID, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type exerciseStore interface {
	FindByUser(ctx context.Context, user model.ID, filter database.LogFilter) ([]model.Exercise, error)
	Insert(ctx context.Context, dto database.InsertExerciseDTO) (model.Exercise, error)
	DeleteAll(ctx context.Context) (int64, error)
}
