package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/exercise-tracker/internal/model"
)

type ExerciseDAO struct {
	Logger *slog.Logger
	*DB
}

func NewExerciseDAO(logger *slog.Logger, db *DB) *ExerciseDAO {
	return &ExerciseDAO{
		Logger: logger.With("dao", "exercise"),
		DB:     db,
	}
}

// LogFilter bounds a user's exercise log. Nil fields impose no constraint;
// From and To are inclusive.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit *int
}

func buildLogQuery(builder squirrel.StatementBuilderType, user model.ID, filter LogFilter) (string, []any, error) {
	q := builder.
		Select("*").
		From("exercises").
		Where(squirrel.Eq{"user_id": user})

	if filter.From != nil {
		q = q.Where(squirrel.GtOrEq{"exercised_at": *filter.From})
	}
	if filter.To != nil {
		q = q.Where(squirrel.LtOrEq{"exercised_at": *filter.To})
	}

	q = q.OrderBy("exercised_at ASC")

	if filter.Limit != nil {
		q = q.Limit(uint64(*filter.Limit))
	}

	return q.ToSql()
}

func (dao *ExerciseDAO) FindByUser(ctx context.Context, user model.ID, filter LogFilter) ([]model.Exercise, error) {
	logger := dao.Logger.With("query", "findByUser")

	query, args, err := buildLogQuery(dao.Builder, user, filter)
	if err != nil {
		return []model.Exercise{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	exercises := []model.Exercise{}
	if err := dao.SelectContext(ctx, &exercises, query, args...); err != nil {
		if IsNoRows(err) {
			logger.Debug("success query execute", "countExercises", 0)
			return []model.Exercise{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.Exercise{}, err
	}

	logger.Debug("success query execute", "countExercises", len(exercises))

	return exercises, nil
}

type InsertExerciseDTO struct {
	Description string
	Duration    int
	Date        time.Time
	User        model.ID
}

// Insert persists the exercise and bumps the owning user's exercise_count in
// one transaction, so concurrent inserts for the same user cannot lose
// updates and a failed count bump never leaves an orphaned exercise.
// Returns model.ErrNotFound when the user does not exist.
func (dao *ExerciseDAO) Insert(ctx context.Context, dto InsertExerciseDTO) (model.Exercise, error) {
	logger := dao.Logger.With("query", "insert")

	insertQuery, insertArgs, err := dao.Builder.
		Insert("exercises").
		Columns("description", "duration", "exercised_at", "user_id").
		Values(dto.Description, dto.Duration, dto.Date, dto.User).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return model.Exercise{}, err
	}

	countQuery, countArgs, err := dao.Builder.
		Update("users").
		Set("exercise_count", squirrel.Expr("exercise_count + 1")).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": dto.User}).
		ToSql()
	if err != nil {
		return model.Exercise{}, err
	}

	logger.Debug("build query", "sql", insertQuery, "args", insertArgs)

	tx, err := dao.BeginTxx(ctx, nil)
	if err != nil {
		return model.Exercise{}, err
	}
	defer tx.Rollback() // no-op after commit

	exercise := model.Exercise{
		Description: dto.Description,
		Duration:    dto.Duration,
		Date:        model.NewDate(dto.Date),
		User:        dto.User,
	}

	row := tx.QueryRowxContext(ctx, insertQuery, insertArgs...)
	if err := row.Scan(&exercise.ID, &exercise.CreatedAt); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsForeignKeyViolation(err) {
			return model.Exercise{}, model.NewError("user", model.ErrNotFound)
		}

		return model.Exercise{}, err
	}

	res, err := tx.ExecContext(ctx, countQuery, countArgs...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		return model.Exercise{}, err
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return model.Exercise{}, err
	}
	if updated == 0 {
		return model.Exercise{}, model.NewError("user", model.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return model.Exercise{}, err
	}

	logger.Debug("success query execute", "insertId", exercise.ID)

	return exercise, nil
}

func (dao *ExerciseDAO) DeleteAll(ctx context.Context) (int64, error) {
	logger := dao.Logger.With("query", "deleteAll")

	query, args, err := dao.Builder.
		Delete("exercises").
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	res, err := dao.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Warn("failed query execute", "error", err)

		return 0, err
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	logger.Debug("success query execute", "countDeleted", deleted)

	return deleted, nil
}
