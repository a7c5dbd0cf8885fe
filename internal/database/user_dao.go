package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/protomem/exercise-tracker/internal/model"
)

type UserDAO struct {
	Logger *slog.Logger
	*DB
}

func NewUserDAO(logger *slog.Logger, db *DB) *UserDAO {
	return &UserDAO{
		Logger: logger.With("dao", "user"),
		DB:     db,
	}
}

func (dao *UserDAO) FindAll(ctx context.Context) ([]model.User, error) {
	logger := dao.Logger.With("query", "findAll")

	query, args, err := dao.Builder.
		Select("*").
		From("users").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return []model.User{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	users := []model.User{}
	if err := dao.SelectContext(ctx, &users, query, args...); err != nil {
		if IsNoRows(err) {
			logger.Debug("success query execute", "countUsers", 0)
			return []model.User{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.User{}, err
	}

	logger.Debug("success query execute", "countUsers", len(users))

	return users, nil
}

func (dao *UserDAO) Get(ctx context.Context, id model.ID) (model.User, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var user model.User
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&user); err != nil {
		if IsNoRows(err) {
			return model.User{}, model.NewError("user", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.User{}, err
	}

	logger.Debug("success query execute", "user", user.ID)

	return user, nil
}

type InsertUserDTO struct {
	Username string
}

func (dao *UserDAO) Insert(ctx context.Context, dto InsertUserDTO) (model.ID, error) {
	logger := dao.Logger.With("query", "insert")

	query, args, err := dao.Builder.
		Insert("users").
		Columns("username").
		Values(dto.Username).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return model.ID{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var id model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&id); err != nil {
		logger.Warn("failed query execute", "error", err)

		if IsUniqueViolation(err) {
			return model.ID{}, model.NewError("user", model.ErrExists)
		}

		return model.ID{}, err
	}

	logger.Debug("success query execute", "insertId", id)

	return id, nil
}

// DeleteAll removes every user. Owned exercises go with them through the
// foreign key cascade.
func (dao *UserDAO) DeleteAll(ctx context.Context) (int64, error) {
	logger := dao.Logger.With("query", "deleteAll")

	query, args, err := dao.Builder.
		Delete("users").
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
