package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/livro-service/livro/internal/errs"
	"github.com/Astemirdum/livro-service/livro/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	FindAll(ctx context.Context, sort []model.Order) ([]model.Livro, error)
	FindByID(ctx context.Context, id int64) (model.Livro, error)
	Save(ctx context.Context, livro model.Livro) (model.Livro, error)
	SaveAndFlush(ctx context.Context, livro model.Livro) (model.Livro, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const livroTableName = `livro`

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	livroColumns = []string{"id", "titulo", "categoria"}

	sortColumns = map[string]string{
		"id":        "id",
		"titulo":    "titulo",
		"categoria": "categoria",
	}
)

func (r *repository) FindAll(ctx context.Context, sort []model.Order) ([]model.Livro, error) {
	q := qb.Select(livroColumns...).From(livroTableName)
	for _, o := range sort {
		col, ok := sortColumns[o.Field]
		if !ok {
			return nil, errs.ErrInvalidSort
		}
		if o.Desc {
			q = q.OrderBy(col + " desc")
		} else {
			q = q.OrderBy(col + " asc")
		}
	}
	if len(sort) == 0 {
		q = q.OrderBy("id asc")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("FindAll", zap.String("query", query))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "FindAll")
	}
	defer rows.Close()

	livros, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Livro])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return livros, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (model.Livro, error) {
	query, args, err := qb.Select(livroColumns...).
		From(livroTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Livro{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Livro{}, errors.Wrap(err, "FindByID")
	}
	defer rows.Close()

	livro, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Livro])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Livro{}, errs.ErrNotFound
		}
		return model.Livro{}, errors.Wrap(err, "pgx.CollectOneRow")
	}
	return livro, nil
}

// Save inserts a livro without id, otherwise replaces the stored row.
// An id that matches no row is inserted under a fresh id.
func (r *repository) Save(ctx context.Context, livro model.Livro) (model.Livro, error) {
	return r.saveTx(ctx, livro, false)
}

// SaveAndFlush is Save with a synchronous commit, so the row is durable
// and visible to every connection once it returns.
func (r *repository) SaveAndFlush(ctx context.Context, livro model.Livro) (model.Livro, error) {
	return r.saveTx(ctx, livro, true)
}

func (r *repository) saveTx(ctx context.Context, livro model.Livro, flush bool) (model.Livro, error) {
	var saved model.Livro
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if flush {
			if _, err := tx.Exec(ctx, "set local synchronous_commit = on"); err != nil {
				return err
			}
		}
		var err error
		saved, err = r.save(ctx, tx, livro)
		return err
	})
	if err != nil {
		r.log.Error("Save", zap.Stringer("livro", livro), zap.Error(err))
		return model.Livro{}, translate(err)
	}
	return saved, nil
}

func (r *repository) save(ctx context.Context, tx pgx.Tx, livro model.Livro) (model.Livro, error) {
	if livro.ID != nil {
		updated, err := r.update(ctx, tx, livro)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return model.Livro{}, err
		}
		r.log.Debug("Save: no row to update, inserting", zap.Int64("id", *livro.ID))
	}
	return r.insert(ctx, tx, livro)
}

func (r *repository) insert(ctx context.Context, tx pgx.Tx, livro model.Livro) (model.Livro, error) {
	query, args, err := qb.Insert(livroTableName).
		Columns("titulo", "categoria").
		Values(livro.Titulo, livro.Categoria).
		Suffix("returning id, titulo, categoria").
		ToSql()
	if err != nil {
		return model.Livro{}, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return model.Livro{}, err
	}
	defer rows.Close()
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Livro])
}

func (r *repository) update(ctx context.Context, tx pgx.Tx, livro model.Livro) (model.Livro, error) {
	query, args, err := qb.Update(livroTableName).
		Set("titulo", livro.Titulo).
		Set("categoria", livro.Categoria).
		Where(sq.Eq{"id": *livro.ID}).
		Suffix("returning id, titulo, categoria").
		ToSql()
	if err != nil {
		return model.Livro{}, err
	}
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return model.Livro{}, err
	}
	defer rows.Close()
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Livro])
}

// DeleteByID reports whether a row was removed. A missing row is not an error.
func (r *repository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Delete(livroTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "DeleteByID")
	}
	if tag.RowsAffected() == 0 {
		r.log.Debug("DeleteByID: nothing to delete", zap.Int64("id", id))
		return false, nil
	}
	return true, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	query, args, err := qb.Select("count(*)").From(livroTableName).ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "Count")
	}
	return count, nil
}

func (r *repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.NotNullViolation {
		return &errs.ValidationError{Fields: []errs.FieldError{{
			ObjectName: errs.EntityName,
			Field:      pgErr.ColumnName,
			Message:    "NotNull",
		}}}
	}
	return errors.Wrap(err, "Save")
}
