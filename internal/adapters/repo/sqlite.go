package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"feedback-app/internal/domain"
)

// SQLite реализует domain.FeedbackRepo поверх файла SQLite.
type SQLite struct {
	db *sqlx.DB
}

var _ domain.FeedbackRepo = (*SQLite)(nil)

// NewSQLite создаёт адаптер БД.
func NewSQLite(db *sqlx.DB) *SQLite {
	return &SQLite{db: db}
}

type feedbackRow struct {
	ID        int64  `db:"id"`
	User      string `db:"user"`
	Comment   string `db:"comment"`
	Timestamp string `db:"timestamp"`
}

func (r feedbackRow) toDomain() (domain.Feedback, error) {
	ts, err := time.Parse(domain.TimestampLayout, r.Timestamp)
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("разбор отметки времени: %w", err)
	}
	return domain.Feedback{ID: r.ID, User: r.User, Comment: r.Comment, CreatedAt: ts}, nil
}

func (s *SQLite) connCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, 5*time.Second)
}

// Create вставляет новый отзыв с отметкой текущего времени UTC
// и возвращает присвоенный id.
func (s *SQLite) Create(ctx context.Context, user, comment string) (domain.Feedback, error) {
	ctx, cancel := s.connCtx(ctx)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Second)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback (user, comment, timestamp) VALUES (?, ?, ?)`,
		user, comment, now.Format(domain.TimestampLayout))
	if err != nil {
		return domain.Feedback{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Feedback{}, err
	}
	return domain.Feedback{ID: id, User: user, Comment: comment, CreatedAt: now}, nil
}

// ListAll возвращает все отзывы, новые первыми. Порядок по id убывает:
// id растёт монотонно, поэтому порядок стабилен даже при равных отметках времени.
func (s *SQLite) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	ctx, cancel := s.connCtx(ctx)
	defer cancel()

	var rows []feedbackRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT id, user, comment, timestamp FROM feedback ORDER BY id DESC`); err != nil {
		return nil, err
	}
	items := make([]domain.Feedback, 0, len(rows))
	for _, row := range rows {
		fb, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, fb)
	}
	return items, nil
}

// GetByID возвращает отзыв или domain.ErrFeedbackNotFound.
func (s *SQLite) GetByID(ctx context.Context, id int64) (domain.Feedback, error) {
	ctx, cancel := s.connCtx(ctx)
	defer cancel()

	var row feedbackRow
	err := s.db.GetContext(ctx, &row,
		`SELECT id, user, comment, timestamp FROM feedback WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Feedback{}, domain.ErrFeedbackNotFound
	}
	if err != nil {
		return domain.Feedback{}, err
	}
	return row.toDomain()
}

// Update заменяет user и comment. Отметка времени не переписывается.
func (s *SQLite) Update(ctx context.Context, id int64, user, comment string) error {
	ctx, cancel := s.connCtx(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx,
		`UPDATE feedback SET user = ?, comment = ? WHERE id = ?`, user, comment, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}

// Delete удаляет строку безвозвратно.
func (s *SQLite) Delete(ctx context.Context, id int64) error {
	ctx, cancel := s.connCtx(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM feedback WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrFeedbackNotFound
	}
	return nil
}
