package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/mschaff99/Challenge-Foro-Hub/app/observability/metrics"
	"github.com/mschaff99/Challenge-Foro-Hub/internal/types"
)

var _ TopicRepository = (*PostgresTopicRepository)(nil)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it too, which is how the repository tests run without a
// live database.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TopicRepository is the topic store contract. All operations are
// single round-trips against the backing Postgres database.
type TopicRepository interface {
	ExistsByTitleAndMessage(ctx context.Context, title, message string) (bool, error)
	// ExistsOtherByTitleAndMessage ignores the row with excludeID so a
	// no-op update never collides with the record being updated.
	ExistsOtherByTitleAndMessage(ctx context.Context, excludeID int64, title, message string) (bool, error)
	FindByID(ctx context.Context, id int64) (*types.Topic, error)
	Insert(ctx context.Context, topic *types.Topic) (*types.Topic, error)
	Update(ctx context.Context, topic *types.Topic) error
	DeleteByID(ctx context.Context, id int64) error
	ListOrderedByCreation(ctx context.Context, page, size int) ([]types.Topic, int64, error)
}

type PostgresTopicRepository struct {
	logger *slog.Logger
	pgpool DB
}

func NewPostgresTopicRepository(pgpool DB, logger *slog.Logger) *PostgresTopicRepository {
	return &PostgresTopicRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

// recordQuery reports query duration and errors to the app metrics.
func recordQuery(ctx context.Context, query string, start time.Time, err error) {
	attrs := metric.WithAttributes(attribute.String("query", query))
	metrics.Get().DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1, attrs)
	}
}

func (r *PostgresTopicRepository) ExistsByTitleAndMessage(ctx context.Context, title, message string) (bool, error) {
	start := time.Now()
	var exists bool
	err := r.pgpool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM topics WHERE title = $1 AND message = $2)",
		title, message).Scan(&exists)
	recordQuery(ctx, "topic_exists", start, err)
	if err != nil {
		return false, fmt.Errorf("topic exists check: query failed: %w", err)
	}
	return exists, nil
}

func (r *PostgresTopicRepository) ExistsOtherByTitleAndMessage(ctx context.Context, excludeID int64, title, message string) (bool, error) {
	start := time.Now()
	var exists bool
	err := r.pgpool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM topics WHERE title = $1 AND message = $2 AND id <> $3)",
		title, message, excludeID).Scan(&exists)
	recordQuery(ctx, "topic_exists_other", start, err)
	if err != nil {
		return false, fmt.Errorf("topic exists check: query failed: %w", err)
	}
	return exists, nil
}

func (r *PostgresTopicRepository) FindByID(ctx context.Context, id int64) (*types.Topic, error) {
	start := time.Now()
	var t types.Topic
	err := r.pgpool.QueryRow(ctx,
		`SELECT id, title, message, created_at, status, author_id, course
         FROM topics WHERE id = $1`, id).Scan(
		&t.ID, &t.Title, &t.Message, &t.CreatedAt, &t.Status, &t.AuthorID, &t.Course)
	recordQuery(ctx, "topic_find_by_id", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("find topic: query failed: %w", err)
	}
	return &t, nil
}

// Insert persists a new topic. The database assigns id, creation
// timestamp and default status; a unique-constraint violation on
// (title, message) surfaces as ErrConflict.
func (r *PostgresTopicRepository) Insert(ctx context.Context, topic *types.Topic) (*types.Topic, error) {
	start := time.Now()
	err := r.pgpool.QueryRow(ctx,
		`INSERT INTO topics (title, message, author_id, course)
         VALUES ($1, $2, $3, $4)
         RETURNING id, created_at, status`,
		topic.Title, topic.Message, topic.AuthorID, topic.Course).Scan(
		&topic.ID, &topic.CreatedAt, &topic.Status)
	recordQuery(ctx, "topic_insert", start, err)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, types.ErrConflict
		}
		return nil, fmt.Errorf("insert topic: db insert failed: %w", err)
	}
	return topic, nil
}

func (r *PostgresTopicRepository) Update(ctx context.Context, topic *types.Topic) error {
	start := time.Now()
	tag, err := r.pgpool.Exec(ctx,
		"UPDATE topics SET title = $1, message = $2, status = $3 WHERE id = $4",
		topic.Title, topic.Message, topic.Status, topic.ID)
	recordQuery(ctx, "topic_update", start, err)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return types.ErrConflict
		}
		return fmt.Errorf("update topic: db update failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeleteByID removes the topic row. Deleting an absent id is not an
// error here; callers check existence first.
func (r *PostgresTopicRepository) DeleteByID(ctx context.Context, id int64) error {
	start := time.Now()
	_, err := r.pgpool.Exec(ctx, "DELETE FROM topics WHERE id = $1", id)
	recordQuery(ctx, "topic_delete", start, err)
	if err != nil {
		return fmt.Errorf("delete topic: db delete failed: %w", err)
	}
	return nil
}

// ListOrderedByCreation returns one page of topics ordered by creation
// time ascending, ties broken by id ascending, plus the total count.
func (r *PostgresTopicRepository) ListOrderedByCreation(ctx context.Context, page, size int) ([]types.Topic, int64, error) {
	start := time.Now()
	var total int64
	err := r.pgpool.QueryRow(ctx, "SELECT COUNT(*) FROM topics").Scan(&total)
	if err != nil {
		recordQuery(ctx, "topic_list", start, err)
		return nil, 0, fmt.Errorf("count topics: query failed: %w", err)
	}

	offset := (page - 1) * size
	rows, err := r.pgpool.Query(ctx,
		`SELECT id, title, message, created_at, status, author_id, course
         FROM topics
         ORDER BY created_at ASC, id ASC
         LIMIT $1 OFFSET $2`, size, offset)
	recordQuery(ctx, "topic_list", start, err)
	if err != nil {
		return nil, 0, fmt.Errorf("list topics: query failed: %w", err)
	}
	defer rows.Close()

	var topics []types.Topic
	for rows.Next() {
		var t types.Topic
		if err := rows.Scan(&t.ID, &t.Title, &t.Message, &t.CreatedAt, &t.Status, &t.AuthorID, &t.Course); err != nil {
			return nil, 0, fmt.Errorf("list topics: scan failed: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list topics: rows failed: %w", err)
	}
	return topics, total, nil
}
