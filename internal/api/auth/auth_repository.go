package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mschaff99/Challenge-Foro-Hub/internal/types"
)

var _ AuthRepo = (*PostgresAuthRepo)(nil)

// AuthRepo is the credential store contract.
type AuthRepo interface {
	GetUserByLogin(ctx context.Context, login string) (*types.UserAuth, error)
	CreateUser(ctx context.Context, login, passwordHash string) (uuid.UUID, error)
}

type PostgresAuthRepo struct {
	logger *slog.Logger
	pgpool *pgxpool.Pool
}

func NewPostgresAuthRepo(pgxpool *pgxpool.Pool, logger *slog.Logger) *PostgresAuthRepo {
	return &PostgresAuthRepo{
		logger: logger,
		pgpool: pgxpool,
	}
}

// GetUserByLogin fetches a user record by its unique login name.
func (r *PostgresAuthRepo) GetUserByLogin(ctx context.Context, login string) (*types.UserAuth, error) {
	var user types.UserAuth
	err := r.pgpool.QueryRow(ctx,
		"SELECT id, login, password_hash, created_at FROM users WHERE login = $1",
		login).Scan(&user.ID, &user.Login, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("get user by login: query failed: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new user record and returns the assigned id.
func (r *PostgresAuthRepo) CreateUser(ctx context.Context, login, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pgpool.QueryRow(ctx,
		"INSERT INTO users (login, password_hash) VALUES ($1, $2) RETURNING id",
		login, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, types.ErrConflict
		}
		return uuid.Nil, fmt.Errorf("create user: db insert failed: %w", err)
	}
	return id, nil
}
