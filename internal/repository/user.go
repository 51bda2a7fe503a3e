package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/m1ron1k/taskflow/internal/entity"
)

// Код нарушения уникальности в Postgres
const uniqueViolationCode = "23505"

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create - создаем пользователя. Email храним в нижнем регистре,
// уникальность проверяет constraint в БД, а не код.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (*entity.User, error) {
	query := `
	INSERT INTO users (id, name, email, password_hash)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, email, created_at, updated_at
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query,
		uuid.New().String(),
		name,
		strings.ToLower(email),
		passwordHash,
	).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, entity.ErrEmailTaken
		}
		return nil, err
	}

	return &user, nil
}

// GetById - пользователь без хеша пароля
func (r *UserRepository) GetById(ctx context.Context, id string) (*entity.User, error) {
	query := `
	SELECT id, name, email, created_at, updated_at
	FROM users
	WHERE id = $1
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetByEmail - единственная выборка, которая отдает хеш пароля:
// он нужен сервису авторизации для сравнения
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
	SELECT id, name, email, password_hash, created_at, updated_at
	FROM users
	WHERE email = $1
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, strings.ToLower(email)).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
