package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundledger/fundledger-backend/internal/apperrors"
	"github.com/fundledger/fundledger-backend/internal/core/domain"
	portsrepo "github.com/fundledger/fundledger-backend/internal/core/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUserRepository persists users in the `users` table.
type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new repository for user data.
func NewUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{pool: pool}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// SaveUser inserts a new user and returns it with the generated ID.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (domain.User, error) {
	query := `
		INSERT INTO users (name, email, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id;
	`
	err := querierFromCtx(ctx, r.pool).QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.CreatedAt,
		user.LastUpdatedAt,
	).Scan(&user.UserID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation on email
			return domain.User{}, fmt.Errorf("%w: user with email %s", apperrors.ErrDuplicate, user.Email)
		}
		return domain.User{}, apperrors.NewPersistence("save user", err)
	}
	return user, nil
}

// FindUserByID retrieves a user by ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT user_id, name, email, created_at, last_updated_at
		FROM users
		WHERE user_id = $1;
	`
	var user domain.User
	err := querierFromCtx(ctx, r.pool).QueryRow(ctx, query, userID).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
		&user.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", userID)
		}
		return nil, apperrors.NewPersistence(fmt.Sprintf("find user %d", userID), err)
	}
	return &user, nil
}

// ListUsers retrieves a page of users ordered by ID.
func (r *PgxUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT user_id, name, email, created_at, last_updated_at
		FROM users
		ORDER BY user_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := querierFromCtx(ctx, r.pool).Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewPersistence("query users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.UserID,
			&user.Name,
			&user.Email,
			&user.CreatedAt,
			&user.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewPersistence("scan user row", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistence("iterate user rows", err)
	}

	return users, nil
}

// UpdateUser writes the mutable user fields back to the row.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, last_updated_at = $4
		WHERE user_id = $1;
	`
	cmdTag, err := querierFromCtx(ctx, r.pool).Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Email,
		user.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: user with email %s", apperrors.ErrDuplicate, user.Email)
		}
		return apperrors.NewPersistence(fmt.Sprintf("update user %d", user.UserID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("user", user.UserID)
	}
	return nil
}

// DeleteUser removes a user row.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	query := `
		DELETE FROM users
		WHERE user_id = $1;
	`
	cmdTag, err := querierFromCtx(ctx, r.pool).Exec(ctx, query, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // user still owns accounts
			return fmt.Errorf("%w: user %d still owns accounts", apperrors.ErrValidation, userID)
		}
		return apperrors.NewPersistence(fmt.Sprintf("delete user %d", userID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("user", userID)
	}
	return nil
}
