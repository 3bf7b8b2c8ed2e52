package repository

import (
	"context"
	"errors"
	"fmt"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"cinema/internal/entities"
)

type UsersRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUsersRepo(db *sqlx.DB) *UsersRepo {
	return &UsersRepo{
		db:     db,
		getter: trmsqlx.DefaultCtxGetter,
	}
}

// Create inserts the user projection. A duplicate id is an error, not
// an upsert; the event host decides whether to retry.
func (r *UsersRepo) Create(ctx context.Context, user *entities.User) error {
	query := `
		INSERT INTO users (
			user_id, email, name, image
		) VALUES (
			$1, $2, $3, $4
		)`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query,
		user.UserID,
		user.Email,
		user.Name,
		user.Image,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %s", entities.ErrUserAlreadyExists, user.UserID)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Update overwrites the projection by id. A missing id is a no-op.
func (r *UsersRepo) Update(ctx context.Context, user *entities.User) error {
	query := `
		UPDATE users
		SET email = $2,
			name = $3,
			image = $4,
			updated_at = now()
		WHERE user_id = $1`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query,
		user.UserID,
		user.Email,
		user.Name,
		user.Image,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// Delete removes the projection by id. A missing id is a no-op.
func (r *UsersRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.getter.DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (r *UsersRepo) GetByID(ctx context.Context, userID string) (*entities.User, error) {
	var user entities.User

	query := `
		SELECT user_id, email, name, image, created_at, updated_at
		FROM users
		WHERE user_id = $1`

	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	return &user, nil
}
