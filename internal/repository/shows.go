package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"cinema/internal/entities"
)

type ShowsRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewShowsRepo(db *sqlx.DB) *ShowsRepo {
	return &ShowsRepo{
		db:     db,
		getter: trmsqlx.DefaultCtxGetter,
	}
}

func (r *ShowsRepo) Create(ctx context.Context, show *entities.Show) (uuid.UUID, error) {
	occupiedSeats := show.OccupiedSeats
	if occupiedSeats == nil {
		occupiedSeats = map[string]string{}
	}

	seats, err := json.Marshal(occupiedSeats)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal occupied seats: %w", err)
	}

	query := `
		INSERT INTO shows (
			title, venue, start_time, occupied_seats
		) VALUES (
			$1, $2, $3, $4
		) RETURNING show_id`

	var id uuid.UUID
	err = r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowxContext(ctx, query, show.Title, show.Venue, show.StartTime, seats).
		Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create show: %w", err)
	}

	return id, nil
}

func (r *ShowsRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Show, error) {
	query := `
		SELECT show_id, title, venue, start_time, occupied_seats
		FROM shows
		WHERE show_id = $1`

	var show entities.Show
	var seats []byte

	err := r.getter.DefaultTrOrDB(ctx, r.db).
		QueryRowxContext(ctx, query, id).
		Scan(&show.ShowID, &show.Title, &show.Venue, &show.StartTime, &seats)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", entities.ErrShowNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get show: %w", err)
	}

	if err := json.Unmarshal(seats, &show.OccupiedSeats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal occupied seats: %w", err)
	}

	return &show, nil
}

// RemoveOccupiedSeats drops the given seat labels from the show's
// occupied-seats map in a single statement, so two releases touching
// disjoint seats on the same show cannot lose each other's update.
func (r *ShowsRepo) RemoveOccupiedSeats(ctx context.Context, showID uuid.UUID, seats []string) error {
	query := `
		UPDATE shows
		SET occupied_seats = occupied_seats - $2::text[]
		WHERE show_id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, query, showID, pq.Array(seats))
	if err != nil {
		return fmt.Errorf("failed to remove occupied seats: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", entities.ErrShowNotFound, showID)
	}

	return nil
}

// ListStartingBetween returns shows with a start time inside
// [from, to), ordered by start time. Feeds the reminder planner.
func (r *ShowsRepo) ListStartingBetween(ctx context.Context, from, to time.Time) ([]entities.Show, error) {
	query := `
		SELECT show_id, title, venue, start_time, occupied_seats
		FROM shows
		WHERE start_time >= $1 AND start_time < $2
		ORDER BY start_time`

	rows, err := r.getter.DefaultTrOrDB(ctx, r.db).QueryxContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	defer rows.Close()

	var shows []entities.Show
	for rows.Next() {
		var show entities.Show
		var seats []byte

		if err := rows.Scan(&show.ShowID, &show.Title, &show.Venue, &show.StartTime, &seats); err != nil {
			return nil, fmt.Errorf("failed to scan show: %w", err)
		}
		if err := json.Unmarshal(seats, &show.OccupiedSeats); err != nil {
			return nil, fmt.Errorf("failed to unmarshal occupied seats: %w", err)
		}

		shows = append(shows, show)
	}

	return shows, rows.Err()
}
