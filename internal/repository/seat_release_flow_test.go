package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"cinema/internal/application/usecases/seatrelease"
	"cinema/internal/entities"
	"cinema/internal/repository"
)

type releaseFixture struct {
	bookingsRepo *repository.BookingsRepo
	showsRepo    *repository.ShowsRepo
	timersRepo   *repository.ReleaseTimersRepo
	usecase      *seatrelease.ReleaseSeatsUsecase
}

func newReleaseFixture(t *testing.T) *releaseFixture {
	db := getDb(t)

	bookingsRepo := repository.NewBookingsRepo(db)
	showsRepo := repository.NewShowsRepo(db)
	timersRepo := repository.NewReleaseTimersRepo(db)

	return &releaseFixture{
		bookingsRepo: bookingsRepo,
		showsRepo:    showsRepo,
		timersRepo:   timersRepo,
		usecase: seatrelease.NewReleaseSeatsUsecase(
			bookingsRepo,
			showsRepo,
			timersRepo,
			manager.Must(trmsqlx.NewDefaultFactory(db)),
			10*time.Minute,
		),
	}
}

func (f *releaseFixture) createShow(t *testing.T, occupiedSeats map[string]string) uuid.UUID {
	showID, err := f.showsRepo.Create(context.Background(), &entities.Show{
		Title:         "The General",
		Venue:         "Screen 1",
		StartTime:     time.Now().Add(24 * time.Hour).UTC(),
		OccupiedSeats: occupiedSeats,
	})
	require.NoError(t, err)
	return showID
}

func (f *releaseFixture) createBooking(t *testing.T, showID uuid.UUID, userID string, seats []string) uuid.UUID {
	bookingID, err := f.bookingsRepo.Create(context.Background(), &entities.Booking{
		UserID:      userID,
		ShowID:      showID,
		Amount:      decimal.NewFromInt(int64(len(seats)) * 150),
		BookedSeats: seats,
	})
	require.NoError(t, err)
	return bookingID
}

func TestReleaseIfUnpaid_ReleasesSeatsAndBooking(t *testing.T) {
	f := newReleaseFixture(t)
	ctx := context.Background()

	user1 := "user_" + uuid.NewString()
	user2 := "user_" + uuid.NewString()
	showID := f.createShow(t, map[string]string{
		"A1": user1,
		"A2": user1,
		"B5": user2,
	})
	bookingID := f.createBooking(t, showID, user1, []string{"A1", "A2"})

	require.NoError(t, f.usecase.ReleaseIfUnpaid(ctx, bookingID))

	_, err := f.bookingsRepo.GetByID(ctx, bookingID)
	assert.ErrorIs(t, err, entities.ErrBookingNotFound)

	show, err := f.showsRepo.GetByID(ctx, showID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"B5": user2}, show.OccupiedSeats)
}

func TestReleaseIfUnpaid_PaidBookingKept(t *testing.T) {
	f := newReleaseFixture(t)
	ctx := context.Background()

	userID := "user_" + uuid.NewString()
	showID := f.createShow(t, map[string]string{"C1": userID})
	bookingID := f.createBooking(t, showID, userID, []string{"C1"})

	require.NoError(t, f.bookingsRepo.MarkPaid(ctx, bookingID, pointer.ToString("https://pay.example.com/"+bookingID.String())))

	require.NoError(t, f.usecase.ReleaseIfUnpaid(ctx, bookingID))

	booking, err := f.bookingsRepo.GetByID(ctx, bookingID)
	require.NoError(t, err)
	assert.True(t, booking.IsPaid)
	assert.Equal(t, []string{"C1"}, booking.BookedSeats)
	require.NotNil(t, booking.PaymentLink)

	show, err := f.showsRepo.GetByID(ctx, showID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"C1": userID}, show.OccupiedSeats)
}

func TestReleaseIfUnpaid_Rerun(t *testing.T) {
	f := newReleaseFixture(t)
	ctx := context.Background()

	userID := "user_" + uuid.NewString()
	showID := f.createShow(t, map[string]string{"D1": userID})
	bookingID := f.createBooking(t, showID, userID, []string{"D1"})

	require.NoError(t, f.usecase.ReleaseIfUnpaid(ctx, bookingID))
	require.NoError(t, f.usecase.ReleaseIfUnpaid(ctx, bookingID))

	show, err := f.showsRepo.GetByID(ctx, showID)
	require.NoError(t, err)
	assert.Empty(t, show.OccupiedSeats)
}

func TestReleaseIfUnpaid_ConcurrentDisjointReleases(t *testing.T) {
	f := newReleaseFixture(t)
	ctx := context.Background()

	user1 := "user_" + uuid.NewString()
	user2 := "user_" + uuid.NewString()
	showID := f.createShow(t, map[string]string{
		"E1": user1,
		"E2": user1,
		"F1": user2,
		"F2": user2,
	})
	booking1 := f.createBooking(t, showID, user1, []string{"E1", "E2"})
	booking2 := f.createBooking(t, showID, user2, []string{"F1", "F2"})

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return f.usecase.ReleaseIfUnpaid(gCtx, booking1)
	})
	g.Go(func() error {
		return f.usecase.ReleaseIfUnpaid(gCtx, booking2)
	})
	require.NoError(t, g.Wait())

	show, err := f.showsRepo.GetByID(ctx, showID)
	require.NoError(t, err)
	assert.Empty(t, show.OccupiedSeats)
}

func TestReleaseTimers_ScheduleAndDue(t *testing.T) {
	f := newReleaseFixture(t)
	ctx := context.Background()

	userID := "user_" + uuid.NewString()
	showID := f.createShow(t, nil)
	bookingID := f.createBooking(t, showID, userID, []string{"G1"})

	fireAt := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, f.timersRepo.Schedule(ctx, bookingID, fireAt))

	// Redelivery must keep the original deadline.
	require.NoError(t, f.timersRepo.Schedule(ctx, bookingID, fireAt.Add(time.Hour)))

	timers, err := f.timersRepo.Due(ctx, time.Now().UTC(), 1000)
	require.NoError(t, err)

	var found *entities.ReleaseTimer
	for i := range timers {
		if timers[i].BookingID == bookingID {
			found = &timers[i]
		}
	}
	require.NotNil(t, found)
	assert.WithinDuration(t, fireAt, found.FireAt, time.Second)

	require.NoError(t, f.timersRepo.Delete(ctx, bookingID))

	timers, err = f.timersRepo.Due(ctx, time.Now().UTC(), 1000)
	require.NoError(t, err)
	for _, timer := range timers {
		assert.NotEqual(t, bookingID, timer.BookingID)
	}
}
