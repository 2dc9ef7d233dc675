package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	conn    *pgx.Conn
	holdTTL time.Duration
}

// NewRepository builds a booking repository. holdTTL is how long an
// unpaid pending booking keeps blocking its slot; older holds are
// ignored by the conflict check and swept by ExpireStale.
func NewRepository(conn *pgx.Conn, holdTTL time.Duration) *Repository {
	return &Repository{conn: conn, holdTTL: holdTTL}
}

const bookingColumns = `id, "userId", "facilityId", date, "startMinute", "endMinute", "totalAmount", status, "paymentStatus", "paymentIntentId", notes, "createdAt"`

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.FacilityID,
		&b.Date,
		&b.Start,
		&b.End,
		&b.TotalAmount,
		&b.Status,
		&b.PaymentStatus,
		&b.PaymentIntentID,
		&b.Notes,
		&b.CreatedAt,
	)

	return b, err
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `
			SELECT ` + bookingColumns + `
			FROM quickcourt.booking
			WHERE id=$1;
		`

	b, err := scanBooking(r.conn.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return b, nil
}

func (r *Repository) GetBookingByIntentID(ctx context.Context, intentID string) (Booking, error) {
	// Intent-less bookings hold '' in the column and must stay
	// unreachable through this lookup.
	sql := `
			SELECT ` + bookingColumns + `
			FROM quickcourt.booking
			WHERE "paymentIntentId"=$1 AND "paymentIntentId" <> '';
		`

	b, err := scanBooking(r.conn.QueryRow(ctx, sql, intentID))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking for intent %v: %w", intentID, err)
	}

	return b, nil
}

func (r *Repository) collect(rows pgx.Rows, queryErr error, what string) ([]Booking, error) {
	if queryErr != nil {
		return nil, fmt.Errorf("failed to fetch %v: %w", what, queryErr)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		b, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

func (r *Repository) GetBookingsByUser(ctx context.Context, userID string) ([]Booking, error) {
	sql := `
			SELECT ` + bookingColumns + `
			FROM quickcourt.booking
			WHERE "userId"=$1
			ORDER BY date DESC, "startMinute";
		`

	rows, err := r.conn.Query(ctx, sql, userID)
	return r.collect(rows, err, fmt.Sprintf("bookings for user '%v'", userID))
}

func (r *Repository) GetBookingsForFacilityDate(ctx context.Context, facilityID string, date time.Time) ([]Booking, error) {
	sql := `
			SELECT ` + bookingColumns + `
			FROM quickcourt.booking
			WHERE "facilityId"=$1 AND date=$2
			ORDER BY "startMinute";
		`

	rows, err := r.conn.Query(ctx, sql, facilityID, date)
	return r.collect(rows, err, fmt.Sprintf("bookings for facility '%v'", facilityID))
}

// InsertBookingIfSlotFree runs the overlap check and the insert in one
// serializable transaction, which is what stops two concurrent requests
// from both passing the check and double-booking the window. Pending
// holds older than holdTTL no longer block the slot.
func (r *Repository) InsertBookingIfSlotFree(ctx context.Context, b Booking) (Booking, error) {
	tx, err := r.conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})

	if err != nil {
		return Booking{}, fmt.Errorf("failed to begin reservation transaction: %w", err)
	}

	defer tx.Rollback(ctx)

	conflictSQL := `
			SELECT COUNT(*)
			FROM quickcourt.booking
			WHERE "facilityId"=$1 AND date=$2
			AND "startMinute" < $4 AND $3 < "endMinute"
			AND (
				status='confirmed'
				OR (status='pending' AND "createdAt" >= $5)
			);
		`

	var conflicts int
	err = tx.QueryRow(ctx, conflictSQL,
		b.FacilityID,
		b.Date,
		int(b.Start),
		int(b.End),
		time.Now().Add(-r.holdTTL),
	).Scan(&conflicts)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to check slot conflicts: %w", err)
	}

	if conflicts > 0 {
		return Booking{}, ErrSlotConflict
	}

	insertSQL := `
			INSERT INTO quickcourt.booking(
			id, "userId", "facilityId", date, "startMinute", "endMinute", "totalAmount", status, "paymentStatus", "paymentIntentId", notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 'pending', 'pending', '', $8)
			RETURNING "createdAt";
		`

	err = tx.QueryRow(ctx, insertSQL,
		b.ID,
		b.UserID,
		b.FacilityID,
		b.Date,
		int(b.Start),
		int(b.End),
		b.TotalAmount,
		b.Notes,
	).Scan(&b.CreatedAt)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		// A serialization failure means another reservation for the same
		// window committed first; surface it as the conflict it is.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "40001" {
			return Booking{}, ErrSlotConflict
		}

		return Booking{}, fmt.Errorf("failed to commit reservation: %w", err)
	}

	b.Status = StatusPending
	b.PaymentStatus = PaymentPending

	return b, nil
}

func (r *Repository) SetPaymentIntent(ctx context.Context, id, intentID string) error {
	sql := `
			UPDATE quickcourt.booking
			SET "paymentIntentId"=$1
			WHERE id=$2;
		`

	tag, err := r.conn.Exec(ctx, sql, intentID, id)

	if err != nil {
		return fmt.Errorf("failed to attach intent to booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ApplyPaymentOutcome writes a terminal payment outcome. The guard on
// the current pending payment status makes duplicate deliveries no-ops:
// whichever of the client confirmation and the provider callback lands
// first wins, the second changes nothing.
func (r *Repository) ApplyPaymentOutcome(ctx context.Context, id, paymentStatus, status string) error {
	sql := `
			UPDATE quickcourt.booking
			SET "paymentStatus"=$1, status=$2
			WHERE id=$3 AND "paymentStatus"='pending';
		`

	tag, err := r.conn.Exec(ctx, sql, paymentStatus, status, id)

	if err != nil {
		return fmt.Errorf("failed to apply payment outcome to booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		err := r.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM quickcourt.booking WHERE id=$1);`, id).Scan(&exists)

		if err != nil {
			return fmt.Errorf("failed to check booking '%v' existence: %w", id, err)
		}

		if !exists {
			return ErrBookingNotFound
		}

		// Already reconciled by the other delivery.
		return nil
	}

	return nil
}

func (r *Repository) SetBookingStatus(ctx context.Context, id string, status string) error {
	sql := `
			UPDATE quickcourt.booking
			SET status=$1
			WHERE id=$2;
		`

	tag, err := r.conn.Exec(ctx, sql, status, id)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ExpireStale cancels pending bookings whose payment hold outlived the
// TTL and returns them so their provider intents can be cancelled too.
func (r *Repository) ExpireStale(ctx context.Context) ([]Booking, error) {
	sql := `
			UPDATE quickcourt.booking
			SET status='cancelled'
			WHERE status='pending' AND "paymentStatus"='pending' AND "createdAt" < $1
			RETURNING ` + bookingColumns + `;
		`

	rows, err := r.conn.Query(ctx, sql, time.Now().Add(-r.holdTTL))
	return r.collect(rows, err, "expired bookings")
}
