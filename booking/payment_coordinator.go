package booking

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/quickcourt/facility-booking-backend/payment"
)

// Coordinator owns the payment side of a booking's lifecycle: creating
// the provider intent, reconciling its terminal outcome back into the
// booking, and expiring holds that never reached one. holdTTL must match
// the repository's: a hold the conflict query stopped honouring must not
// be confirmable anymore.
type Coordinator struct {
	repo     BookingRepository
	payments payment.PaymentClient
	currency string
	holdTTL  time.Duration
	logger   *slog.Logger
}

func NewCoordinator(repo BookingRepository, payments payment.PaymentClient, currency string, holdTTL time.Duration) *Coordinator {
	return &Coordinator{
		repo:     repo,
		payments: payments,
		currency: currency,
		holdTTL:  holdTTL,
		logger:   slog.Default().With("component", "payment-coordinator"),
	}
}

// EnsureIntent returns the booking's payment intent, creating one if the
// booking has none yet. The idempotency key is derived from the booking
// id, so a retried request reuses the provider-side intent instead of
// opening a second charge path.
func (c *Coordinator) EnsureIntent(ctx context.Context, b Booking) (*payment.Intent, error) {
	if b.Status != StatusPending || b.PaymentStatus != PaymentPending {
		return nil, ErrInvalidBookingState
	}

	if len(b.PaymentIntentID) != 0 {
		intent, err := c.payments.GetIntent(ctx, b.PaymentIntentID)

		if err != nil {
			return nil, err
		}

		if intent.Status != payment.IntentStatusRequiresPayment {
			// A terminal intent on a still-pending booking means a
			// reconciliation is on its way; don't open another charge.
			return nil, ErrInvalidBookingState
		}

		return intent, nil
	}

	intent, err := c.payments.CreateIntent(ctx, b.TotalAmount, c.currency, "booking-"+b.ID)

	if err != nil {
		return nil, err
	}

	if err := c.repo.SetPaymentIntent(ctx, b.ID, intent.ID); err != nil {
		return nil, err
	}

	return intent, nil
}

// Reconcile applies a terminal payment outcome to the owning booking.
// It is safe to run more than once per intent: the first delivery wins
// and later ones are no-ops, which covers the race between client-side
// confirmation and the provider callback.
func (c *Coordinator) Reconcile(ctx context.Context, intentID, outcome string) error {
	if outcome != PaymentSucceeded && outcome != PaymentFailed {
		return ErrUnknownOutcome
	}

	// Bookings without an intent store '' in that column; a blank id must
	// never reconcile them.
	if len(strings.TrimSpace(intentID)) == 0 {
		return ErrBookingNotFound
	}

	b, err := c.repo.GetBookingByIntentID(ctx, intentID)

	if err != nil {
		return err
	}

	if b.PaymentStatus != PaymentPending {
		return nil
	}

	if outcome == PaymentFailed {
		// Single-attempt policy: a failed charge cancels the booking and
		// frees the slot; retrying means requesting a new booking.
		return c.repo.ApplyPaymentOutcome(ctx, b.ID, PaymentFailed, StatusCancelled)
	}

	status := StatusConfirmed

	if b.Status == StatusCancelled || time.Since(b.CreatedAt) >= c.holdTTL {
		// Success arrived after the hold expired or the user cancelled.
		// The conflict query stopped honouring an expired hold the moment
		// it aged out, so its slot may already belong to someone else.
		// Record the payment but leave the booking cancelled; the refund
		// path is external.
		status = StatusCancelled
	}

	return c.repo.ApplyPaymentOutcome(ctx, b.ID, PaymentSucceeded, status)
}

// SweepExpired cancels every pending booking whose hold outlived the
// repository's TTL and releases the matching provider intents.
func (c *Coordinator) SweepExpired(ctx context.Context) (int, error) {
	expired, err := c.repo.ExpireStale(ctx)

	if err != nil {
		return 0, err
	}

	for _, b := range expired {
		c.cancelIntent(ctx, b)
	}

	return len(expired), nil
}

// cancelIntent is best effort: the hold is already released locally and
// an unconfirmed intent expires provider-side anyway.
func (c *Coordinator) cancelIntent(ctx context.Context, b Booking) {
	if len(b.PaymentIntentID) == 0 {
		return
	}

	if err := c.payments.CancelIntent(ctx, b.PaymentIntentID); err != nil {
		c.logger.Warn("failed to cancel payment intent", "bookingId", b.ID, "intentId", b.PaymentIntentID, "err", err)
	}
}
