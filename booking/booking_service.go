package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/quickcourt/facility-booking-backend/facility"
	"github.com/quickcourt/facility-booking-backend/user"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/booking_mocks.go -package=mocks

type BookingRepository interface {
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingByIntentID(ctx context.Context, intentID string) (Booking, error)
	GetBookingsByUser(ctx context.Context, userID string) ([]Booking, error)
	GetBookingsForFacilityDate(ctx context.Context, facilityID string, date time.Time) ([]Booking, error)
	InsertBookingIfSlotFree(ctx context.Context, b Booking) (Booking, error)
	SetPaymentIntent(ctx context.Context, id, intentID string) error
	ApplyPaymentOutcome(ctx context.Context, id, paymentStatus, status string) error
	SetBookingStatus(ctx context.Context, id string, status string) error
	ExpireStale(ctx context.Context) ([]Booking, error)
}

type FacilityDirectory interface {
	GetFacilityByID(ctx context.Context, id string) (facility.Facility, error)
}

// Service is the only entry point the HTTP layer uses for bookings. It
// composes slot validation, the atomic reservation and the payment
// coordinator into the request -> pay -> confirm flow.
type Service struct {
	repo        BookingRepository
	facilities  FacilityDirectory
	coordinator *Coordinator
}

func NewService(repo BookingRepository, facilities FacilityDirectory, coordinator *Coordinator) *Service {
	return &Service{repo: repo, facilities: facilities, coordinator: coordinator}
}

type BookingRequest struct {
	FacilityID string             `json:"facilityId"`
	Date       time.Time          `json:"date"`
	Start      facility.TimeOfDay `json:"startTime"`
	End        facility.TimeOfDay `json:"endTime"`
	Notes      string             `json:"notes"`
}

// RequestBooking validates the slot, reserves it atomically and opens a
// payment intent. Validation failures happen before anything is
// persisted. A provider failure after the reservation cancels the fresh
// booking again: a charge is never silently retried.
func (s *Service) RequestBooking(ctx context.Context, actor user.User, req BookingRequest) (Booking, error) {
	f, err := s.facilities.GetFacilityByID(ctx, req.FacilityID)

	if err != nil {
		return Booking{}, err
	}

	amount, err := ValidateSlot(f, req.Date, req.Start, req.End)

	if err != nil {
		return Booking{}, err
	}

	b := Booking{
		ID:          uuid.NewString(),
		UserID:      actor.ID,
		FacilityID:  f.ID,
		Date:        req.Date,
		Start:       req.Start,
		End:         req.End,
		TotalAmount: amount,
		Notes:       req.Notes,
	}

	b, err = s.repo.InsertBookingIfSlotFree(ctx, b)

	if err != nil {
		return Booking{}, err
	}

	intent, err := s.coordinator.EnsureIntent(ctx, b)

	if err != nil {
		// Release the hold so the slot doesn't stay blocked for the TTL.
		_ = s.repo.SetBookingStatus(ctx, b.ID, StatusCancelled)
		return Booking{}, err
	}

	b.PaymentIntentID = intent.ID
	b.ClientSecret = intent.ClientSecret

	return b, nil
}

// ConfirmPayment applies a payment outcome reported by the client's
// confirmation call or the provider webhook, whichever arrives first.
func (s *Service) ConfirmPayment(ctx context.Context, intentID, outcome string) error {
	return s.coordinator.Reconcile(ctx, intentID, outcome)
}

// CancelBooking cancels a booking on behalf of its owner or an admin.
// Cancellation is terminal and frees the slot immediately; any pending
// intent is released best effort, refunds are an external concern.
func (s *Service) CancelBooking(ctx context.Context, actor user.User, id string) error {
	b, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if !user.CanCancelBooking(actor, b.UserID) {
		return ErrNotAllowed
	}

	if b.Status == StatusCancelled {
		return ErrInvalidBookingState
	}

	if err := s.repo.SetBookingStatus(ctx, id, StatusCancelled); err != nil {
		return err
	}

	if b.PaymentStatus == PaymentPending {
		s.coordinator.cancelIntent(ctx, b)
	}

	return nil
}

func (s *Service) FindBookingByID(ctx context.Context, actor user.User, id string) (Booking, error) {
	b, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if actor.Role != user.RoleAdmin && actor.ID != b.UserID {
		return Booking{}, ErrNotAllowed
	}

	return b, nil
}

func (s *Service) FindBookingsPerUser(ctx context.Context, userID string) ([]Booking, error) {
	return s.repo.GetBookingsByUser(ctx, userID)
}

// FindBookingsForFacilityDate lists a facility's bookings for one date,
// visible to the facility's owner and to admins.
func (s *Service) FindBookingsForFacilityDate(ctx context.Context, actor user.User, facilityID string, date time.Time) ([]Booking, error) {
	f, err := s.facilities.GetFacilityByID(ctx, facilityID)

	if err != nil {
		return nil, err
	}

	if actor.Role != user.RoleAdmin && actor.ID != f.OwnerID {
		return nil, ErrNotAllowed
	}

	return s.repo.GetBookingsForFacilityDate(ctx, facilityID, date)
}
