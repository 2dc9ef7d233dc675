package booking

import (
	"time"

	"github.com/quickcourt/facility-booking-backend/facility"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

const (
	PaymentPending     = "pending"
	PaymentSucceeded   = "succeeded"
	PaymentFailed      = "failed"
	PaymentNotRequired = "not_required"
)

// Booking reserves the half-open slot [Start, End) on Date at a
// facility. A pending booking holds the slot while its payment is in
// flight; the hold is released by cancellation or expiry.
type Booking struct {
	ID              string             `json:"id"`
	UserID          string             `json:"userId"`
	FacilityID      string             `json:"facilityId"`
	Date            time.Time          `json:"date"`
	Start           facility.TimeOfDay `json:"startTime"`
	End             facility.TimeOfDay `json:"endTime"`
	TotalAmount     int64              `json:"totalAmount"`   // smallest currency unit
	Status          string             `json:"status"`        // pending, confirmed, cancelled
	PaymentStatus   string             `json:"paymentStatus"` // pending, succeeded, failed, not_required
	PaymentIntentID string             `json:"paymentIntentId,omitempty"`
	ClientSecret    string             `json:"clientSecret,omitempty"` // transient, never persisted
	Notes           string             `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
}
