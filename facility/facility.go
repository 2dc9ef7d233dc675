package facility

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// TimeOfDay is a wall-clock time as minutes since midnight. It marshals
// as "HH:MM" so operating hours and booking slots share one format.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "HH:MM" in the range 00:00 to 24:00 inclusive,
// 24:00 meaning end of day.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}

	if hour < 0 || minute < 0 || minute > 59 || hour > 24 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}

	return NewTimeOfDay(hour, minute), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string

	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseTimeOfDay(s)

	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// DayHours is a single weekday's opening window. Either Closed is set,
// or Open < Close describes when bookings may start and end.
type DayHours struct {
	Closed bool      `json:"closed,omitempty"`
	Open   TimeOfDay `json:"open"`
	Close  TimeOfDay `json:"close"`
}

// OperatingHours maps weekdays to their opening window. A missing
// weekday counts as closed.
type OperatingHours map[time.Weekday]DayHours

// For returns the hours for the given weekday; absent entries are closed.
func (h OperatingHours) For(day time.Weekday) DayHours {
	entry, ok := h[day]

	if !ok {
		return DayHours{Closed: true}
	}

	return entry
}

type Facility struct {
	ID              string         `json:"id"`
	OwnerID         string         `json:"ownerId"`
	Name            string         `json:"name"`
	Address         string         `json:"address"`
	SportTypes      []string       `json:"sportTypes"`
	Amenities       []string       `json:"amenities"`
	ImageURLs       []string       `json:"imageUrls"`
	PricePerHour    int64          `json:"pricePerHour"` // smallest currency unit
	Hours           OperatingHours `json:"hours"`
	ApprovalStatus  string         `json:"approvalStatus"` // pending, approved, rejected
	RejectionReason string         `json:"rejectionReason,omitempty"`
	IsActive        bool           `json:"isActive"`
	Rating          float64        `json:"rating"`
	RatingCount     int            `json:"ratingCount"`
	Version         int64          `json:"version"`
}

// Bookable reports whether the facility may accept new bookings.
func (f Facility) Bookable() bool {
	return f.ApprovalStatus == StatusApproved && f.IsActive
}

// hoursJSON is the persisted shape of OperatingHours, keyed by weekday
// name so the column stays readable.
type hoursJSON map[string]DayHours

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func (h OperatingHours) MarshalJSON() ([]byte, error) {
	out := hoursJSON{}

	for name, day := range weekdayNames {
		if entry, ok := h[day]; ok {
			out[name] = entry
		}
	}

	return json.Marshal(out)
}

func (h *OperatingHours) UnmarshalJSON(data []byte) error {
	var raw hoursJSON

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	hours := OperatingHours{}

	for name, entry := range raw {
		day, ok := weekdayNames[name]

		if !ok {
			return fmt.Errorf("unknown weekday %q in operating hours", name)
		}

		hours[day] = entry
	}

	*h = hours
	return nil
}
