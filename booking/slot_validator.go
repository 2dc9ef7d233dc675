package booking

import (
	"time"

	"github.com/quickcourt/facility-booking-backend/facility"
)

// Peak window: minutes falling in [18:00, 22:00) are billed at 1.5x the
// facility's hourly rate, every day of the week. The policy is fixed
// here so quotes are reproducible for billing.
const (
	peakStart = facility.TimeOfDay(18 * 60)
	peakEnd   = facility.TimeOfDay(22 * 60)
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Adjacent slots do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd facility.TimeOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}

// ValidateSlot checks a requested slot against the facility's state and
// opening window and returns the quoted amount. The conflict check
// against other bookings is not done here: it must run atomically with
// the insert, inside the repository.
func ValidateSlot(f facility.Facility, date time.Time, start, end facility.TimeOfDay) (int64, error) {
	if !f.Bookable() {
		return 0, ErrFacilityNotBookable
	}

	if end <= start {
		return 0, ErrInvalidTimeRange
	}

	day := f.Hours.For(date.Weekday())

	if day.Closed || start < day.Open || end > day.Close {
		return 0, ErrOutsideOperatingHours
	}

	return Quote(f.PricePerHour, start, end), nil
}

// Quote prices the slot [start, end): pricePerHour prorated by the
// minute, with peak minutes at 1.5x. Fractional currency units truncate
// toward zero.
func Quote(pricePerHour int64, start, end facility.TimeOfDay) int64 {
	total := int64(end - start)
	peak := overlapMinutes(start, end, peakStart, peakEnd)

	base := pricePerHour * (total - peak) / 60
	surcharged := pricePerHour * peak * 3 / 120

	return base + surcharged
}

func overlapMinutes(aStart, aEnd, bStart, bEnd facility.TimeOfDay) int64 {
	start := max(aStart, bStart)
	end := min(aEnd, bEnd)

	if end <= start {
		return 0
	}

	return int64(end - start)
}
