package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrSlotConflict = errors.New("slot already booked")

var ErrFacilityNotBookable = errors.New("facility not bookable")

var ErrInvalidTimeRange = errors.New("invalid time range")

var ErrOutsideOperatingHours = errors.New("requested slot is outside operating hours")

var ErrInvalidBookingState = errors.New("invalid booking state")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrUnknownOutcome = errors.New("unknown payment outcome")
