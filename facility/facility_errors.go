package facility

import "errors"

var ErrFacilityNotFound = errors.New("facility not found")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrEmptyReason = errors.New("rejection reason cannot be empty")

var ErrNotApproved = errors.New("facility is not approved")

var ErrStaleVersion = errors.New("facility was modified concurrently")

var ErrInvalidFacility = errors.New("invalid facility")
