package booking_test

import (
	"testing"
	"time"

	"github.com/quickcourt/facility-booking-backend/booking"
	"github.com/quickcourt/facility-booking-backend/facility"
	"github.com/stretchr/testify/require"
)

func approvedFacility() facility.Facility {
	return facility.Facility{
		ID:             "f1",
		OwnerID:        "owner-1",
		Name:           "Court One",
		PricePerHour:   80000, // ₹800
		ApprovalStatus: facility.StatusApproved,
		IsActive:       true,
		Hours: facility.OperatingHours{
			time.Monday:    {Open: facility.NewTimeOfDay(6, 0), Close: facility.NewTimeOfDay(23, 0)},
			time.Tuesday:   {Open: facility.NewTimeOfDay(6, 0), Close: facility.NewTimeOfDay(23, 0)},
			time.Wednesday: {Open: facility.NewTimeOfDay(6, 0), Close: facility.NewTimeOfDay(23, 0)},
			time.Thursday:  {Open: facility.NewTimeOfDay(6, 0), Close: facility.NewTimeOfDay(23, 0)},
			time.Friday:    {Open: facility.NewTimeOfDay(6, 0), Close: facility.NewTimeOfDay(23, 0)},
			time.Saturday:  {Open: facility.NewTimeOfDay(6, 0), Close: facility.NewTimeOfDay(23, 0)},
			time.Sunday:    {Closed: true},
		},
	}
}

// 2024-06-01 is a Saturday.
var saturday = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestValidateSlot(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*facility.Facility)
		date    time.Time
		start   facility.TimeOfDay
		end     facility.TimeOfDay
		want    int64
		wantErr error
	}{
		{
			name:  "one hour off-peak",
			date:  saturday,
			start: facility.NewTimeOfDay(10, 0),
			end:   facility.NewTimeOfDay(11, 0),
			want:  80000,
		},
		{
			name:  "ninety minutes off-peak",
			date:  saturday,
			start: facility.NewTimeOfDay(10, 0),
			end:   facility.NewTimeOfDay(11, 30),
			want:  120000,
		},
		{
			name:  "fully inside peak window",
			date:  saturday,
			start: facility.NewTimeOfDay(18, 0),
			end:   facility.NewTimeOfDay(20, 0),
			want:  240000,
		},
		{
			name:  "straddling the peak boundary",
			date:  saturday,
			start: facility.NewTimeOfDay(17, 0),
			end:   facility.NewTimeOfDay(19, 0),
			want:  200000,
		},
		{
			name:    "end equals start",
			date:    saturday,
			start:   facility.NewTimeOfDay(10, 0),
			end:     facility.NewTimeOfDay(10, 0),
			wantErr: booking.ErrInvalidTimeRange,
		},
		{
			name:    "end before start",
			date:    saturday,
			start:   facility.NewTimeOfDay(11, 0),
			end:     facility.NewTimeOfDay(10, 0),
			wantErr: booking.ErrInvalidTimeRange,
		},
		{
			name:    "before opening",
			date:    saturday,
			start:   facility.NewTimeOfDay(5, 0),
			end:     facility.NewTimeOfDay(7, 0),
			wantErr: booking.ErrOutsideOperatingHours,
		},
		{
			name:    "past closing",
			date:    saturday,
			start:   facility.NewTimeOfDay(22, 30),
			end:     facility.NewTimeOfDay(23, 30),
			wantErr: booking.ErrOutsideOperatingHours,
		},
		{
			name:    "closed day rejects any range",
			date:    time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), // Sunday
			start:   facility.NewTimeOfDay(10, 0),
			end:     facility.NewTimeOfDay(11, 0),
			wantErr: booking.ErrOutsideOperatingHours,
		},
		{
			name:    "pending facility not bookable",
			mutate:  func(f *facility.Facility) { f.ApprovalStatus = facility.StatusPending; f.IsActive = false },
			date:    saturday,
			start:   facility.NewTimeOfDay(10, 0),
			end:     facility.NewTimeOfDay(11, 0),
			wantErr: booking.ErrFacilityNotBookable,
		},
		{
			name:    "approved but unlisted facility not bookable",
			mutate:  func(f *facility.Facility) { f.IsActive = false },
			date:    saturday,
			start:   facility.NewTimeOfDay(10, 0),
			end:     facility.NewTimeOfDay(11, 0),
			wantErr: booking.ErrFacilityNotBookable,
		},
		{
			name:    "rejected facility not bookable",
			mutate:  func(f *facility.Facility) { f.ApprovalStatus = facility.StatusRejected; f.IsActive = false },
			date:    saturday,
			start:   facility.NewTimeOfDay(10, 0),
			end:     facility.NewTimeOfDay(11, 0),
			wantErr: booking.ErrFacilityNotBookable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := approvedFacility()

			if tc.mutate != nil {
				tc.mutate(&f)
			}

			got, err := booking.ValidateSlot(f, tc.date, tc.start, tc.end)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.Nil(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestOverlaps(t *testing.T) {
	ten := facility.NewTimeOfDay(10, 0)
	tenThirty := facility.NewTimeOfDay(10, 30)
	eleven := facility.NewTimeOfDay(11, 0)
	elevenThirty := facility.NewTimeOfDay(11, 30)
	twelve := facility.NewTimeOfDay(12, 0)

	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     facility.TimeOfDay
		want                           bool
	}{
		{"partial overlap", ten, eleven, tenThirty, elevenThirty, true},
		{"contained", ten, twelve, tenThirty, eleven, true},
		{"identical", ten, eleven, ten, eleven, true},
		{"adjacent slots do not overlap", ten, eleven, eleven, twelve, false},
		{"disjoint", ten, tenThirty, eleven, twelve, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, booking.Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			require.Equal(t, tc.want, booking.Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}
