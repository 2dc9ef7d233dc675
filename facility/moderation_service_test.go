package facility_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quickcourt/facility-booking-backend/facility"
	"github.com/quickcourt/facility-booking-backend/facility/mocks"
	"github.com/quickcourt/facility-booking-backend/user"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	admin  = user.User{ID: "admin-1", Role: user.RoleAdmin}
	owner  = user.User{ID: "owner-1", Role: user.RoleFacilityOwner}
	player = user.User{ID: "player-1", Role: user.RoleUser}
)

var weekHours = facility.OperatingHours{
	time.Monday:    {Open: facility.NewTimeOfDay(6, 0), Close: facility.NewTimeOfDay(23, 0)},
	time.Tuesday:   {Open: facility.NewTimeOfDay(6, 0), Close: facility.NewTimeOfDay(23, 0)},
	time.Wednesday: {Open: facility.NewTimeOfDay(6, 0), Close: facility.NewTimeOfDay(23, 0)},
	time.Thursday:  {Open: facility.NewTimeOfDay(6, 0), Close: facility.NewTimeOfDay(23, 0)},
	time.Friday:    {Open: facility.NewTimeOfDay(6, 0), Close: facility.NewTimeOfDay(23, 0)},
	time.Saturday:  {Open: facility.NewTimeOfDay(6, 0), Close: facility.NewTimeOfDay(23, 0)},
	time.Sunday:    {Closed: true},
}

func pendingFacility() facility.Facility {
	return facility.Facility{
		ID:             "f1",
		OwnerID:        owner.ID,
		Name:           "Court One",
		PricePerHour:   80000,
		Hours:          weekHours,
		ApprovalStatus: facility.StatusPending,
		Version:        1,
	}
}

type testDeps struct {
	repo    *mocks.MockFacilityRepository
	service *facility.ModerationService
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockFacilityRepository(ctrl)
	svc := facility.NewModerationService(repo)

	return ctrl, testDeps{repo: repo, service: svc, ctx: context.Background()}
}

func TestSubmit(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		sub := facility.FacilitySubmission{Name: " Court One ", PricePerHour: 80000, Hours: weekHours}

		deps.repo.EXPECT().InsertFacility(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, f facility.Facility) (facility.Facility, error) {
				require.NotEmpty(t, f.ID)
				require.Equal(t, owner.ID, f.OwnerID)
				require.Equal(t, "Court One", f.Name)
				f.ApprovalStatus = facility.StatusPending
				f.Version = 1
				return f, nil
			}).Times(1)

		created, err := deps.service.Submit(deps.ctx, owner, sub)

		require.Nil(t, err)
		require.Equal(t, facility.StatusPending, created.ApprovalStatus)
		require.False(t, created.IsActive)
	})

	t.Run("player not allowed", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.Submit(deps.ctx, player, facility.FacilitySubmission{Name: "X", PricePerHour: 1})

		require.ErrorIs(t, err, facility.ErrNotAllowed)
	})

	t.Run("empty name", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.Submit(deps.ctx, owner, facility.FacilitySubmission{Name: "  ", PricePerHour: 1})

		require.ErrorIs(t, err, facility.ErrInvalidFacility)
	})

	t.Run("non-positive price", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.Submit(deps.ctx, owner, facility.FacilitySubmission{Name: "X", PricePerHour: 0})

		require.ErrorIs(t, err, facility.ErrInvalidFacility)
	})

	t.Run("open day with inverted hours", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		bad := facility.OperatingHours{
			time.Monday: {Open: facility.NewTimeOfDay(20, 0), Close: facility.NewTimeOfDay(8, 0)},
		}

		_, err := deps.service.Submit(deps.ctx, owner, facility.FacilitySubmission{Name: "X", PricePerHour: 1, Hours: bad})

		require.ErrorIs(t, err, facility.ErrInvalidFacility)
	})
}

func TestApprove(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		f := pendingFacility()
		approved := f
		approved.ApprovalStatus = facility.StatusApproved
		approved.RejectionReason = ""

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(f, nil).Times(1)
		deps.repo.EXPECT().UpdateModeration(deps.ctx, approved).Return(nil).Times(1)

		err := deps.service.Approve(deps.ctx, admin, "f1")

		require.Nil(t, err)
	})

	t.Run("approve does not list the facility", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		f := pendingFacility()

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(f, nil).Times(1)
		deps.repo.EXPECT().UpdateModeration(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, written facility.Facility) error {
				require.False(t, written.IsActive)
				return nil
			}).Times(1)

		err := deps.service.Approve(deps.ctx, admin, "f1")

		require.Nil(t, err)
	})

	t.Run("re-approve after reject clears reason", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		f := pendingFacility()
		f.ApprovalStatus = facility.StatusRejected
		f.RejectionReason = "unsafe flooring"

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(f, nil).Times(1)
		deps.repo.EXPECT().UpdateModeration(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, written facility.Facility) error {
				require.Equal(t, facility.StatusApproved, written.ApprovalStatus)
				require.Empty(t, written.RejectionReason)
				return nil
			}).Times(1)

		err := deps.service.Approve(deps.ctx, admin, "f1")

		require.Nil(t, err)
	})

	t.Run("non-admin", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		err := deps.service.Approve(deps.ctx, owner, "f1")

		require.ErrorIs(t, err, facility.ErrNotAllowed)
	})

	t.Run("stale write retried then succeeds", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		first := pendingFacility()
		second := pendingFacility()
		second.Version = 2

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(first, nil).Times(1)
		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(second, nil).Times(1)

		stale := deps.repo.EXPECT().UpdateModeration(deps.ctx, gomock.Any()).Return(facility.ErrStaleVersion).Times(1)
		deps.repo.EXPECT().UpdateModeration(deps.ctx, gomock.Any()).Return(nil).Times(1).After(stale)

		err := deps.service.Approve(deps.ctx, admin, "f1")

		require.Nil(t, err)
	})

	t.Run("stale write exhausts retries", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(pendingFacility(), nil).Times(3)
		deps.repo.EXPECT().UpdateModeration(deps.ctx, gomock.Any()).Return(facility.ErrStaleVersion).Times(3)

		err := deps.service.Approve(deps.ctx, admin, "f1")

		require.ErrorIs(t, err, facility.ErrStaleVersion)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "missing").Return(facility.Facility{}, facility.ErrFacilityNotFound).Times(1)

		err := deps.service.Approve(deps.ctx, admin, "missing")

		require.ErrorIs(t, err, facility.ErrFacilityNotFound)
	})
}

func TestReject(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(pendingFacility(), nil).Times(1)
		deps.repo.EXPECT().UpdateModeration(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, written facility.Facility) error {
				require.Equal(t, facility.StatusRejected, written.ApprovalStatus)
				require.Equal(t, "unsafe flooring", written.RejectionReason)
				require.False(t, written.IsActive)
				return nil
			}).Times(1)

		err := deps.service.Reject(deps.ctx, admin, "f1", "unsafe flooring")

		require.Nil(t, err)
	})

	t.Run("rejecting a listed facility unlists it", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		f := pendingFacility()
		f.ApprovalStatus = facility.StatusApproved
		f.IsActive = true

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(f, nil).Times(1)
		deps.repo.EXPECT().UpdateModeration(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, written facility.Facility) error {
				require.False(t, written.IsActive)
				return nil
			}).Times(1)

		err := deps.service.Reject(deps.ctx, admin, "f1", "complaints")

		require.Nil(t, err)
	})

	t.Run("empty reason", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetFacilityByID(gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().UpdateModeration(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.Reject(deps.ctx, admin, "f1", "   ")

		require.ErrorIs(t, err, facility.ErrEmptyReason)
	})

	t.Run("non-admin", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		err := deps.service.Reject(deps.ctx, owner, "f1", "reason")

		require.ErrorIs(t, err, facility.ErrNotAllowed)
	})
}

func TestToggleVisibility(t *testing.T) {

	t.Run("owner lists approved facility", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		f := pendingFacility()
		f.ApprovalStatus = facility.StatusApproved

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(f, nil).Times(1)
		deps.repo.EXPECT().UpdateModeration(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, written facility.Facility) error {
				require.True(t, written.IsActive)
				return nil
			}).Times(1)

		err := deps.service.ToggleVisibility(deps.ctx, owner, "f1", true)

		require.Nil(t, err)
	})

	t.Run("listing a pending facility fails", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(pendingFacility(), nil).Times(1)
		deps.repo.EXPECT().UpdateModeration(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.ToggleVisibility(deps.ctx, admin, "f1", true)

		require.ErrorIs(t, err, facility.ErrNotApproved)
	})

	t.Run("owner cannot toggle unapproved facility", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(pendingFacility(), nil).Times(1)
		deps.repo.EXPECT().UpdateModeration(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.ToggleVisibility(deps.ctx, owner, "f1", false)

		require.ErrorIs(t, err, facility.ErrNotAllowed)
	})

	t.Run("admin unlists any facility", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		f := pendingFacility()
		f.ApprovalStatus = facility.StatusApproved
		f.IsActive = true

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(f, nil).Times(1)
		deps.repo.EXPECT().UpdateModeration(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, written facility.Facility) error {
				require.False(t, written.IsActive)
				return nil
			}).Times(1)

		err := deps.service.ToggleVisibility(deps.ctx, admin, "f1", false)

		require.Nil(t, err)
	})

	t.Run("same value twice is a no-op", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		f := pendingFacility()
		f.ApprovalStatus = facility.StatusApproved
		f.IsActive = true

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(f, nil).Times(1)
		deps.repo.EXPECT().UpdateModeration(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.ToggleVisibility(deps.ctx, owner, "f1", true)

		require.Nil(t, err)
	})

	t.Run("stranger not allowed", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		f := pendingFacility()
		f.ApprovalStatus = facility.StatusApproved

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(f, nil).Times(1)
		deps.repo.EXPECT().UpdateModeration(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.ToggleVisibility(deps.ctx, player, "f1", true)

		require.ErrorIs(t, err, facility.ErrNotAllowed)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetFacilityByID(deps.ctx, "f1").Return(facility.Facility{}, errors.New("repo error")).Times(1)

		err := deps.service.ToggleVisibility(deps.ctx, admin, "f1", true)

		require.Error(t, err)
	})
}
