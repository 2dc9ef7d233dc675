package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/quickcourt/facility-booking-backend/user"
	"github.com/quickcourt/facility-booking-backend/user/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo    *mocks.MockUserRepository
	service *user.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockUserRepository(ctrl)
	svc := user.NewService(repo)

	return ctrl, testDeps{repo: repo, service: svc, ctx: context.Background()}
}

func TestResolveSession(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		u := user.User{ID: "u1", Role: user.RoleUser, IsActive: true}
		deps.repo.EXPECT().GetUserBySessionToken(deps.ctx, "tok").Return(u, nil).Times(1)

		got, err := deps.service.ResolveSession(deps.ctx, "tok")

		require.Nil(t, err)
		require.Equal(t, u, got)
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetUserBySessionToken(deps.ctx, "tok").Return(user.User{}, user.ErrSessionNotFound).Times(1)

		_, err := deps.service.ResolveSession(deps.ctx, "tok")

		require.ErrorIs(t, err, user.ErrSessionNotFound)
	})

	t.Run("banned user", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		u := user.User{ID: "u1", Role: user.RoleUser, IsActive: true, IsBanned: true}
		deps.repo.EXPECT().GetUserBySessionToken(deps.ctx, "tok").Return(u, nil).Times(1)

		_, err := deps.service.ResolveSession(deps.ctx, "tok")

		require.ErrorIs(t, err, user.ErrSessionNotFound)
	})

	t.Run("deactivated user", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		u := user.User{ID: "u1", Role: user.RoleUser, IsActive: false}
		deps.repo.EXPECT().GetUserBySessionToken(deps.ctx, "tok").Return(u, nil).Times(1)

		_, err := deps.service.ResolveSession(deps.ctx, "tok")

		require.ErrorIs(t, err, user.ErrSessionNotFound)
	})
}

func TestUpdateUser(t *testing.T) {
	update := user.UserUpdate{Email: "new@example.com", Name: "New Name", Role: user.RoleFacilityOwner, IsActive: true}

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		target := user.User{ID: "u1", Email: "old@example.com", Role: user.RoleUser, IsActive: true}
		updated := user.User{ID: "u1", Email: "new@example.com", Name: "New Name", Role: user.RoleFacilityOwner, IsActive: true}

		deps.repo.EXPECT().GetUserByID(deps.ctx, "u1").Return(target, nil).Times(1)
		deps.repo.EXPECT().UpdateUser(deps.ctx, updated).Return(nil).Times(1)

		got, err := deps.service.UpdateUser(deps.ctx, adminA, "u1", update)

		require.Nil(t, err)
		require.Equal(t, updated, got)
	})

	t.Run("non-admin actor", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.UpdateUser(deps.ctx, owner, "u1", update)

		require.ErrorIs(t, err, user.ErrNotAllowed)
	})

	t.Run("admin editing another admin", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetUserByID(deps.ctx, adminB.ID).Return(adminB, nil).Times(1)
		deps.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.UpdateUser(deps.ctx, adminA, adminB.ID, update)

		require.ErrorIs(t, err, user.ErrNotAllowed)
	})

	t.Run("invalid role", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		bad := user.UserUpdate{Email: "e@example.com", Role: "superuser", IsActive: true}

		_, err := deps.service.UpdateUser(deps.ctx, adminA, "u1", bad)

		require.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("target not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetUserByID(deps.ctx, "missing").Return(user.User{}, user.ErrUserNotFound).Times(1)

		_, err := deps.service.UpdateUser(deps.ctx, adminA, "missing", update)

		require.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestSetBanned(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetUserByID(deps.ctx, player.ID).Return(player, nil).Times(1)
		deps.repo.EXPECT().SetUserBanned(deps.ctx, player.ID, true).Return(nil).Times(1)

		err := deps.service.SetBanned(deps.ctx, adminA, player.ID, true)

		require.Nil(t, err)
	})

	t.Run("unban success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		banned := user.User{ID: "u2", Role: user.RoleUser, IsBanned: true}
		deps.repo.EXPECT().GetUserByID(deps.ctx, "u2").Return(banned, nil).Times(1)
		deps.repo.EXPECT().SetUserBanned(deps.ctx, "u2", false).Return(nil).Times(1)

		err := deps.service.SetBanned(deps.ctx, adminA, "u2", false)

		require.Nil(t, err)
	})

	t.Run("admin target", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetUserByID(deps.ctx, adminB.ID).Return(adminB, nil).Times(1)
		deps.repo.EXPECT().SetUserBanned(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.SetBanned(deps.ctx, adminA, adminB.ID, true)

		require.ErrorIs(t, err, user.ErrNotAllowed)
	})

	t.Run("self target", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetUserByID(deps.ctx, adminA.ID).Return(adminA, nil).Times(1)
		deps.repo.EXPECT().SetUserBanned(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.SetBanned(deps.ctx, adminA, adminA.ID, true)

		require.ErrorIs(t, err, user.ErrNotAllowed)
	})

	t.Run("non-admin actor", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		err := deps.service.SetBanned(deps.ctx, player, "u2", true)

		require.ErrorIs(t, err, user.ErrNotAllowed)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetUserByID(deps.ctx, player.ID).Return(player, nil).Times(1)
		deps.repo.EXPECT().SetUserBanned(deps.ctx, player.ID, true).Return(errors.New("repo error")).Times(1)

		err := deps.service.SetBanned(deps.ctx, adminA, player.ID, true)

		require.Error(t, err)
	})
}
