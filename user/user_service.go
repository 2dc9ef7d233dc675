package user

import (
	"context"
	"slices"
)

//go:generate mockgen -source=user_service.go -destination=mocks/user_repository_mock.go -package=mocks

type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (User, error)
	GetUserBySessionToken(ctx context.Context, token string) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, u User) error
	SetUserBanned(ctx context.Context, id string, banned bool) error
}

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) FindUserByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *Service) ResolveSession(ctx context.Context, token string) (User, error) {
	u, err := s.repo.GetUserBySessionToken(ctx, token)

	if err != nil {
		return User{}, err
	}

	if u.IsBanned || !u.IsActive {
		return User{}, ErrSessionNotFound
	}

	return u, nil
}

func (s *Service) ListUsers(ctx context.Context, actor User) ([]User, error) {
	if actor.Role != RoleAdmin {
		return nil, ErrNotAllowed
	}

	return s.repo.ListUsers(ctx)
}

// UserUpdate carries the admin-editable fields of a user account.
type UserUpdate struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

var validRoles = []string{RoleUser, RoleFacilityOwner, RoleAdmin}

func (s *Service) UpdateUser(ctx context.Context, actor User, targetID string, update UserUpdate) (User, error) {
	if actor.Role != RoleAdmin {
		return User{}, ErrNotAllowed
	}

	if !slices.Contains(validRoles, update.Role) {
		return User{}, ErrInvalidRole
	}

	target, err := s.repo.GetUserByID(ctx, targetID)

	if err != nil {
		return User{}, err
	}

	if !CanEditUser(actor, target) {
		return User{}, ErrNotAllowed
	}

	target.Email = update.Email
	target.Name = update.Name
	target.Role = update.Role
	target.IsActive = update.IsActive

	if err := s.repo.UpdateUser(ctx, target); err != nil {
		return User{}, err
	}

	return target, nil
}

func (s *Service) SetBanned(ctx context.Context, actor User, targetID string, banned bool) error {
	if actor.Role != RoleAdmin {
		return ErrNotAllowed
	}

	target, err := s.repo.GetUserByID(ctx, targetID)

	if err != nil {
		return err
	}

	if !CanBanUser(actor, target) {
		return ErrNotAllowed
	}

	return s.repo.SetUserBanned(ctx, targetID, banned)
}
