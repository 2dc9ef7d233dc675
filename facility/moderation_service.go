package facility

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/quickcourt/facility-booking-backend/user"
)

//go:generate mockgen -source=moderation_service.go -destination=mocks/facility_repository_mock.go -package=mocks

type FacilityRepository interface {
	GetFacilityByID(ctx context.Context, id string) (Facility, error)
	ListPublicFacilities(ctx context.Context) ([]Facility, error)
	ListFacilitiesByStatus(ctx context.Context, status string) ([]Facility, error)
	ListFacilitiesByOwner(ctx context.Context, ownerID string) ([]Facility, error)
	InsertFacility(ctx context.Context, f Facility) (Facility, error)
	UpdateModeration(ctx context.Context, f Facility) error
}

// staleRetries bounds how often a moderation write is re-read and
// re-applied after losing an optimistic-concurrency race.
const staleRetries = 3

type ModerationService struct {
	repo FacilityRepository
}

func NewModerationService(repo FacilityRepository) *ModerationService {
	return &ModerationService{repo: repo}
}

func (s *ModerationService) FindFacilityByID(ctx context.Context, id string) (Facility, error) {
	return s.repo.GetFacilityByID(ctx, id)
}

func (s *ModerationService) ListPublic(ctx context.Context) ([]Facility, error) {
	return s.repo.ListPublicFacilities(ctx)
}

func (s *ModerationService) ListByStatus(ctx context.Context, actor user.User, status string) ([]Facility, error) {
	if !user.CanModerateFacility(actor) {
		return nil, ErrNotAllowed
	}

	return s.repo.ListFacilitiesByStatus(ctx, status)
}

func (s *ModerationService) ListByOwner(ctx context.Context, ownerID string) ([]Facility, error) {
	return s.repo.ListFacilitiesByOwner(ctx, ownerID)
}

// FacilitySubmission carries the owner-provided fields of a new listing.
type FacilitySubmission struct {
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	SportTypes   []string       `json:"sportTypes"`
	Amenities    []string       `json:"amenities"`
	ImageURLs    []string       `json:"imageUrls"`
	PricePerHour int64          `json:"pricePerHour"`
	Hours        OperatingHours `json:"hours"`
}

// Submit creates a new facility listing, pending moderation and unlisted.
func (s *ModerationService) Submit(ctx context.Context, actor user.User, sub FacilitySubmission) (Facility, error) {
	if actor.Role != user.RoleFacilityOwner && actor.Role != user.RoleAdmin {
		return Facility{}, ErrNotAllowed
	}

	if len(strings.TrimSpace(sub.Name)) == 0 || sub.PricePerHour <= 0 {
		return Facility{}, ErrInvalidFacility
	}

	for _, day := range sub.Hours {
		if !day.Closed && day.Open >= day.Close {
			return Facility{}, ErrInvalidFacility
		}
	}

	f := Facility{
		ID:           uuid.NewString(),
		OwnerID:      actor.ID,
		Name:         strings.TrimSpace(sub.Name),
		Address:      sub.Address,
		SportTypes:   sub.SportTypes,
		Amenities:    sub.Amenities,
		ImageURLs:    sub.ImageURLs,
		PricePerHour: sub.PricePerHour,
		Hours:        sub.Hours,
	}

	return s.repo.InsertFacility(ctx, f)
}

// applyGuarded runs a read-mutate-write cycle under optimistic
// versioning, retrying a bounded number of times when the write loses to
// a concurrent moderation action. A mutate reporting no change skips the
// write, which keeps repeated identical requests side-effect free.
func (s *ModerationService) applyGuarded(ctx context.Context, id string, mutate func(*Facility) (bool, error)) error {
	var err error

	for attempt := 0; attempt < staleRetries; attempt++ {
		var f Facility
		f, err = s.repo.GetFacilityByID(ctx, id)

		if err != nil {
			return err
		}

		var changed bool
		changed, err = mutate(&f)

		if err != nil || !changed {
			return err
		}

		err = s.repo.UpdateModeration(ctx, f)

		if !errors.Is(err, ErrStaleVersion) {
			return err
		}
	}

	return err
}

// Approve marks the facility as approved. Visibility is a separate act:
// an approved facility stays unlisted until its owner or an admin
// toggles it on.
func (s *ModerationService) Approve(ctx context.Context, actor user.User, id string) error {
	if !user.CanModerateFacility(actor) {
		return ErrNotAllowed
	}

	return s.applyGuarded(ctx, id, func(f *Facility) (bool, error) {
		f.ApprovalStatus = StatusApproved
		f.RejectionReason = ""
		return true, nil
	})
}

// Reject marks the facility as rejected and forces it off the public
// listing. The reason is mandatory: it is what the owner sees.
func (s *ModerationService) Reject(ctx context.Context, actor user.User, id, reason string) error {
	if !user.CanModerateFacility(actor) {
		return ErrNotAllowed
	}

	reason = strings.TrimSpace(reason)

	if len(reason) == 0 {
		return ErrEmptyReason
	}

	return s.applyGuarded(ctx, id, func(f *Facility) (bool, error) {
		f.ApprovalStatus = StatusRejected
		f.RejectionReason = reason
		f.IsActive = false
		return true, nil
	})
}

// ToggleVisibility sets the public listing flag. Only approved
// facilities can be listed. Owners may toggle only facilities that
// passed moderation; admins may always toggle. Setting the current
// value again is a successful no-op.
func (s *ModerationService) ToggleVisibility(ctx context.Context, actor user.User, id string, active bool) error {
	return s.applyGuarded(ctx, id, func(f *Facility) (bool, error) {
		if !user.CanToggleVisibility(actor, f.OwnerID, f.ApprovalStatus == StatusApproved) {
			return false, ErrNotAllowed
		}

		if active && f.ApprovalStatus != StatusApproved {
			return false, ErrNotApproved
		}

		if f.IsActive == active {
			return false, nil
		}

		f.IsActive = active
		return true, nil
	})
}
