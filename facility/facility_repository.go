package facility

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

const facilityColumns = `id, "ownerId", name, address, "sportTypes", amenities, "imageUrls", "pricePerHour", hours, "approvalStatus", "rejectionReason", "isActive", rating, "ratingCount", version`

func scanFacility(row pgx.Row) (Facility, error) {
	var f Facility
	var hours []byte

	err := row.Scan(
		&f.ID,
		&f.OwnerID,
		&f.Name,
		&f.Address,
		&f.SportTypes,
		&f.Amenities,
		&f.ImageURLs,
		&f.PricePerHour,
		&hours,
		&f.ApprovalStatus,
		&f.RejectionReason,
		&f.IsActive,
		&f.Rating,
		&f.RatingCount,
		&f.Version,
	)

	if err != nil {
		return Facility{}, err
	}

	if err := json.Unmarshal(hours, &f.Hours); err != nil {
		return Facility{}, fmt.Errorf("failed to decode operating hours for facility %v: %w", f.ID, err)
	}

	return f, nil
}

func (r *Repository) GetFacilityByID(ctx context.Context, id string) (Facility, error) {
	sql := `
			SELECT ` + facilityColumns + `
			FROM quickcourt.facility
			WHERE id=$1;
		`

	f, err := scanFacility(r.conn.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Facility{}, ErrFacilityNotFound
	}

	if err != nil {
		return Facility{}, fmt.Errorf("failed to fetch facility with id %v: %w", id, err)
	}

	return f, nil
}

func (r *Repository) collect(rows pgx.Rows, queryErr error, what string) ([]Facility, error) {
	if queryErr != nil {
		return nil, fmt.Errorf("failed to fetch %v: %w", what, queryErr)
	}

	defer rows.Close()

	var facilities []Facility

	for rows.Next() {
		f, err := scanFacility(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning facility row: %w", err)
		}

		facilities = append(facilities, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating facility rows: %w", err)
	}

	return facilities, nil
}

// ListPublicFacilities returns facilities visible to players: approved
// and currently listed.
func (r *Repository) ListPublicFacilities(ctx context.Context) ([]Facility, error) {
	sql := `
			SELECT ` + facilityColumns + `
			FROM quickcourt.facility
			WHERE "approvalStatus"='approved' AND "isActive"=TRUE
			ORDER BY name;
		`

	rows, err := r.conn.Query(ctx, sql)
	return r.collect(rows, err, "public facilities")
}

func (r *Repository) ListFacilitiesByStatus(ctx context.Context, status string) ([]Facility, error) {
	sql := `
			SELECT ` + facilityColumns + `
			FROM quickcourt.facility
			WHERE "approvalStatus"=$1
			ORDER BY name;
		`

	rows, err := r.conn.Query(ctx, sql, status)
	return r.collect(rows, err, fmt.Sprintf("facilities with status '%v'", status))
}

func (r *Repository) ListFacilitiesByOwner(ctx context.Context, ownerID string) ([]Facility, error) {
	sql := `
			SELECT ` + facilityColumns + `
			FROM quickcourt.facility
			WHERE "ownerId"=$1
			ORDER BY name;
		`

	rows, err := r.conn.Query(ctx, sql, ownerID)
	return r.collect(rows, err, fmt.Sprintf("facilities of owner '%v'", ownerID))
}

func (r *Repository) InsertFacility(ctx context.Context, f Facility) (Facility, error) {
	sql := `
			INSERT INTO quickcourt.facility(
			id, "ownerId", name, address, "sportTypes", amenities, "imageUrls", "pricePerHour", hours, "approvalStatus", "rejectionReason", "isActive", rating, "ratingCount", version)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending', '', FALSE, 0, 0, 1);
		`

	hours, err := json.Marshal(f.Hours)

	if err != nil {
		return Facility{}, fmt.Errorf("failed to encode operating hours: %w", err)
	}

	_, err = r.conn.Exec(ctx, sql,
		f.ID,
		f.OwnerID,
		f.Name,
		f.Address,
		f.SportTypes,
		f.Amenities,
		f.ImageURLs,
		f.PricePerHour,
		hours,
	)

	if err != nil {
		return Facility{}, fmt.Errorf("failed to insert facility: %w", err)
	}

	f.ApprovalStatus = StatusPending
	f.RejectionReason = ""
	f.IsActive = false
	f.Version = 1

	return f, nil
}

// UpdateModeration writes the moderation-owned fields guarded by the
// version the caller read. A concurrent write bumps the version and the
// update matches no row, which surfaces as ErrStaleVersion.
func (r *Repository) UpdateModeration(ctx context.Context, f Facility) error {
	sql := `
			UPDATE quickcourt.facility
			SET
				"approvalStatus"=$1,
				"rejectionReason"=$2,
				"isActive"=$3,
				version=version+1
			WHERE id=$4 AND version=$5;
		`

	tag, err := r.conn.Exec(ctx, sql,
		f.ApprovalStatus,
		f.RejectionReason,
		f.IsActive,
		f.ID,
		f.Version,
	)

	if err != nil {
		return fmt.Errorf("failed to update facility '%v' moderation state: %w", f.ID, err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		err := r.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM quickcourt.facility WHERE id=$1);`, f.ID).Scan(&exists)

		if err != nil {
			return fmt.Errorf("failed to check facility '%v' existence: %w", f.ID, err)
		}

		if !exists {
			return ErrFacilityNotFound
		}

		return ErrStaleVersion
	}

	return nil
}
