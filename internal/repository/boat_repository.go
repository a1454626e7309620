package repository

import (
	"context"
	"database/sql"

	"github.com/umisachi/fishing-charter-booking/internal/model"
)

// BoatRepo provides CRUD operations for boats.  A boat belongs to one
// owner; ownership is enforced here so handlers only need to pass the
// acting owner's ID.
type BoatRepo struct{ DB *sql.DB }

func NewBoatRepo(db *sql.DB) *BoatRepo { return &BoatRepo{DB: db} }

const boatColumns = "id, owner_id, name, location, description, image_url, capacity, allow_multiple_bookings, is_active, created_at, updated_at"

func scanBoat(scan func(dest ...any) error) (model.Boat, error) {
	var (
		b    model.Boat
		desc sql.NullString
		img  sql.NullString
	)
	err := scan(&b.ID, &b.OwnerID, &b.Name, &b.Location, &desc, &img,
		&b.Capacity, &b.AllowMultipleBookings, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return b, err
	}
	if desc.Valid {
		b.Description = &desc.String
	}
	if img.Valid {
		b.ImageURL = &img.String
	}
	return b, nil
}

// Create inserts a boat and returns its ID.
func (r *BoatRepo) Create(ctx context.Context, ownerID uint64, name, location string, description, imageURL *string, capacity uint32, allowMultiple bool) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO boats (owner_id, name, location, description, image_url, capacity, allow_multiple_bookings)
		 VALUES (?,?,?,?,?,?,?)`,
		ownerID, name, location, description, imageURL, capacity, allowMultiple)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID returns a boat or ErrBoatNotFound.
func (r *BoatRepo) GetByID(ctx context.Context, id uint64) (model.Boat, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+boatColumns+" FROM boats WHERE id=? LIMIT 1", id)
	b, err := scanBoat(row.Scan)
	if err == sql.ErrNoRows {
		return b, ErrBoatNotFound
	}
	return b, err
}

func (r *BoatRepo) queryBoats(ctx context.Context, q string, args ...any) ([]model.Boat, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	boats := []model.Boat{}
	for rows.Next() {
		b, err := scanBoat(rows.Scan)
		if err != nil {
			return nil, err
		}
		boats = append(boats, b)
	}
	return boats, rows.Err()
}

// ListActive returns active boats for public browsing.
func (r *BoatRepo) ListActive(ctx context.Context) ([]model.Boat, error) {
	return r.queryBoats(ctx,
		"SELECT "+boatColumns+" FROM boats WHERE is_active=1 ORDER BY created_at DESC")
}

// ListByOwner returns all boats of one owner.
func (r *BoatRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Boat, error) {
	return r.queryBoats(ctx,
		"SELECT "+boatColumns+" FROM boats WHERE owner_id=? ORDER BY created_at DESC", ownerID)
}

// ListAll returns every boat (admin table).
func (r *BoatRepo) ListAll(ctx context.Context) ([]model.Boat, error) {
	return r.queryBoats(ctx,
		"SELECT "+boatColumns+" FROM boats ORDER BY created_at DESC")
}

// UpdateForOwner updates a boat owned by ownerID.  It returns
// ErrBoatNotFound when the boat does not exist and ErrForbidden when it
// belongs to another owner.
func (r *BoatRepo) UpdateForOwner(ctx context.Context, id, ownerID uint64, name, location string, description, imageURL *string, capacity uint32, allowMultiple, isActive bool) error {
	if err := r.checkOwnership(ctx, id, ownerID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx,
		`UPDATE boats SET name=?, location=?, description=?, image_url=?, capacity=?, allow_multiple_bookings=?, is_active=?
		 WHERE id=?`,
		name, location, description, imageURL, capacity, allowMultiple, isActive, id)
	return err
}

// DeleteForOwner removes a boat owned by ownerID.  Plans and bookings
// cascade via foreign keys; this is a destructive escape hatch.
func (r *BoatRepo) DeleteForOwner(ctx context.Context, id, ownerID uint64) error {
	if err := r.checkOwnership(ctx, id, ownerID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx, "DELETE FROM boats WHERE id=?", id)
	return err
}

func (r *BoatRepo) checkOwnership(ctx context.Context, id, ownerID uint64) error {
	var owner uint64
	err := r.DB.QueryRowContext(ctx, "SELECT owner_id FROM boats WHERE id=?", id).Scan(&owner)
	if err == sql.ErrNoRows {
		return ErrBoatNotFound
	}
	if err != nil {
		return err
	}
	if owner != ownerID {
		return ErrForbidden
	}
	return nil
}
