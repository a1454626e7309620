package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/umisachi/fishing-charter-booking/internal/model"
)

// PlanRepo provides CRUD operations for fishing plan occurrences.  The
// booking engine also uses it to lock a plan row (SELECT ... FOR UPDATE)
// so that concurrent booking attempts against the same plan serialize.
type PlanRepo struct{ DB *sql.DB }

func NewPlanRepo(db *sql.DB) *PlanRepo { return &PlanRepo{DB: db} }

const planColumns = "id, boat_id, template_id, title, description, fish_type, price, max_people, trip_date, departure_time, return_time, created_at, updated_at"

func scanPlan(scan func(dest ...any) error) (model.FishingPlan, error) {
	var (
		p    model.FishingPlan
		tmpl sql.NullInt64
		desc sql.NullString
	)
	err := scan(&p.ID, &p.BoatID, &tmpl, &p.Title, &desc, &p.FishType,
		&p.Price, &p.MaxPeople, &p.TripDate, &p.DepartureTime, &p.ReturnTime,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return p, err
	}
	if tmpl.Valid {
		id := uint64(tmpl.Int64)
		p.TemplateID = &id
	}
	if desc.Valid {
		p.Description = &desc.String
	}
	return p, nil
}

// PlanFilter narrows the public plan listing.  Zero values mean "no filter".
type PlanFilter struct {
	BoatID   uint64 // restrict to one boat
	FishType string // substring match on fish_type
	MaxPrice uint32 // price ceiling
	Query    string // substring match on title or description
}

// Create inserts a plan occurrence and returns its ID.
func (r *PlanRepo) Create(ctx context.Context, p *model.FishingPlan) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO fishing_plans (boat_id, template_id, title, description, fish_type, price, max_people, trip_date, departure_time, return_time)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		p.BoatID, p.TemplateID, p.Title, p.Description, p.FishType,
		p.Price, p.MaxPeople, p.TripDate, p.DepartureTime, p.ReturnTime)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID returns a plan or ErrPlanNotFound.
func (r *PlanRepo) GetByID(ctx context.Context, id uint64) (model.FishingPlan, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+planColumns+" FROM fishing_plans WHERE id=? LIMIT 1", id)
	p, err := scanPlan(row.Scan)
	if err == sql.ErrNoRows {
		return p, ErrPlanNotFound
	}
	return p, err
}

// GetByIDForUpdateTx loads a plan inside the given transaction while taking
// a row lock on it.  Every booking writer for a plan must pass through this
// lock, which serializes the read-decide-write sequence and keeps the
// capacity and exclusivity invariants race free.
func (r *PlanRepo) GetByIDForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.FishingPlan, error) {
	row := tx.QueryRowContext(ctx,
		"SELECT "+planColumns+" FROM fishing_plans WHERE id=? FOR UPDATE", id)
	p, err := scanPlan(row.Scan)
	if err == sql.ErrNoRows {
		return p, ErrPlanNotFound
	}
	return p, err
}

func (r *PlanRepo) queryPlans(ctx context.Context, q string, args ...any) ([]model.FishingPlan, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	plans := []model.FishingPlan{}
	for rows.Next() {
		p, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// List returns plans matching the filter, soonest trip first.  Only plans
// on active boats are visible publicly.
func (r *PlanRepo) List(ctx context.Context, f PlanFilter) ([]model.FishingPlan, error) {
	var sb strings.Builder
	sb.WriteString("SELECT p.")
	sb.WriteString(strings.ReplaceAll(planColumns, ", ", ", p."))
	sb.WriteString(" FROM fishing_plans p JOIN boats b ON b.id = p.boat_id WHERE b.is_active=1")
	args := []any{}
	if f.BoatID != 0 {
		sb.WriteString(" AND p.boat_id=?")
		args = append(args, f.BoatID)
	}
	if f.FishType != "" {
		sb.WriteString(" AND p.fish_type LIKE ?")
		args = append(args, "%"+f.FishType+"%")
	}
	if f.MaxPrice != 0 {
		sb.WriteString(" AND p.price <= ?")
		args = append(args, f.MaxPrice)
	}
	if f.Query != "" {
		sb.WriteString(" AND (p.title LIKE ? OR p.description LIKE ?)")
		like := "%" + f.Query + "%"
		args = append(args, like, like)
	}
	sb.WriteString(" ORDER BY p.trip_date ASC, p.id ASC")
	return r.queryPlans(ctx, sb.String(), args...)
}

// ListByOwner returns plans across all boats of one owner.
func (r *PlanRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.FishingPlan, error) {
	return r.queryPlans(ctx,
		`SELECT p.`+strings.ReplaceAll(planColumns, ", ", ", p.")+`
		 FROM fishing_plans p
		 JOIN boats b ON b.id = p.boat_id
		 WHERE b.owner_id=?
		 ORDER BY p.trip_date ASC, p.id ASC`, ownerID)
}

// ListAll returns every plan (admin table).
func (r *PlanRepo) ListAll(ctx context.Context) ([]model.FishingPlan, error) {
	return r.queryPlans(ctx,
		"SELECT "+planColumns+" FROM fishing_plans ORDER BY trip_date DESC, id DESC")
}

// ownerOf returns the owner_id of the boat the plan belongs to.
func (r *PlanRepo) ownerOf(ctx context.Context, planID uint64) (uint64, error) {
	var owner uint64
	err := r.DB.QueryRowContext(ctx,
		`SELECT b.owner_id FROM fishing_plans p JOIN boats b ON b.id = p.boat_id WHERE p.id=?`,
		planID).Scan(&owner)
	if err == sql.ErrNoRows {
		return 0, ErrPlanNotFound
	}
	return owner, err
}

// UpdateForOwner updates a plan after verifying the acting owner owns the
// plan's boat.  Returns ErrPlanNotFound or ErrForbidden accordingly.
func (r *PlanRepo) UpdateForOwner(ctx context.Context, id, ownerID uint64, p *model.FishingPlan) error {
	owner, err := r.ownerOf(ctx, id)
	if err != nil {
		return err
	}
	if owner != ownerID {
		return ErrForbidden
	}
	_, err = r.DB.ExecContext(ctx,
		`UPDATE fishing_plans SET title=?, description=?, fish_type=?, price=?, max_people=?, trip_date=?, departure_time=?, return_time=?
		 WHERE id=?`,
		p.Title, p.Description, p.FishType, p.Price, p.MaxPeople,
		p.TripDate, p.DepartureTime, p.ReturnTime, id)
	return err
}

// DeleteForOwner removes a plan unless active bookings still reference it.
// The existence check, the guard and the delete run in one transaction so a
// booking created in between cannot be orphaned.
func (r *PlanRepo) DeleteForOwner(ctx context.Context, id, ownerID uint64) error {
	owner, err := r.ownerOf(ctx, id)
	if err != nil {
		return err
	}
	if owner != ownerID {
		return ErrForbidden
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the plan row so concurrent booking creation cannot slip in
	// between the guard and the delete.
	var locked uint64
	if err := tx.QueryRowContext(ctx,
		"SELECT id FROM fishing_plans WHERE id=? FOR UPDATE", id).Scan(&locked); err != nil {
		if err == sql.ErrNoRows {
			return ErrPlanNotFound
		}
		return err
	}

	var active uint64
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE plan_id=? AND status IN ('PENDING','CONFIRMED')",
		id).Scan(&active); err != nil {
		return err
	}
	if active > 0 {
		return ErrActiveBookingsExist
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM fishing_plans WHERE id=?", id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
