package repository

import (
	"context"
	"database/sql"

	"github.com/umisachi/fishing-charter-booking/internal/model"
)

// TemplateRepo provides CRUD operations for reusable plan templates.
type TemplateRepo struct{ DB *sql.DB }

func NewTemplateRepo(db *sql.DB) *TemplateRepo { return &TemplateRepo{DB: db} }

const templateColumns = "id, boat_id, name, description, fish_type, price, departure_time, return_time, max_people, created_at, updated_at"

func scanTemplate(scan func(dest ...any) error) (model.PlanTemplate, error) {
	var (
		t    model.PlanTemplate
		desc sql.NullString
	)
	err := scan(&t.ID, &t.BoatID, &t.Name, &desc, &t.FishType,
		&t.Price, &t.DepartureTime, &t.ReturnTime, &t.MaxPeople,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return t, err
	}
	if desc.Valid {
		t.Description = &desc.String
	}
	return t, nil
}

// Create inserts a template and returns its ID.
func (r *TemplateRepo) Create(ctx context.Context, t *model.PlanTemplate) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO plan_templates (boat_id, name, description, fish_type, price, departure_time, return_time, max_people)
		 VALUES (?,?,?,?,?,?,?,?)`,
		t.BoatID, t.Name, t.Description, t.FishType, t.Price,
		t.DepartureTime, t.ReturnTime, t.MaxPeople)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID returns a template or ErrTemplateNotFound.
func (r *TemplateRepo) GetByID(ctx context.Context, id uint64) (model.PlanTemplate, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+templateColumns+" FROM plan_templates WHERE id=? LIMIT 1", id)
	t, err := scanTemplate(row.Scan)
	if err == sql.ErrNoRows {
		return t, ErrTemplateNotFound
	}
	return t, err
}

// ListByOwner returns templates across all boats of one owner, newest first.
func (r *TemplateRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.PlanTemplate, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT t.id, t.boat_id, t.name, t.description, t.fish_type, t.price, t.departure_time, t.return_time, t.max_people, t.created_at, t.updated_at
		 FROM plan_templates t
		 JOIN boats b ON b.id = t.boat_id
		 WHERE b.owner_id=?
		 ORDER BY t.created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	templates := []model.PlanTemplate{}
	for rows.Next() {
		t, err := scanTemplate(rows.Scan)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// ownerOf returns the owner_id of the boat the template belongs to.
func (r *TemplateRepo) ownerOf(ctx context.Context, id uint64) (uint64, error) {
	var owner uint64
	err := r.DB.QueryRowContext(ctx,
		`SELECT b.owner_id FROM plan_templates t JOIN boats b ON b.id = t.boat_id WHERE t.id=?`,
		id).Scan(&owner)
	if err == sql.ErrNoRows {
		return 0, ErrTemplateNotFound
	}
	return owner, err
}

// UpdateForOwner updates a template after an ownership check.
func (r *TemplateRepo) UpdateForOwner(ctx context.Context, id, ownerID uint64, t *model.PlanTemplate) error {
	owner, err := r.ownerOf(ctx, id)
	if err != nil {
		return err
	}
	if owner != ownerID {
		return ErrForbidden
	}
	_, err = r.DB.ExecContext(ctx,
		`UPDATE plan_templates SET name=?, description=?, fish_type=?, price=?, departure_time=?, return_time=?, max_people=?
		 WHERE id=?`,
		t.Name, t.Description, t.FishType, t.Price,
		t.DepartureTime, t.ReturnTime, t.MaxPeople, id)
	return err
}

// DeleteForOwner removes a template after an ownership check.  Plan
// occurrences stamped from it keep their copied fields; their template_id
// is set NULL by the foreign key.
func (r *TemplateRepo) DeleteForOwner(ctx context.Context, id, ownerID uint64) error {
	owner, err := r.ownerOf(ctx, id)
	if err != nil {
		return err
	}
	if owner != ownerID {
		return ErrForbidden
	}
	_, err = r.DB.ExecContext(ctx, "DELETE FROM plan_templates WHERE id=?", id)
	return err
}
