package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/umisachi/fishing-charter-booking/internal/model"
)

// BookingRepo provides access to the bookings table.  The write paths that
// matter for the capacity and exclusivity invariants are all Tx variants:
// the caller opens a transaction, locks the plan row through
// PlanRepo.GetByIDForUpdateTx, and only then reads and writes bookings.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingColumns = "id, plan_id, user_id, customer_name, customer_phone, customer_email, number_of_people, total_price, status, message, created_at, updated_at"

func scanBooking(scan func(dest ...any) error) (model.Booking, error) {
	var (
		b     model.Booking
		user  sql.NullInt64
		email sql.NullString
		msg   sql.NullString
	)
	err := scan(&b.ID, &b.PlanID, &user, &b.CustomerName, &b.CustomerPhone,
		&email, &b.NumberOfPeople, &b.TotalPrice, &b.Status, &msg,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return b, err
	}
	if user.Valid {
		id := uint64(user.Int64)
		b.UserID = &id
	}
	if email.Valid {
		b.CustomerEmail = &email.String
	}
	if msg.Valid {
		b.Message = &msg.String
	}
	return b, nil
}

// CreateTx inserts a booking within the scope of an existing transaction
// and populates the generated ID and timestamps on the provided record.
// The caller must commit or rollback the transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (plan_id, user_id, customer_name, customer_phone, customer_email, number_of_people, total_price, status, message)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		b.PlanID, b.UserID, b.CustomerName, b.CustomerPhone, b.CustomerEmail,
		b.NumberOfPeople, b.TotalPrice, b.Status, b.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	// Query back the row to populate the DB-generated timestamps.
	created, err := scanBooking(tx.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=?", b.ID).Scan)
	if err != nil {
		return err
	}
	b.CreatedAt = created.CreatedAt
	b.UpdatedAt = created.UpdatedAt
	return nil
}

// ListActiveByPlanTx returns the plan's PENDING and CONFIRMED bookings
// inside the given transaction.  Combined with the plan row lock this is
// the snapshot the creation decision is made on.
func (r *BookingRepo) ListActiveByPlanTx(ctx context.Context, tx *sql.Tx, planID uint64) ([]model.Booking, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE plan_id=? AND status IN ('PENDING','CONFIRMED')",
		planID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// GetByID returns a booking or ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	b, err := scanBooking(r.DB.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=? LIMIT 1", id).Scan)
	if err == sql.ErrNoRows {
		return b, ErrBookingNotFound
	}
	return b, err
}

// GetByIDForUpdateTx loads a booking inside the transaction with a row
// lock, so status transitions cannot interleave.
func (r *BookingRepo) GetByIDForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Booking, error) {
	b, err := scanBooking(tx.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=? FOR UPDATE", id).Scan)
	if err == sql.ErrNoRows {
		return b, ErrBookingNotFound
	}
	return b, err
}

// UpdateStatusTx writes a new status for the booking within the transaction.
func (r *BookingRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status model.BookingStatus) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=?", status, id)
	return err
}

// Delete hard-deletes a booking.  Admin-only escape hatch; normal flows
// cancel instead.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM bookings WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// BookingDetail is a booking joined with its plan, boat and (when the plan
// was stamped from one) template.  It is the record shape every listing
// and detail endpoint returns.
type BookingDetail struct {
	ID             uint64  `json:"id"`
	PlanID         uint64  `json:"plan_id"`
	UserID         *uint64 `json:"user_id,omitempty"`
	CustomerName   string  `json:"customer_name"`
	CustomerPhone  string  `json:"customer_phone"`
	CustomerEmail  *string `json:"customer_email,omitempty"`
	NumberOfPeople uint32  `json:"number_of_people"`
	TotalPrice     uint64  `json:"total_price"`
	Status         string  `json:"status"`
	Message        *string `json:"message,omitempty"`
	CreatedAt      string  `json:"created_at"`

	PlanTitle     string `json:"plan_title"`
	TripDate      string `json:"trip_date"`
	DepartureTime string `json:"departure_time"`
	ReturnTime    string `json:"return_time"`
	PlanPrice     uint32 `json:"plan_price"`
	MaxPeople     uint32 `json:"max_people"`

	BoatID                uint64  `json:"boat_id"`
	BoatName              string  `json:"boat_name"`
	BoatLocation          string  `json:"boat_location"`
	AllowMultipleBookings bool    `json:"allow_multiple_bookings"`
	TemplateName          *string `json:"template_name,omitempty"`

	// OwnerID is carried for authorization checks and not serialized.
	OwnerID uint64 `json:"-"`
}

const bookingDetailQuery = `
SELECT bk.id, bk.plan_id, bk.user_id, bk.customer_name, bk.customer_phone, bk.customer_email,
	   bk.number_of_people, bk.total_price, bk.status, bk.message, bk.created_at,
	   p.title, p.trip_date, p.departure_time, p.return_time, p.price, p.max_people,
	   b.id, b.name, b.location, b.allow_multiple_bookings, b.owner_id,
	   t.name
FROM bookings bk
JOIN fishing_plans p ON p.id = bk.plan_id
JOIN boats b ON b.id = p.boat_id
LEFT JOIN plan_templates t ON t.id = p.template_id`

func scanBookingDetail(scan func(dest ...any) error) (BookingDetail, error) {
	var (
		d        BookingDetail
		user     sql.NullInt64
		email    sql.NullString
		msg      sql.NullString
		tmplName sql.NullString
		created  time.Time
		tripDate time.Time
	)
	err := scan(&d.ID, &d.PlanID, &user, &d.CustomerName, &d.CustomerPhone, &email,
		&d.NumberOfPeople, &d.TotalPrice, &d.Status, &msg, &created,
		&d.PlanTitle, &tripDate, &d.DepartureTime, &d.ReturnTime, &d.PlanPrice, &d.MaxPeople,
		&d.BoatID, &d.BoatName, &d.BoatLocation, &d.AllowMultipleBookings, &d.OwnerID,
		&tmplName)
	if err != nil {
		return d, err
	}
	if user.Valid {
		id := uint64(user.Int64)
		d.UserID = &id
	}
	if email.Valid {
		d.CustomerEmail = &email.String
	}
	if msg.Valid {
		d.Message = &msg.String
	}
	if tmplName.Valid {
		d.TemplateName = &tmplName.String
	}
	d.CreatedAt = created.UTC().Format(time.RFC3339)
	d.TripDate = tripDate.UTC().Format("2006-01-02")
	return d, nil
}

// GetDetailByID returns one booking with joined plan/boat/template data.
func (r *BookingRepo) GetDetailByID(ctx context.Context, id uint64) (*BookingDetail, error) {
	d, err := scanBookingDetail(r.DB.QueryRowContext(ctx,
		bookingDetailQuery+" WHERE bk.id=?", id).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *BookingRepo) queryDetails(ctx context.Context, q string, args ...any) ([]BookingDetail, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := []BookingDetail{}
	for rows.Next() {
		d, err := scanBookingDetail(rows.Scan)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// ListDetailsByUser returns a customer's own bookings, newest first.
func (r *BookingRepo) ListDetailsByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	return r.queryDetails(ctx,
		bookingDetailQuery+" WHERE bk.user_id=? ORDER BY bk.created_at DESC", userID)
}

// ListDetailsByOwner returns bookings across every plan of the owner's
// boats, newest first.
func (r *BookingRepo) ListDetailsByOwner(ctx context.Context, ownerID uint64) ([]BookingDetail, error) {
	return r.queryDetails(ctx,
		bookingDetailQuery+" WHERE b.owner_id=? ORDER BY bk.created_at DESC", ownerID)
}

// ListDetailsAll returns every booking (admin table), newest first.
func (r *BookingRepo) ListDetailsAll(ctx context.Context) ([]BookingDetail, error) {
	return r.queryDetails(ctx,
		bookingDetailQuery+" ORDER BY bk.created_at DESC")
}

// CountConfirmedBetween counts CONFIRMED bookings created inside [from, to).
func (r *BookingRepo) CountConfirmedBetween(ctx context.Context, from, to time.Time) (uint64, error) {
	var n uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE status='CONFIRMED' AND created_at >= ? AND created_at < ?",
		from, to).Scan(&n)
	return n, err
}

// SumRevenueBetween sums total_price over CONFIRMED bookings created
// inside [from, to).
func (r *BookingRepo) SumRevenueBetween(ctx context.Context, from, to time.Time) (uint64, error) {
	var sum sql.NullInt64
	err := r.DB.QueryRowContext(ctx,
		"SELECT SUM(total_price) FROM bookings WHERE status='CONFIRMED' AND created_at >= ? AND created_at < ?",
		from, to).Scan(&sum)
	if err != nil {
		return 0, err
	}
	if !sum.Valid {
		return 0, nil
	}
	return uint64(sum.Int64), nil
}
