// repository/booking/repo.go
package bookingrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
)

// Row is a booking joined with item and counterparty names for list
// views.
type Row struct {
	model.Booking
	ItemName     string  `json:"item_name"`
	ItemImage    *string `json:"item_image,omitempty"`
	OwnerName    string  `json:"owner_name"`
	BorrowerName string  `json:"borrower_name"`
}

// CompleteParams carries everything the return transition writes.
type CompleteParams struct {
	BookingID int64
	ItemID    int64
	OwnerID   int64
	LateFee   float64
	Message   string
}

type Repo interface {
	// CreateWithDeposit re-checks the date overlap inside the
	// transaction, then inserts the booking, its deposit and the owner
	// notification atomically. conflicted=true means the range was
	// taken and nothing was written.
	CreateWithDeposit(ctx context.Context, b *model.Booking, message string) (conflicted bool, err error)
	HasOverlap(ctx context.Context, itemID int64, start, end time.Time) (bool, error)

	Get(ctx context.Context, id int64) (*model.Booking, error)
	GetDeposit(ctx context.Context, bookingID int64) (*model.Deposit, error)

	// Approve/Reject/Complete run as single transactions. Each guards
	// the status transition with a conditional UPDATE and reports
	// whether it actually transitioned, so two concurrent calls cannot
	// both succeed.
	Approve(ctx context.Context, bookingID, itemID, borrowerID int64, message string) (bool, error)
	Reject(ctx context.Context, bookingID, borrowerID int64, message string) (bool, error)
	Complete(ctx context.Context, p CompleteParams) (bool, error)

	ListBorrowed(ctx context.Context, userID int64) ([]Row, error)
	ListLent(ctx context.Context, userID int64) ([]Row, error)
	ListAll(ctx context.Context, userID int64) ([]Row, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

// overlapCond is the three-way inclusive intersection test: the new
// start falls inside an existing range, the new end does, or the new
// range fully contains an existing one. Blocking statuses only.
const overlapCond = `
	item_id = $1
	AND status IN ('pending','approved','active')
	AND (
		(start_date <= $2 AND end_date >= $2) OR
		(start_date <= $3 AND end_date >= $3) OR
		(start_date >= $2 AND end_date <= $3)
	)`

func (r *repo) HasOverlap(ctx context.Context, itemID int64, start, end time.Time) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM bookings WHERE` + overlapCond + `)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, itemID, start, end).Scan(&exists)
	return exists, err
}

func (r *repo) CreateWithDeposit(ctx context.Context, b *model.Booking, message string) (conflicted bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const qOverlap = `SELECT EXISTS (SELECT 1 FROM bookings WHERE` + overlapCond + `)`
	var exists bool
	if err = tx.QueryRowContext(ctx, qOverlap, b.ItemID, b.StartDate, b.EndDate).Scan(&exists); err != nil {
		return false, err
	}
	if exists {
		err = tx.Rollback()
		return true, err
	}

	const qBooking = `
INSERT INTO bookings (item_id, borrower_id, owner_id, start_date, end_date, deposit_amount, status)
VALUES ($1,$2,$3,$4,$5,$6,'pending')
RETURNING id, created_at`
	if err = tx.QueryRowContext(ctx, qBooking,
		b.ItemID, b.BorrowerID, b.OwnerID, b.StartDate, b.EndDate, b.DepositAmount,
	).Scan(&b.ID, &b.CreatedAt); err != nil {
		return false, err
	}
	b.Status = model.BookingPending

	const qDeposit = `
INSERT INTO deposits (booking_id, amount, status)
VALUES ($1,$2,'pending')`
	if _, err = tx.ExecContext(ctx, qDeposit, b.ID, b.DepositAmount); err != nil {
		return false, err
	}

	if err = insertNotification(ctx, tx, b.OwnerID, model.NotifBookingRequest, message, b.ID); err != nil {
		return false, err
	}

	return false, tx.Commit()
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Booking, error) {
	const q = `
SELECT b.id, b.item_id, b.borrower_id, b.owner_id, b.start_date, b.end_date,
       b.deposit_amount, b.status, b.late_fee, b.returned_at, b.created_at,
       i.daily_rate
FROM bookings b
JOIN items i ON b.item_id = i.id
WHERE b.id=$1`
	b := &model.Booking{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.ItemID, &b.BorrowerID, &b.OwnerID, &b.StartDate, &b.EndDate,
		&b.DepositAmount, &b.Status, &b.LateFee, &b.ReturnedAt, &b.CreatedAt,
		&b.ItemDailyRate,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) GetDeposit(ctx context.Context, bookingID int64) (*model.Deposit, error) {
	const q = `
SELECT id, booking_id, amount, status, refunded_at, created_at
FROM deposits
WHERE booking_id=$1`
	d := &model.Deposit{}
	err := r.db.QueryRowContext(ctx, q, bookingID).Scan(
		&d.ID, &d.BookingID, &d.Amount, &d.Status, &d.RefundedAt, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *repo) Approve(ctx context.Context, bookingID, itemID, borrowerID int64, message string) (ok bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const qStatus = `
UPDATE bookings
SET status='approved'
WHERE id=$1 AND status='pending'`
	res, err := tx.ExecContext(ctx, qStatus, bookingID)
	if err != nil {
		return false, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = tx.Rollback()
		return false, err
	}

	if _, err = tx.ExecContext(ctx, `UPDATE items SET available=FALSE WHERE id=$1`, itemID); err != nil {
		return false, err
	}
	if _, err = tx.ExecContext(ctx, `UPDATE deposits SET status='held' WHERE booking_id=$1`, bookingID); err != nil {
		return false, err
	}
	if err = insertNotification(ctx, tx, borrowerID, model.NotifBookingApproved, message, bookingID); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

// Reject leaves the item's availability untouched: it was never flipped
// at request time, so there is nothing to restore.
func (r *repo) Reject(ctx context.Context, bookingID, borrowerID int64, message string) (ok bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const qStatus = `
UPDATE bookings
SET status='rejected'
WHERE id=$1 AND status='pending'`
	res, err := tx.ExecContext(ctx, qStatus, bookingID)
	if err != nil {
		return false, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = tx.Rollback()
		return false, err
	}

	const qDeposit = `
UPDATE deposits
SET status='refunded', refunded_at=NOW()
WHERE booking_id=$1`
	if _, err = tx.ExecContext(ctx, qDeposit, bookingID); err != nil {
		return false, err
	}
	if err = insertNotification(ctx, tx, borrowerID, model.NotifBookingRejected, message, bookingID); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (r *repo) Complete(ctx context.Context, p CompleteParams) (ok bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const qStatus = `
UPDATE bookings
SET status='completed', returned_at=NOW(), late_fee=$2
WHERE id=$1 AND status IN ('approved','active')`
	res, err := tx.ExecContext(ctx, qStatus, p.BookingID, p.LateFee)
	if err != nil {
		return false, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = tx.Rollback()
		return false, err
	}

	if _, err = tx.ExecContext(ctx, `UPDATE items SET available=TRUE WHERE id=$1`, p.ItemID); err != nil {
		return false, err
	}
	const qDeposit = `
UPDATE deposits
SET status='refunded', refunded_at=NOW()
WHERE booking_id=$1`
	if _, err = tx.ExecContext(ctx, qDeposit, p.BookingID); err != nil {
		return false, err
	}
	if err = insertNotification(ctx, tx, p.OwnerID, model.NotifItemReturned, p.Message, p.BookingID); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func insertNotification(ctx context.Context, tx *sql.Tx, userID int64, typ, message string, relatedID int64) error {
	const q = `
INSERT INTO notifications (user_id, type, message, related_id)
VALUES ($1,$2,$3,$4)`
	_, err := tx.ExecContext(ctx, q, userID, typ, message, relatedID)
	return err
}

const listQuery = `
SELECT b.id, b.item_id, b.borrower_id, b.owner_id, b.start_date, b.end_date,
       b.deposit_amount, b.status, b.late_fee, b.returned_at, b.created_at,
       i.name, i.image_url, owner.name, borrower.name
FROM bookings b
JOIN items i ON b.item_id = i.id
JOIN users owner ON b.owner_id = owner.id
JOIN users borrower ON b.borrower_id = borrower.id
WHERE `

func (r *repo) ListBorrowed(ctx context.Context, userID int64) ([]Row, error) {
	return r.list(ctx, listQuery+`b.borrower_id = $1 ORDER BY b.created_at DESC`, userID)
}

func (r *repo) ListLent(ctx context.Context, userID int64) ([]Row, error) {
	return r.list(ctx, listQuery+`b.owner_id = $1 ORDER BY b.created_at DESC`, userID)
}

func (r *repo) ListAll(ctx context.Context, userID int64) ([]Row, error) {
	return r.list(ctx, listQuery+`(b.borrower_id = $1 OR b.owner_id = $1) ORDER BY b.created_at DESC`, userID)
}

func (r *repo) list(ctx context.Context, q string, userID int64) ([]Row, error) {
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(
			&row.ID, &row.ItemID, &row.BorrowerID, &row.OwnerID, &row.StartDate, &row.EndDate,
			&row.DepositAmount, &row.Status, &row.LateFee, &row.ReturnedAt, &row.CreatedAt,
			&row.ItemName, &row.ItemImage, &row.OwnerName, &row.BorrowerName,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
