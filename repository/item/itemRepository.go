// repository/item/repo.go
package itemrepo

import (
	"context"
	"database/sql"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
)

// Detail is an item row joined with public owner info for the item page.
type Detail struct {
	model.Item
	OwnerName       string `json:"owner_name"`
	OwnerEmail      string `json:"owner_email"`
	OwnerPhone      *string `json:"owner_phone,omitempty"`
	OwnerReputation int    `json:"owner_reputation"`
	OwnerVerified   bool   `json:"owner_verified"`
}

// ListRow is an item row joined with the owner's name and reputation
// for catalog listings.
type ListRow struct {
	model.Item
	OwnerName       string `json:"owner_name"`
	OwnerReputation int    `json:"owner_reputation"`
}

type Repo interface {
	// CreateWithFee inserts the item and, when fee > 0, its pending
	// listing-fee row in one transaction.
	CreateWithFee(ctx context.Context, it *model.Item, fee float64) (feeID *int64, err error)
	Get(ctx context.Context, id int64) (*model.Item, error)
	GetDetail(ctx context.Context, id int64) (*Detail, error)
	List(ctx context.Context, category, search string) ([]ListRow, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Item, error)
	Update(ctx context.Context, it *model.Item) error
	Delete(ctx context.Context, id int64) error
	HasBlockingBooking(ctx context.Context, itemID int64) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) CreateWithFee(ctx context.Context, it *model.Item, fee float64) (feeID *int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const qItem = `
INSERT INTO items (owner_id, name, description, category, location, deposit_amount, daily_rate, image_url, available)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,TRUE)
RETURNING id, created_at`
	if err = tx.QueryRowContext(ctx, qItem,
		it.OwnerID, it.Name, it.Description, it.Category, it.Location,
		it.DepositAmount, it.DailyRate, it.ImageURL,
	).Scan(&it.ID, &it.CreatedAt); err != nil {
		return nil, err
	}

	if fee > 0 {
		const qFee = `
INSERT INTO listing_fees (item_id, amount, status)
VALUES ($1,$2,'pending')
RETURNING id`
		var id int64
		if err = tx.QueryRowContext(ctx, qFee, it.ID, fee).Scan(&id); err != nil {
			return nil, err
		}
		feeID = &id
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return feeID, nil
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Item, error) {
	const q = `
SELECT id, owner_id, name, description, category, image_url, location,
       deposit_amount, daily_rate, available, created_at
FROM items
WHERE id=$1`
	it := &model.Item{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Category, &it.ImageURL,
		&it.Location, &it.DepositAmount, &it.DailyRate, &it.Available, &it.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *repo) GetDetail(ctx context.Context, id int64) (*Detail, error) {
	const q = `
SELECT i.id, i.owner_id, i.name, i.description, i.category, i.image_url, i.location,
       i.deposit_amount, i.daily_rate, i.available, i.created_at,
       u.name, u.email, u.phone, u.reputation_score, u.verified
FROM items i
JOIN users u ON i.owner_id = u.id
WHERE i.id=$1`
	d := &Detail{}
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&d.ID, &d.OwnerID, &d.Name, &d.Description, &d.Category, &d.ImageURL,
		&d.Location, &d.DepositAmount, &d.DailyRate, &d.Available, &d.CreatedAt,
		&d.OwnerName, &d.OwnerEmail, &d.OwnerPhone, &d.OwnerReputation, &d.OwnerVerified,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *repo) List(ctx context.Context, category, search string) ([]ListRow, error) {
	q := `
SELECT i.id, i.owner_id, i.name, i.description, i.category, i.image_url, i.location,
       i.deposit_amount, i.daily_rate, i.available, i.created_at,
       u.name, u.reputation_score
FROM items i
JOIN users u ON i.owner_id = u.id
WHERE i.available = TRUE`
	args := []any{}
	if category != "" {
		args = append(args, category)
		q += ` AND i.category = $1`
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		if category != "" {
			q += ` AND (i.name ILIKE $2 OR i.description ILIKE $2)`
		} else {
			q += ` AND (i.name ILIKE $1 OR i.description ILIKE $1)`
		}
	}
	q += ` ORDER BY i.created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ListRow
	for rows.Next() {
		var row ListRow
		if err := rows.Scan(
			&row.ID, &row.OwnerID, &row.Name, &row.Description, &row.Category, &row.ImageURL,
			&row.Location, &row.DepositAmount, &row.DailyRate, &row.Available, &row.CreatedAt,
			&row.OwnerName, &row.OwnerReputation,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *repo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Item, error) {
	const q = `
SELECT id, owner_id, name, description, category, image_url, location,
       deposit_amount, daily_rate, available, created_at
FROM items
WHERE owner_id=$1
ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(
			&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Category, &it.ImageURL,
			&it.Location, &it.DepositAmount, &it.DailyRate, &it.Available, &it.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *repo) Update(ctx context.Context, it *model.Item) error {
	const q = `
UPDATE items
SET name=$2, description=$3, category=$4, location=$5,
    deposit_amount=$6, daily_rate=$7, image_url=$8
WHERE id=$1`
	_, err := r.db.ExecContext(ctx, q,
		it.ID, it.Name, it.Description, it.Category, it.Location,
		it.DepositAmount, it.DailyRate, it.ImageURL,
	)
	return err
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM listing_fees WHERE item_id=$1`, id)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM items WHERE id=$1`, id)
	return err
}

func (r *repo) HasBlockingBooking(ctx context.Context, itemID int64) (bool, error) {
	const q = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE item_id=$1 AND status IN ('pending','approved','active')
)`
	var exists bool
	err := r.db.QueryRowContext(ctx, q, itemID).Scan(&exists)
	return exists, err
}
