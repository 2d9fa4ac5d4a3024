package walletrepo

import (
	"context"
	"database/sql"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
)

// RecordParams is one completed payment to write: the ledger row plus
// the wallet and related-row side effects that belong in the same
// transaction.
type RecordParams struct {
	Tx model.Transaction

	// Credit adds Tx.Amount to the wallet (creating it at zero if
	// absent); otherwise the wallet is debited, and only when the
	// balance covers the amount.
	Credit bool

	// MarkListingFeePaid marks the listing_fees row for item
	// Tx.RelatedID paid and links it to the new transaction.
	MarkListingFeePaid bool

	// MarkDepositPaid marks the deposit for booking Tx.RelatedID paid.
	MarkDepositPaid bool
}

type Repo interface {
	// Record inserts the transaction row and applies the wallet
	// adjustment atomically. adjusted=false means a debit was skipped
	// for insufficient balance; the transaction row is still written.
	Record(ctx context.Context, p RecordParams) (txID int64, adjusted bool, err error)

	// Balance reads the wallet, creating it at zero on first touch.
	Balance(ctx context.Context, userID int64) (float64, error)

	ListTransactions(ctx context.Context, userID int64, typ string, limit int) ([]model.Transaction, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Record(ctx context.Context, p RecordParams) (txID int64, adjusted bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const qTx = `
INSERT INTO transactions (user_id, type, amount, description, status, payment_method, payment_reference, related_id)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING id`
	t := p.Tx
	if err = tx.QueryRowContext(ctx, qTx,
		t.UserID, t.Type, t.Amount, t.Description, t.Status,
		t.PaymentMethod, t.PaymentReference, t.RelatedID,
	).Scan(&txID); err != nil {
		return 0, false, err
	}

	if p.Credit {
		const qCredit = `
INSERT INTO user_wallets (user_id, balance)
VALUES ($1,$2)
ON CONFLICT (user_id)
DO UPDATE SET balance = user_wallets.balance + EXCLUDED.balance, updated_at = NOW()`
		if _, err = tx.ExecContext(ctx, qCredit, t.UserID, t.Amount); err != nil {
			return 0, false, err
		}
		adjusted = true
	} else {
		// Debit only when the balance covers it. Zero rows affected is
		// not an error here: the transaction stays recorded as
		// completed even when the wallet was not touched.
		const qDebit = `
UPDATE user_wallets
SET balance = balance - $2, updated_at = NOW()
WHERE user_id=$1 AND balance >= $2`
		res, derr := tx.ExecContext(ctx, qDebit, t.UserID, t.Amount)
		if derr != nil {
			err = derr
			return 0, false, err
		}
		n, _ := res.RowsAffected()
		adjusted = n > 0
	}

	if p.MarkListingFeePaid && t.RelatedID != nil {
		const qFee = `
UPDATE listing_fees
SET status='paid', transaction_id=$1, paid_at=NOW()
WHERE item_id=$2`
		if _, err = tx.ExecContext(ctx, qFee, txID, *t.RelatedID); err != nil {
			return 0, false, err
		}
	}
	if p.MarkDepositPaid && t.RelatedID != nil {
		const qDep = `
UPDATE deposits
SET status='paid'
WHERE booking_id=$1`
		if _, err = tx.ExecContext(ctx, qDep, *t.RelatedID); err != nil {
			return 0, false, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, false, err
	}
	return txID, adjusted, nil
}

func (r *repo) Balance(ctx context.Context, userID int64) (float64, error) {
	const q = `SELECT balance FROM user_wallets WHERE user_id=$1`
	var bal float64
	err := r.db.QueryRowContext(ctx, q, userID).Scan(&bal)
	if err == sql.ErrNoRows {
		const ins = `
INSERT INTO user_wallets (user_id, balance)
VALUES ($1,0)
ON CONFLICT (user_id) DO NOTHING`
		if _, err := r.db.ExecContext(ctx, ins, userID); err != nil {
			return 0, err
		}
		return 0, nil
	}
	return bal, err
}

func (r *repo) ListTransactions(ctx context.Context, userID int64, typ string, limit int) ([]model.Transaction, error) {
	q := `
SELECT id, user_id, type, amount, description, status, payment_method, payment_reference, related_id, created_at
FROM transactions
WHERE user_id=$1`
	args := []any{userID}
	if typ != "" {
		args = append(args, typ)
		q += ` AND type=$2`
	}
	args = append(args, limit)
	if typ != "" {
		q += ` ORDER BY created_at DESC LIMIT $3`
	} else {
		q += ` ORDER BY created_at DESC LIMIT $2`
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Description, &t.Status,
			&t.PaymentMethod, &t.PaymentReference, &t.RelatedID, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
