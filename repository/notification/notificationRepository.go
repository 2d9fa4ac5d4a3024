package notificationrepo

import (
	"context"
	"database/sql"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
)

type Repo interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)
	// MarkRead flips the read flag; false when the row does not exist
	// or belongs to another user.
	MarkRead(ctx context.Context, id, userID int64) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	const q = `
SELECT id, user_id, type, message, read, related_id, created_at
FROM notifications
WHERE user_id=$1
ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.Read, &n.RelatedID, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *repo) MarkRead(ctx context.Context, id, userID int64) (bool, error) {
	const q = `UPDATE notifications SET read=TRUE WHERE id=$1 AND user_id=$2`
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
