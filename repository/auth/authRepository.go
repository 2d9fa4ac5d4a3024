package auth

import (
	"context"
	"database/sql"

	"github.com/mustafidulibadahmad-commits/komunitas-berbagi/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO users(name, email, password_hash, phone, address, verified, reputation_score)
		VALUES ($1,$2,$3,$4,$5,FALSE,$6)
		RETURNING id, created_at`,
		u.Name, u.Email, u.PasswordHash, u.Phone, u.Address, u.ReputationScore,
	).Scan(&u.ID, &u.CreatedAt)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRowContext(ctx, `
        SELECT id, name, email, password_hash, phone, address, verified, reputation_score, created_at
        FROM users
        WHERE lower(email) = lower($1)`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.Verified, &u.ReputationScore, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
