package database

import (
	"context"
	"database/sql"
)

// Migrate creates the schema if it does not exist yet. Statements are
// idempotent so this is safe to run on every boot.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, q := range schema {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id               BIGSERIAL PRIMARY KEY,
		name             TEXT NOT NULL,
		email            TEXT UNIQUE NOT NULL,
		password_hash    TEXT NOT NULL,
		phone            TEXT,
		address          TEXT,
		verified         BOOLEAN NOT NULL DEFAULT FALSE,
		reputation_score INT NOT NULL DEFAULT 100,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id             BIGSERIAL PRIMARY KEY,
		owner_id       BIGINT NOT NULL REFERENCES users(id),
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		category       TEXT NOT NULL DEFAULT '',
		image_url      TEXT,
		location       TEXT NOT NULL DEFAULT '',
		deposit_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		daily_rate     DOUBLE PRECISION NOT NULL DEFAULT 0,
		available      BOOLEAN NOT NULL DEFAULT TRUE,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id             BIGSERIAL PRIMARY KEY,
		item_id        BIGINT NOT NULL REFERENCES items(id),
		borrower_id    BIGINT NOT NULL REFERENCES users(id),
		owner_id       BIGINT NOT NULL REFERENCES users(id),
		start_date     DATE NOT NULL,
		end_date       DATE NOT NULL,
		deposit_amount DOUBLE PRECISION NOT NULL,
		status         TEXT NOT NULL DEFAULT 'pending',
		late_fee       DOUBLE PRECISION NOT NULL DEFAULT 0,
		returned_at    TIMESTAMPTZ,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS deposits (
		id          BIGSERIAL PRIMARY KEY,
		booking_id  BIGINT NOT NULL REFERENCES bookings(id),
		amount      DOUBLE PRECISION NOT NULL,
		status      TEXT NOT NULL DEFAULT 'pending',
		refunded_at TIMESTAMPTZ,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id),
		type       TEXT NOT NULL,
		message    TEXT NOT NULL,
		read       BOOLEAN NOT NULL DEFAULT FALSE,
		related_id BIGINT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id                BIGSERIAL PRIMARY KEY,
		user_id           BIGINT NOT NULL REFERENCES users(id),
		type              TEXT NOT NULL,
		amount            DOUBLE PRECISION NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		status            TEXT NOT NULL DEFAULT 'pending',
		payment_method    TEXT NOT NULL DEFAULT '',
		payment_reference TEXT NOT NULL DEFAULT '',
		related_id        BIGINT,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS listing_fees (
		id             BIGSERIAL PRIMARY KEY,
		item_id        BIGINT NOT NULL REFERENCES items(id),
		amount         DOUBLE PRECISION NOT NULL,
		status         TEXT NOT NULL DEFAULT 'pending',
		transaction_id BIGINT REFERENCES transactions(id),
		paid_at        TIMESTAMPTZ,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_wallets (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT UNIQUE NOT NULL REFERENCES users(id),
		balance    DOUBLE PRECISION NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_item_status ON bookings(item_id, status)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id)`,
}
