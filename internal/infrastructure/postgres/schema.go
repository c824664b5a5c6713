package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eventhive/booking-api/internal/core/domain"
)

// schema declares the persisted shape of every entity. The UNIQUE and
// FOREIGN KEY constraints here are the real uniqueness/referential
// invariants; two concurrent creates that both pass the service pre-check
// still cannot both land.
const schema = `
CREATE TABLE IF NOT EXISTS roles (
	id   BIGSERIAL PRIMARY KEY,
	name VARCHAR(20) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	username      VARCHAR(50)  NOT NULL UNIQUE,
	name          VARCHAR(100) NOT NULL,
	email         VARCHAR(255) NOT NULL UNIQUE,
	password_hash TEXT         NOT NULL,
	role_id       BIGINT       NOT NULL REFERENCES roles (id),
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS tags (
	id   BIGSERIAL PRIMARY KEY,
	name VARCHAR(30) NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS events (
	id          BIGSERIAL PRIMARY KEY,
	name        VARCHAR(100)   NOT NULL,
	description TEXT           NOT NULL DEFAULT '',
	category    TEXT           NOT NULL DEFAULT '',
	venue       TEXT           NOT NULL DEFAULT '',
	date        TIMESTAMPTZ    NOT NULL,
	price       NUMERIC(10, 2) NOT NULL CHECK (price > 0),
	image_url   TEXT           NOT NULL DEFAULT '',
	is_active   BOOLEAN        NOT NULL DEFAULT TRUE,
	created_by  BIGINT         NOT NULL REFERENCES users (id)
);

CREATE TABLE IF NOT EXISTS event_tags (
	event_id BIGINT NOT NULL REFERENCES events (id),
	tag_id   BIGINT NOT NULL REFERENCES tags (id),
	PRIMARY KEY (event_id, tag_id)
);

CREATE TABLE IF NOT EXISTS bookings (
	id        BIGSERIAL PRIMARY KEY,
	user_id   BIGINT      NOT NULL REFERENCES users (id),
	event_id  BIGINT      NOT NULL REFERENCES events (id),
	booked_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, event_id)
);

CREATE INDEX IF NOT EXISTS idx_events_created_by ON events (created_by);
CREATE INDEX IF NOT EXISTS idx_bookings_event_id ON bookings (event_id);
`

// EnsureSchema creates the tables when missing and seeds the two
// well-known roles.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	seed := `INSERT INTO roles (id, name) VALUES ($1, 'Admin'), ($2, 'User') ON CONFLICT (id) DO NOTHING`
	if _, err := db.ExecContext(ctx, seed, domain.RoleAdmin, domain.RoleStandardUser); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}

	// Keep the sequence ahead of the seeded ids.
	if _, err := db.ExecContext(ctx, `SELECT setval('roles_id_seq', (SELECT MAX(id) FROM roles))`); err != nil {
		return fmt.Errorf("advance roles sequence: %w", err)
	}

	return nil
}
