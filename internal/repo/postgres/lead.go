package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhng-ct/commerce-bot/internal/models"
	"github.com/minhng-ct/commerce-bot/internal/repo/leadstore"
)

const schema = `
CREATE TABLE IF NOT EXISTS leads (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	phone      TEXT NOT NULL,
	email      TEXT NOT NULL DEFAULT '',
	message    TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

var _ leadstore.Store = (*LeadRepo)(nil)

type LeadRepo struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepo {
	return &LeadRepo{pool: pool}
}

// EnsureSchema creates the leads table when it does not exist yet. Called
// once at startup.
func (r *LeadRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure leads schema: %w", err)
	}
	return nil
}

func (r *LeadRepo) Capture(ctx context.Context, in models.LeadInput) (*models.Lead, error) {
	lead := models.Lead{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Message: in.Message,
	}

	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO leads (name, phone, email, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		in.Name, in.Phone, in.Email, in.Message,
	).Scan(&id, &lead.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}

	lead.ID = strconv.FormatInt(id, 10)
	return &lead, nil
}

func (r *LeadRepo) Kind() string {
	return leadstore.KindPostgres
}
