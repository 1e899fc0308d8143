package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerfit/screening/pkg/screening"
)

// ScreeningRepository stores screening runs as history rows.
type ScreeningRepository struct {
	pool *pgxpool.Pool
}

func NewScreeningRepository(pool *pgxpool.Pool) (*ScreeningRepository, error) {
	r := &ScreeningRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ScreeningRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS screenings (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	filename TEXT NOT NULL,
	primary_role TEXT NOT NULL,
	confidence REAL NOT NULL,
	result JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_screenings_owner ON screenings (owner_id, created_at DESC);
`)
	return err
}

func (r *ScreeningRepository) Create(ctx context.Context, rec screening.Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO screenings (id, owner_id, filename, primary_role, confidence, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, rec.ID, rec.OwnerID, rec.Filename, rec.Role, rec.Confidence, resultJSON, rec.CreatedAt)
	return err
}

func (r *ScreeningRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]screening.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, filename, primary_role, confidence, result, created_at
FROM screenings WHERE owner_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []screening.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

func (r *ScreeningRepository) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (screening.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, filename, primary_role, confidence, result, created_at
FROM screenings WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return screening.Record{}, pgx.ErrNoRows
		}
		return screening.Record{}, err
	}
	return rec, nil
}

func scanRecord(row pgx.Row) (screening.Record, error) {
	var rec screening.Record
	var resultBytes []byte
	var created time.Time
	if err := row.Scan(&rec.ID, &rec.OwnerID, &rec.Filename, &rec.Role, &rec.Confidence, &resultBytes, &created); err != nil {
		return screening.Record{}, err
	}
	_ = json.Unmarshal(resultBytes, &rec.Result)
	rec.CreatedAt = created.UTC()
	return rec, nil
}
