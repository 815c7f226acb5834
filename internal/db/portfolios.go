package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/portfolio-generator/internal/types"
)

// Portfolio is a stored portfolio record. Document holds the full draft as
// JSONB; Template is the selected template ID.
type Portfolio struct {
	ID        uuid.UUID            `json:"id"`
	Document  types.PortfolioDraft `json:"document"`
	Template  string               `json:"template"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// SavePortfolio stores a portfolio document and returns its new ID
func (db *DB) SavePortfolio(ctx context.Context, draft *types.PortfolioDraft, template string) (uuid.UUID, error) {
	document, err := json.Marshal(draft)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal portfolio document: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO portfolios (document, template)
		 VALUES ($1, $2)
		 RETURNING id`,
		document, template,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save portfolio: %w", err)
	}
	return id, nil
}

// GetPortfolio retrieves a portfolio by ID. Returns (nil, nil) when no
// portfolio exists with that ID.
func (db *DB) GetPortfolio(ctx context.Context, id uuid.UUID) (*Portfolio, error) {
	var p Portfolio
	var document []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, document, template, created_at, updated_at
		 FROM portfolios WHERE id = $1`,
		id,
	).Scan(&p.ID, &document, &p.Template, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}

	if err := json.Unmarshal(document, &p.Document); err != nil {
		return nil, fmt.Errorf("failed to unmarshal portfolio document: %w", err)
	}
	return &p, nil
}

// ListPortfolios retrieves recent portfolios, newest first
func (db *DB) ListPortfolios(ctx context.Context, limit int) ([]Portfolio, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, document, template, created_at, updated_at
		 FROM portfolios ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	defer rows.Close()

	var portfolios []Portfolio
	for rows.Next() {
		var p Portfolio
		var document []byte
		if err := rows.Scan(&p.ID, &document, &p.Template, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio: %w", err)
		}
		if err := json.Unmarshal(document, &p.Document); err != nil {
			return nil, fmt.Errorf("failed to unmarshal portfolio document: %w", err)
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, nil
}

// DeletePortfolio removes a portfolio by ID
func (db *DB) DeletePortfolio(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("portfolio not found: %s", id)
	}
	return nil
}
