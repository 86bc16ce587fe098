package postgresql

import (
	"context"
	"fmt"

	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/rate"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/database"
)

type styleRateRepositoryImpl struct {
	db *database.DB
}

func NewStyleRateRepository(db *database.DB) rate.StyleRateRepository {
	return &styleRateRepositoryImpl{db: db}
}

// Dates go out as to_char text so the domain layer only ever sees zero-padded
// "YYYY-MM-DD" strings, which is what resolution compares.

func (r *styleRateRepositoryImpl) Create(ctx context.Context, newRate rate.StyleRate) (rate.StyleRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO style_rates (style_id, organization_id, rate, effective_date, end_date)
		VALUES ($1, $2, $3, $4::date, $5::date)
		RETURNING id, style_id, organization_id, rate,
			to_char(effective_date, 'YYYY-MM-DD'),
			to_char(end_date, 'YYYY-MM-DD')
	`

	var created rate.StyleRate
	err := q.QueryRow(ctx, query,
		newRate.StyleID, newRate.OrganizationID, newRate.Rate,
		newRate.EffectiveDate, newRate.EndDate,
	).Scan(
		&created.ID, &created.StyleID, &created.OrganizationID,
		&created.Rate, &created.EffectiveDate, &created.EndDate,
	)
	if err != nil {
		return rate.StyleRate{}, fmt.Errorf("failed to create style rate: %w", err)
	}
	return created, nil
}

func (r *styleRateRepositoryImpl) ListByStyle(ctx context.Context, styleID string, organizationID string) ([]rate.StyleRate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, style_id, organization_id, rate,
			to_char(effective_date, 'YYYY-MM-DD'),
			to_char(end_date, 'YYYY-MM-DD')
		FROM style_rates
		WHERE style_id = $1 AND organization_id = $2
		ORDER BY effective_date, id
	`

	rows, err := q.Query(ctx, query, styleID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list style rates: %w", err)
	}
	defer rows.Close()

	rates := []rate.StyleRate{}
	for rows.Next() {
		var sr rate.StyleRate
		if err := rows.Scan(
			&sr.ID, &sr.StyleID, &sr.OrganizationID,
			&sr.Rate, &sr.EffectiveDate, &sr.EndDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan style rate: %w", err)
		}
		rates = append(rates, sr)
	}
	return rates, rows.Err()
}
