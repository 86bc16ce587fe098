package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/production"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/database"
)

type entryRepositoryImpl struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) production.EntryRepository {
	return &entryRepositoryImpl{db: db}
}

const entryColumns = `id, worker_id, style_id, organization_id, quantity, to_char(production_date, 'YYYY-MM-DD')`

func scanEntry(row pgx.Row) (production.Entry, error) {
	var e production.Entry
	err := row.Scan(
		&e.ID, &e.WorkerID, &e.StyleID, &e.OrganizationID,
		&e.Quantity, &e.ProductionDate,
	)
	return e, err
}

func (r *entryRepositoryImpl) Create(ctx context.Context, newEntry production.Entry) (production.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO production_entries (worker_id, style_id, organization_id, quantity, production_date)
		VALUES ($1, $2, $3, $4, $5::date)
		RETURNING ` + entryColumns

	created, err := scanEntry(q.QueryRow(ctx, query,
		newEntry.WorkerID, newEntry.StyleID, newEntry.OrganizationID,
		newEntry.Quantity, newEntry.ProductionDate,
	))
	if err != nil {
		return production.Entry{}, fmt.Errorf("failed to create production entry: %w", err)
	}
	return created, nil
}

func (r *entryRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (production.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM production_entries
		WHERE id = $1 AND organization_id = $2
	`

	e, err := scanEntry(q.QueryRow(ctx, query, id, organizationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return production.Entry{}, production.ErrEntryNotFound
		}
		return production.Entry{}, fmt.Errorf("failed to get production entry: %w", err)
	}
	return e, nil
}

func (r *entryRepositoryImpl) Update(ctx context.Context, entry production.Entry) error {
	q := GetQuerier(ctx, r.db)

	// Correction replaces every field.
	query := `
		UPDATE production_entries
		SET worker_id = $3, style_id = $4, quantity = $5, production_date = $6::date
		WHERE id = $1 AND organization_id = $2
	`

	tag, err := q.Exec(ctx, query,
		entry.ID, entry.OrganizationID,
		entry.WorkerID, entry.StyleID, entry.Quantity, entry.ProductionDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update production entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return production.ErrEntryNotFound
	}
	return nil
}

func (r *entryRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM production_entries WHERE id = $1 AND organization_id = $2`

	tag, err := q.Exec(ctx, query, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete production entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return production.ErrEntryNotFound
	}
	return nil
}

func (r *entryRepositoryImpl) ListByWorkerAndRange(ctx context.Context, workerID string, organizationID string, startDate, endDate string) ([]production.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + entryColumns + `
		FROM production_entries
		WHERE worker_id = $1 AND organization_id = $2
			AND production_date BETWEEN $3::date AND $4::date
	`

	return r.queryEntries(ctx, q, query, workerID, organizationID, startDate, endDate)
}

func (r *entryRepositoryImpl) ListBySectionAndRange(ctx context.Context, sectionID string, organizationID string, startDate, endDate string) ([]production.Entry, error) {
	q := GetQuerier(ctx, r.db)

	// The join runs through the worker's current section, not the section
	// the worker belonged to on the production date.
	query := `
		SELECT e.id, e.worker_id, e.style_id, e.organization_id, e.quantity,
			to_char(e.production_date, 'YYYY-MM-DD')
		FROM production_entries e
		JOIN workers w ON w.id = e.worker_id
		WHERE w.section_id = $1 AND e.organization_id = $2
			AND e.production_date BETWEEN $3::date AND $4::date
	`

	return r.queryEntries(ctx, q, query, sectionID, organizationID, startDate, endDate)
}

func (r *entryRepositoryImpl) ListBySectionStyleAndRange(ctx context.Context, sectionID string, styleID string, organizationID string, startDate, endDate string) ([]production.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.worker_id, e.style_id, e.organization_id, e.quantity,
			to_char(e.production_date, 'YYYY-MM-DD')
		FROM production_entries e
		JOIN workers w ON w.id = e.worker_id
		WHERE w.section_id = $1 AND e.style_id = $2 AND e.organization_id = $3
			AND e.production_date BETWEEN $4::date AND $5::date
	`

	return r.queryEntries(ctx, q, query, sectionID, styleID, organizationID, startDate, endDate)
}

func (r *entryRepositoryImpl) queryEntries(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]production.Entry, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list production entries: %w", err)
	}
	defer rows.Close()

	entries := []production.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan production entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *entryRepositoryImpl) ListByOrganizationAndDate(ctx context.Context, organizationID string, date string) ([]production.EntryWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.worker_id, e.style_id, e.organization_id, e.quantity,
			to_char(e.production_date, 'YYYY-MM-DD'),
			w.name, st.name, s.id, s.name
		FROM production_entries e
		LEFT JOIN workers w ON w.id = e.worker_id
		LEFT JOIN styles st ON st.id = e.style_id
		LEFT JOIN sections s ON s.id = w.section_id
		WHERE e.organization_id = $1 AND e.production_date = $2::date
		ORDER BY e.id
	`

	return r.queryEntriesWithDetails(ctx, q, query, organizationID, date)
}

func (r *entryRepositoryImpl) ListByWorkerAndRangeWithDetails(ctx context.Context, workerID string, organizationID string, startDate, endDate string) ([]production.EntryWithDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.worker_id, e.style_id, e.organization_id, e.quantity,
			to_char(e.production_date, 'YYYY-MM-DD'),
			w.name, st.name, s.id, s.name
		FROM production_entries e
		LEFT JOIN workers w ON w.id = e.worker_id
		LEFT JOIN styles st ON st.id = e.style_id
		LEFT JOIN sections s ON s.id = w.section_id
		WHERE e.worker_id = $1 AND e.organization_id = $2
			AND e.production_date BETWEEN $3::date AND $4::date
		ORDER BY e.production_date, e.id
	`

	return r.queryEntriesWithDetails(ctx, q, query, workerID, organizationID, startDate, endDate)
}

func (r *entryRepositoryImpl) queryEntriesWithDetails(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]production.EntryWithDetails, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list production entries: %w", err)
	}
	defer rows.Close()

	entries := []production.EntryWithDetails{}
	for rows.Next() {
		var e production.EntryWithDetails
		if err := rows.Scan(
			&e.ID, &e.WorkerID, &e.StyleID, &e.OrganizationID,
			&e.Quantity, &e.ProductionDate,
			&e.WorkerName, &e.StyleName, &e.SectionID, &e.SectionName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan production entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
