package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/db"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

// plantingColumns is the canonical SELECT column list for plantings.
const plantingColumns = `id, bed_id, crop, start_date, end_date, quantity, client_ref, notes, created_at, updated_at`

// SQLitePlantingRepo implements PlantingRepo over a SQLite connection or
// transaction.
type SQLitePlantingRepo struct {
	db db.DBTX
}

// NewSQLitePlantingRepo creates a new SQLitePlantingRepo.
func NewSQLitePlantingRepo(dbtx db.DBTX) *SQLitePlantingRepo {
	return &SQLitePlantingRepo{db: dbtx}
}

// Create persists a planting and assigns its database id. A draft's negative
// id is discarded; its client_ref survives so the UI can reconcile the saved
// row with the draft bar it was already showing.
func (r *SQLitePlantingRepo) Create(ctx context.Context, p *domain.Planting) error {
	query := `INSERT INTO plantings (bed_id, crop, start_date, end_date, quantity, client_ref, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	res, err := r.db.ExecContext(ctx, query,
		p.BedID,
		p.Crop,
		p.StartDate.Format(domain.DateLayout),
		p.EndDate.Format(domain.DateLayout),
		nullableFloatToValue(p.Quantity),
		p.ClientRef,
		p.Notes,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting planting: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading planting id: %w", err)
	}
	p.ID = id
	p.CreatedAt = parseTimestamp(now)
	p.UpdatedAt = p.CreatedAt
	return nil
}

func (r *SQLitePlantingRepo) GetByID(ctx context.Context, id int64) (*domain.Planting, error) {
	query := `SELECT ` + plantingColumns + ` FROM plantings WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanPlanting(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("planting %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning planting: %w", err)
	}
	return p, nil
}

func (r *SQLitePlantingRepo) List(ctx context.Context) ([]domain.Planting, error) {
	return r.listWhere(ctx, ``)
}

func (r *SQLitePlantingRepo) ListByBed(ctx context.Context, bedID int64) ([]domain.Planting, error) {
	return r.listWhere(ctx, `WHERE bed_id = ?`, bedID)
}

// ListIntersectingYear returns plantings whose range touches the calendar
// year. Dates are stored as YYYY-MM-DD text, so lexical comparison matches
// chronological order.
func (r *SQLitePlantingRepo) ListIntersectingYear(ctx context.Context, year int) ([]domain.Planting, error) {
	return r.listWhere(ctx, `WHERE start_date <= ? AND end_date >= ?`,
		fmt.Sprintf("%04d-12-31", year),
		fmt.Sprintf("%04d-01-01", year),
	)
}

func (r *SQLitePlantingRepo) listWhere(ctx context.Context, where string, args ...any) ([]domain.Planting, error) {
	query := `SELECT ` + plantingColumns + ` FROM plantings ` + where + ` ORDER BY start_date, id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing plantings: %w", err)
	}
	defer rows.Close()

	var out []domain.Planting
	for rows.Next() {
		p, err := scanPlanting(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning planting row: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plantings: %w", err)
	}
	return out, nil
}

// ListDetails returns plantings joined with bed and field names for listing.
func (r *SQLitePlantingRepo) ListDetails(ctx context.Context) ([]PlantingDetail, error) {
	query := `SELECT p.id, p.bed_id, p.crop, p.start_date, p.end_date, p.quantity, p.client_ref, p.notes,
			p.created_at, p.updated_at, b.name, f.name
		FROM plantings p
		JOIN beds b ON b.id = p.bed_id
		JOIN fields f ON f.id = b.field_id
		ORDER BY p.start_date, p.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing planting details: %w", err)
	}
	defer rows.Close()

	var out []PlantingDetail
	for rows.Next() {
		var d PlantingDetail
		var quantity sql.NullFloat64
		var startDate, endDate, createdAt, updatedAt string
		err := rows.Scan(
			&d.Planting.ID, &d.Planting.BedID, &d.Planting.Crop, &startDate, &endDate,
			&quantity, &d.Planting.ClientRef, &d.Planting.Notes, &createdAt, &updatedAt,
			&d.BedName, &d.FieldName,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning planting detail: %w", err)
		}
		d.Planting.StartDate = parseDate(startDate)
		d.Planting.EndDate = parseDate(endDate)
		d.Planting.Quantity = floatFromNullable(quantity)
		d.Planting.CreatedAt = parseTimestamp(createdAt)
		d.Planting.UpdatedAt = parseTimestamp(updatedAt)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating planting details: %w", err)
	}
	return out, nil
}

func (r *SQLitePlantingRepo) Update(ctx context.Context, p *domain.Planting) error {
	query := `UPDATE plantings SET bed_id = ?, crop = ?, start_date = ?, end_date = ?,
		quantity = ?, client_ref = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.BedID,
		p.Crop,
		p.StartDate.Format(domain.DateLayout),
		p.EndDate.Format(domain.DateLayout),
		nullableFloatToValue(p.Quantity),
		p.ClientRef,
		p.Notes,
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating planting: %w", err)
	}
	return nil
}

func (r *SQLitePlantingRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plantings WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting planting: %w", err)
	}
	return nil
}

func scanPlanting(scan func(dest ...any) error) (*domain.Planting, error) {
	var p domain.Planting
	var quantity sql.NullFloat64
	var startDate, endDate, createdAt, updatedAt string
	err := scan(&p.ID, &p.BedID, &p.Crop, &startDate, &endDate, &quantity, &p.ClientRef, &p.Notes, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	p.StartDate = parseDate(startDate)
	p.EndDate = parseDate(endDate)
	p.Quantity = floatFromNullable(quantity)
	p.CreatedAt = parseTimestamp(createdAt)
	p.UpdatedAt = parseTimestamp(updatedAt)
	return &p, nil
}
