package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/db"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

// fieldColumns is the canonical SELECT column list for fields.
const fieldColumns = `id, location_id, name, area, notes, created_at, updated_at`

// SQLiteFieldRepo implements FieldRepo over a SQLite connection or transaction.
type SQLiteFieldRepo struct {
	db db.DBTX
}

// NewSQLiteFieldRepo creates a new SQLiteFieldRepo.
func NewSQLiteFieldRepo(dbtx db.DBTX) *SQLiteFieldRepo {
	return &SQLiteFieldRepo{db: dbtx}
}

func (r *SQLiteFieldRepo) Create(ctx context.Context, f *domain.Field) error {
	query := `INSERT INTO fields (location_id, name, area, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	res, err := r.db.ExecContext(ctx, query,
		f.LocationID,
		f.Name,
		nullableFloatToValue(f.Area),
		f.Notes,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting field: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading field id: %w", err)
	}
	f.ID = id
	f.CreatedAt = parseTimestamp(now)
	f.UpdatedAt = f.CreatedAt
	return nil
}

func (r *SQLiteFieldRepo) GetByID(ctx context.Context, id int64) (*domain.Field, error) {
	query := `SELECT ` + fieldColumns + ` FROM fields WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	f, err := scanField(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("field %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning field: %w", err)
	}
	return f, nil
}

func (r *SQLiteFieldRepo) List(ctx context.Context) ([]domain.Field, error) {
	return r.listWhere(ctx, ``)
}

func (r *SQLiteFieldRepo) ListByLocation(ctx context.Context, locationID int64) ([]domain.Field, error) {
	return r.listWhere(ctx, `WHERE location_id = ?`, locationID)
}

func (r *SQLiteFieldRepo) listWhere(ctx context.Context, where string, args ...any) ([]domain.Field, error) {
	query := `SELECT ` + fieldColumns + ` FROM fields ` + where + ` ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}
	defer rows.Close()

	var out []domain.Field
	for rows.Next() {
		f, err := scanField(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning field row: %w", err)
		}
		out = append(out, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fields: %w", err)
	}
	return out, nil
}

func (r *SQLiteFieldRepo) Update(ctx context.Context, f *domain.Field) error {
	query := `UPDATE fields SET location_id = ?, name = ?, area = ?, notes = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		f.LocationID,
		f.Name,
		nullableFloatToValue(f.Area),
		f.Notes,
		nowUTC(),
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating field: %w", err)
	}
	return nil
}

func (r *SQLiteFieldRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM fields WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting field: %w", err)
	}
	return nil
}

func scanField(scan func(dest ...any) error) (*domain.Field, error) {
	var f domain.Field
	var area sql.NullFloat64
	var createdAt, updatedAt string
	if err := scan(&f.ID, &f.LocationID, &f.Name, &area, &f.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	f.Area = floatFromNullable(area)
	f.CreatedAt = parseTimestamp(createdAt)
	f.UpdatedAt = parseTimestamp(updatedAt)
	return &f, nil
}
