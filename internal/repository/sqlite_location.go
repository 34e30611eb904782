package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/db"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

// locationColumns is the canonical SELECT column list for locations.
const locationColumns = `id, name, area, notes, created_at, updated_at`

// SQLiteLocationRepo implements LocationRepo over a SQLite connection or
// transaction.
type SQLiteLocationRepo struct {
	db db.DBTX
}

// NewSQLiteLocationRepo creates a new SQLiteLocationRepo.
func NewSQLiteLocationRepo(dbtx db.DBTX) *SQLiteLocationRepo {
	return &SQLiteLocationRepo{db: dbtx}
}

func (r *SQLiteLocationRepo) Create(ctx context.Context, l *domain.Location) error {
	query := `INSERT INTO locations (name, area, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	now := nowUTC()
	res, err := r.db.ExecContext(ctx, query,
		l.Name,
		nullableFloatToValue(l.Area),
		l.Notes,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting location: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading location id: %w", err)
	}
	l.ID = id
	l.CreatedAt = parseTimestamp(now)
	l.UpdatedAt = l.CreatedAt
	return nil
}

func (r *SQLiteLocationRepo) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	l, err := scanLocation(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("location %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning location: %w", err)
	}
	return l, nil
}

func (r *SQLiteLocationRepo) List(ctx context.Context) ([]domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		l, err := scanLocation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning location row: %w", err)
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating locations: %w", err)
	}
	return out, nil
}

func (r *SQLiteLocationRepo) Update(ctx context.Context, l *domain.Location) error {
	query := `UPDATE locations SET name = ?, area = ?, notes = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		l.Name,
		nullableFloatToValue(l.Area),
		l.Notes,
		nowUTC(),
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating location: %w", err)
	}
	return nil
}

func (r *SQLiteLocationRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting location: %w", err)
	}
	return nil
}

// scanLocation scans one location from a row or rows scan function.
func scanLocation(scan func(dest ...any) error) (*domain.Location, error) {
	var l domain.Location
	var area sql.NullFloat64
	var createdAt, updatedAt string
	if err := scan(&l.ID, &l.Name, &area, &l.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	l.Area = floatFromNullable(area)
	l.CreatedAt = parseTimestamp(createdAt)
	l.UpdatedAt = parseTimestamp(updatedAt)
	return &l, nil
}
