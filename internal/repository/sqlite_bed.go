package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/db"
	"github.com/stipsitzm/OpenFarmPlanner-sub000/internal/domain"
)

// bedColumns is the canonical SELECT column list for beds.
const bedColumns = `id, field_id, name, area, notes, created_at, updated_at`

// SQLiteBedRepo implements BedRepo over a SQLite connection or transaction.
type SQLiteBedRepo struct {
	db db.DBTX
}

// NewSQLiteBedRepo creates a new SQLiteBedRepo.
func NewSQLiteBedRepo(dbtx db.DBTX) *SQLiteBedRepo {
	return &SQLiteBedRepo{db: dbtx}
}

func (r *SQLiteBedRepo) Create(ctx context.Context, b *domain.Bed) error {
	query := `INSERT INTO beds (field_id, name, area, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	res, err := r.db.ExecContext(ctx, query,
		b.FieldID,
		b.Name,
		nullableFloatToValue(b.Area),
		b.Notes,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting bed: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading bed id: %w", err)
	}
	b.ID = id
	b.CreatedAt = parseTimestamp(now)
	b.UpdatedAt = b.CreatedAt
	return nil
}

func (r *SQLiteBedRepo) GetByID(ctx context.Context, id int64) (*domain.Bed, error) {
	query := `SELECT ` + bedColumns + ` FROM beds WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	b, err := scanBed(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("bed %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning bed: %w", err)
	}
	return b, nil
}

func (r *SQLiteBedRepo) List(ctx context.Context) ([]domain.Bed, error) {
	return r.listWhere(ctx, ``)
}

func (r *SQLiteBedRepo) ListByField(ctx context.Context, fieldID int64) ([]domain.Bed, error) {
	return r.listWhere(ctx, `WHERE field_id = ?`, fieldID)
}

func (r *SQLiteBedRepo) listWhere(ctx context.Context, where string, args ...any) ([]domain.Bed, error) {
	query := `SELECT ` + bedColumns + ` FROM beds ` + where + ` ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing beds: %w", err)
	}
	defer rows.Close()

	var out []domain.Bed
	for rows.Next() {
		b, err := scanBed(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning bed row: %w", err)
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating beds: %w", err)
	}
	return out, nil
}

func (r *SQLiteBedRepo) Update(ctx context.Context, b *domain.Bed) error {
	query := `UPDATE beds SET field_id = ?, name = ?, area = ?, notes = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		b.FieldID,
		b.Name,
		nullableFloatToValue(b.Area),
		b.Notes,
		nowUTC(),
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("updating bed: %w", err)
	}
	return nil
}

func (r *SQLiteBedRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM beds WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting bed: %w", err)
	}
	return nil
}

func scanBed(scan func(dest ...any) error) (*domain.Bed, error) {
	var b domain.Bed
	var area sql.NullFloat64
	var createdAt, updatedAt string
	if err := scan(&b.ID, &b.FieldID, &b.Name, &area, &b.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	b.Area = floatFromNullable(area)
	b.CreatedAt = parseTimestamp(createdAt)
	b.UpdatedAt = parseTimestamp(updatedAt)
	return &b, nil
}
