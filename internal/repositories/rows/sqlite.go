package rows

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/listbot/internal/dbx"
	"github.com/dmitrijs2005/listbot/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, key models.ListKey, rank int, element string) error {
	query := `INSERT INTO lists (owner_id, list_id, rank, element) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, key.Owner, key.ListID, rank, element); err != nil {
		return fmt.Errorf("failed to insert row: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key models.ListKey, rank int) error {
	query := `DELETE FROM lists WHERE owner_id=? AND list_id=? AND rank=?`
	res, err := r.db.ExecContext(ctx, query, key.Owner, key.ListID, rank)
	if err != nil {
		return fmt.Errorf("failed to delete row: %w", err)
	}
	return expectOne(res)
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context, key models.ListKey) error {
	query := `DELETE FROM lists WHERE owner_id=? AND list_id=?`
	if _, err := r.db.ExecContext(ctx, query, key.Owner, key.ListID); err != nil {
		return fmt.Errorf("failed to delete rows: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateElement(ctx context.Context, key models.ListKey, rank int, element string) error {
	query := `UPDATE lists SET element=? WHERE owner_id=? AND list_id=? AND rank=?`
	res, err := r.db.ExecContext(ctx, query, element, key.Owner, key.ListID, rank)
	if err != nil {
		return fmt.Errorf("failed to update element: %w", err)
	}
	return expectOne(res)
}

func (r *SQLiteRepository) UpdateRank(ctx context.Context, key models.ListKey, from, to int) error {
	query := `UPDATE lists SET rank=? WHERE owner_id=? AND list_id=? AND rank=?`
	res, err := r.db.ExecContext(ctx, query, to, key.Owner, key.ListID, from)
	if err != nil {
		return fmt.Errorf("failed to update rank: %w", err)
	}
	return expectOne(res)
}

func (r *SQLiteRepository) Shift(ctx context.Context, key models.ListKey, lo, hi, delta int) error {
	if lo > hi || delta == 0 {
		return nil
	}
	park := `UPDATE lists SET rank = -(rank + ?) - 1 WHERE owner_id=? AND list_id=? AND rank BETWEEN ? AND ?`
	if _, err := r.db.ExecContext(ctx, park, delta, key.Owner, key.ListID, lo, hi); err != nil {
		return fmt.Errorf("failed to shift ranks: %w", err)
	}
	restore := `UPDATE lists SET rank = -rank - 1 WHERE owner_id=? AND list_id=? AND rank < 0`
	if _, err := r.db.ExecContext(ctx, restore, key.Owner, key.ListID); err != nil {
		return fmt.Errorf("failed to restore shifted ranks: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Stream(ctx context.Context, fn func(models.Row) error) error {
	query := `SELECT owner_id, list_id, rank, element FROM lists`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to select rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row models.Row
		if err := rows.Scan(&row.Owner, &row.ListID, &row.Rank, &row.Element); err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return rows.Err()
}
