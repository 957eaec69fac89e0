package rows

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/dbx"
	"github.com/dmitrijs2005/listbot/internal/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, key models.ListKey, rank int, element string) error {
	query := `INSERT INTO lists (owner_id, list_id, rank, element) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, key.Owner, key.ListID, rank, element); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key models.ListKey, rank int) error {
	query := `DELETE FROM lists WHERE owner_id=$1 AND list_id=$2 AND rank=$3`
	res, err := r.db.ExecContext(ctx, query, key.Owner, key.ListID, rank)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) DeleteAll(ctx context.Context, key models.ListKey) error {
	query := `DELETE FROM lists WHERE owner_id=$1 AND list_id=$2`
	if _, err := r.db.ExecContext(ctx, query, key.Owner, key.ListID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateElement(ctx context.Context, key models.ListKey, rank int, element string) error {
	query := `UPDATE lists SET element=$1 WHERE owner_id=$2 AND list_id=$3 AND rank=$4`
	res, err := r.db.ExecContext(ctx, query, element, key.Owner, key.ListID, rank)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) UpdateRank(ctx context.Context, key models.ListKey, from, to int) error {
	query := `UPDATE lists SET rank=$1 WHERE owner_id=$2 AND list_id=$3 AND rank=$4`
	res, err := r.db.ExecContext(ctx, query, to, key.Owner, key.ListID, from)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) Shift(ctx context.Context, key models.ListKey, lo, hi, delta int) error {
	if lo > hi || delta == 0 {
		return nil
	}
	park := `UPDATE lists SET rank = -(rank + $1) - 1 WHERE owner_id=$2 AND list_id=$3 AND rank BETWEEN $4 AND $5`
	if _, err := r.db.ExecContext(ctx, park, delta, key.Owner, key.ListID, lo, hi); err != nil {
		return fmt.Errorf("failed to shift ranks: %w", err)
	}
	restore := `UPDATE lists SET rank = -rank - 1 WHERE owner_id=$1 AND list_id=$2 AND rank < 0`
	if _, err := r.db.ExecContext(ctx, restore, key.Owner, key.ListID); err != nil {
		return fmt.Errorf("failed to restore shifted ranks: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Stream(ctx context.Context, fn func(models.Row) error) error {
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

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
