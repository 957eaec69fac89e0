package details

import (
	"context"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, d models.Details) error {
	query := `INSERT INTO list_details (owner_id, list_id, title, thumbnail_url) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, d.Owner, d.ListID, nullable(d.Title), nullable(d.ThumbnailURL)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key models.ListKey) error {
	query := `DELETE FROM list_details WHERE owner_id=$1 AND list_id=$2`
	res, err := r.db.ExecContext(ctx, query, key.Owner, key.ListID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) UpdateTitle(ctx context.Context, key models.ListKey, title string) error {
	query := `UPDATE list_details SET title=$1 WHERE owner_id=$2 AND list_id=$3`
	res, err := r.db.ExecContext(ctx, query, nullable(title), key.Owner, key.ListID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) UpdateThumbnail(ctx context.Context, key models.ListKey, url string) error {
	query := `UPDATE list_details SET thumbnail_url=$1 WHERE owner_id=$2 AND list_id=$3`
	res, err := r.db.ExecContext(ctx, query, nullable(url), key.Owner, key.ListID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) All(ctx context.Context) ([]models.Details, error) {
	query := `SELECT owner_id, list_id, title, thumbnail_url FROM list_details ORDER BY owner_id, list_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()
	return scanAll(rows)
}
