package details

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/listbot/internal/common"
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

func (r *SQLiteRepository) Create(ctx context.Context, d models.Details) error {
	query := `INSERT INTO list_details (owner_id, list_id, title, thumbnail_url) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, d.Owner, d.ListID, nullable(d.Title), nullable(d.ThumbnailURL)); err != nil {
		return fmt.Errorf("failed to insert details: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key models.ListKey) error {
	query := `DELETE FROM list_details WHERE owner_id=? AND list_id=?`
	res, err := r.db.ExecContext(ctx, query, key.Owner, key.ListID)
	if err != nil {
		return fmt.Errorf("failed to delete details: %w", err)
	}
	return expectOne(res)
}

func (r *SQLiteRepository) UpdateTitle(ctx context.Context, key models.ListKey, title string) error {
	query := `UPDATE list_details SET title=? WHERE owner_id=? AND list_id=?`
	res, err := r.db.ExecContext(ctx, query, nullable(title), key.Owner, key.ListID)
	if err != nil {
		return fmt.Errorf("failed to update title: %w", err)
	}
	return expectOne(res)
}

func (r *SQLiteRepository) UpdateThumbnail(ctx context.Context, key models.ListKey, url string) error {
	query := `UPDATE list_details SET thumbnail_url=? WHERE owner_id=? AND list_id=?`
	res, err := r.db.ExecContext(ctx, query, nullable(url), key.Owner, key.ListID)
	if err != nil {
		return fmt.Errorf("failed to update thumbnail: %w", err)
	}
	return expectOne(res)
}

func (r *SQLiteRepository) All(ctx context.Context) ([]models.Details, error) {
	query := `SELECT owner_id, list_id, title, thumbnail_url FROM list_details ORDER BY owner_id, list_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select details: %w", err)
	}
	defer rows.Close()
	return scanAll(rows)
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func scanAll(rows *sql.Rows) ([]models.Details, error) {
	var result []models.Details
	for rows.Next() {
		var d models.Details
		var title, thumb sql.NullString
		if err := rows.Scan(&d.Owner, &d.ListID, &title, &thumb); err != nil {
			return nil, err
		}
		d.Title = title.String
		d.ThumbnailURL = thumb.String
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
