// Package details persists list metadata: one row per list carrying the
// optional title and thumbnail.
package details

import (
	"context"

	"github.com/dmitrijs2005/listbot/internal/models"
)

type Repository interface {
	Create(ctx context.Context, d models.Details) error
	Delete(ctx context.Context, key models.ListKey) error
	UpdateTitle(ctx context.Context, key models.ListKey, title string) error
	UpdateThumbnail(ctx context.Context, key models.ListKey, url string) error
	All(ctx context.Context) ([]models.Details, error)
}
