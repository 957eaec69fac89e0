package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/lists"
	"github.com/dmitrijs2005/listbot/internal/models"
)

// Source is the persisted state read back at startup.
type Source interface {
	AllDetails(ctx context.Context) ([]models.Details, error)
	StreamRows(ctx context.Context, fn func(models.Row) error) error
}

// Load replaces the directory contents with the persisted lists.
//
// Metadata is read first, then every row is buffered into its list, then
// each list is committed. An owner whose rows do not fit their lists
// (orphaned rows, repeated ranks, holes) is disabled rather than partially
// loaded, and every such failure is returned joined. A failure to read the
// store at all aborts the load and leaves the directory untouched.
func (d *Directory) Load(ctx context.Context, src Source) error {
	details, err := src.AllDetails(ctx)
	if err != nil {
		return fmt.Errorf("load list details: %w", err)
	}

	owners := make(map[int64]*ownerLists)
	get := func(id int64) *ownerLists {
		o, ok := owners[id]
		if !ok {
			o = &ownerLists{lists: make(map[string]*lists.List)}
			owners[id] = o
		}
		return o
	}
	failures := make(map[int64][]error)

	for _, det := range details {
		l := lists.New(det.Key(), det.ListID == d.reservedID)
		l.LoadDetails(det.Title, det.ThumbnailURL)
		get(det.Owner).lists[det.ListID] = l
	}

	rowCount := 0
	err = src.StreamRows(ctx, func(row models.Row) error {
		rowCount++
		o := get(row.Owner)
		l, ok := o.lists[row.ListID]
		if !ok {
			failures[row.Owner] = append(failures[row.Owner],
				fmt.Errorf("%w: %s rank %d", common.ErrOrphanedListRow, row.Key(), row.Rank))
			return nil
		}
		if err := l.Buffer(row.Element, row.Rank); err != nil {
			failures[row.Owner] = append(failures[row.Owner], err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("load list rows: %w", err)
	}

	for id, o := range owners {
		for _, l := range o.lists {
			if err := l.Commit(); err != nil {
				failures[id] = append(failures[id], err)
			}
		}
	}

	var all []error
	for id, errs := range failures {
		joined := errors.Join(errs...)
		owners[id].disabled = fmt.Errorf("%w: %w", common.ErrOwnerDisabled, joined)
		all = append(all, fmt.Errorf("owner %d: %w", id, joined))
		d.logger.Error(ctx, "owner disabled", "owner", id, "error", joined)
	}

	d.mu.Lock()
	d.owners = owners
	d.mu.Unlock()

	d.logger.Info(ctx, "directory loaded", "owners", len(owners), "lists", len(details), "rows", rowCount, "disabled", len(failures))
	return errors.Join(all...)
}
