// Package store synchronizes list mutations to the database. Every exported
// method is one logical change and runs in a single transaction, so a failure
// leaves the persisted ranks exactly as they were. Ranks are zero-indexed
// here; translating from the 1-indexed user view is the caller's job.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/listbot/internal/dbx"
	"github.com/dmitrijs2005/listbot/internal/models"
	"github.com/dmitrijs2005/listbot/internal/repositories/repomanager"
	"github.com/dmitrijs2005/listbot/internal/repositories/rows"
)

type Store struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	ping        dbx.PingOptions
}

func NewStore(db *sql.DB, repomanager repomanager.RepositoryManager, ping dbx.PingOptions) *Store {
	return &Store{
		db:          db,
		repomanager: repomanager,
		ping:        ping,
	}
}

// sync checks the connection and runs fn inside a transaction.
func (s *Store) sync(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if err := dbx.Ping(ctx, s.db, s.ping); err != nil {
		return err
	}
	return dbx.WithTx(ctx, s.db, nil, fn)
}

// CreateList persists the metadata row of a new list.
func (s *Store) CreateList(ctx context.Context, d models.Details) error {
	return s.sync(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Details(tx).Create(ctx, d); err != nil {
			return fmt.Errorf("create list %s: %w", d.Key(), err)
		}
		return nil
	})
}

// DropList deletes a list's rows and its metadata.
func (s *Store) DropList(ctx context.Context, key models.ListKey) error {
	return s.sync(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Rows(tx).DeleteAll(ctx, key); err != nil {
			return fmt.Errorf("drop list %s: %w", key, err)
		}
		if err := s.repomanager.Details(tx).Delete(ctx, key); err != nil {
			return fmt.Errorf("drop list %s: %w", key, err)
		}
		return nil
	})
}

// Insert opens a gap at rank and stores element in it.
func (s *Store) Insert(ctx context.Context, key models.ListKey, rank int, element string) error {
	return s.sync(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return insert(ctx, s.repomanager.Rows(tx), key, rank, element)
	})
}

// Append stores elements after the last rank, first element at start.
func (s *Store) Append(ctx context.Context, key models.ListKey, start int, elements []string) error {
	return s.sync(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repomanager.Rows(tx)
		for i, e := range elements {
			if err := r.Insert(ctx, key, start+i, e); err != nil {
				return fmt.Errorf("append to %s: %w", key, err)
			}
		}
		return nil
	})
}

// Remove deletes every rank in ranks, which must be sorted from highest to
// lowest, closing the gap after each one.
func (s *Store) Remove(ctx context.Context, key models.ListKey, ranks []int) error {
	return s.sync(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repomanager.Rows(tx)
		for _, rank := range ranks {
			if err := remove(ctx, r, key, rank); err != nil {
				return err
			}
		}
		return nil
	})
}

// Replace overwrites the element at rank.
func (s *Store) Replace(ctx context.Context, key models.ListKey, rank int, element string) error {
	return s.sync(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Rows(tx).UpdateElement(ctx, key, rank, element); err != nil {
			return fmt.Errorf("replace rank %d of %s: %w", rank, key, err)
		}
		return nil
	})
}

// Move takes the element at from out and reinserts it at to. The rows in
// between slide one step toward the vacated rank.
func (s *Store) Move(ctx context.Context, key models.ListKey, from, to int, element string) error {
	if from == to {
		return nil
	}
	return s.sync(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repomanager.Rows(tx)
		if err := r.Delete(ctx, key, from); err != nil {
			return fmt.Errorf("move rank %d of %s: %w", from, key, err)
		}
		var err error
		if from < to {
			err = r.Shift(ctx, key, from+1, to, -1)
		} else {
			err = r.Shift(ctx, key, to, from-1, 1)
		}
		if err != nil {
			return fmt.Errorf("move rank %d of %s: %w", from, key, err)
		}
		if err := r.Insert(ctx, key, to, element); err != nil {
			return fmt.Errorf("move rank %d of %s: %w", from, key, err)
		}
		return nil
	})
}

// Swap exchanges two ranks by parking the first at rows.SentinelRank.
func (s *Store) Swap(ctx context.Context, key models.ListKey, a, b int) error {
	if a == b {
		return nil
	}
	return s.sync(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repomanager.Rows(tx)
		steps := [][2]int{{a, rows.SentinelRank}, {b, a}, {rows.SentinelRank, b}}
		for _, st := range steps {
			if err := r.UpdateRank(ctx, key, st[0], st[1]); err != nil {
				return fmt.Errorf("swap ranks %d and %d of %s: %w", a, b, key, err)
			}
		}
		return nil
	})
}

// Clear deletes every row of a list and keeps its metadata.
func (s *Store) Clear(ctx context.Context, key models.ListKey) error {
	return s.sync(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Rows(tx).DeleteAll(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
		return nil
	})
}

func (s *Store) SetTitle(ctx context.Context, key models.ListKey, title string) error {
	return s.sync(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Details(tx).UpdateTitle(ctx, key, title); err != nil {
			return fmt.Errorf("set title of %s: %w", key, err)
		}
		return nil
	})
}

func (s *Store) SetThumbnail(ctx context.Context, key models.ListKey, url string) error {
	return s.sync(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Details(tx).UpdateThumbnail(ctx, key, url); err != nil {
			return fmt.Errorf("set thumbnail of %s: %w", key, err)
		}
		return nil
	})
}

// AllDetails returns the metadata of every list of every owner.
func (s *Store) AllDetails(ctx context.Context) ([]models.Details, error) {
	if err := dbx.Ping(ctx, s.db, s.ping); err != nil {
		return nil, err
	}
	return s.repomanager.Details(s.db).All(ctx)
}

// StreamRows calls fn for every persisted element, in no particular order.
// fn must not use the store.
func (s *Store) StreamRows(ctx context.Context, fn func(models.Row) error) error {
	if err := dbx.Ping(ctx, s.db, s.ping); err != nil {
		return err
	}
	return s.repomanager.Rows(s.db).Stream(ctx, fn)
}

func insert(ctx context.Context, r rows.Repository, key models.ListKey, rank int, element string) error {
	if err := r.Shift(ctx, key, rank, rows.Unbounded, 1); err != nil {
		return fmt.Errorf("insert at rank %d of %s: %w", rank, key, err)
	}
	if err := r.Insert(ctx, key, rank, element); err != nil {
		return fmt.Errorf("insert at rank %d of %s: %w", rank, key, err)
	}
	return nil
}

func remove(ctx context.Context, r rows.Repository, key models.ListKey, rank int) error {
	if err := r.Delete(ctx, key, rank); err != nil {
		return fmt.Errorf("remove rank %d of %s: %w", rank, key, err)
	}
	if err := r.Shift(ctx, key, rank+1, rows.Unbounded, -1); err != nil {
		return fmt.Errorf("remove rank %d of %s: %w", rank, key, err)
	}
	return nil
}
