// Package rows persists list elements, one row per (owner, list, rank).
//
// Stored ranks are zero-indexed and unique per list. Statements that renumber
// rows never let two rows share a rank, not even between two statements of
// the same transaction: ranges are first moved to unique negative values and
// then restored, and a swap parks one row at SentinelRank.
package rows

import (
	"context"
	"math"

	"github.com/dmitrijs2005/listbot/internal/models"
)

const (
	// Unbounded is the upper bound of a shift that runs to the end of a list.
	Unbounded = math.MaxInt32
	// SentinelRank is the out-of-range rank a row is parked at during a swap.
	SentinelRank = -1
)

// Repository describes the row-level statements the list store composes
// into transactions.
type Repository interface {
	// Insert adds element at rank. The rank must be free.
	Insert(ctx context.Context, key models.ListKey, rank int, element string) error

	// Delete removes the row at rank.
	Delete(ctx context.Context, key models.ListKey, rank int) error

	// DeleteAll removes every row of the list.
	DeleteAll(ctx context.Context, key models.ListKey) error

	// UpdateElement overwrites the element at rank.
	UpdateElement(ctx context.Context, key models.ListKey, rank int, element string) error

	// UpdateRank renumbers the row at from to to. The target rank must be free.
	UpdateRank(ctx context.Context, key models.ListKey, from, to int) error

	// Shift adds delta to every rank in [lo, hi].
	Shift(ctx context.Context, key models.ListKey, lo, hi, delta int) error

	// Stream calls fn for every stored row, in no particular order.
	Stream(ctx context.Context, fn func(models.Row) error) error
}
