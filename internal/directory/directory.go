// Package directory keeps every owner's lists in memory together with the
// list each owner is currently editing.
//
// The directory guards its own maps but never holds that lock across a
// store call, so a slow write for one owner does not stall the others.
// Callers serialize the commands of one owner and hold that owner's lock
// while they use the lists handed out.
package directory

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/lists"
	"github.com/dmitrijs2005/listbot/internal/logging"
	"github.com/dmitrijs2005/listbot/internal/models"
)

// Persister writes list creation and removal through to the store.
type Persister interface {
	CreateList(ctx context.Context, d models.Details) error
	DropList(ctx context.Context, key models.ListKey) error
}

type ownerLists struct {
	lists    map[string]*lists.List
	active   string
	disabled error
}

type Directory struct {
	mu         sync.RWMutex
	owners     map[int64]*ownerLists
	reservedID string
	store      Persister
	logger     logging.Logger
}

// New returns an empty directory. reservedID is normalized the same way as
// any other list id.
func New(store Persister, reservedID string, logger logging.Logger) *Directory {
	id := lists.NormalizeID(reservedID)
	if id == "" {
		id = common.DefaultReservedListID
	}
	return &Directory{
		owners:     make(map[int64]*ownerLists),
		reservedID: id,
		store:      store,
		logger:     logger.With("module", "directory"),
	}
}

// ReservedID is the id of the list every owner has.
func (d *Directory) ReservedID() string { return d.reservedID }

// EnsureOwner registers owner on first sight and creates its reserved list.
// Calling it again is a no-op.
func (d *Directory) EnsureOwner(ctx context.Context, owner int64) error {
	d.mu.RLock()
	o, ok := d.owners[owner]
	hasReserved := ok && o.lists[d.reservedID] != nil
	d.mu.RUnlock()
	if hasReserved {
		return nil
	}

	key := models.ListKey{Owner: owner, ListID: d.reservedID}
	if err := d.store.CreateList(ctx, models.Details{Owner: owner, ListID: d.reservedID}); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	o = d.owner(owner)
	if o.lists[d.reservedID] == nil {
		o.lists[d.reservedID] = lists.New(key, true)
	}
	d.logger.Debug(ctx, "owner registered", "owner", owner)
	return nil
}

// owner returns the entry for id, creating it. d.mu must be held for writing.
func (d *Directory) owner(id int64) *ownerLists {
	o, ok := d.owners[id]
	if !ok {
		o = &ownerLists{lists: make(map[string]*lists.List)}
		d.owners[id] = o
	}
	return o
}

// has reports whether owner has a list called id.
func (d *Directory) has(owner int64, id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	o, ok := d.owners[owner]
	return ok && o.lists[id] != nil
}

// Create adds a new empty list, persists it and makes it the active list.
func (d *Directory) Create(ctx context.Context, owner int64, id string) (*lists.List, error) {
	id = lists.NormalizeID(id)
	if id == "" {
		return nil, common.ErrEmptyListID
	}

	if d.has(owner, id) {
		return nil, common.ErrDuplicateListID
	}
	if err := d.store.CreateList(ctx, models.Details{Owner: owner, ListID: id}); err != nil {
		return nil, err
	}

	l := lists.New(models.ListKey{Owner: owner, ListID: id}, id == d.reservedID)

	d.mu.Lock()
	defer d.mu.Unlock()
	o := d.owner(owner)
	o.lists[id] = l
	o.active = id
	return l, nil
}

// Drop deletes a list and everything in it. The reserved list cannot be
// dropped.
func (d *Directory) Drop(ctx context.Context, owner int64, id string) error {
	id = lists.NormalizeID(id)

	if id == d.reservedID {
		return common.ErrReservedList
	}

	if !d.has(owner, id) {
		return common.ErrUnknownListID
	}
	if err := d.store.DropList(ctx, models.ListKey{Owner: owner, ListID: id}); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if o, ok := d.owners[owner]; ok {
		delete(o.lists, id)
		if o.active == id {
			o.active = ""
		}
	}
	return nil
}

// Select makes id the owner's active list.
func (d *Directory) Select(owner int64, id string) (*lists.List, error) {
	id = lists.NormalizeID(id)

	d.mu.Lock()
	defer d.mu.Unlock()
	o, ok := d.owners[owner]
	if !ok || o.lists[id] == nil {
		return nil, common.ErrUnknownListID
	}
	o.active = id
	return o.lists[id], nil
}

// DeselectIfMatches clears the active pointer when it points at id.
func (d *Directory) DeselectIfMatches(owner int64, id string) {
	id = lists.NormalizeID(id)

	d.mu.Lock()
	defer d.mu.Unlock()
	if o, ok := d.owners[owner]; ok && o.active == id {
		o.active = ""
	}
}

// Active returns the owner's active list.
func (d *Directory) Active(owner int64) (*lists.List, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	o, ok := d.owners[owner]
	if !ok || o.active == "" {
		return nil, common.ErrNoActiveList
	}
	l := o.lists[o.active]
	if l == nil {
		return nil, common.ErrNoActiveList
	}
	return l, nil
}

func (d *Directory) Get(owner int64, id string) (*lists.List, error) {
	id = lists.NormalizeID(id)

	d.mu.RLock()
	defer d.mu.RUnlock()
	o, ok := d.owners[owner]
	if !ok || o.lists[id] == nil {
		return nil, common.ErrUnknownListID
	}
	return o.lists[id], nil
}

// Summaries lists the owner's lists sorted by id. The reserved list is left
// out; it is always there.
func (d *Directory) Summaries(owner int64) []models.Summary {
	d.mu.RLock()
	defer d.mu.RUnlock()
	o, ok := d.owners[owner]
	if !ok {
		return nil
	}
	out := make([]models.Summary, 0, len(o.lists))
	for id, l := range o.lists {
		if id == d.reservedID {
			continue
		}
		out = append(out, models.Summary{
			ListID: id,
			Title:  l.Title(),
			Count:  l.Len(),
			Active: id == o.active,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ListID < out[j].ListID })
	return out
}

// Disabled returns the load failure that disabled the owner, or nil.
func (d *Directory) Disabled(owner int64) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if o, ok := d.owners[owner]; ok {
		return o.disabled
	}
	return nil
}
