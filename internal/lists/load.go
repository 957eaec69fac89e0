package lists

import (
	"fmt"

	"github.com/dmitrijs2005/listbot/internal/common"
)

// maxLoadSlots bounds the load buffer so a corrupt rank cannot exhaust memory.
const maxLoadSlots = 1 << 20

// LoadDetails restores persisted metadata without validation; the store is
// trusted to hold values that passed validation when they were written.
func (l *List) LoadDetails(title, thumbnail string) {
	l.title = title
	l.thumbnail = thumbnail
}

// Buffer places element into the load buffer at the zero-based absolute
// index, growing the buffer with empty slots as needed. Rows may arrive in
// any order. A slot that is already filled means the store holds two rows
// with the same rank.
func (l *List) Buffer(element string, index int) error {
	if index < 0 || index >= maxLoadSlots {
		return fmt.Errorf("%w: rank %d of %s is out of bounds", common.ErrIncompleteLoad, index, l.key)
	}
	if index >= len(l.pending) {
		grown := make([]*string, index+1)
		copy(grown, l.pending)
		l.pending = grown
	}
	if l.pending[index] != nil {
		return fmt.Errorf("%w: rank %d of %s loaded twice", common.ErrDuplicateSlot, index, l.key)
	}
	l.pending[index] = &element
	return nil
}

// Commit promotes the load buffer to the live contents. Every slot must be
// filled: a list with a hole is rejected instead of being silently
// shortened. On failure the live contents are left unchanged.
func (l *List) Commit() error {
	contents := make([]string, 0, len(l.pending))
	for i, slot := range l.pending {
		if slot == nil {
			return fmt.Errorf("%w: rank %d of %s is missing (%d slots)", common.ErrIncompleteLoad, i, l.key, len(l.pending))
		}
		contents = append(contents, *slot)
	}
	l.contents = contents
	l.pending = nil
	return nil
}
