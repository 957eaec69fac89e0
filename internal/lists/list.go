// Package lists implements the in-memory ranked list.
//
// A List is bound to one (owner, list id) pair and owns its elements, title
// and thumbnail. Every rank in the public API is 1-indexed; every mutating
// method validates its arguments before touching state, so a failed call
// leaves the list exactly as it was. Lists are not safe for concurrent use;
// callers serialize access per owner.
package lists

import (
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/dmitrijs2005/listbot/internal/common"
	"github.com/dmitrijs2005/listbot/internal/models"
)

const (
	// MaxTitleLength is the longest title accepted, in runes.
	MaxTitleLength = 256
	// MaxElementLength is the longest element accepted, in runes.
	MaxElementLength = 1024
)

// Display colors.
const (
	ColorReserved = 0xE91E63
	ColorDefault  = 0x3498DB
)

type List struct {
	key       models.ListKey
	reserved  bool
	title     string
	thumbnail string
	contents  []string

	// pending is the load buffer, nil once committed.
	pending []*string
}

// New returns an empty list. reserved marks the per-owner list that every
// owner receives automatically.
func New(key models.ListKey, reserved bool) *List {
	return &List{key: key, reserved: reserved}
}

func (l *List) Key() models.ListKey { return l.key }
func (l *List) Reserved() bool      { return l.reserved }
func (l *List) Title() string       { return l.title }
func (l *List) Thumbnail() string   { return l.thumbnail }
func (l *List) Len() int            { return len(l.contents) }

// Color is fixed per list category.
func (l *List) Color() int {
	if l.reserved {
		return ColorReserved
	}
	return ColorDefault
}

// Contents returns a copy of the elements in rank order.
func (l *List) Contents() []string {
	out := make([]string, len(l.contents))
	copy(out, l.contents)
	return out
}

// Get returns the element at rank.
func (l *List) Get(rank int) (string, error) {
	if err := l.ValidateRank(rank); err != nil {
		return "", err
	}
	return l.contents[rank-1], nil
}

// ValidateRank checks that rank addresses an existing element.
func (l *List) ValidateRank(rank int) error {
	if rank < 1 || rank > len(l.contents) {
		return rankError(rank, len(l.contents))
	}
	return nil
}

// ValidateInsertRank checks that rank is a valid insertion point. Zero means
// append and is always valid.
func (l *List) ValidateInsertRank(rank int) error {
	if rank == 0 {
		return nil
	}
	if rank < 1 || rank > len(l.contents)+1 {
		return rankError(rank, len(l.contents))
	}
	return nil
}

// ValidateElement rejects empty and oversized elements.
func ValidateElement(element string) error {
	if element == "" {
		return common.ErrEmptyElement
	}
	if n := utf8.RuneCountInString(element); n > MaxElementLength {
		return fmt.Errorf("%w: %d characters, at most %d allowed", common.ErrElementTooLong, n, MaxElementLength)
	}
	return nil
}

// ValidateTitle rejects titles longer than MaxTitleLength.
func ValidateTitle(title string) error {
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return fmt.Errorf("%w: %d characters, at most %d allowed", common.ErrTitleTooLong, n, MaxTitleLength)
	}
	return nil
}

// ValidateThumbnail accepts an empty string (no thumbnail) or an absolute
// http(s) URL.
func ValidateThumbnail(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", common.ErrInvalidURL, raw)
	}
	return nil
}

func rankError(rank, length int) error {
	if length == 0 {
		return fmt.Errorf("%w: %d, the list is empty", common.ErrRankOutOfRange, rank)
	}
	return fmt.Errorf("%w: %d, expected 1 to %d", common.ErrRankOutOfRange, rank, length)
}

// Add inserts element at rank, shifting later elements down. A zero rank
// appends. It returns the rank the element landed at.
func (l *List) Add(element string, rank int) (int, error) {
	if err := ValidateElement(element); err != nil {
		return 0, err
	}
	if err := l.ValidateInsertRank(rank); err != nil {
		return 0, err
	}
	if rank == 0 {
		l.contents = append(l.contents, element)
		return len(l.contents), nil
	}
	i := rank - 1
	l.contents = append(l.contents, "")
	copy(l.contents[i+1:], l.contents[i:])
	l.contents[i] = element
	return rank, nil
}

// Remove deletes and returns the element at rank.
func (l *List) Remove(rank int) (string, error) {
	if err := l.ValidateRank(rank); err != nil {
		return "", err
	}
	i := rank - 1
	removed := l.contents[i]
	l.contents = append(l.contents[:i], l.contents[i+1:]...)
	return removed, nil
}

// Replace overwrites the element at rank and returns the previous value.
func (l *List) Replace(element string, rank int) (string, error) {
	if err := ValidateElement(element); err != nil {
		return "", err
	}
	if err := l.ValidateRank(rank); err != nil {
		return "", err
	}
	old := l.contents[rank-1]
	l.contents[rank-1] = element
	return old, nil
}

// Move takes the element at from out of the list and reinserts it at to.
// Elements in between shift by one to close and reopen the gap.
func (l *List) Move(from, to int) error {
	if err := l.ValidateRank(from); err != nil {
		return err
	}
	if err := l.ValidateRank(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	element := l.contents[from-1]
	if from < to {
		copy(l.contents[from-1:to-1], l.contents[from:to])
	} else {
		copy(l.contents[to:from], l.contents[to-1:from-1])
	}
	l.contents[to-1] = element
	return nil
}

// Swap exchanges the elements at a and b and returns the new values at a
// and b.
func (l *List) Swap(a, b int) (string, string, error) {
	if err := l.ValidateRank(a); err != nil {
		return "", "", err
	}
	if err := l.ValidateRank(b); err != nil {
		return "", "", err
	}
	l.contents[a-1], l.contents[b-1] = l.contents[b-1], l.contents[a-1]
	return l.contents[a-1], l.contents[b-1], nil
}

// Clear empties the list. Title and thumbnail are kept.
func (l *List) Clear() {
	l.contents = nil
}

// SetTitle replaces the title. An empty title restores the default.
func (l *List) SetTitle(title string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	l.title = title
	return nil
}

// SetThumbnail replaces the thumbnail URL. An empty URL removes it.
func (l *List) SetThumbnail(raw string) error {
	if err := ValidateThumbnail(raw); err != nil {
		return err
	}
	l.thumbnail = raw
	return nil
}

// DisplayTitle is the title shown on pages: the explicit title when set,
// otherwise a name derived from the owner for the reserved list, otherwise
// the list id.
func (l *List) DisplayTitle(ownerName string) string {
	switch {
	case l.title != "":
		return l.title
	case l.reserved && ownerName != "":
		return ownerName + "'s Best Girl List"
	case l.reserved:
		return "Best Girl List"
	default:
		return l.key.ListID
	}
}
