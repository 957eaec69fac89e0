// Package models holds the plain data types shared by the list engine, the
// directory and the repositories.
package models

import "fmt"

// ListKey identifies one list of one owner.
type ListKey struct {
	Owner  int64
	ListID string
}

func (k ListKey) String() string {
	return fmt.Sprintf("%d/%s", k.Owner, k.ListID)
}

// Details is the persisted metadata of a list. Empty strings are stored as NULL.
type Details struct {
	Owner        int64
	ListID       string
	Title        string
	ThumbnailURL string
}

// Key returns the list the details belong to.
func (d Details) Key() ListKey {
	return ListKey{Owner: d.Owner, ListID: d.ListID}
}

// Row is one persisted list element. Rank is zero-indexed.
type Row struct {
	Owner   int64
	ListID  string
	Rank    int
	Element string
}

// Key returns the list the row belongs to.
func (r Row) Key() ListKey {
	return ListKey{Owner: r.Owner, ListID: r.ListID}
}

// Summary is one line of an owner's directory listing.
type Summary struct {
	ListID string `json:"list_id"`
	Title  string `json:"title,omitempty"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}
