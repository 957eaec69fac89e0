// Package common defines shared constants and sentinel errors used across
// the list engine, its directory and the durable store. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// User input errors. These are reported back to the user verbatim and
	// never leave partially applied state behind.
	ErrRankOutOfRange  = errors.New("rank out of range")
	ErrMissingRank     = errors.New("missing rank")
	ErrMalformedRank   = errors.New("malformed rank")
	ErrDuplicateRank   = errors.New("duplicate rank")
	ErrDuplicateListID = errors.New("list already exists")
	ErrUnknownListID   = errors.New("no such list")
	ErrEmptyListID     = errors.New("empty list id")
	ErrReservedList    = errors.New("reserved list")
	ErrNoActiveList    = errors.New("no list in use")
	ErrInvalidURL      = errors.New("invalid url")
	ErrTitleTooLong    = errors.New("title too long")
	ErrElementTooLong  = errors.New("element too long")
	ErrEmptyElement    = errors.New("empty element")
	ErrMissingMention  = errors.New("missing mention")

	// Load-time integrity errors.
	ErrIncompleteLoad  = errors.New("incomplete load")
	ErrDuplicateSlot   = errors.New("duplicate slot")
	ErrOrphanedListRow = errors.New("orphaned list row")

	// ErrOwnerDisabled is returned for owners whose lists failed to load.
	ErrOwnerDisabled = errors.New("list editing disabled")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// IsUserError reports whether err is caused by bad user input rather than by
// a failure of the engine or the store.
func IsUserError(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var userErrors = []error{
	ErrRankOutOfRange, ErrMissingRank, ErrMalformedRank, ErrDuplicateRank,
	ErrDuplicateListID, ErrUnknownListID, ErrEmptyListID, ErrReservedList,
	ErrNoActiveList, ErrInvalidURL, ErrTitleTooLong, ErrElementTooLong,
	ErrEmptyElement, ErrMissingMention, ErrOwnerDisabled,
}

// IsLoadError reports whether err is a load-time integrity failure, as
// opposed to a failure to read the store at all.
func IsLoadError(err error) bool {
	return errors.Is(err, ErrIncompleteLoad) ||
		errors.Is(err, ErrDuplicateSlot) ||
		errors.Is(err, ErrOrphanedListRow)
}
