package lists

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeID trims and case-folds a list id so that "Anime" and "anime"
// address the same list. Casers are stateful, so one is built per call.
func NormalizeID(id string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(id)))
}

// NormalizeElement trims an element and brings it to NFC so visually equal
// input is stored identically.
func NormalizeElement(element string) string {
	return norm.NFC.String(strings.TrimSpace(element))
}
