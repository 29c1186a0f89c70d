package constants

import "strings"

// SortField selects the key used to order a loaded transaction list.
type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

// SortOrder selects the direction of a transaction sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortField normalizes user input to a known sort field.
// Unknown values fall back to date ordering.
func ParseSortField(input string) (SortField, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case string(SortByDate):
		return SortByDate, true
	case string(SortByAmount):
		return SortByAmount, true
	}
	return SortByDate, false
}

// ParseSortOrder normalizes user input to a known sort order.
// Unknown values fall back to ascending.
func ParseSortOrder(input string) (SortOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case string(SortAsc):
		return SortAsc, true
	case string(SortDesc):
		return SortDesc, true
	}
	return SortAsc, false
}
