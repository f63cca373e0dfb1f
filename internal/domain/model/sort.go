package model

import (
	"slices"
	"strings"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortByTitle orders items in place by the key returned from title. Orders
// other than asc and desc leave the slice untouched.
func SortByTitle[T any](items []T, order SortOrder, title func(T) string) {
	switch order {
	case SortAsc:
		slices.SortStableFunc(items, func(a, b T) int {
			return strings.Compare(title(a), title(b))
		})
	case SortDesc:
		slices.SortStableFunc(items, func(a, b T) int {
			return strings.Compare(title(b), title(a))
		})
	}
}
