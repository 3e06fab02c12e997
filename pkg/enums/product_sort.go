package enums

import "strings"

// ProductSort names the supported catalog orderings.
type ProductSort string

const (
	ProductSortNone   ProductSort = ""
	ProductSortPrice  ProductSort = "price"
	ProductSortRating ProductSort = "rating"
)

// ParseProductSort maps a query-string value onto a sort key; unknown values
// fall back to insertion order.
func ParseProductSort(raw string) ProductSort {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "price":
		return ProductSortPrice
	case "rating":
		return ProductSortRating
	default:
		return ProductSortNone
	}
}
