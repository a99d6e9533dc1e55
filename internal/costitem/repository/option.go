package repository

import "github.com/shopspring/decimal"

// CreateCostItemOptions holds parameters for inserting a new CostItem.
// The id is never supplied here; storage assigns it.
type CreateCostItemOptions struct {
	Name  string
	Price decimal.Decimal
	Notes *string
}

// FilterCostItemsOptions holds filter parameters for listing CostItems.
// All set fields are applied as AND conditions. ID and IDs never arrive
// together (validated upstream); IDs may contain duplicates — the store
// deduplicates before building the membership predicate.
type FilterCostItemsOptions struct {
	ID   *int64
	IDs  []int64
	Name *string
}

// UpdateCostItemOptions holds parameters for replacing the mutable fields
// of an existing CostItem.
type UpdateCostItemOptions struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Notes *string
}
