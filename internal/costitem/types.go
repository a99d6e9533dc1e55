package costitem

import "github.com/shopspring/decimal"

// --- CostItem Domain Model ---

// CostItem is the single persisted entity managed by this service.
// Price is an exact decimal: it must round-trip as the same decimal string
// the client sent, never a float approximation. Notes is nullable.
type CostItem struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Notes *string
}

// --- UseCase Inputs ---

type CreateCostItemInput struct {
	Name  string
	Price decimal.Decimal
	Notes *string
}

// FilterCostItemsInput carries the validated filter predicates.
// ID and IDs are mutually exclusive (enforced at the boundary).
type FilterCostItemsInput struct {
	ID   *int64
	IDs  []int64
	Name *string
}

type UpdateCostItemInput struct {
	ID    int64
	Name  string
	Price decimal.Decimal
	Notes *string
}

// --- UseCase Outputs ---

type CreateCostItemOutput struct {
	CostItem CostItem
}

type ListCostItemsOutput struct {
	CostItems []CostItem
}

type DetailCostItemOutput struct {
	CostItem CostItem
}

type UpdateCostItemOutput struct {
	CostItem CostItem
}

type DeleteCostItemOutput struct {
	Deleted int64
}
