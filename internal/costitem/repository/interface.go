package repository

import (
	"context"

	"cost-item-service/internal/costitem"
)

// Repository is the composed interface for the cost item data store.
type Repository interface {
	CostItemRepository
}

// CostItemRepository defines all data access methods for the CostItem entity.
type CostItemRepository interface {
	ListCostItems(ctx context.Context) ([]costitem.CostItem, error)
	FilterCostItems(ctx context.Context, opt FilterCostItemsOptions) ([]costitem.CostItem, error)
	GetCostItem(ctx context.Context, id int64) (costitem.CostItem, error)
	CreateCostItem(ctx context.Context, opt CreateCostItemOptions) (costitem.CostItem, error)
	UpdateCostItem(ctx context.Context, opt UpdateCostItemOptions) (int64, error)
	DeleteCostItem(ctx context.Context, id int64) (int64, error)
}
