package costitem

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// CostItem CRUD
	List(ctx context.Context) (ListCostItemsOutput, error)
	Filter(ctx context.Context, input FilterCostItemsInput) (ListCostItemsOutput, error)
	Detail(ctx context.Context, id int64) (DetailCostItemOutput, error)
	Create(ctx context.Context, input CreateCostItemInput) (CreateCostItemOutput, error)
	Update(ctx context.Context, input UpdateCostItemInput) (UpdateCostItemOutput, error)
	Delete(ctx context.Context, id int64) (DeleteCostItemOutput, error)
}
