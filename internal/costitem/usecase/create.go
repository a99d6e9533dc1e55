package usecase

import (
	"context"

	"cost-item-service/internal/costitem"
	repo "cost-item-service/internal/costitem/repository"
)

// Create inserts a new cost item and returns the stored row, including the
// storage-assigned id.
func (uc *implUseCase) Create(ctx context.Context, input costitem.CreateCostItemInput) (costitem.CreateCostItemOutput, error) {
	item, err := uc.repo.CreateCostItem(ctx, repo.CreateCostItemOptions{
		Name:  input.Name,
		Price: input.Price,
		Notes: input.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCostItem: %v", err)
		return costitem.CreateCostItemOutput{}, err
	}
	return costitem.CreateCostItemOutput{CostItem: item}, nil
}
