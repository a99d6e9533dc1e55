package usecase

import (
	"context"

	"cost-item-service/internal/costitem"
	repo "cost-item-service/internal/costitem/repository"
)

// List returns every cost item in storage-default order.
func (uc *implUseCase) List(ctx context.Context) (costitem.ListCostItemsOutput, error) {
	items, err := uc.repo.ListCostItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCostItems: %v", err)
		return costitem.ListCostItemsOutput{}, err
	}
	return costitem.ListCostItemsOutput{CostItems: items}, nil
}

// Filter returns the cost items matching the validated predicates.
// An empty input is equivalent to List.
func (uc *implUseCase) Filter(ctx context.Context, input costitem.FilterCostItemsInput) (costitem.ListCostItemsOutput, error) {
	items, err := uc.repo.FilterCostItems(ctx, repo.FilterCostItemsOptions{
		ID:   input.ID,
		IDs:  input.IDs,
		Name: input.Name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Filter FilterCostItems: %v", err)
		return costitem.ListCostItemsOutput{}, err
	}
	return costitem.ListCostItemsOutput{CostItems: items}, nil
}
