package usecase

import (
	"context"

	"cost-item-service/internal/costitem"
	repo "cost-item-service/internal/costitem/repository"
)

// Detail retrieves a single cost item by id. Returns ErrNotFound when the
// id has no matching row.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (costitem.DetailCostItemOutput, error) {
	item, err := uc.repo.GetCostItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetCostItem: %v", err)
		return costitem.DetailCostItemOutput{}, err
	}
	if item.ID == 0 {
		return costitem.DetailCostItemOutput{}, costitem.ErrNotFound
	}
	return costitem.DetailCostItemOutput{CostItem: item}, nil
}

// Update replaces name/price/notes of the row matching id. Zero rows
// affected means the id does not exist and is reported as ErrNotFound.
func (uc *implUseCase) Update(ctx context.Context, input costitem.UpdateCostItemInput) (costitem.UpdateCostItemOutput, error) {
	affected, err := uc.repo.UpdateCostItem(ctx, repo.UpdateCostItemOptions{
		ID:    input.ID,
		Name:  input.Name,
		Price: input.Price,
		Notes: input.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCostItem: %v", err)
		return costitem.UpdateCostItemOutput{}, err
	}
	if affected == 0 {
		return costitem.UpdateCostItemOutput{}, costitem.ErrNotFound
	}

	item, err := uc.repo.GetCostItem(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetCostItem: %v", err)
		return costitem.UpdateCostItemOutput{}, err
	}
	return costitem.UpdateCostItemOutput{CostItem: item}, nil
}

// Delete removes the row matching id and reports the count of rows removed.
// Deleting an already-absent id is not an error: the count is simply 0 and
// the boundary renders it as-is.
func (uc *implUseCase) Delete(ctx context.Context, id int64) (costitem.DeleteCostItemOutput, error) {
	deleted, err := uc.repo.DeleteCostItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCostItem: %v", err)
		return costitem.DeleteCostItemOutput{}, err
	}
	return costitem.DeleteCostItemOutput{Deleted: deleted}, nil
}
