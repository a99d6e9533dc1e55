package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"cost-item-service/internal/costitem"
	repo "cost-item-service/internal/costitem/repository"
)

// ListCostItems returns every row in storage-default order.
// No rows is not an error — callers get an empty slice.
func (r *implRepository) ListCostItems(ctx context.Context) ([]costitem.CostItem, error) {
	var recs []costItemRecord
	if err := r.db.WithContext(ctx).Find(&recs).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCostItems"), err)
		return nil, repo.ErrFailedToList
	}
	return toEntities(recs), nil
}

// FilterCostItems returns the rows matching the AND-combined predicates.
func (r *implRepository) FilterCostItems(ctx context.Context, opt repo.FilterCostItemsOptions) ([]costitem.CostItem, error) {
	query := r.buildFilterQuery(r.db.WithContext(ctx), opt)

	var recs []costItemRecord
	if err := query.Find(&recs).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FilterCostItems"), err)
		return nil, repo.ErrFailedToList
	}
	return toEntities(recs), nil
}

// GetCostItem retrieves a single row by id.
// Returns zero-value CostItem (ID == 0) when not found — do NOT return
// error for not-found; the use case decides how to surface it.
func (r *implRepository) GetCostItem(ctx context.Context, id int64) (costitem.CostItem, error) {
	var rec costItemRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return costitem.CostItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCostItem"), err)
		return costitem.CostItem{}, repo.ErrFailedToGet
	}
	return rec.toEntity(), nil
}

// CreateCostItem inserts a new row and returns the stored entity with the
// storage-assigned id.
func (r *implRepository) CreateCostItem(ctx context.Context, opt repo.CreateCostItemOptions) (costitem.CostItem, error) {
	rec := costItemRecord{
		Name:  opt.Name,
		Price: opt.Price,
		Notes: opt.Notes,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCostItem"), err)
		return costitem.CostItem{}, repo.ErrFailedToInsert
	}
	return rec.toEntity(), nil
}

// UpdateCostItem replaces the mutable fields of the row matching id and
// reports how many rows were affected (0 when the id does not exist).
// A map is used so empty strings and nil notes are written, not skipped.
func (r *implRepository) UpdateCostItem(ctx context.Context, opt repo.UpdateCostItemOptions) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&costItemRecord{}).
		Where("id = ?", opt.ID).
		Updates(map[string]any{
			"name":  opt.Name,
			"notes": opt.Notes,
			"price": opt.Price,
		})
	if result.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCostItem"), result.Error)
		return 0, repo.ErrFailedToUpdate
	}
	return result.RowsAffected, nil
}

// DeleteCostItem removes the row matching id and returns the count of rows
// removed (0 or 1). Deleting an absent id is not an error here.
func (r *implRepository) DeleteCostItem(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&costItemRecord{})
	if result.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCostItem"), result.Error)
		return 0, repo.ErrFailedToDelete
	}
	return result.RowsAffected, nil
}
