package postgres

import (
	"gorm.io/gorm"

	repo "cost-item-service/internal/costitem/repository"
)

// buildFilterQuery applies the set predicates as AND conditions.
// id and ids never arrive together (validated upstream); ids are
// deduplicated here before the membership predicate is built.
func (r *implRepository) buildFilterQuery(db *gorm.DB, opt repo.FilterCostItemsOptions) *gorm.DB {
	query := db

	if opt.ID != nil {
		query = query.Where("id = ?", *opt.ID)
	}
	if len(opt.IDs) > 0 {
		query = query.Where("id IN ?", deduplicate(opt.IDs))
	}
	if opt.Name != nil {
		query = query.Where("name = ?", *opt.Name)
	}

	return query
}

// deduplicate removes repeated ids while preserving first-seen order.
func deduplicate(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	clean := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		clean = append(clean, id)
	}
	return clean
}
