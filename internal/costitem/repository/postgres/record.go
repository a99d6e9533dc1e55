package postgres

import (
	"github.com/shopspring/decimal"

	"cost-item-service/internal/costitem"
)

// costItemRecord is the persistence shape of a CostItem.
// price is NUMERIC so decimal strings survive storage exactly.
type costItemRecord struct {
	ID    int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name  string          `gorm:"column:name;type:text;not null"`
	Price decimal.Decimal `gorm:"column:price;type:numeric;not null"`
	Notes *string         `gorm:"column:notes;type:text"`
}

func (costItemRecord) TableName() string { return "cost_items" }

func (rec costItemRecord) toEntity() costitem.CostItem {
	return costitem.CostItem{
		ID:    rec.ID,
		Name:  rec.Name,
		Price: rec.Price,
		Notes: rec.Notes,
	}
}

func toEntities(recs []costItemRecord) []costitem.CostItem {
	items := make([]costitem.CostItem, len(recs))
	for i, rec := range recs {
		items[i] = rec.toEntity()
	}
	return items
}
