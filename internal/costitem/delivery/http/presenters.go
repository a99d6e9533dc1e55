package http

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cost-item-service/internal/costitem"
	pkgErrors "cost-item-service/pkg/errors"
)

// --- Request DTOs ---

// costItemReq is the mutable-field payload for create and update.
// price travels as a decimal string so precision survives the wire.
type costItemReq struct {
	Name  string  `json:"name"  binding:"required"`
	Price string  `json:"price" binding:"required"`
	Notes *string `json:"notes"`
}

func (r costItemReq) price() (decimal.Decimal, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return decimal.Decimal{}, pkgErrors.NewBadRequest(
			fmt.Sprintf("Error parsing string: '%s', not a valid decimal", r.Price),
		)
	}
	return price, nil
}

func (r costItemReq) toCreateInput() (costitem.CreateCostItemInput, error) {
	price, err := r.price()
	if err != nil {
		return costitem.CreateCostItemInput{}, err
	}
	return costitem.CreateCostItemInput{
		Name:  r.Name,
		Price: price,
		Notes: r.Notes,
	}, nil
}

func (r costItemReq) toUpdateInput(id int64) (costitem.UpdateCostItemInput, error) {
	price, err := r.price()
	if err != nil {
		return costitem.UpdateCostItemInput{}, err
	}
	return costitem.UpdateCostItemInput{
		ID:    id,
		Name:  r.Name,
		Price: price,
		Notes: r.Notes,
	}, nil
}

// --- Response DTOs ---

// CostItemResp is the wire shape of a cost item. Exported for the swagger
// definitions; decimal.Decimal marshals as a quoted decimal string.
type CostItemResp struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price" swaggertype:"string"`
	Notes *string         `json:"notes"`
}

// DeleteResp reports how many rows a delete removed (0 or 1).
type DeleteResp struct {
	Deleted int64 `json:"deleted"`
}

func newCostItemResp(item costitem.CostItem) CostItemResp {
	return CostItemResp{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Notes: item.Notes,
	}
}

func newCostItemListResp(items []costitem.CostItem) []CostItemResp {
	resp := make([]CostItemResp, len(items))
	for i, item := range items {
		resp[i] = newCostItemResp(item)
	}
	return resp
}
