package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"cost-item-service/internal/costitem"
	"cost-item-service/pkg/check"
	pkgErrors "cost-item-service/pkg/errors"
)

// processIDParam parses the :id path segment.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	return check.ValidateInt64(c.Param("id"))
}

// processBodyReq binds the create/update JSON body.
func (h *handler) processBodyReq(c *gin.Context) (costItemReq, error) {
	var req costItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequest(fmt.Sprintf("invalid request body: %v", err))
	}
	return req, nil
}

// processFilterReq flattens the query string, validates it as a filter
// parameter set, and converts it to typed predicates. Downstream code never
// sees the raw strings again.
func (h *handler) processFilterReq(c *gin.Context) (costitem.FilterCostItemsInput, error) {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	if err := check.CostItemFilterParams(params); err != nil {
		return costitem.FilterCostItemsInput{}, err
	}

	var input costitem.FilterCostItemsInput
	if raw, ok := params["id"]; ok {
		id, err := check.ValidateInt64(raw)
		if err != nil {
			return costitem.FilterCostItemsInput{}, err
		}
		input.ID = &id
	}
	if raw, ok := params["ids"]; ok {
		ids, err := check.ParseIDs(raw)
		if err != nil {
			return costitem.FilterCostItemsInput{}, err
		}
		input.IDs = ids
	}
	if name, ok := params["name"]; ok {
		input.Name = &name
	}
	// price and notes are legal keys but are never applied as predicates;
	// CostItemFilterParams has already admitted them.

	return input, nil
}
