package http

import (
	"github.com/gin-gonic/gin"

	"cost-item-service/pkg/response"
)

// List godoc
// @Summary     List all cost items
// @Description Returns every cost item in storage-default order.
// @Tags        CostItems
// @Produce     json
// @Success     200 {array}  CostItemResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /cost_items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCostItemListResp(output.CostItems))
}

// Filter godoc
// @Summary     Filter cost items
// @Description Returns the cost items matching the query-string predicates. With no parameters this is equivalent to listing all.
// @Tags        CostItems
// @Produce     json
// @Param       id    query int    false "Cost item database id (mutually exclusive with ids)"
// @Param       ids   query string false "Comma separated ids, e.g. 1,2,3 (mutually exclusive with id)"
// @Param       name  query string false "Exact name match"
// @Param       price query string false "Accepted but not applied as a predicate"
// @Param       notes query string false "Accepted but not applied as a predicate"
// @Success     200 {array}  CostItemResp
// @Failure     400 {object} response.Resp "Bad Request - unknown or invalid parameter"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /cost_items/filter [GET]
func (h *handler) Filter(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processFilterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Filter(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Filter: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCostItemListResp(output.CostItems))
}

// Detail godoc
// @Summary     Get one cost item
// @Description Returns the cost item identified by id.
// @Tags        CostItems
// @Produce     json
// @Param       id path int true "Cost item ID"
// @Success     200 {object} CostItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /cost_items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCostItemResp(output.CostItem))
}

// Create godoc
// @Summary     Create a cost item
// @Description Inserts a new cost item; the id is assigned by storage and returned.
// @Tags        CostItems
// @Accept      json
// @Produce     json
// @Param       body body costItemReq true "Cost item fields (price is a decimal string)"
// @Success     200 {object} CostItemResp
// @Failure     400 {object} response.Resp "Bad Request - malformed body"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /cost_items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBodyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toCreateInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCostItemResp(output.CostItem))
}

// Update godoc
// @Summary     Update a cost item
// @Description Replaces name, price and notes of the cost item identified by id.
// @Tags        CostItems
// @Accept      json
// @Produce     json
// @Param       id   path int         true "Cost item ID"
// @Param       body body costItemReq true "Replacement fields (price is a decimal string)"
// @Success     200 {object} CostItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /cost_items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processBodyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toUpdateInput(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCostItemResp(output.CostItem))
}

// Delete godoc
// @Summary     Delete a cost item
// @Description Removes the cost item identified by id and reports the count of rows removed. Deleting an absent id yields {"deleted": 0}, not a 404.
// @Tags        CostItems
// @Produce     json
// @Param       id path int true "Cost item ID"
// @Success     200 {object} DeleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /cost_items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, DeleteResp{Deleted: output.Deleted})
}
