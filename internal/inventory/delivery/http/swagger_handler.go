package http

// ListRecords godoc
// @Summary List inventory records
// @Description Get every inventory record in creation order
// @Tags Inventory
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/inventory [get]
func (h *InventoryHandler) ListRecordsDoc() {}

// GetRecord godoc
// @Summary Get an inventory record
// @Description Get the record for a product; unknown products report zero stock
// @Tags Inventory
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/inventory/{product_id} [get]
func (h *InventoryHandler) GetRecordDoc() {}

// AdjustStock godoc
// @Summary Adjust stock
// @Description Apply a signed delta to a product's stock level (Admin only)
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param product_id path int true "Product ID"
// @Param request body object{delta=int} true "Stock delta"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/inventory/{product_id}/stock [patch]
func (h *InventoryHandler) AdjustStockDoc() {}

// SetRecord godoc
// @Summary Set an inventory record
// @Description Set a product's stock and threshold directly (Admin only)
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param product_id path int true "Product ID"
// @Param request body object{stock=int,threshold=int} true "Record data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/inventory/{product_id} [put]
func (h *InventoryHandler) SetRecordDoc() {}
