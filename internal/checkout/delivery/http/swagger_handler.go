package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the POS engine
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// GetOrder godoc
// @Summary Get the working order
// @Description Get the current working order with its computed totals
// @Tags Order
// @Produce json
// @Success 200 {object} object{success=bool,data=object{order=object,totals=object}}
// @Router /api/order [get]
func (h *CheckoutHandler) GetOrderDoc() {}

// AddItem godoc
// @Summary Add an item to the order
// @Description Add one unit of a product to the working order, reserving stock
// @Tags Order
// @Accept json
// @Produce json
// @Param request body object{product_id=int} true "Product to add"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/order/items [post]
func (h *CheckoutHandler) AddItemDoc() {}

// SetQuantity godoc
// @Summary Set a line quantity
// @Description Set the quantity of an order line; zero or less removes the line
// @Tags Order
// @Accept json
// @Produce json
// @Param product_id path int true "Product ID"
// @Param request body object{quantity=int} true "New quantity"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/order/items/{product_id} [patch]
func (h *CheckoutHandler) SetQuantityDoc() {}

// RemoveItem godoc
// @Summary Remove a line from the order
// @Description Remove an order line, releasing its reserved stock
// @Tags Order
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/order/items/{product_id} [delete]
func (h *CheckoutHandler) RemoveItemDoc() {}

// ClearOrder godoc
// @Summary Clear the order
// @Description Remove every line and release all reserved stock
// @Tags Order
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/order [delete]
func (h *CheckoutHandler) ClearOrderDoc() {}

// SetDiscount godoc
// @Summary Set the order discount
// @Description Set the order-level discount percentage, clamped to 0..100
// @Tags Order
// @Accept json
// @Produce json
// @Param request body object{percent=number} true "Discount percentage"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/order/discount [patch]
func (h *CheckoutHandler) SetDiscountDoc() {}

// Checkout godoc
// @Summary Finalize the sale
// @Description Finalize the working order into an immutable sale record
// @Tags Order
// @Produce json
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/order/checkout [post]
func (h *CheckoutHandler) CheckoutDoc() {}
