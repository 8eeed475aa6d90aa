package pos

import (
	analyticshttp "github.com/tair/drinkspot-pos/internal/analytics/delivery/http"
	authhttp "github.com/tair/drinkspot-pos/internal/auth/delivery/http"
	cataloghttp "github.com/tair/drinkspot-pos/internal/catalog/delivery/http"
	checkouthttp "github.com/tair/drinkspot-pos/internal/checkout/delivery/http"
	invhttp "github.com/tair/drinkspot-pos/internal/inventory/delivery/http"
	saleshttp "github.com/tair/drinkspot-pos/internal/sales/delivery/http"

	"github.com/gorilla/mux"
)

// App groups the HTTP handlers of the engine.
type App struct {
	Auth      *authhttp.AuthHandler
	Catalog   *cataloghttp.CatalogHandler
	Inventory *invhttp.InventoryHandler
	Checkout  *checkouthttp.CheckoutHandler
	Sales     *saleshttp.SalesHandler
	Analytics *analyticshttp.AnalyticsHandler
}

// RegisterRoutes registers every handler's routes on the router
func (a *App) RegisterRoutes(router *mux.Router) {
	a.Auth.RegisterRoutes(router)
	a.Catalog.RegisterRoutes(router)
	a.Inventory.RegisterRoutes(router)
	a.Checkout.RegisterRoutes(router)
	a.Sales.RegisterRoutes(router)
	a.Analytics.RegisterRoutes(router)
}
