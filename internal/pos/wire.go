//go:build wireinject
// +build wireinject

package pos

import (
	"context"

	"github.com/google/wire"

	analyticshttp "github.com/tair/drinkspot-pos/internal/analytics/delivery/http"
	analyticsquery "github.com/tair/drinkspot-pos/internal/analytics/usecase/query"
	authhttp "github.com/tair/drinkspot-pos/internal/auth/delivery/http"
	cataloghttp "github.com/tair/drinkspot-pos/internal/catalog/delivery/http"
	catalogdomain "github.com/tair/drinkspot-pos/internal/catalog/domain"
	catalogrepo "github.com/tair/drinkspot-pos/internal/catalog/repository"
	catalogquery "github.com/tair/drinkspot-pos/internal/catalog/usecase/query"
	"github.com/tair/drinkspot-pos/internal/checkout/builder"
	checkouthttp "github.com/tair/drinkspot-pos/internal/checkout/delivery/http"
	checkoutcommand "github.com/tair/drinkspot-pos/internal/checkout/usecase/command"
	checkoutquery "github.com/tair/drinkspot-pos/internal/checkout/usecase/query"
	"github.com/tair/drinkspot-pos/internal/config"
	invhttp "github.com/tair/drinkspot-pos/internal/inventory/delivery/http"
	invdomain "github.com/tair/drinkspot-pos/internal/inventory/domain"
	"github.com/tair/drinkspot-pos/internal/inventory/ledger"
	invcommand "github.com/tair/drinkspot-pos/internal/inventory/usecase/command"
	invquery "github.com/tair/drinkspot-pos/internal/inventory/usecase/query"
	saleshttp "github.com/tair/drinkspot-pos/internal/sales/delivery/http"
	salesdomain "github.com/tair/drinkspot-pos/internal/sales/domain"
	salesrepo "github.com/tair/drinkspot-pos/internal/sales/repository"
	salesquery "github.com/tair/drinkspot-pos/internal/sales/usecase/query"
	settingsdomain "github.com/tair/drinkspot-pos/internal/settings/domain"
	settingsrepo "github.com/tair/drinkspot-pos/internal/settings/repository"
	"github.com/tair/drinkspot-pos/kafka"
	"github.com/tair/drinkspot-pos/pkg/store"
)

// ProvideCatalogRepository provides the catalog repository
func ProvideCatalogRepository(ctx context.Context, s store.Store) (catalogdomain.CatalogRepository, error) {
	return catalogrepo.NewStoreCatalogRepository(ctx, s)
}

// ProvideLedger provides the inventory ledger seeded with the default records
func ProvideLedger(ctx context.Context, s store.Store) (*ledger.Ledger, error) {
	return ledger.New(ctx, s, ledger.DefaultRecords())
}

// ProvideLedgerInterface binds the concrete ledger to its domain interface
func ProvideLedgerInterface(l *ledger.Ledger) invdomain.Ledger {
	return l
}

// ProvideSaleRepository provides the sales log repository
func ProvideSaleRepository(ctx context.Context, s store.Store) (salesdomain.SaleRepository, error) {
	return salesrepo.NewStoreSaleRepository(ctx, s)
}

// ProvideSettingsProvider provides the store settings
func ProvideSettingsProvider(ctx context.Context, s store.Store) (settingsdomain.Provider, error) {
	return settingsrepo.NewStoreSettingsRepository(ctx, s)
}

// ProvideAuthHandler provides the sign-in handler from the config
func ProvideAuthHandler(cfg *config.Config) *authhttp.AuthHandler {
	return authhttp.NewAuthHandler(cfg.AdminPINHash, cfg.CashierID)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
	ProvideLedger,
	ProvideLedgerInterface,
	ProvideSaleRepository,
	ProvideSettingsProvider,
	ledger.NewLedgerWithTracing,
	builder.New,
)

var UsecaseSet = wire.NewSet(
	catalogquery.NewListProductsHandler,
	catalogquery.NewGetProductHandler,
	invcommand.NewAdjustStockHandler,
	invcommand.NewSetRecordHandler,
	invquery.NewGetRecordHandler,
	invquery.NewListRecordsHandler,
	checkoutcommand.NewAddItemHandler,
	checkoutcommand.NewSetQuantityHandler,
	checkoutcommand.NewRemoveItemHandler,
	checkoutcommand.NewClearOrderHandler,
	checkoutcommand.NewSetDiscountHandler,
	checkoutcommand.NewFinalizeSaleHandler,
	checkoutquery.NewGetOrderHandler,
	salesquery.NewSearchSalesHandler,
	analyticsquery.NewGetKPIsHandler,
	analyticsquery.NewLowStockHandler,
	analyticsquery.NewRecentSalesHandler,
)

var HandlerSet = wire.NewSet(
	ProvideAuthHandler,
	cataloghttp.NewCatalogHandler,
	invhttp.NewInventoryHandler,
	checkouthttp.NewCheckoutHandler,
	saleshttp.NewSalesHandler,
	analyticshttp.NewAnalyticsHandler,
)

// InitializeApp initializes all HTTP handlers with their dependencies
func InitializeApp(ctx context.Context, cfg *config.Config, s store.Store, publisher *kafka.Publisher) (*App, error) {
	wire.Build(
		RepositorySet,
		UsecaseSet,
		HandlerSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil
}
