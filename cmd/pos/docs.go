package main

// @title Drink Spot POS API
// @version 1.0
// @description Point-of-sale engine API with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/drinkspot-pos
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/drinkspot-pos/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Order
// @tag.description Working order and checkout endpoints

// @tag.name Catalog
// @tag.description Product catalog endpoints

// @tag.name Inventory
// @tag.description Inventory ledger endpoints

// @tag.name Sales
// @tag.description Sales history endpoints

// @tag.name Analytics
// @tag.description Dashboard rollup endpoints

// @tag.name Auth
// @tag.description Cashier sign-in endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
