package repository

import "github.com/tair/drinkspot-pos/internal/catalog/domain"

// SeedProducts returns the default store catalog, installed on first start.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Espresso", Price: 2.50, Category: "Coffee", Image: "https://images.unsplash.com/photo-1511920183353-3c9c66112d9b?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600"},
		{ID: 2, Name: "Latte", Price: 3.50, Category: "Coffee", Image: "https://images.unsplash.com/photo-1561882468-91101f2e5f80?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600"},
		{ID: 3, Name: "Croissant", Price: 2.75, Category: "Food", Image: "https://images.unsplash.com/photo-1587590227264-0ac64ce63ce8?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600"},
		{ID: 4, Name: "Muffin", Price: 3.00, Category: "Food", Image: "https://images.unsplash.com/photo-1551024601-bec78aea704b?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600"},
		{ID: 5, Name: "Sandwich", Price: 6.50, Category: "Food", Image: "https://images.unsplash.com/photo-1528735602780-2552fd46c766?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600"},
		{ID: 6, Name: "Iced Tea", Price: 2.25, Category: "Beverage", Image: "https://images.unsplash.com/photo-1542586948-49813253549d?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600"},
		{ID: 7, Name: "Soda", Price: 1.75, Category: "Beverage", Image: "https://images.unsplash.com/photo-1554866585-39a9b1c35b85?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600"},
		{ID: 8, Name: "Cappuccino", Price: 3.25, Category: "Coffee", Image: "https://images.unsplash.com/photo-1557142046-c704a3adf364?ixlib=rb-4.0.3&q=85&fm=jpg&crop=entropy&cs=srgb&w=600"},
	}
}
