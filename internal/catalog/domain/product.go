package domain

// Product represents an immutable catalog entry. Products are referenced by
// id everywhere else in the engine; cart lines snapshot name and price at
// add time instead of holding a reference.
type Product struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}

// CatalogRepository defines read access to the product catalog. The engine
// never writes products; catalog management is an external concern.
type CatalogRepository interface {
	FindByID(id uint) (*Product, error)
	FindAll() ([]Product, error)
}
