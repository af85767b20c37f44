package catalog

// Repository defines catalogue storage. Reads report absence with ok=false; writes against a
// missing id fail with *apperr.NotFoundError.
type Repository interface {
	GetAll() []Product
	GetByID(id int) (Product, bool)

	// Update replaces the stored record wholesale.
	Update(p Product) (Product, error)

	// UpdateDescription changes only the description, leaving stock and price as stored.
	UpdateDescription(id int, description string) (Product, error)

	// Add assigns id = max existing id + 1, or 1 for an empty store.
	Add(p Product) Product

	Delete(id int) error

	// AdjustStock adds delta to the product's stock, clamping the result at zero.
	AdjustStock(id int, delta int) (Product, error)
}
