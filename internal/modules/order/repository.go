package order

// Repository is the order ledger.
type Repository interface {
	// Create stores o under the next id (max+1, or 1 when empty) and returns the stored copy.
	Create(o Order) Order
	GetByID(id int) (Order, bool)
	// ListByUser returns the user's orders in insertion order.
	ListByUser(userID int) []Order
	List() []Order
	// Update replaces the stored order with the same id and refreshes UpdatedAt. A zero
	// CreatedAt keeps the stored one.
	Update(o Order) (Order, error)
}

// ReceiptRepository stores receipts alongside the ledger.
type ReceiptRepository interface {
	Create(r Receipt) Receipt
	GetByOrderID(orderID int) (Receipt, bool)
	List() []Receipt
}
