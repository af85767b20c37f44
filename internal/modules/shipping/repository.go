package shipping

// Repository stores shipments.
type Repository interface {
	// Create assigns the next id and a tracking number when none is set.
	Create(s Shipment) Shipment
	GetByOrderID(orderID int) (Shipment, bool)
	List() []Shipment
	// UpdateStatus moves a shipment to status and refreshes UpdatedAt.
	UpdateStatus(id int, status Status) (Shipment, error)
}
