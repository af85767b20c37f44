package cart

// LineItem is one product in a cart or order, with the product's name, price and image
// captured when it was added.
type LineItem struct {
	ProductID int     `json:"productId" yaml:"productId" validate:"required,gt=0"`
	Name      string  `json:"name" yaml:"name"`
	Price     float64 `json:"price" yaml:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" yaml:"quantity" validate:"gt=0"`
	Image     string  `json:"image" yaml:"image"`
}

// Totals is the derived price breakdown of a set of line items.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}
