package domain

// CartItem pairs a product with a quantity. Quantity is always positive;
// an item whose quantity would drop to zero is removed instead.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart is an insertion-ordered list of items with unique product IDs.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Quantity returns the quantity for productID, or 0 if absent.
func (c *Cart) Quantity(productID string) int {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}
