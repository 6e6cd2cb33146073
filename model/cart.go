package model

// LineItem is one row of the active cart. Amount is kept in sync by the
// engine on every mutation: quantity * unitPrice - lineDiscount.
type LineItem struct {
	ProductID    uint    `json:"productId"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	LineDiscount float64 `json:"lineDiscount"`
	Amount       float64 `json:"amount"`
}

// Cart holds line items in insertion order. At most one LineItem per
// product id.
type Cart struct {
	Items []LineItem `json:"items"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// IndexOf returns the position of the line item for productId, -1 if absent.
func (c Cart) IndexOf(productId uint) int {
	for i, item := range c.Items {
		if item.ProductID == productId {
			return i
		}
	}
	return -1
}
