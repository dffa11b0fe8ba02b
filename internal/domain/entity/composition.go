package entity

// CompositionEntry is one product's share of the total filtered quantity.
type CompositionEntry struct {
	ProductName string  `json:"product_name"`
	Quantity    int64   `json:"quantity"`
	Percentage  float64 `json:"percentage"`
}
