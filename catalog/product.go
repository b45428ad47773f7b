package catalog

// Product is the typed record exchanged with the catalog provider and the
// cart surface. Validated here at the boundary; nothing downstream accepts
// untyped product maps.
type Product struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Aisle      string  `json:"aisle"`
	SellByUnit string  `json:"sell_by_unit"` // "Each", "lb", ...
	IsWeight   bool    `json:"is_weight"`    // priced by weight, fractional quantities allowed
}
