package catalog

// Product is a catalog record as served by the storefront backend. The
// client never mutates products; it only holds the set most recently
// resolved for display.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	TopIngredients []string `json:"top_ingredients"`
	Tags           []string `json:"tags"`
	Price          float64  `json:"price"`
	Margin         float64  `json:"margin"`
	ImageURL       string   `json:"imageUrl,omitempty"`
}
