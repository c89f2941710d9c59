package domain

// Product is a single catalog entry. Name is unique across the catalog.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url,omitempty"`
	Price    float64 `json:"price"`
}
