package models

// Product is a single sellable item from the catalog.
// The catalog is loaded once at startup and never mutated afterwards,
// so products are shared by value across all readers.
type Product struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	ShortDesc string   `json:"short_desc"`
	Tags      []string `json:"tags"`
	Price     float64  `json:"price"`
	Currency  string   `json:"currency"`
	ImageURL  string   `json:"image_url"`
	BuyLink   string   `json:"buy_link"`
}

// CatalogSnapshot is the public catalog listing.
type CatalogSnapshot struct {
	Count    int       `json:"count"`
	Products []Product `json:"products"`
}

// ProductSummary is the channel-agnostic product reference attached to
// chat replies. Channels that cannot render images ignore ImageURL.
type ProductSummary struct {
	Name      string  `json:"name"`
	ShortDesc string  `json:"short_desc"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	BuyLink   string  `json:"buy_link"`
	ImageURL  string  `json:"image_url,omitempty"`
}
