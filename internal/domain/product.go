package domain

// Category groups products. The slug is the filter key used by the
// catalog listing endpoints.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductReview struct {
	ID     string  `json:"id"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Author string  `json:"author"`
	Date   string  `json:"date"`
}

// Product is immutable for the lifetime of a session. Category holds the
// category slug, not its id.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    string          `json:"category"`
	Images      []string        `json:"images"`
	Rating      float64         `json:"rating"`
	Reviews     []ProductReview `json:"reviews"`
	Stock       int             `json:"stock"`
}
