package catalog

import "github.com/priyanshi012/studio/internal/domain"

// Built-in demo catalog, used when no catalog database is configured.

var seedCategories = []domain.Category{
	{ID: "1", Name: "Electronics", Slug: "electronics"},
	{ID: "2", Name: "Fashion", Slug: "fashion"},
	{ID: "3", Name: "Home Goods", Slug: "home-goods"},
}

var seedProducts = []domain.Product{
	{
		ID:          "prod_001",
		Name:        "Quantum-Core Laptop",
		Description: "Next-generation laptop with a quantum processor, 16-inch OLED display, and all-day battery life. Perfect for professionals and creators.",
		Price:       1499.99,
		Category:    "electronics",
		Images:      []string{"laptop-1", "laptop-2"},
		Rating:      4.8,
		Reviews: []domain.ProductReview{
			{ID: "rev_001", Rating: 5, Text: "Incredibly fast and the display is stunning!", Author: "TechGuru", Date: "2023-10-15"},
			{ID: "rev_002", Rating: 4, Text: "Great performance, but a bit pricey.", Author: "Jane D.", Date: "2023-10-20"},
		},
		Stock: 50,
	},
	{
		ID:          "prod_002",
		Name:        "SonicStream Wireless Headphones",
		Description: "Immerse yourself in high-fidelity audio with these noise-cancelling wireless headphones. 30-hour playback and crystal-clear microphone.",
		Price:       249.99,
		Category:    "electronics",
		Images:      []string{"headphones-1", "headphones-2"},
		Rating:      4.7,
		Reviews: []domain.ProductReview{
			{ID: "rev_003", Rating: 5, Text: "Best noise cancellation I have ever experienced.", Author: "AudioPhile", Date: "2023-11-01"},
		},
		Stock: 120,
	},
	{
		ID:          "prod_003",
		Name:        "Urban Explorer Jacket",
		Description: "A stylish and durable waterproof jacket designed for the modern adventurer. Features multiple pockets and a breathable inner lining.",
		Price:       189.99,
		Category:    "fashion",
		Images:      []string{"jacket-1", "jacket-2"},
		Rating:      4.5,
		Stock:       80,
	},
	{
		ID:          "prod_004",
		Name:        "Classic Leather Watch",
		Description: "A timeless analog watch with a genuine leather strap and stainless steel case. Minimalist design suitable for any occasion.",
		Price:       159.99,
		Category:    "fashion",
		Images:      []string{"watch-1", "watch-2"},
		Rating:      4.9,
		Stock:       200,
	},
	{
		ID:          "prod_005",
		Name:        "AeroPress Coffee Maker",
		Description: "The revolutionary coffee press that brews smooth, rich coffee without bitterness. Fast, easy to clean, and portable.",
		Price:       39.99,
		Category:    "home-goods",
		Images:      []string{"coffee-maker-1", "coffee-maker-2"},
		Rating:      4.9,
		Stock:       300,
	},
	{
		ID:          "prod_006",
		Name:        "ErgoComfort Office Chair",
		Description: "Ergonomic office chair with adjustable lumbar support, armrests, and seat height. Promotes healthy posture for long work hours.",
		Price:       349.99,
		Category:    "home-goods",
		Images:      []string{"chair-1", "chair-2"},
		Rating:      4.6,
		Stock:       40,
	},
	{
		ID:          "prod_007",
		Name:        "4K Ultra HD Smart TV",
		Description: "55-inch Smart TV with vibrant 4K resolution, HDR support, and built-in streaming apps. An immersive cinematic experience at home.",
		Price:       599.99,
		Category:    "electronics",
		Images:      []string{"tv-1", "tv-2"},
		Rating:      4.7,
		Stock:       60,
	},
	{
		ID:          "prod_008",
		Name:        "TrailBlazer Hiking Boots",
		Description: "Waterproof and breathable hiking boots for all terrains. Provides excellent ankle support and grip for your next adventure.",
		Price:       139.99,
		Category:    "fashion",
		Images:      []string{"boots-1", "boots-2"},
		Rating:      4.8,
		Stock:       150,
	},
}
