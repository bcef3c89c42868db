package catalog

// Seed returns the demo catalog served by the agent simulator.
func Seed() []Product {
	return []Product{
		{
			ID:             "1",
			Name:           "Radiant Glow Serum",
			Category:       "Serums",
			Description:    "A powerful vegan serum to boost your skin's natural radiance.",
			TopIngredients: []string{"Vitamin C", "Hyaluronic Acid", "Rosehip Oil"},
			Tags:           []string{"vegan", "glow", "brightening", "serum"},
			Price:          45.00,
			Margin:         0.6,
			ImageURL:       "https://picsum.photos/seed/picsum/200/350",
		},
		{
			ID:             "2",
			Name:           "Pure Hydration Moisturizer",
			Category:       "Moisturizers",
			Description:    "Deeply hydrating moisturizer for all skin types, 100% vegan.",
			TopIngredients: []string{"Aloe Vera", "Shea Butter", "Jojoba Oil"},
			Tags:           []string{"vegan", "hydration", "moisturizer", "daily"},
			Price:          35.00,
			Margin:         0.5,
			ImageURL:       "https://picsum.photos/seed/picsum/200/360",
		},
		{
			ID:             "3",
			Name:           "Gentle Cleansing Foam",
			Category:       "Cleansers",
			Description:    "A soft, gentle foam that cleanses without stripping moisture.",
			TopIngredients: []string{"Chamomile Extract", "Green Tea", "Cucumber Extract"},
			Tags:           []string{"vegan", "gentle", "cleanser", "foam"},
			Price:          25.00,
			Margin:         0.55,
			ImageURL:       "https://picsum.photos/seed/picsum/200/370",
		},
		{
			ID:             "4",
			Name:           "Overnight Renewal Cream",
			Category:       "Creams",
			Description:    "Works overnight to repair and renew your skin.",
			TopIngredients: []string{"Retinol (plant-derived)", "Peptides", "Avocado Oil"},
			Tags:           []string{"vegan", "renewal", "night cream", "anti-aging"},
			Price:          55.00,
			Margin:         0.65,
			ImageURL:       "https://picsum.photos/seed/picsum/200/380",
		},
	}
}
