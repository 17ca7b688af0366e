package product

// seedCatalog is the base dataset every generated record derives from.
// Order matters: generated ids and cycles are computed from the index.
var seedCatalog = [...]Product{
	{
		ID:          1,
		Title:       "Wireless Headphones",
		Price:       99.99,
		Description: "Bluetooth over-ear headphones with noise cancellation.",
		Category:    string(CategoryElectronics),
		Image:       "/vercel.svg",
		Rating:      Rating{Rate: 4.5, Count: 1203},
	},
	{
		ID:          2,
		Title:       "Cotton T-Shirt",
		Price:       19.99,
		Description: "Soft 100% cotton t-shirt available in multiple colors.",
		Category:    string(CategoryClothing),
		Image:       "/next.svg",
		Rating:      Rating{Rate: 4.1, Count: 523},
	},
	{
		ID:          3,
		Title:       "Ceramic Coffee Mug",
		Price:       12.5,
		Description: "Dishwasher safe 350ml ceramic mug.",
		Category:    string(CategoryHome),
		Image:       "/globe.svg",
		Rating:      Rating{Rate: 4.7, Count: 2119},
	},
	{
		ID:          4,
		Title:       "Running Shoes",
		Price:       59.99,
		Description: "Lightweight running shoes with breathable mesh upper.",
		Category:    string(CategoryClothing),
		Image:       "/window.svg",
		Rating:      Rating{Rate: 4.2, Count: 812},
	},
	{
		ID:          5,
		Title:       "Smartphone",
		Price:       699,
		Description: "6.1-inch display with dual camera system and long battery life.",
		Category:    string(CategoryElectronics),
		Image:       "/file.svg",
		Rating:      Rating{Rate: 4.6, Count: 3420},
	},
	{
		ID:          6,
		Title:       "Stainless Steel Water Bottle",
		Price:       24.99,
		Description: "Insulated bottle keeps drinks cold for 24h and hot for 12h.",
		Category:    string(CategoryOutdoors),
		Image:       "/vercel.svg",
		Rating:      Rating{Rate: 4.8, Count: 1549},
	},
}

// SeedSize is the number of records in the seed catalog.
const SeedSize = len(seedCatalog)

// Seed returns a copy of the seed catalog.
func Seed() []Product {
	out := make([]Product, SeedSize)
	copy(out, seedCatalog[:])
	return out
}
