// Package product holds the catalog domain: the seed records, the synthetic
// dataset built from them, and the query stages applied to that dataset.
package product

// Category is one of the fixed catalog categories.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryHome        Category = "home"
	CategoryOutdoors    Category = "outdoors"
)

// Categories returns the closed set of catalog categories in display order.
func Categories() []string {
	return []string{
		string(CategoryElectronics),
		string(CategoryClothing),
		string(CategoryHome),
		string(CategoryOutdoors),
	}
}

// Rating is the aggregate customer rating of a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is an immutable catalog record.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}
