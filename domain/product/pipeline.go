package product

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Page is the output of the pagination stage.
type Page struct {
	Items      []Product
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Run executes the query pipeline against the dataset. The stage order is
// fixed: slice, search, sort, category filter, paginate.
func Run(ds *Dataset, q Query) Page {
	products := ds.Slice(q.Total)
	products = Search(products, q.Search)
	products = Sort(products, q.SortField, q.Order)
	products = FilterCategory(products, q.Category)
	return Paginate(products, q.Page, q.Limit)
}

// Search keeps the products whose title, description or category contains
// query, ignoring case. A blank query returns products unchanged.
func Search(products []Product, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	matched := make([]Product, 0, len(products))
	for _, p := range products {
		haystack := strings.ToLower(p.Title + " " + p.Description + " " + p.Category)
		if strings.Contains(haystack, q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Sort orders products by category. Any other field leaves the input
// untouched. Descending order reverses the stable ascending result, so
// products sharing a category come out in reverse input order.
func Sort(products []Product, field string, order SortOrder) []Product {
	if field != SortFieldCategory {
		return products
	}

	// Collators keep internal buffers and are not safe to share.
	c := collate.New(language.Und)
	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, func(a, b Product) int {
		return c.CompareString(a.Category, b.Category)
	})
	if order == OrderDesc {
		slices.Reverse(sorted)
	}
	return sorted
}

// FilterCategory keeps the products whose category matches category,
// ignoring case and surrounding whitespace. A blank category returns
// products unchanged.
func FilterCategory(products []Product, category string) []Product {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		return products
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.ToLower(p.Category) == c {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Paginate cuts one page out of products. page and limit must be at least 1;
// a page past the end is clamped to the last page.
func Paginate(products []Product, page, limit int) Page {
	page = max(1, page)
	limit = max(1, limit)

	total := len(products)
	totalPages := 1
	if total > limit {
		totalPages = (total + limit - 1) / limit
	}
	page = min(page, totalPages)

	start := (page - 1) * limit
	end := total
	if limit < total-start {
		end = start + limit
	}

	items := []Product{}
	if start < total {
		items = products[start:end]
	}

	return Page{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
