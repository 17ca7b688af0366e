package product

import (
	"math"
	"strconv"
	"strings"
)

// SortOrder is the direction of the sort stage.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SortFieldCategory is the only field the sort stage acts on.
const SortFieldCategory = "category"

const (
	DefaultPage  = 1
	DefaultLimit = 50

	// maxNumeric bounds coerced numeric parameters before int conversion.
	maxNumeric = math.MaxInt32
)

// RawQuery carries the product query parameters exactly as received.
type RawQuery struct {
	Q        string `json:"q,omitempty"`
	Sort     string `json:"sort,omitempty"`
	Order    string `json:"order,omitempty"`
	Category string `json:"category,omitempty"`
	Page     string `json:"page,omitempty"`
	Limit    string `json:"limit,omitempty"`
	Total    string `json:"total,omitempty"`
}

// Query is the normalized product query. Every field is populated; missing
// or invalid input has already been replaced with its default.
type Query struct {
	Search    string
	SortField string
	Order     SortOrder
	Category  string
	Page      int
	Limit     int
	Total     int
}

// QueryDefaults controls how a RawQuery is coerced into a Query.
//
//   - page:  numeric-or-default(DefaultPage), then at least 1
//   - limit: numeric-or-default(Limit), then at least 1, then at most
//     MaxLimit when MaxLimit > 0
//   - total: numeric-or-default(MaxTotal), then clamped to [1, MaxTotal]
//   - order: "desc" selects descending, anything else ascending
//
// Numeric-or-default treats blank, unparsable, non-finite and zero input as
// absent. Fractional values are truncated toward zero.
type QueryDefaults struct {
	Limit    int
	MaxLimit int
	MaxTotal int
}

// Parse coerces raw into a Query. It never fails.
func (d QueryDefaults) Parse(raw RawQuery) Query {
	limitDefault := d.Limit
	if limitDefault <= 0 {
		limitDefault = DefaultLimit
	}
	maxTotal := d.MaxTotal
	if maxTotal <= 0 {
		maxTotal = DefaultDatasetSize
	}

	limit := max(1, numericOrDefault(raw.Limit, limitDefault))
	if d.MaxLimit > 0 && limit > d.MaxLimit {
		limit = d.MaxLimit
	}

	order := OrderAsc
	if raw.Order == string(OrderDesc) {
		order = OrderDesc
	}

	return Query{
		Search:    raw.Q,
		SortField: raw.Sort,
		Order:     order,
		Category:  raw.Category,
		Page:      max(1, numericOrDefault(raw.Page, DefaultPage)),
		Limit:     limit,
		Total:     min(maxTotal, max(1, numericOrDefault(raw.Total, maxTotal))),
	}
}

// numericOrDefault parses s as a number, falling back to def when s is
// blank, not a number, not finite, or zero.
func numericOrDefault(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return def
	}
	f = math.Trunc(f)
	switch {
	case f > maxNumeric:
		return maxNumeric
	case f < -maxNumeric:
		return -maxNumeric
	}
	return int(f)
}
