package product

import (
	"fmt"
	"math"
)

const (
	// priceStep is added once per cycle, wrapping every priceCycles cycles.
	priceStep   = 1.11
	priceCycles = 7

	// rateStep shifts the rating by -2..+2 steps depending on the cycle.
	rateStep   = 0.1
	rateCycles = 5

	countStep = 3
)

// Generate builds a deterministic dataset of total records by cycling through
// the seed catalog. Record i derives from seed i%SeedSize at cycle
// i/SeedSize. When total fits in the seed catalog the seed records are
// returned unchanged.
func Generate(total int) []Product {
	if total <= 0 {
		return []Product{}
	}
	if total <= SeedSize {
		return Seed()[:total]
	}

	generated := make([]Product, 0, total)
	for i := 0; i < total; i++ {
		src := seedCatalog[i%SeedSize]
		cycle := i / SeedSize
		generated = append(generated, derive(src, i+1, cycle))
	}
	return generated
}

// derive returns the perturbed copy of src for the given cycle.
func derive(src Product, id, cycle int) Product {
	title := src.Title
	if cycle > 0 {
		title = fmt.Sprintf("%s #%d", src.Title, cycle+1)
	}

	return Product{
		ID:          id,
		Title:       title,
		Price:       roundCents(src.Price + float64(cycle%priceCycles)*priceStep),
		Description: src.Description,
		Category:    src.Category,
		Image:       src.Image,
		Rating: Rating{
			Rate:  clamp(src.Rating.Rate+float64(cycle%rateCycles-2)*rateStep, 0, 5),
			Count: src.Rating.Count + cycle*countStep,
		},
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
