package engine

import "github.com/glied2m/xp-tracker/internal/storage"

// Consumption metric names, matching the original log columns.
const (
	MetricDenicit   = "denicit"
	MetricCigs      = "cigs"
	MetricWeedGrams = "weed_g"
)

// DefaultPricePerGram is the fixed price used for cost estimates when the
// config does not override it.
const DefaultPricePerGram = 7.0

// Cost estimates the money spent over the rollup: total grams times price
// per gram. Pure; the records are never mutated.
func Cost(records []storage.DayRecord, pricePerGram float64) float64 {
	return Sum(QuantitySeries(records, MetricWeedGrams)) * pricePerGram
}
