package models

import "github.com/shopspring/decimal"

// Search options are typed filters: a nil field means "no constraint on
// this column". Repositories and providers build their predicates from
// these explicitly, field by field.

// PlanetSearchOptions filters planets by any combination of fields.
type PlanetSearchOptions struct {
	Name           *string
	Code           *string
	Sector         *string
	RebelInfluence *int
}

// DistanceSearchOptions filters distances by origin and/or destination code.
type DistanceSearchOptions struct {
	Origin      *string
	Destination *string
}

// RebelSearchOptions filters spy report entries.
type RebelSearchOptions struct {
	Code           *string
	RebelInfluence *int
}

// FuelPriceSearchOptions filters the empire fuel price list.
type FuelPriceSearchOptions struct {
	Sector           *string
	PricePerLunarDay *decimal.Decimal
	DayOfWeek        *int
}
