package dtos

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommercialRoute is one element of the GET /api/routes payload. Origin and
// Destination carry planet display names; a code that resolves to no known
// planet yields a null name, not an error.
type CommercialRoute struct {
	Origin      *string         `json:"origin"`
	Destination *string         `json:"destination"`
	Distance    decimal.Decimal `json:"distance"`
}

// RouteTax is the security tax breakdown of a priced route.
type RouteTax struct {
	OriginDefenseCost      decimal.Decimal `json:"originDefenseCost"`
	DestinationDefenseCost decimal.Decimal `json:"destinationDefenseCost"`
	EliteDefenseCost       decimal.Decimal `json:"eliteDefenseCost"`
}

// BreakdownRoutePrice is the PriceBreakDown response.
type BreakdownRoutePrice struct {
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	PricePerLunarDay decimal.Decimal `json:"pricePerLunarDay"`
	Tax              RouteTax        `json:"tax"`
}

// AircraftResponse is the OptimalAircraft response. When no aircraft
// qualifies only Message is set; that is a payload, not an error.
type AircraftResponse struct {
	Reference *uuid.UUID `json:"reference,omitempty"`
	Type      string     `json:"type,omitempty"`
	Message   string     `json:"message"`
}

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries field-level validation messages.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
