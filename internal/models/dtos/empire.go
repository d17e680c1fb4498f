package dtos

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rebel is one entry of the empire spy report.
type Rebel struct {
	Code           string `json:"Code"`
	RebelInfluence int    `json:"RebelInfluence"`
}

// FuelPrice is one entry of the empire fuel price list. Read-only reference
// data, never persisted locally.
type FuelPrice struct {
	Sector           string          `json:"Sector"`
	PricePerLunarDay decimal.Decimal `json:"PricesPerLunarDay"`
	DayOfWeek        int             `json:"DayOfTheWeek"`
}

// AircraftType is a catalog entry of the empire fleet.
type AircraftType struct {
	MaxDistance     decimal.Decimal `json:"MaxDistance"`
	SupportedAttack int             `json:"SupportedAttack"`
	Crew            int             `json:"Crew"`
}

// Aircraft is a concrete fleet instance referencing a catalog type by name.
type Aircraft struct {
	Reference *uuid.UUID `json:"Reference"`
	Type      string     `json:"Type"`
	Sector    string     `json:"Sector"`
}

// EmpireAircraft is the full fleet payload: the type catalog plus the
// instance list.
type EmpireAircraft struct {
	AircraftsTypes map[string]AircraftType `json:"AircraftsTypes"`
	Aircrafts      []Aircraft              `json:"Aircrafts"`
}
