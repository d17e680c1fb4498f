package dtos

import "github.com/shopspring/decimal"

// SindicatePlanet is a planet record as served by the sindicate directory.
type SindicatePlanet struct {
	Name   string `json:"PlanetName"`
	Code   string `json:"Code"`
	Sector string `json:"Sector"`
}

// SindicateDistance is one destination entry of the sindicate adjacency
// list. The origin code is the map key, not part of the record.
type SindicateDistance struct {
	Code       string          `json:"Code"`
	LunarYears decimal.Decimal `json:"LunarYears"`
}

// SindicateDistanceMap maps an origin planet code to the destinations the
// sindicate knows a distance for. It is a sparse adjacency list and is not
// guaranteed to be filtered by the remote itself.
type SindicateDistanceMap map[string][]SindicateDistance
