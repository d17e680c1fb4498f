package dtos

// RouteRequest is the body of the PriceBreakDown and OptimalAircraft
// operations. DayOfWeek is optional; the handler defaults it to the current
// day of week before the orchestrator runs.
type RouteRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	DayOfWeek   *int   `json:"dayOfWeek" validate:"omitempty,gte=0,lte=6"`
}
